package api

import (
	"net/http"

	"github.com/joeydtaylor/steeze-identity/pkg/claims"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/auth"
)

// withGuard asks the adapter whether the caller may reach this path.
func withGuard(next http.HandlerFunc, a *claims.Adapter, am *auth.Middleware, search claims.SearchClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := am.GetClaims(r.Context())
		if !a.CheckPathAuthorization(r.Context(), r.URL.Path, c, search) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
