package auth

import (
	"net/http"
)

// Middleware resolves claims from the proxy headers and stores them on the
// request context. It never rejects: failed extraction means unauthenticated.
func (m *Middleware) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := m.adapter.ClaimsIfEnabled(r.Context(), r.Header)
			if c.IsEmpty() {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), c)))
		})
	}
}
