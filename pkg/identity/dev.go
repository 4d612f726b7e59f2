package identity

import (
	"context"
	"net/http"
)

// Dev-only identity injection via headers when AUTH_DEV_BYPASS=true.
func devExtractor() Extractor {
	return ExtractorFunc(func(_ context.Context, h http.Header) (UserDetails, error) {
		user := headerValue(h, "X-Dev-User")
		if user == "" {
			return UserDetails{}, ErrNoIdentity
		}
		return UserDetails{
			UserPrincipalID: user,
			UserName:        firstNonEmpty(headerValue(h, "X-Dev-Name"), user),
			AuthProvider:    firstNonEmpty(headerValue(h, "X-Dev-Provider"), "dev"),
		}, nil
	})
}
