package identity

import (
	"context"
	"net/http"
	"strings"
)

// HeaderExtractor reads plain identity headers set by the upstream proxy.
type HeaderExtractor struct {
	UserIDHeader   string
	UserNameHeader string
	ProviderHeader string
}

func (e HeaderExtractor) ExtractUserDetails(_ context.Context, h http.Header) (UserDetails, error) {
	d := UserDetails{
		UserPrincipalID: headerValue(h, e.UserIDHeader),
		UserName:        headerValue(h, e.UserNameHeader),
		AuthProvider:    headerValue(h, e.ProviderHeader),
	}
	if d == (UserDetails{}) {
		return UserDetails{}, ErrNoIdentity
	}
	return d, nil
}

func headerValue(h http.Header, name string) string {
	if name == "" || h == nil {
		return ""
	}
	return strings.TrimSpace(h.Get(name))
}
