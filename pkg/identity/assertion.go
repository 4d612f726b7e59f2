package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AssertionExtractor decodes a JWT identity assertion forwarded by the proxy.
// The signature is not checked here; the proxy in front of us already did.
type AssertionExtractor struct {
	Header string
}

type assertionClaims struct {
	jwt.RegisteredClaims
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
}

func (e AssertionExtractor) ExtractUserDetails(_ context.Context, h http.Header) (UserDetails, error) {
	raw := headerValue(h, e.Header)
	if raw == "" {
		return UserDetails{}, ErrNoIdentity
	}
	if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
		raw = strings.TrimSpace(raw[7:])
	}

	var c assertionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &c); err != nil {
		return UserDetails{}, fmt.Errorf("%w: %v", ErrMalformedAssertion, err)
	}

	id := firstNonEmpty(c.UID, c.Subject)
	return UserDetails{
		UserPrincipalID: id,
		UserName:        firstNonEmpty(c.Name, c.Nickname, c.Email),
		AuthProvider:    firstNonEmpty(c.Provider, providerFromSubject(c.Subject)),
	}, nil
}

// Auth0 subjects look like "google-oauth2|1234"; the prefix names the connection.
func providerFromSubject(sub string) string {
	if i := strings.IndexByte(sub, '|'); i > 0 {
		return sub[:i]
	}
	return ""
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
