package identity

import (
	"context"
	"errors"
	"net/http"
)

var (
	// ErrNoIdentity means the request carried none of the identity headers.
	ErrNoIdentity = errors.New("no identity headers present")
	// ErrMalformedAssertion means the assertion header could not be decoded.
	ErrMalformedAssertion = errors.New("malformed identity assertion")
)

// UserDetails is what the upstream identity proxy told us about the caller.
// Every field may be empty.
type UserDetails struct {
	UserPrincipalID string `json:"user_principal_id,omitempty"`
	UserName        string `json:"user_name,omitempty"`
	AuthProvider    string `json:"auth_provider,omitempty"`
}

// Extractor parses request headers into UserDetails.
type Extractor interface {
	ExtractUserDetails(ctx context.Context, h http.Header) (UserDetails, error)
}

// ExtractorFunc adapts a plain function to Extractor.
type ExtractorFunc func(ctx context.Context, h http.Header) (UserDetails, error)

func (f ExtractorFunc) ExtractUserDetails(ctx context.Context, h http.Header) (UserDetails, error) {
	return f(ctx, h)
}
