package auth

import (
	"context"

	"github.com/joeydtaylor/steeze-identity/pkg/claims"
)

// WithClaims returns a copy of ctx carrying c.
func WithClaims(ctx context.Context, c claims.Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, c)
}

func (m *Middleware) GetClaims(ctx context.Context) claims.Claims {
	if c, ok := ctx.Value(claimsCtxKey).(claims.Claims); ok {
		return c
	}
	return claims.Claims{}
}

func (m *Middleware) IsAuthenticated(ctx context.Context) bool {
	return !m.GetClaims(ctx).IsEmpty()
}

// IsKnownUser is false for anonymous requests and for the unknown_user fallback.
func (m *Middleware) IsKnownUser(ctx context.Context) bool {
	oid := m.GetClaims(ctx).OID
	return oid != "" && oid != claims.UnknownUser
}

func (m *Middleware) Adapter() *claims.Adapter { return m.adapter }
