package auth

import (
	"github.com/joeydtaylor/steeze-identity/pkg/claims"
	"go.uber.org/fx"
)

// ProvideAuthentication wraps the claims adapter as HTTP middleware.
func ProvideAuthentication(a *claims.Adapter) *Middleware {
	return &Middleware{adapter: a}
}

var Module = fx.Options(
	fx.Provide(ProvideAuthentication),
)
