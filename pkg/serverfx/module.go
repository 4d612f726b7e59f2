package serverfx

import (
	"github.com/joeydtaylor/steeze-identity/pkg/api"
	"github.com/joeydtaylor/steeze-identity/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-identity/pkg/config"
	"go.uber.org/fx"
)

// Module returns a complete Fx option set for the identity service.
func Module(cfg config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		bundlefx.Module,
		api.Module,
		fx.Invoke(registerHooks),
	)
}
