package api

import (
	"net/http"

	"github.com/joeydtaylor/steeze-identity/pkg/claims"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-identity/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type routerDeps struct {
	fx.In

	Adapter *claims.Adapter
	AuthMW  *auth.Middleware
	LogMW   *logger.Middleware
	Metrics http.Handler `name:"metrics"`
	R       httpx.Router
	Search  claims.SearchClient `optional:"true"`
	Log     *zap.Logger
}

func provideRouter(d routerDeps) http.Handler {
	return BuildRouter(BuildDeps{
		Adapter: d.Adapter,
		Auth:    d.AuthMW,
		LogMW:   d.LogMW,
		Metrics: d.Metrics,
		Router:  d.R,
		Search:  d.Search,
		Log:     d.Log,
	})
}

var Module = fx.Options(
	fx.Provide(httpx.NewChi),
	fx.Provide(fx.Annotate(provideRouter, fx.ResultTags(`name:"app"`))),
)
