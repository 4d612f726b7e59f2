package api

import (
	"net/http"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-identity/pkg/claims"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/logger"
	hmetrics "github.com/joeydtaylor/steeze-identity/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-identity/pkg/transport/httpx"
	"go.uber.org/zap"
)

type BuildDeps struct {
	Adapter *claims.Adapter
	Auth    *auth.Middleware
	LogMW   *logger.Middleware
	Metrics http.Handler
	Router  httpx.Router
	Search  claims.SearchClient
	Log     *zap.Logger
}

func BuildRouter(d BuildDeps) http.Handler {
	r := d.Router
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat("/ping"))
	r.Use(d.Auth.Middleware())
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware(d.Auth))
	}
	r.Use(hmetrics.Collect(d.Auth))

	if d.Metrics != nil {
		r.Get("/metrics", d.Metrics)
	}

	h := NewHandlers(d.Adapter, d.Auth, d.Log)
	guard := func(fn http.HandlerFunc) http.HandlerFunc {
		return withGuard(fn, d.Adapter, d.Auth, d.Search)
	}

	r.Get("/auth_setup", guard(h.AuthSetup))
	r.Get("/auth/claims", guard(h.Claims))
	r.Post("/auth/security_filters", guard(h.SecurityFilters))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})
	return r.Mux()
}
