package logger

import (
	"github.com/joeydtaylor/steeze-identity/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func ProvideLoggerMiddleware(cfg config.Config) *Middleware {
	return New(NewAccessLog(cfg.Log.Dir, "http-access.log"))
}

func ProvideLogger(cfg config.Config) *zap.Logger {
	return NewLog(cfg.Log.Dir, "system.log", ParseLevel(cfg.Log.Level))
}

var Module = fx.Options(
	fx.Provide(ProvideLoggerMiddleware),
	fx.Provide(ProvideLogger),
)
