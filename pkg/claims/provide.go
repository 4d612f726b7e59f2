package claims

import (
	"github.com/joeydtaylor/steeze-identity/pkg/config"
	"github.com/joeydtaylor/steeze-identity/pkg/identity"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type adapterDeps struct {
	fx.In

	Cfg       config.Config
	Extractor identity.Extractor
	Log       *zap.Logger
	Rec       Recorder `optional:"true"`
}

func ProvideAdapter(d adapterDeps) *Adapter {
	d.Log.Info("claims adapter configured",
		zap.Bool("enabled", d.Cfg.Auth.Enabled),
		zap.String("mode", d.Cfg.Auth.Mode),
		zap.Bool("devBypass", d.Cfg.Auth.DevBypass),
	)
	return New(d.Cfg.Auth.Enabled, d.Extractor, d.Log.Named("claims"),
		WithRecorder(d.Rec),
		WithDefaultProvider(d.Cfg.Auth.DefaultProvider),
	)
}

var Module = fx.Options(
	fx.Provide(ProvideAdapter),
)
