package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joeydtaylor/steeze-identity/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type serverDeps struct {
	fx.In
	Cfg    config.Config
	Logger *zap.Logger
	App    http.Handler `name:"app"`
}

// newServer builds the http.Server and reports whether TLS files are usable.
func newServer(sc config.ServerConfig, h http.Handler) (*http.Server, bool) {
	srv := &http.Server{
		Addr:         sc.Listen,
		Handler:      h,
		ReadTimeout:  time.Duration(sc.ReadTimeoutMS) * time.Millisecond,
		WriteTimeout: time.Duration(sc.WriteTimeoutMS) * time.Millisecond,
		IdleTimeout:  time.Duration(sc.IdleTimeoutMS) * time.Millisecond,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
	useTLS := fileExists(sc.TLSCert) && fileExists(sc.TLSKey)
	if !useTLS {
		srv.TLSConfig = nil
	}
	return srv, useTLS
}

func registerHooks(lc fx.Lifecycle, d serverDeps) {
	sc := d.Cfg.Server
	srv, useTLS := newServer(sc, d.App)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if useTLS {
				d.Logger.Info("server starting (TLS)", zap.String("addr", sc.Listen), zap.String("cert", sc.TLSCert))
				go func() {
					if err := srv.ListenAndServeTLS(sc.TLSCert, sc.TLSKey); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
				return nil
			}
			if sc.TLSCert != "" {
				d.Logger.Warn("tls files not found; serving plaintext", zap.String("cert", sc.TLSCert), zap.String("key", sc.TLSKey))
			}
			d.Logger.Info("server starting (PLAINTEXT)", zap.String("addr", sc.Listen))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					d.Logger.Fatal("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping")
			err := srv.Shutdown(ctx)
			_ = d.Logger.Sync()
			return err
		},
	})
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
