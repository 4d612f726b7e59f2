package logger

import (
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/auth"
	"go.uber.org/zap"
)

type Middleware struct {
	access *zap.Logger
}

// New returns access-log middleware writing to l.
func New(l *zap.Logger) *Middleware {
	if l == nil {
		l = zap.NewNop()
	}
	return &Middleware{access: l}
}

// Middleware logs one record per request. Claims must already be on the
// context, so mount it after the auth middleware.
func (m *Middleware) Middleware(ca *auth.Middleware) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)

			// Buffer only a bounded prefix, and only when the body could be logged.
			// The handler still sees the full stream.
			var body []byte
			if r.Body != nil && bodyCandidate(r) {
				body, r.Body = peekBody(r.Body, maxLoggedBody)
			}

			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}

			start := time.Now()
			defer func() {
				// nil-safe claims lookup
				isAuth := false
				oid, username, provider := "", "", ""
				if ca != nil {
					isAuth = ca.IsAuthenticated(r.Context())
					c := ca.GetClaims(r.Context())
					oid, username, provider = c.OID, c.PreferredUsername, c.AuthProvider
				}

				log := m.access.With(
					zap.String("dateTime", start.UTC().Format(time.RFC1123)),
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.String("httpScheme", scheme),
					zap.Bool("isAuthenticated", isAuth),
					zap.String("oid", oid),
					zap.String("preferredUsername", username),
					zap.String("authenticationProvider", provider),
					zap.String("httpProto", r.Proto),
					zap.String("httpMethod", r.Method),
					zap.String("remoteAddr", r.RemoteAddr),
					zap.String("uri", r.URL.Path),
					zap.Duration("lat", time.Since(start)),
					zap.Int("responseSize", ww.BytesWritten()),
					zap.Int("status", ww.Status()),
				)

				// Redact by default; allowlist small JSON bodies only.
				if shouldLogBody(r, body) {
					log.Info("", zap.ByteString("requestData", body))
				} else {
					log.Info("")
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
