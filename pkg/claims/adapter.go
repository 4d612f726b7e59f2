package claims

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/joeydtaylor/steeze-identity/pkg/identity"
	"go.uber.org/zap"
)

var errNoExtractor = errors.New("no identity extractor configured")

// Adapter turns proxy-injected identity headers into Claims.
// It holds no mutable state and is safe for concurrent use.
type Adapter struct {
	enabled         bool
	extractor       identity.Extractor
	log             *zap.Logger
	rec             Recorder
	defaultProvider string
}

type Option func(*Adapter)

func WithRecorder(r Recorder) Option {
	return func(a *Adapter) {
		if r != nil {
			a.rec = r
		}
	}
}

func WithDefaultProvider(p string) Option {
	return func(a *Adapter) {
		if p != "" {
			a.defaultProvider = p
		}
	}
}

func New(enabled bool, ex identity.Extractor, log *zap.Logger, opts ...Option) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Adapter{
		enabled:         enabled,
		extractor:       ex,
		log:             log,
		rec:             nopRecorder{},
		defaultProvider: DefaultProvider,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *Adapter) Enabled() bool { return a.enabled }

// ClaimsIfEnabled returns empty Claims when header auth is off or the
// extractor fails. It never returns an error and never panics on a
// misbehaving extractor.
func (a *Adapter) ClaimsIfEnabled(ctx context.Context, h http.Header) (c Claims) {
	if !a.enabled {
		return Claims{}
	}

	defer func() {
		if p := recover(); p != nil {
			a.log.Error("Error extracting user details from headers", zap.Error(fmt.Errorf("extractor panic: %v", p)))
			a.rec.ObserveExtraction(OutcomeFailed)
			c = Claims{}
		}
	}()

	d, err := a.extract(ctx, h)
	if err != nil {
		a.log.Error("Error extracting user details from headers", zap.Error(err))
		a.rec.ObserveExtraction(OutcomeFailed)
		return Claims{}
	}

	c = Claims{
		OID:               d.UserPrincipalID,
		Name:              d.UserName,
		PreferredUsername: d.UserName,
		AuthProvider:      d.AuthProvider,
	}
	if c.AuthProvider == "" {
		c.AuthProvider = a.defaultProvider
	}
	if c.OID == "" {
		a.log.Warn("No user_principal_id found in identity headers",
			zap.String("auth_provider", c.AuthProvider),
		)
		c.OID = UnknownUser
		a.rec.ObserveExtraction(OutcomeMissingOID)
		return c
	}
	a.rec.ObserveExtraction(OutcomeOK)
	return c
}

func (a *Adapter) extract(ctx context.Context, h http.Header) (identity.UserDetails, error) {
	if a.extractor == nil {
		return identity.UserDetails{}, errNoExtractor
	}
	return a.extractor.ExtractUserDetails(ctx, h)
}

// CheckPathAuthorization always allows. Header auth has no per-path access control.
func (a *Adapter) CheckPathAuthorization(_ context.Context, _ string, _ Claims, _ SearchClient) bool {
	return true
}

func (a *Adapter) ClientAuthSetup() ClientAuthSetup {
	return ClientAuthSetup{
		UseLogin:                    a.enabled,
		RequireAccessControl:        false,
		EnableUnauthenticatedAccess: !a.enabled,
		MSALConfig:                  nil,
	}
}

// BuildSecurityFilters returns nil, meaning no search filter applies.
func (a *Adapter) BuildSecurityFilters(_ map[string]any, _ Claims) *string {
	return nil
}
