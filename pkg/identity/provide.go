package identity

import (
	"fmt"

	"github.com/joeydtaylor/steeze-identity/pkg/config"
	"go.uber.org/fx"
)

// NewFromConfig builds the extractor for the configured mode.
// With dev bypass on, X-Dev-* headers win over everything else.
func NewFromConfig(ac config.AuthConfig) (Extractor, error) {
	headers := HeaderExtractor{
		UserIDHeader:   ac.UserIDHeader,
		UserNameHeader: ac.UserNameHeader,
		ProviderHeader: ac.ProviderHeader,
	}
	assertion := AssertionExtractor{Header: ac.AssertionHeader}

	var ex Extractor
	switch ac.Mode {
	case config.ModeHeaders, "":
		ex = headers
	case config.ModeAssertion:
		ex = assertion
	case config.ModeChain:
		ex = ChainExtractor{assertion, headers}
	default:
		return nil, fmt.Errorf("unknown identity mode %q", ac.Mode)
	}

	if ac.DevBypass {
		ex = ChainExtractor{devExtractor(), ex}
	}
	return ex, nil
}

func ProvideExtractor(cfg config.Config) (Extractor, error) {
	return NewFromConfig(cfg.Auth)
}

var Module = fx.Options(
	fx.Provide(ProvideExtractor),
)
