// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/joeydtaylor/steeze-identity/pkg/claims"
	"github.com/joeydtaylor/steeze-identity/pkg/identity"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/metrics"
	"go.uber.org/fx"
)

// Module provides everything between config.Config and the HTTP router:
// extractor, claims adapter, and the auth/logger/metrics middleware.
var Module = fx.Options(
	identity.Module,
	claims.Module,
	auth.Module,
	logger.Module,
	metrics.Module,
)
