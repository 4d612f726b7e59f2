package metrics

import (
	"net/http"

	"github.com/joeydtaylor/steeze-identity/pkg/claims"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// NewPromHttpHandler returns the /metrics handler.
func NewPromHttpHandler() http.Handler { return promhttp.Handler() }

// ProvideMetrics is the Fx provider used by the server wiring.
func ProvideMetrics() http.Handler { return NewPromHttpHandler() }

// ClaimsRecorder counts claims extractions by outcome.
type ClaimsRecorder struct{}

func (ClaimsRecorder) ObserveExtraction(o claims.Outcome) {
	claimsExtractions.WithLabelValues(string(o)).Inc()
}

func ProvideRecorder() claims.Recorder { return ClaimsRecorder{} }

var Module = fx.Options(
	fx.Provide(fx.Annotate(ProvideMetrics, fx.ResultTags(`name:"metrics"`))),
	fx.Provide(ProvideRecorder),
)
