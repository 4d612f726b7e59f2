package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	responseTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "response_time",
			Help:    "http response time.",
			Buckets: []float64{0.005, 0.05, 0.5, 1, 5, 10},
		},
	)

	totalHttpRequestsFromProvider = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests_from_provider", Help: "http requests by auth provider"},
		[]string{"provider"},
	)

	totalHttpRequestsToUri = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests_to_uri", Help: "http requests to uri"},
		[]string{"code", "uri", "method"},
	)

	totalHttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests", Help: "http requests by code, and method"},
		[]string{"code", "method"},
	)

	claimsExtractions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "claims_extractions_total", Help: "identity header extractions by outcome"},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		responseTime,
		totalHttpRequestsFromProvider,
		totalHttpRequestsToUri,
		totalHttpRequests,
		claimsExtractions,
	)
}
