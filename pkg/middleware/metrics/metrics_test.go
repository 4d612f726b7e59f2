package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joeydtaylor/steeze-identity/pkg/claims"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/auth"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClaimsRecorder(t *testing.T) {
	before := testutil.ToFloat64(claimsExtractions.WithLabelValues(string(claims.OutcomeMissingOID)))
	ProvideRecorder().ObserveExtraction(claims.OutcomeMissingOID)
	ProvideRecorder().ObserveExtraction(claims.OutcomeMissingOID)
	after := testutil.ToFloat64(claimsExtractions.WithLabelValues(string(claims.OutcomeMissingOID)))
	assert.Equal(t, before+2, after)
}

func TestCollectLabelsProvider(t *testing.T) {
	am := auth.ProvideAuthentication(claims.New(false, nil, nil))
	h := Collect(am)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	counter := totalHttpRequestsFromProvider.WithLabelValues("github")
	uriCounter := totalHttpRequestsToUri.WithLabelValues("200", "/auth/claims", http.MethodGet)
	before, uriBefore := testutil.ToFloat64(counter), testutil.ToFloat64(uriCounter)

	req := httptest.NewRequest(http.MethodGet, "/auth/claims", nil)
	req = req.WithContext(auth.WithClaims(req.Context(), claims.Claims{OID: "u1", AuthProvider: "github"}))
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, uriBefore+1, testutil.ToFloat64(uriCounter))
}

func TestCollectSkipsScrape(t *testing.T) {
	h := Collect(nil)(http.NotFoundHandler())
	counter := totalHttpRequests.WithLabelValues("404", http.MethodGet)
	before := testutil.ToFloat64(counter)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, before, testutil.ToFloat64(counter))

	AddMetricsSkipPaths("/healthz")
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, before, testutil.ToFloat64(counter))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestPathNormalizer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	assert.Equal(t, "/users/42", normalizePath(req))

	SetPathNormalizer(nil)
	assert.Equal(t, "/users/42", normalizePath(req))

	t.Cleanup(func() { SetPathNormalizer(routePattern) })
	SetPathNormalizer(func(*http.Request) string { return "/users/{id}" })
	assert.Equal(t, "/users/{id}", normalizePath(req))
}
