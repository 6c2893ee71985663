package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	r := chi.NewRouter()
	r.Use(svc.Middleware)
	r.Get("/players/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/players/1", "/players/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	got := testutil.ToFloat64(svc.Requests.WithLabelValues("/players/{id}", http.MethodGet, "404"))
	assert.Equal(t, float64(2), got)
}

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.AddExportRows(120)
	svc.AddExportRows(30)
	svc.IncTokensIssued()
	svc.IncAuthFailures()
	svc.IncAuthFailures()
	svc.IncThrottled("auth")

	assert.Equal(t, float64(150), testutil.ToFloat64(svc.ExportRows))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.TokensIssued))
	assert.Equal(t, float64(2), testutil.ToFloat64(svc.AuthFailures))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.Throttled.WithLabelValues("auth")))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.IncTokensIssued()

	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "roster_auth_tokens_issued_total 1"))
}

func TestNopRecorder(t *testing.T) {
	var rec Recorder = Nop{}
	called := false
	h := rec.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}
