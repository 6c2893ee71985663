package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Recorder = (*Service)(nil)

// Service holds the Prometheus collectors for the API.
type Service struct {
	Requests     *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
	ExportRows   prometheus.Counter
	TokensIssued prometheus.Counter
	AuthFailures prometheus.Counter
	Throttled    *prometheus.CounterVec
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_http_requests_total",
			Help: "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		ExportRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_export_rows_total",
			Help: "Leaderboard rows written to CSV exports.",
		}),
		TokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_auth_tokens_issued_total",
			Help: "Bearer tokens issued.",
		}),
		AuthFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_auth_failures_total",
			Help: "Rejected credential checks on token issuance.",
		}),
		Throttled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_throttled_requests_total",
			Help: "Requests rejected by the rate limiter.",
		}, []string{"scope"}),
	}

	reg.MustRegister(
		s.Requests,
		s.Duration,
		s.ExportRows,
		s.TokensIssued,
		s.AuthFailures,
		s.Throttled,
	)

	return s
}

func (s *Service) AddExportRows(n int) {
	s.ExportRows.Add(float64(n))
}

func (s *Service) IncTokensIssued() {
	s.TokensIssued.Inc()
}

func (s *Service) IncAuthFailures() {
	s.AuthFailures.Inc()
}

func (s *Service) IncThrottled(scope string) {
	s.Throttled.WithLabelValues(scope).Inc()
}

// Middleware records every request under its chi route pattern so that
// /players/1 and /players/2 share a series.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		s.Requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		s.Duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
