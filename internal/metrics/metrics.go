package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	BrowseRequestsTotal   *prometheus.CounterVec
	BrowseRequestDuration *prometheus.HistogramVec

	EnrichmentLookupsTotal *prometheus.CounterVec

	RateLimitHitsTotal prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "retrofind_requests_total",
				Help: "Total number of search requests processed",
			},
			[]string{"status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "retrofind_request_duration_seconds",
				Help:    "Search request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{},
		),
		RequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "retrofind_requests_in_flight",
				Help: "Number of search requests currently being processed",
			},
		),

		BrowseRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "retrofind_browse_requests_total",
				Help: "Total number of upstream Browse API calls",
			},
			[]string{"status"},
		),
		BrowseRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "retrofind_browse_request_duration_seconds",
				Help:    "Upstream Browse API call duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{},
		),

		EnrichmentLookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "retrofind_enrichment_lookups_total",
				Help: "Total number of best-effort brand enrichment lookups",
			},
			[]string{"status"},
		),

		RateLimitHitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "retrofind_rate_limit_hits_total",
				Help: "Total number of rate limited requests",
			},
		),
	}

	return m
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) RecordRequest(status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(status).Inc()
	m.RequestDuration.WithLabelValues().Observe(duration.Seconds())
}

func (m *Metrics) RecordBrowseRequest(status string, duration time.Duration) {
	m.BrowseRequestsTotal.WithLabelValues(status).Inc()
	m.BrowseRequestDuration.WithLabelValues().Observe(duration.Seconds())
}

func (m *Metrics) RecordEnrichmentLookup(status string) {
	m.EnrichmentLookupsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordRateLimitHit() {
	m.RateLimitHitsTotal.Inc()
}

func (m *Metrics) IncRequestsInFlight() {
	m.RequestsInFlight.Inc()
}

func (m *Metrics) DecRequestsInFlight() {
	m.RequestsInFlight.Dec()
}
