package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP and sale metrics for the service.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	InflightRequests prometheus.Gauge

	SalesRecordedTotal prometheus.Counter
	RevenueTotal       prometheus.Counter
}

// New registers the metrics on reg. Passing a fresh registry keeps test
// instances isolated from the default one.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		InflightRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		SalesRecordedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sales_recorded_total",
			Help: "Total number of successfully recorded sales.",
		}),
		RevenueTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sales_revenue_total",
			Help: "Cumulative revenue of recorded sales.",
		}),
	}
}
