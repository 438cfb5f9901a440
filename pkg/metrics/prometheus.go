package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	chartsBuilt prometheus.Counter
	horoscopes  *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	cacheTotal  *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		chartsBuilt: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "astrocore_charts_built_total",
				Help: "Total number of natal charts built",
			},
		),
		horoscopes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astrocore_horoscopes_total",
				Help: "Total number of horoscopes generated",
			},
			[]string{"kind"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astrocore_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		cacheTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astrocore_cache_requests_total",
				Help: "Cache lookups partitioned by outcome",
			},
			[]string{"outcome"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "astrocore_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordChartBuilt records a completed natal chart build.
func (r *Recorder) RecordChartBuilt() {
	r.chartsBuilt.Inc()
}

// RecordHoroscope records a generated horoscope by kind (daily, weekly).
func (r *Recorder) RecordHoroscope(kind string) {
	r.horoscopes.WithLabelValues(kind).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordCache records a cache lookup outcome.
func (r *Recorder) RecordCache(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	r.cacheTotal.WithLabelValues(outcome).Inc()
}
