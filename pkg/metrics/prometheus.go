package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	gathersTotal *prometheus.CounterVec
	storesTotal  *prometheus.CounterVec
	reindexTotal *prometheus.CounterVec
	sourceCounts *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		gathersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fingather_gathers_total",
				Help: "Total number of source gather runs",
			},
			[]string{"source", "result"},
		),
		storesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fingather_stores_total",
				Help: "Total number of document store attempts",
			},
			[]string{"result"},
		),
		reindexTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fingather_reindex_total",
				Help: "Total number of reindex triggers",
			},
			[]string{"result"},
		),
		sourceCounts: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fingather_source_items",
				Help: "Items gathered by the last run of a source",
			},
			[]string{"source"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fingather_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// RecordGather records one source gather outcome.
func (r *Recorder) RecordGather(source string, success bool) {
	r.gathersTotal.WithLabelValues(source, result(success)).Inc()
}

// RecordStore records one document store outcome.
func (r *Recorder) RecordStore(success bool) {
	r.storesTotal.WithLabelValues(result(success)).Inc()
}

// RecordReindex records one reindex trigger outcome.
func (r *Recorder) RecordReindex(success bool) {
	r.reindexTotal.WithLabelValues(result(success)).Inc()
}

// RecordSourceCount records how many items the last run of a source gathered.
func (r *Recorder) RecordSourceCount(source string, count int) {
	r.sourceCounts.WithLabelValues(source).Set(float64(count))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
