package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	transactionsRecorded *prometheus.CounterVec
	appendsBlocked       prometheus.Counter
	riskActivations      prometheus.Counter
	autoResets           prometheus.Counter
	errorsTotal          *prometheus.CounterVec
	consecutiveLosses    prometheus.Gauge
	latency              *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foxjournal_transactions_recorded_total",
				Help: "Total number of transactions appended to the ledger",
			},
			[]string{"type"},
		),
		appendsBlocked: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "foxjournal_appends_blocked_total",
				Help: "Total number of appends refused by the cooling-off guard",
			},
		),
		riskActivations: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "foxjournal_risk_activations_total",
				Help: "Total number of times the risk state became active",
			},
		),
		autoResets: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "foxjournal_risk_auto_resets_total",
				Help: "Total number of day-boundary automatic risk resets",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foxjournal_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		consecutiveLosses: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "foxjournal_consecutive_losses",
				Help: "Current consecutive loss counter",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "foxjournal_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordTransaction records an appended transaction by type.
func (r *Recorder) RecordTransaction(txType string) {
	r.transactionsRecorded.WithLabelValues(txType).Inc()
}

// RecordAppendBlocked records an append refused while in risk.
func (r *Recorder) RecordAppendBlocked() {
	r.appendsBlocked.Inc()
}

// RecordRiskActivation records a transition into the risk state.
func (r *Recorder) RecordRiskActivation() {
	r.riskActivations.Inc()
}

// RecordAutoReset records a day-boundary automatic reset.
func (r *Recorder) RecordAutoReset() {
	r.autoResets.Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordConsecutiveLosses records the current consecutive loss counter.
func (r *Recorder) RecordConsecutiveLosses(n int) {
	r.consecutiveLosses.Set(float64(n))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
