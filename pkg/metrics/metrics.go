package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	Namespace = "intseq"

	// Status label values for success/error metrics
	StatusSuccess = "success"
	StatusError   = "error"

	// Operation label values
	FirstMissingPositive = "first_missing_positive"
	GetMin               = "get_min"

	// Error type label values
	ErrTypeInvalidInput = "invalid_input"
	ErrTypeConfig       = "config"
)

// Labels holds constant labels applied to all metrics.
type Labels struct {
	Environment string // Deployment environment (e.g., "production", "staging", "development")
	Instance    string // Free-form instance name, distinguishes runs whose output is collected together
}

// toPrometheusLabels converts Labels to prometheus.Labels map.
// Only non-empty labels are included to avoid empty label values.
func (l Labels) toPrometheusLabels() prometheus.Labels {
	labels := prometheus.Labels{}
	if l.Environment != "" {
		labels["environment"] = l.Environment
	}
	if l.Instance != "" {
		labels["instance"] = l.Instance
	}
	return labels
}

type Metrics struct {
	evaluations *prometheus.CounterVec   // by operation, status
	inputSize   *prometheus.HistogramVec // by operation
	lastResult  *prometheus.GaugeVec     // by operation
	errors      *prometheus.CounterVec   // by type
}

// New creates a new Metrics instance and registers all metrics with the provided registerer.
// For metrics with constant labels, use NewWithLabels instead.
func New(reg prometheus.Registerer) (*Metrics, error) {
	return NewWithLabels(reg, Labels{})
}

// NewWithLabels creates a new Metrics instance with constant labels applied to all metrics.
func NewWithLabels(reg prometheus.Registerer, labels Labels) (*Metrics, error) {
	promLabels := labels.toPrometheusLabels()
	if len(promLabels) > 0 {
		reg = prometheus.WrapRegistererWith(promLabels, reg)
	}

	return newMetrics(reg)
}

func newMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "evaluations_total",
			Help:      "Total number of sequence evaluations",
		}, []string{"operation", "status"}),
		inputSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "input_size",
			Help:      "Number of integers in each evaluated sequence",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		}, []string{"operation"}),
		lastResult: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_result",
			Help:      "Result of the most recent successful evaluation",
		}, []string{"operation"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "errors_total",
			Help:      "Total number of errors by type",
		}, []string{"type"}),
	}

	err := errors.Join(
		reg.Register(m.evaluations),
		reg.Register(m.inputSize),
		reg.Register(m.lastResult),
		reg.Register(m.errors),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordEvaluation records one evaluation of operation over inputSize integers.
// Failed evaluations are only counted; input size and result are recorded on success.
func (m *Metrics) RecordEvaluation(operation string, inputSize int, result int, err error) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.evaluations.WithLabelValues(operation, status).Inc()
	if err != nil {
		return
	}
	m.inputSize.WithLabelValues(operation).Observe(float64(inputSize))
	m.lastResult.WithLabelValues(operation).Set(float64(result))
}

// IncError increments the error counter for the given type.
func (m *Metrics) IncError(errType string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(errType).Inc()
}
