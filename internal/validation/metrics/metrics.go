package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation module.
type Metrics struct {
	// Validation outcomes: valid, invalid, degraded
	ValidationOutcome *prometheus.CounterVec

	// Full pipeline latency (extraction + rule evaluation)
	ValidateLatency prometheus.Histogram

	// Extraction hits per field name
	FieldExtracted *prometheus.CounterVec
}

// New creates a Metrics instance with all validation module metrics registered.
func New() *Metrics {
	return &Metrics{
		ValidationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "marineval_validation_outcomes_total",
			Help: "Total validation outcomes by result",
		}, []string{"outcome"}),

		ValidateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "marineval_validation_duration_seconds",
			Help:    "Duration of full document validation including extraction",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		FieldExtracted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "marineval_fields_extracted_total",
			Help: "Total successfully extracted fields by field name",
		}, []string{"field"}),
	}
}

// IncrementOutcome records a validation outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.ValidationOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveValidateLatency records the total validation duration.
func (m *Metrics) ObserveValidateLatency(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}

// IncrementFieldExtracted records a successful field extraction.
func (m *Metrics) IncrementFieldExtracted(field string) {
	if m != nil {
		m.FieldExtracted.WithLabelValues(field).Inc()
	}
}
