package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Validation run metrics
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ripval_validation_run_duration_seconds",
			Help:    "Duration of a full validation run in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
	)

	columnOutcomeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ripval_column_outcome_total",
			Help: "Total number of column name validations by outcome",
		},
		[]string{"outcome"}, // valid or invalid
	)

	consistencyOutcomeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ripval_consistency_outcome_total",
			Help: "Total number of schema consistency entries by outcome",
		},
		[]string{"outcome"}, // valid or invalid
	)
)
