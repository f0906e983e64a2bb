/*
Copyright © 2025 WAVES Survey Collaboration
SPDX-License-Identifier: MIT
*/

// Package validate orchestrates the conformance checks over one table: the
// per-column name evaluation, the table-level data checks, and the
// declared-vs-observed schema reconciliation. It produces value objects
// only; rendering is the caller's concern.
package validate

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/waves-survey/ripval/pkg/consistency"
	"github.com/waves-survey/ripval/pkg/datacheck"
	"github.com/waves-survey/ripval/pkg/dataset"
	"github.com/waves-survey/ripval/pkg/header"
	"github.com/waves-survey/ripval/pkg/maml"
	"github.com/waves-survey/ripval/pkg/namecheck"
	"github.com/waves-survey/ripval/pkg/vocab"
)

const (
	// KindDataResult is the kind stamped on data validation results.
	KindDataResult = "DataValidationResult"

	// KindConsistencyResult is the kind stamped on consistency results.
	KindConsistencyResult = "ConsistencyValidationResult"
)

// Runner evaluates datasets against the naming standard and their declared
// metadata. It is immutable and safe for concurrent use: column reports
// carry no ordering dependency between identifiers, so they are evaluated
// in parallel and re-sorted into column order.
type Runner struct {
	evaluator   *namecheck.Evaluator
	parallelism int
	version     string
}

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithParallelism caps the number of concurrently evaluated columns.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// WithVersion sets the tool version stamped on result headers.
func WithVersion(version string) Option {
	return func(r *Runner) {
		r.version = version
	}
}

// New creates a Runner bound to the given vocabulary.
func New(v *vocab.Vocabulary, opts ...Option) *Runner {
	r := &Runner{
		evaluator:   namecheck.New(v),
		parallelism: 4,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Summary aggregates per-item validity counts for one result.
type Summary struct {
	Total    int           `json:"total" yaml:"total"`
	Valid    int           `json:"valid" yaml:"valid"`
	Invalid  int           `json:"invalid" yaml:"invalid"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// DataResult is the outcome of validating one dataset's column names and
// table-level values.
type DataResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Table       string                `json:"table" yaml:"table"`
	TableReport datacheck.TableReport `json:"tableReport" yaml:"tableReport"`
	Columns     []namecheck.Report    `json:"columns" yaml:"columns"`
	Summary     Summary               `json:"summary" yaml:"summary"`
	Valid       bool                  `json:"valid" yaml:"valid"`
}

// ValidateData checks every column name of the dataset against the naming
// standard and runs the table data checks. Column reports come back in the
// dataset's column order regardless of evaluation parallelism.
func (r *Runner) ValidateData(ctx context.Context, ds dataset.Dataset) (*DataResult, error) {
	start := time.Now()

	columns := ds.Columns()
	reports := make([]namecheck.Report, len(columns))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i, name := range columns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = r.evaluator.Evaluate(name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &DataResult{
		Header:      header.New(KindDataResult, r.version),
		Table:       ds.Name(),
		TableReport: datacheck.CheckTable(ds),
		Columns:     reports,
	}

	result.Summary.Total = len(reports)
	for _, report := range reports {
		if report.Valid {
			result.Summary.Valid++
			columnOutcomeTotal.WithLabelValues("valid").Inc()
		} else {
			result.Summary.Invalid++
			columnOutcomeTotal.WithLabelValues("invalid").Inc()
		}
	}
	result.Summary.Duration = time.Since(start)
	result.Valid = result.Summary.Invalid == 0 && result.TableReport.Valid

	runDuration.Observe(result.Summary.Duration.Seconds())
	slog.Debug("data validation completed",
		"table", result.Table,
		"columns", result.Summary.Total,
		"invalid", result.Summary.Invalid,
		"duration", result.Summary.Duration)

	return result, nil
}

// ConsistencyResult is the outcome of reconciling a dataset against its
// declared metadata.
type ConsistencyResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Table   string              `json:"table" yaml:"table"`
	Entries []consistency.Entry `json:"entries" yaml:"entries"`
	Summary Summary             `json:"summary" yaml:"summary"`
	Valid   bool                `json:"valid" yaml:"valid"`
}

// ValidateConsistency reconciles the dataset's observed schema against the
// declared columns.
func (r *Runner) ValidateConsistency(ctx context.Context, ds dataset.Dataset, declared *maml.Columns) (*ConsistencyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	entries := consistency.Reconcile(ds.Name(), ds, declared)

	result := &ConsistencyResult{
		Header:  header.New(KindConsistencyResult, r.version),
		Table:   ds.Name(),
		Entries: entries,
	}

	result.Summary.Total = len(entries)
	for _, entry := range entries {
		if entry.Valid {
			result.Summary.Valid++
			consistencyOutcomeTotal.WithLabelValues("valid").Inc()
		} else {
			result.Summary.Invalid++
			consistencyOutcomeTotal.WithLabelValues("invalid").Inc()
		}
	}
	result.Summary.Duration = time.Since(start)
	result.Valid = result.Summary.Invalid == 0

	slog.Debug("consistency validation completed",
		"table", result.Table,
		"entries", result.Summary.Total,
		"invalid", result.Summary.Invalid,
		"duration", result.Summary.Duration)

	return result, nil
}
