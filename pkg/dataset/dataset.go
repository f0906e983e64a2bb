package dataset

import (
	rerrors "github.com/waves-survey/ripval/pkg/errors"
)

// Dataset is read-only access to an observed tabular schema and its column
// values. Implementations must treat the underlying data as an immutable
// snapshot for the duration of a validation run.
type Dataset interface {
	// Name returns the table name, without any file extension.
	Name() string

	// Columns returns the column names in their on-disk order.
	Columns() []string

	// ColumnType returns the canonical type string for the column
	// (float64, float32, int64, int32, string, bool).
	ColumnType(name string) (string, error)

	// NumericValues returns every value of a numeric column as float64.
	// Non-numeric columns and unknown names return a lookup failure.
	NumericValues(name string) ([]float64, error)

	// StringValues returns every value of a string column. Non-string
	// columns and unknown names return a lookup failure.
	StringValues(name string) ([]string, error)
}

// Table is a simple in-memory Dataset used by tests and by callers that
// already hold column values.
type Table struct {
	name    string
	order   []string
	types   map[string]string
	numeric map[string][]float64
	text    map[string][]string
}

// NewTable creates an empty in-memory table.
func NewTable(name string) *Table {
	return &Table{
		name:    name,
		types:   make(map[string]string),
		numeric: make(map[string][]float64),
		text:    make(map[string][]string),
	}
}

// AddNumeric appends a numeric column with the given canonical type string.
func (t *Table) AddNumeric(column, columnType string, values []float64) *Table {
	t.order = append(t.order, column)
	t.types[column] = columnType
	t.numeric[column] = values
	return t
}

// AddString appends a string column.
func (t *Table) AddString(column string, values []string) *Table {
	t.order = append(t.order, column)
	t.types[column] = "string"
	t.text[column] = values
	return t
}

// Name implements Dataset.
func (t *Table) Name() string { return t.name }

// Columns implements Dataset.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// ColumnType implements Dataset.
func (t *Table) ColumnType(name string) (string, error) {
	ct, ok := t.types[name]
	if !ok {
		return "", rerrors.Newf(rerrors.ErrCodeLookupFailure, "no column with the name %q found", name)
	}
	return ct, nil
}

// NumericValues implements Dataset.
func (t *Table) NumericValues(name string) ([]float64, error) {
	if _, ok := t.types[name]; !ok {
		return nil, rerrors.Newf(rerrors.ErrCodeLookupFailure, "no column with the name %q found", name)
	}
	values, ok := t.numeric[name]
	if !ok {
		return nil, rerrors.Newf(rerrors.ErrCodeLookupFailure, "column %q is not numeric", name)
	}
	return values, nil
}

// StringValues implements Dataset.
func (t *Table) StringValues(name string) ([]string, error) {
	if _, ok := t.types[name]; !ok {
		return nil, rerrors.Newf(rerrors.ErrCodeLookupFailure, "no column with the name %q found", name)
	}
	values, ok := t.text[name]
	if !ok {
		return nil, rerrors.Newf(rerrors.ErrCodeLookupFailure, "column %q is not a string column", name)
	}
	return values, nil
}
