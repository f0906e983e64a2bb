// Package consistency reconciles an observed dataset schema against its
// declared MAML metadata: column presence, type equivalence, and numeric
// range containment.
package consistency

import (
	"sort"
	"strings"

	"github.com/waves-survey/ripval/pkg/dataset"
	"github.com/waves-survey/ripval/pkg/interval"
	"github.com/waves-survey/ripval/pkg/maml"
	"github.com/waves-survey/ripval/pkg/status"
)

// Entry is the reconciliation result for one column name appearing in
// either schema. TypeMatch and RangeMatch are nil when the column is
// missing from one side; a nil sub-check counts as passed for validity.
type Entry struct {
	Column     string         `json:"column" yaml:"column"`
	InBoth     status.Status  `json:"inBoth" yaml:"inBoth"`
	TypeMatch  *status.Status `json:"typeMatch,omitempty" yaml:"typeMatch,omitempty"`
	RangeMatch *status.Status `json:"rangeMatch,omitempty" yaml:"rangeMatch,omitempty"`
	Valid      bool           `json:"valid" yaml:"valid"`
}

// Reconcile compares the observed dataset against the declared columns and
// returns one entry per name in the union of both schemas, sorted by name.
// Nothing is raised for a bad column: every problem becomes a Fail status
// so the full report always comes back.
func Reconcile(tableName string, data dataset.Dataset, declared *maml.Columns) []Entry {
	observed := make(map[string]struct{})
	for _, name := range data.Columns() {
		observed[name] = struct{}{}
	}

	union := make(map[string]struct{}, len(observed)+declared.Len())
	for name := range observed {
		union[name] = struct{}{}
	}
	for _, name := range declared.Names() {
		union[name] = struct{}{}
	}

	names := make([]string, 0, len(union))
	for name := range union {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		_, inData := observed[name]
		inMeta := declared.Has(name)

		entry := Entry{Column: name}
		switch {
		case inData && inMeta:
			entry.InBoth = status.Pass()
			typeMatch := compareType(name, data, declared)
			entry.TypeMatch = &typeMatch
			rangeMatch := compareRange(name, data, declared)
			entry.RangeMatch = &rangeMatch
		case inData:
			entry.InBoth = status.Failf("%s found in %s.parquet but not in %s.maml", name, tableName, tableName)
		default:
			entry.InBoth = status.Failf("%s found in %s.maml but not in %s.parquet", name, tableName, tableName)
		}

		entry.Valid = entry.InBoth.IsPass() &&
			(entry.TypeMatch == nil || entry.TypeMatch.IsPass()) &&
			(entry.RangeMatch == nil || entry.RangeMatch.IsPass())
		entries = append(entries, entry)
	}

	return entries
}

// compareType checks the declared type string against the observed
// column's canonical type, case-insensitively.
func compareType(name string, data dataset.Dataset, declared *maml.Columns) status.Status {
	col, err := declared.Column(name)
	if err != nil {
		return status.Failf("%v", err)
	}
	observedType, err := data.ColumnType(name)
	if err != nil {
		return status.Failf("%v", err)
	}
	if strings.EqualFold(col.DataType, observedType) {
		return status.Pass()
	}
	return status.Failf("invalid datatype: the MAML indicates the expected type is %q but the Parquet shows the type actually is %q",
		col.DataType, observedType)
}

// compareRange checks every observed value against the declared closed
// bound [min, max]. Columns with no declared bound pass vacuously.
func compareRange(name string, data dataset.Dataset, declared *maml.Columns) status.Status {
	col, err := declared.Column(name)
	if err != nil {
		return status.Failf("%v", err)
	}
	if col.QC == nil {
		return status.Pass()
	}
	values, err := data.NumericValues(name)
	if err != nil {
		return status.Failf("%v", err)
	}
	if interval.ContainsAll(values, col.QC.Min, col.QC.Max, interval.Both) {
		return status.Pass()
	}
	return status.Failf("invalid range: values must be between the supplied minimum %v and the supplied maximum %v",
		col.QC.Min, col.QC.Max)
}
