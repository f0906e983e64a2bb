// Package datacheck runs fixed-domain checks over an observed dataset's
// values: the right-ascension and declination conventions and the -999
// sentinel scan.
package datacheck

import (
	"strings"

	"github.com/waves-survey/ripval/pkg/dataset"
	"github.com/waves-survey/ripval/pkg/interval"
	"github.com/waves-survey/ripval/pkg/status"
)

const (
	// Sentinel is the disguised missing-value marker rejected everywhere.
	Sentinel = -999

	// RA columns follow the [0, 360) degree convention.
	raMin, raMax = 0, 360

	// Dec columns follow the [-90, 90] degree convention.
	decMin, decMax = -90, 90
)

// TableReport holds the table-level data check results.
type TableReport struct {
	Table      string        `json:"table" yaml:"table"`
	ValidRA    status.Status `json:"validRa" yaml:"validRa"`
	ValidDec   status.Status `json:"validDec" yaml:"validDec"`
	NoSentinel status.Status `json:"noSentinel" yaml:"noSentinel"`
	Valid      bool          `json:"valid" yaml:"valid"`
}

// CheckTable runs every table data check against the dataset.
func CheckTable(ds dataset.Dataset) TableReport {
	r := TableReport{
		Table:      ds.Name(),
		ValidRA:    CheckRA(ds, ""),
		ValidDec:   CheckDec(ds, ""),
		NoSentinel: CheckNoSentinel(ds),
	}
	r.Valid = status.AllPass(r.ValidRA, r.ValidDec, r.NoSentinel)
	return r
}

// FindColumn locates the column whose underscore token equals the given
// root name, assuming snake_case columns (e.g. root "ra" finds
// "ra_j2000"). Returns the empty string when no column matches.
func FindColumn(root string, ds dataset.Dataset) string {
	for _, column := range ds.Columns() {
		for _, token := range strings.Split(column, "_") {
			if token == root {
				return column
			}
		}
	}
	return ""
}

// CheckRA validates the right-ascension column against [0, 360) if one
// exists. Pass column as "" to locate it by its "ra" token.
func CheckRA(ds dataset.Dataset, column string) status.Status {
	return checkDomain(ds, column, "ra", raMin, raMax, interval.Left, "[0, 360)")
}

// CheckDec validates the declination column against [-90, 90] if one
// exists. Pass column as "" to locate it by its "dec" token.
func CheckDec(ds dataset.Dataset, column string) status.Status {
	return checkDomain(ds, column, "dec", decMin, decMax, interval.Both, "[-90, 90]")
}

func checkDomain(ds dataset.Dataset, column, root string, min, max float64, c interval.Closure, bound string) status.Status {
	if column == "" {
		column = FindColumn(root, ds)
	}
	if column == "" {
		return status.Pass()
	}
	values, err := ds.NumericValues(column)
	if err != nil {
		return status.Failf("%v", err)
	}
	if interval.ContainsAll(values, min, max, c) {
		return status.Passf("%s in range %s", column, bound)
	}
	return status.Failf("%s not in range %s", column, bound)
}

// CheckNoSentinel scans every column for the -999 sentinel, numeric or
// string. The failure message names each offending column.
func CheckNoSentinel(ds dataset.Dataset) status.Status {
	var bad []string
	for _, column := range ds.Columns() {
		if values, err := ds.NumericValues(column); err == nil {
			for _, v := range values {
				if v == Sentinel {
					bad = append(bad, column)
					break
				}
			}
			continue
		}
		if values, err := ds.StringValues(column); err == nil {
			for _, v := range values {
				if v == "-999" {
					bad = append(bad, column)
					break
				}
			}
		}
	}
	if len(bad) == 0 {
		return status.Pass()
	}
	return status.Failf("columns with -999 sentinel values: %s", strings.Join(bad, ", "))
}
