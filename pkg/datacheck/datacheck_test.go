package datacheck

import (
	"strings"
	"testing"

	"github.com/waves-survey/ripval/pkg/dataset"
	"github.com/waves-survey/ripval/pkg/status"
)

func TestFindColumn(t *testing.T) {
	ds := dataset.NewTable("cat").
		AddNumeric("uberID", "int64", nil).
		AddNumeric("ra_J2000", "float64", nil).
		AddNumeric("decimal_place", "float64", nil).
		AddNumeric("dec_J2000", "float64", nil)

	if got := FindColumn("ra", ds); got != "ra_J2000" {
		t.Errorf("FindColumn(ra) = %q", got)
	}
	// Token equality, not prefix: "decimal_place" must not satisfy "dec".
	if got := FindColumn("dec", ds); got != "dec_J2000" {
		t.Errorf("FindColumn(dec) = %q", got)
	}
	if got := FindColumn("z", ds); got != "" {
		t.Errorf("FindColumn(z) = %q, want empty", got)
	}
}

func TestCheckRA(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   status.Outcome
	}{
		{"in convention", []float64{0, 10.5, 359.999}, status.OutcomePass},
		{"exactly 360 violates the half-open bound", []float64{360}, status.OutcomeFail},
		{"negative", []float64{-0.1}, status.OutcomeFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := dataset.NewTable("cat").AddNumeric("ra_J2000", "float64", tt.values)
			got := CheckRA(ds, "")
			if got.Outcome != tt.want {
				t.Errorf("CheckRA = %+v, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckDec(t *testing.T) {
	ds := dataset.NewTable("cat").AddNumeric("dec_J2000", "float64", []float64{-90, 0, 90})
	if got := CheckDec(ds, ""); !got.IsPass() {
		t.Errorf("CheckDec at closed bounds = %+v, want pass", got)
	}

	ds = dataset.NewTable("cat").AddNumeric("dec_J2000", "float64", []float64{90.001})
	got := CheckDec(ds, "")
	if got.Outcome != status.OutcomeFail {
		t.Errorf("CheckDec above bound = %+v, want fail", got)
	}
	if !strings.Contains(got.Message, "[-90, 90]") {
		t.Errorf("message should name the convention: %q", got.Message)
	}
}

func TestCheckDomainWithoutColumnPasses(t *testing.T) {
	ds := dataset.NewTable("cat").AddNumeric("flux_r", "float64", []float64{1})
	if got := CheckRA(ds, ""); !got.IsPass() {
		t.Errorf("tables without an RA column should pass: %+v", got)
	}
	if got := CheckDec(ds, ""); !got.IsPass() {
		t.Errorf("tables without a Dec column should pass: %+v", got)
	}
}

func TestCheckExplicitColumn(t *testing.T) {
	ds := dataset.NewTable("cat").AddNumeric("alpha", "float64", []float64{400})
	got := CheckRA(ds, "alpha")
	if got.Outcome != status.OutcomeFail {
		t.Errorf("explicit column should be checked: %+v", got)
	}
}

func TestCheckNoSentinel(t *testing.T) {
	ds := dataset.NewTable("cat").
		AddNumeric("flux_r", "float64", []float64{1, 2, 3}).
		AddString("class", []string{"galaxy", "star"})
	if got := CheckNoSentinel(ds); !got.IsPass() {
		t.Errorf("clean table = %+v, want pass", got)
	}

	ds = dataset.NewTable("cat").
		AddNumeric("flux_r", "float64", []float64{1, Sentinel}).
		AddNumeric("flux_g", "float64", []float64{2}).
		AddString("class", []string{"galaxy", "-999"})
	got := CheckNoSentinel(ds)
	if got.IsPass() {
		t.Fatal("sentinel values should fail")
	}
	want := "columns with -999 sentinel values: flux_r, class"
	if got.Message != want {
		t.Errorf("message = %q, want %q", got.Message, want)
	}
}

func TestCheckTable(t *testing.T) {
	ds := dataset.NewTable("cat").
		AddNumeric("ra_J2000", "float64", []float64{10}).
		AddNumeric("dec_J2000", "float64", []float64{-30}).
		AddNumeric("flux_r", "float64", []float64{5.5})

	r := CheckTable(ds)
	if !r.Valid {
		t.Errorf("CheckTable = %+v, want valid", r)
	}
	if r.Table != "cat" {
		t.Errorf("Table = %q", r.Table)
	}

	ds = dataset.NewTable("cat").
		AddNumeric("ra_J2000", "float64", []float64{10}).
		AddNumeric("flux_r", "float64", []float64{Sentinel})
	r = CheckTable(ds)
	if r.Valid {
		t.Error("sentinel should invalidate the table report")
	}
	if !r.ValidRA.IsPass() {
		t.Errorf("ValidRA = %+v, want pass", r.ValidRA)
	}
}
