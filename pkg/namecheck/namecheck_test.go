package namecheck

import (
	"strings"
	"testing"

	"github.com/waves-survey/ripval/pkg/status"
	"github.com/waves-survey/ripval/pkg/vocab"
)

func testVocabulary() *vocab.Vocabulary {
	return &vocab.Vocabulary{
		Banned: []string{"fred", "thing"},
		Protected: []vocab.ProtectedWord{
			{
				Name:            "redshift",
				Representations: []string{"z", "zs", "red_shift"},
				UCDs:            []string{"src.redshift"},
			},
			{
				Name:            "stellar_mass",
				Representations: []string{"mstar", "m_star"},
			},
		},
		Filters: []vocab.FilterName{
			vocab.NewFilterName("VISTA_Ks", "em.IR.K"),
			vocab.NewFilterName("VST_r", "em.opt.R"),
		},
		Exceptions: []vocab.ExceptionWord{
			{Name: "J2000", UCD: "time.equinox"},
			{Name: "CATAID", UCD: "meta.id"},
		},
	}
}

func field(r Report, name string) status.Status {
	switch name {
	case "AlphaNumeric":
		return r.AlphaNumeric
	case "StartsWithLetter":
		return r.StartsWithLetter
	case "SnakeCase":
		return r.SnakeCase
	case "Length":
		return r.Length
	case "NoDecimals":
		return r.NoDecimals
	case "FilterName":
		return r.FilterName
	case "AllowedWords":
		return r.AllowedWords
	case "ExceptionCase":
		return r.ExceptionCase
	case "NotProtected":
		return r.NotProtected
	}
	return status.Status{}
}

func TestEvaluate(t *testing.T) {
	e := New(testVocabulary())

	tests := []struct {
		name        string
		column      string
		wantValid   bool
		wantCheck   string
		wantOutcome status.Outcome
		wantMessage string
	}{
		{
			name:      "clean snake case name",
			column:    "flux_aperture",
			wantValid: true,
		},
		{
			name:        "empty name",
			column:      "",
			wantValid:   false,
			wantCheck:   "StartsWithLetter",
			wantOutcome: status.OutcomeFail,
			wantMessage: "name is empty",
		},
		{
			name:        "leading digit",
			column:      "2mass_flux",
			wantValid:   false,
			wantCheck:   "StartsWithLetter",
			wantOutcome: status.OutcomeFail,
		},
		{
			name:        "decimal point",
			column:      "flux.r",
			wantValid:   false,
			wantCheck:   "NoDecimals",
			wantOutcome: status.OutcomeFail,
		},
		{
			name:        "illegal character",
			column:      "flux-r",
			wantValid:   false,
			wantCheck:   "AlphaNumeric",
			wantOutcome: status.OutcomeFail,
		},
		{
			name:        "leading underscore",
			column:      "_flux",
			wantValid:   false,
			wantCheck:   "SnakeCase",
			wantOutcome: status.OutcomeFail,
			wantMessage: "starts with underscore",
		},
		{
			name:        "trailing underscore",
			column:      "flux_",
			wantValid:   false,
			wantCheck:   "SnakeCase",
			wantOutcome: status.OutcomeFail,
			wantMessage: "ends with underscore",
		},
		{
			name:        "double underscore",
			column:      "flux__r",
			wantValid:   false,
			wantCheck:   "SnakeCase",
			wantOutcome: status.OutcomeFail,
			wantMessage: "multiple underscores in a row",
		},
		{
			name:        "ungoverned mixed case",
			column:      "Flux_aperture",
			wantValid:   false,
			wantCheck:   "SnakeCase",
			wantOutcome: status.OutcomeFail,
		},
		{
			name:      "governed filter casing is tolerated by snake case",
			column:    "flux_VST_r",
			wantValid: true,
			wantCheck: "SnakeCase",
		},
		{
			name:      "governed exception casing is tolerated by snake case",
			column:    "ra_J2000",
			wantValid: true,
			wantCheck: "SnakeCase",
		},
		{
			name:        "lowercased filter fails the filter check",
			column:      "flux_vst_r",
			wantValid:   false,
			wantCheck:   "FilterName",
			wantOutcome: status.OutcomeFail,
			wantMessage: "VST_r",
		},
		{
			name:        "reversed filter tokens fail",
			column:      "flux_r_VST",
			wantValid:   false,
			wantCheck:   "FilterName",
			wantOutcome: status.OutcomeFail,
			wantMessage: "VST_r",
		},
		{
			name:        "near filter name fails fuzzily",
			column:      "vista_k",
			wantValid:   false,
			wantCheck:   "FilterName",
			wantOutcome: status.OutcomeFail,
			wantMessage: "VISTA_Ks",
		},
		{
			name:        "banned word as substring",
			column:      "my_thing",
			wantValid:   false,
			wantCheck:   "AllowedWords",
			wantOutcome: status.OutcomeFail,
			wantMessage: "thing",
		},
		{
			name:        "close banned word fails",
			column:      "my_thhing",
			wantValid:   false,
			wantCheck:   "AllowedWords",
			wantOutcome: status.OutcomeFail,
			wantMessage: "my_thhing contains banned word: thing",
		},
		{
			name:        "loosely similar banned word warns",
			column:      "my_thng",
			wantValid:   false,
			wantCheck:   "AllowedWords",
			wantOutcome: status.OutcomeWarning,
			wantMessage: "my_thng contains possible banned word: thing",
		},
		{
			name:        "exception word with wrong casing",
			column:      "ra_j2000",
			wantValid:   false,
			wantCheck:   "ExceptionCase",
			wantOutcome: status.OutcomeFail,
			wantMessage: "J2000",
		},
		{
			name:        "protected representation verbatim",
			column:      "z",
			wantValid:   false,
			wantCheck:   "NotProtected",
			wantOutcome: status.OutcomeFail,
			wantMessage: "redshift",
		},
		{
			name:        "protected representation as token warns",
			column:      "flux_Z",
			wantValid:   false,
			wantCheck:   "NotProtected",
			wantOutcome: status.OutcomeWarning,
			wantMessage: "redshift",
		},
		{
			name:        "protected multi token representation",
			column:      "red_shift",
			wantValid:   false,
			wantCheck:   "NotProtected",
			wantOutcome: status.OutcomeFail,
			wantMessage: "redshift",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Evaluate(tt.column)
			if got.Valid != tt.wantValid {
				t.Errorf("Evaluate(%q).Valid = %v, want %v (report %+v)", tt.column, got.Valid, tt.wantValid, got)
			}
			if tt.wantCheck == "" {
				return
			}
			s := field(got, tt.wantCheck)
			if tt.wantOutcome != "" && s.Outcome != tt.wantOutcome {
				t.Errorf("Evaluate(%q).%s.Outcome = %q, want %q (message %q)",
					tt.column, tt.wantCheck, s.Outcome, tt.wantOutcome, s.Message)
			}
			if tt.wantValid && !s.IsPass() {
				t.Errorf("Evaluate(%q).%s should pass, got %+v", tt.column, tt.wantCheck, s)
			}
			if tt.wantMessage != "" && s.Message != tt.wantMessage {
				t.Errorf("Evaluate(%q).%s.Message = %q, want %q", tt.column, tt.wantCheck, s.Message, tt.wantMessage)
			}
		})
	}
}

func TestCheckLengthBoundaries(t *testing.T) {
	e := New(&vocab.Vocabulary{})

	tests := []struct {
		length int
		want   status.Outcome
	}{
		{WarnLength, status.OutcomePass},
		{WarnLength + 1, status.OutcomeWarning},
		{MaxLength, status.OutcomeWarning},
		{MaxLength + 1, status.OutcomeFail},
	}
	for _, tt := range tests {
		name := strings.Repeat("a", tt.length)
		got := e.Evaluate(name)
		if got.Length.Outcome != tt.want {
			t.Errorf("length %d: Outcome = %q, want %q", tt.length, got.Length.Outcome, tt.want)
		}
	}
}

func TestEmptyNameDegradesToSingleFailure(t *testing.T) {
	e := New(testVocabulary())
	got := e.Evaluate("")

	if got.StartsWithLetter.IsPass() {
		t.Error("empty name should fail the starting letter check")
	}
	for _, check := range []string{
		"AlphaNumeric", "SnakeCase", "Length", "NoDecimals",
		"FilterName", "AllowedWords", "ExceptionCase", "NotProtected",
	} {
		if s := field(got, check); !s.IsPass() {
			t.Errorf("empty name: %s = %+v, want pass", check, s)
		}
	}
}

func TestProtectedFirstEntryWins(t *testing.T) {
	v := &vocab.Vocabulary{
		Protected: []vocab.ProtectedWord{
			{Name: "redshift", Representations: []string{"z"}},
			{Name: "metallicity", Representations: []string{"z"}},
		},
	}
	got := New(v).Evaluate("z")
	if got.NotProtected.Message != "redshift" {
		t.Errorf("Message = %q, want the first registered entry", got.NotProtected.Message)
	}
}

func TestExceptionFirstMatchWins(t *testing.T) {
	v := &vocab.Vocabulary{
		Exceptions: []vocab.ExceptionWord{
			{Name: "CATAID"},
			{Name: "ID"},
		},
	}
	// "CATAID" contains "ID" too, but only the first matching exception is
	// checked, and its casing is correct.
	got := New(v).Evaluate("CATAID_dr4")
	if !got.ExceptionCase.IsPass() {
		t.Errorf("ExceptionCase = %+v, want pass", got.ExceptionCase)
	}
}
