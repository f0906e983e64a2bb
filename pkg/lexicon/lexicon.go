package lexicon

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/waves-survey/ripval/pkg/status"
)

// Thresholds are exclusive lower bounds on the similarity ratio. A ratio
// strictly greater than Fail resolves to a failure; otherwise a ratio
// strictly greater than Warning resolves to a warning. The Fail bound is
// always evaluated first so the more severe outcome wins.
type Thresholds struct {
	Fail    int
	Warning int
}

var (
	// BannedThresholds are the default thresholds for banned-word matching.
	BannedThresholds = Thresholds{Fail: 80, Warning: 60}

	// FilterThresholds are the default thresholds for filter and instrument
	// name matching.
	FilterThresholds = Thresholds{Fail: 80, Warning: 70}
)

// Grade resolves a similarity ratio against the thresholds.
func (t Thresholds) Grade(ratio int) status.Outcome {
	if ratio > t.Fail {
		return status.OutcomeFail
	}
	if ratio > t.Warning {
		return status.OutcomeWarning
	}
	return status.OutcomePass
}

// Ratio computes a normalized Levenshtein similarity between a and b on a
// 0..100 scale. Identical strings score 100; an empty string against a
// non-empty one scores 0.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 || lb == 0 {
		return 0
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}

// Simplify lowercases a candidate and strips its underscore separators,
// producing the form used for case-insensitive containment and fuzzy
// comparison.
func Simplify(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// Entry is a single governed vocabulary form: a canonical string and an
// optional reversed-token form that must not appear at all.
type Entry struct {
	Canonical string
	Reversed  string
}

// Match scans the entries, in the order supplied, against the candidate
// identifier and returns the first non-passing status. Entry order is the
// tie-break policy: callers pass vocabularies most-specific first.
//
// The scan runs in four layers, each over the full entry list:
//  1. an exact, correctly cased canonical form anywhere in the candidate
//     passes immediately;
//  2. a canonical form present only with the wrong casing fails, naming
//     the required form;
//  3. a reversed-token form present in any casing fails, naming the
//     canonical form;
//  4. fuzzy similarity between the simplified candidate and each form is
//     graded against the thresholds, failure bound first.
func Match(candidate string, entries []Entry, t Thresholds) status.Status {
	for _, e := range entries {
		if e.Canonical != "" && strings.Contains(candidate, e.Canonical) {
			return status.Pass()
		}
	}

	simplified := Simplify(candidate)

	for _, e := range entries {
		if e.Canonical != "" && strings.Contains(simplified, Simplify(e.Canonical)) {
			return status.Failf("%s", e.Canonical)
		}
	}

	for _, e := range entries {
		if e.Reversed != "" && strings.Contains(simplified, Simplify(e.Reversed)) {
			return status.Failf("%s", e.Canonical)
		}
	}

	for _, e := range entries {
		ratio := Ratio(Simplify(e.Canonical), simplified)
		if r := Ratio(Simplify(e.Reversed), simplified); e.Reversed != "" && r > ratio {
			ratio = r
		}
		switch t.Grade(ratio) {
		case status.OutcomeFail:
			return status.Failf("%s", e.Canonical)
		case status.OutcomeWarning:
			return status.Warnf("%s", e.Canonical)
		}
	}

	return status.Pass()
}
