package namecheck

import (
	"strings"
	"unicode"

	"github.com/waves-survey/ripval/pkg/lexicon"
	"github.com/waves-survey/ripval/pkg/status"
	"github.com/waves-survey/ripval/pkg/vocab"
)

const (
	// MaxLength is the hard upper bound on column name length.
	MaxLength = 50

	// WarnLength is the soft upper bound; names longer than this warn.
	WarnLength = 30
)

// Evaluator checks column names against the naming standard using an
// injected vocabulary. It is immutable and safe for concurrent use.
type Evaluator struct {
	vocab         *vocab.Vocabulary
	filterEntries []lexicon.Entry
}

// New creates an Evaluator bound to the given vocabulary.
func New(v *vocab.Vocabulary) *Evaluator {
	entries := make([]lexicon.Entry, 0, len(v.Filters))
	for _, f := range v.Filters {
		entries = append(entries, lexicon.Entry{Canonical: f.Name, Reversed: f.Reversed})
	}
	return &Evaluator{vocab: v, filterEntries: entries}
}

// Report holds the per-rule results for one column name. Valid is true only
// when every rule passed; warnings count as not valid.
type Report struct {
	Column           string        `json:"column" yaml:"column"`
	AlphaNumeric     status.Status `json:"alphaNumeric" yaml:"alphaNumeric"`
	StartsWithLetter status.Status `json:"startsWithLetter" yaml:"startsWithLetter"`
	SnakeCase        status.Status `json:"snakeCase" yaml:"snakeCase"`
	Length           status.Status `json:"length" yaml:"length"`
	NoDecimals       status.Status `json:"noDecimals" yaml:"noDecimals"`
	FilterName       status.Status `json:"filterName" yaml:"filterName"`
	AllowedWords     status.Status `json:"allowedWords" yaml:"allowedWords"`
	ExceptionCase    status.Status `json:"exceptionCase" yaml:"exceptionCase"`
	NotProtected     status.Status `json:"notProtected" yaml:"notProtected"`
	Valid            bool          `json:"valid" yaml:"valid"`
}

// Evaluate runs every check against the name and returns the combined
// report. The checks are independent of one another; only the vocabulary
// scans inside a single check are order-sensitive.
func (e *Evaluator) Evaluate(name string) Report {
	r := Report{
		Column:           name,
		AlphaNumeric:     checkAlphanumeric(name),
		StartsWithLetter: checkAlphabeticalStart(name),
		SnakeCase:        e.checkSnakeCase(name),
		Length:           checkLength(name),
		NoDecimals:       checkDecimals(name),
		FilterName:       lexicon.Match(name, e.filterEntries, lexicon.FilterThresholds),
		AllowedWords:     e.checkAllowed(name),
		ExceptionCase:    e.checkExceptions(name),
		NotProtected:     e.checkProtected(name),
	}
	r.Valid = status.AllPass(
		r.AlphaNumeric,
		r.StartsWithLetter,
		r.SnakeCase,
		r.Length,
		r.NoDecimals,
		r.FilterName,
		r.AllowedWords,
		r.ExceptionCase,
		r.NotProtected,
	)
	return r
}

// isAlphanumeric reports whether every rune is a letter or a digit. The
// empty string is vacuously alphanumeric.
func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isLower reports whether s contains at least one letter and no upper or
// title case letters.
func isLower(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func checkAlphanumeric(name string) status.Status {
	if isAlphanumeric(strings.ReplaceAll(name, "_", "")) {
		return status.Pass()
	}
	return status.Failf("contains characters other than letters, digits and underscores")
}

func checkAlphabeticalStart(name string) status.Status {
	if name == "" {
		return status.Failf("name is empty")
	}
	if unicode.IsLetter([]rune(name)[0]) {
		return status.Pass()
	}
	return status.Failf("does not start with a letter")
}

func checkLength(name string) status.Status {
	length := len(name)
	if length <= WarnLength {
		return status.Pass()
	}
	if length > MaxLength {
		return status.Failf("name is too long (%d/%d)", length, MaxLength)
	}
	return status.Warnf("name is valid but long (%d/%d)", length, MaxLength)
}

func checkDecimals(name string) status.Status {
	if !strings.Contains(name, ".") {
		return status.Pass()
	}
	return status.Failf("contains a decimal point")
}

// checkSnakeCase validates the snake_case shape after stripping every
// governed filter and exception canonical form as a literal substring.
// The stripping is intentionally not token-aware: a governed term that
// overlaps adjacent characters is removed exactly as the standard
// documents it.
func (e *Evaluator) checkSnakeCase(name string) status.Status {
	if strings.HasPrefix(name, "_") {
		return status.Failf("starts with underscore")
	}
	if strings.HasSuffix(name, "_") {
		return status.Failf("ends with underscore")
	}
	if strings.Contains(name, "__") {
		return status.Failf("multiple underscores in a row")
	}

	residual := name
	for _, f := range e.vocab.Filters {
		residual = strings.ReplaceAll(residual, f.Name, "")
	}
	for _, exc := range e.vocab.Exceptions {
		residual = strings.ReplaceAll(residual, exc.Name, "")
	}
	if residual == "" {
		return status.Pass()
	}
	if isLower(residual) {
		if !isAlphanumeric(strings.ReplaceAll(residual, "_", "")) {
			return status.Failf("contains characters other than letters, digits and underscores")
		}
		return status.Pass()
	}
	return status.Failf("mixed case outside governed substrings")
}

// checkAllowed rejects names containing a banned word. Exact substring
// matches are tested across the whole blacklist first; only then does the
// per-token fuzzy scan run, so a literal hit always names the exact word.
func (e *Evaluator) checkAllowed(name string) status.Status {
	for _, banned := range e.vocab.Banned {
		if strings.Contains(name, banned) {
			return status.Failf("%s", banned)
		}
	}
	for _, banned := range e.vocab.Banned {
		for _, token := range strings.Split(name, "_") {
			ratio := lexicon.Ratio(banned, strings.ToLower(token))
			if ratio > lexicon.BannedThresholds.Fail {
				return status.Failf("%s contains banned word: %s", name, banned)
			}
			if ratio > lexicon.BannedThresholds.Warning {
				return status.Warnf("%s contains possible banned word: %s", name, banned)
			}
		}
	}
	return status.Pass()
}

// checkExceptions verifies that any case-sensitive exception word present
// in the name (underscores removed) carries its required casing. Only the
// first matching exception is checked.
func (e *Evaluator) checkExceptions(name string) status.Status {
	stripped := strings.ReplaceAll(name, "_", "")
	lowered := strings.ToLower(stripped)
	for _, exc := range e.vocab.Exceptions {
		if strings.Contains(lowered, strings.ToLower(exc.Name)) {
			if strings.Contains(stripped, exc.Name) {
				return status.Pass()
			}
			return status.Failf("%s", exc.Name)
		}
	}
	return status.Pass()
}

// checkProtected rejects a name that equals one of a protected word's
// representations verbatim, and warns when a representation matches one of
// the name's underscore tokens case-insensitively. The first offending
// entry wins.
func (e *Evaluator) checkProtected(name string) status.Status {
	for _, pw := range e.vocab.Protected {
		for _, rep := range pw.Representations {
			if rep == name {
				return status.Failf("%s", pw.Name)
			}
			for _, token := range strings.Split(name, "_") {
				if strings.EqualFold(rep, token) {
					return status.Warnf("%s", pw.Name)
				}
			}
		}
	}
	return status.Pass()
}
