package vocab

import "strings"

// ExceptionWord is a governed term that must appear with an exact casing
// when used inside a column name.
type ExceptionWord struct {
	Name string `json:"name" yaml:"name"`
	UCD  string `json:"ucd" yaml:"ucd"`
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// ProtectedWord is a governed domain term that must not be used verbatim as
// a column name. Representations lists the common misspellings and
// alternate spellings that trigger the check.
type ProtectedWord struct {
	Name            string   `json:"name" yaml:"name"`
	Representations []string `json:"representations" yaml:"representations"`
	UCDs            []string `json:"ucds,omitempty" yaml:"ucds,omitempty"`
	Units           []string `json:"units,omitempty" yaml:"units,omitempty"`
}

// FilterName is a governed instrument/filter name. Reversed is the
// underscore-token reversal of the canonical form; instrument names must
// never appear reversed in a column name.
type FilterName struct {
	Name         string `json:"name" yaml:"name"`
	SecondaryUCD string `json:"secondaryUcd,omitempty" yaml:"secondaryUcd,omitempty"`
	Reversed     string `json:"reversed" yaml:"reversed"`
}

// NewFilterName builds a FilterName, deriving the reversed-token form.
func NewFilterName(name, secondaryUCD string) FilterName {
	tokens := strings.Split(name, "_")
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return FilterName{
		Name:         name,
		SecondaryUCD: secondaryUCD,
		Reversed:     strings.Join(tokens, "_"),
	}
}

// Vocabulary aggregates the curated word lists used by the identifier rule
// evaluator. It is constructed once and treated as read-only afterwards;
// list order is a deliberate tie-break policy (most-specific first) and is
// preserved exactly as loaded.
type Vocabulary struct {
	Banned     []string
	Protected  []ProtectedWord
	Filters    []FilterName
	Exceptions []ExceptionWord
}

// DefaultBanned is the process-wide banned word blacklist.
var DefaultBanned = []string{
	"fred",
	"bob",
	"thing",
	"something",
	"whatever",
	"words",
	"blahblahblah",
	"abc123",
	"xyz",
}
