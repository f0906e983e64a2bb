// Package report renders validation value objects for a terminal. It is a
// presentation collaborator only: the validation engine never prints.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/waves-survey/ripval/pkg/consistency"
	"github.com/waves-survey/ripval/pkg/datacheck"
	"github.com/waves-survey/ripval/pkg/maml"
	"github.com/waves-survey/ripval/pkg/namecheck"
	"github.com/waves-survey/ripval/pkg/status"
)

// ANSI escape sequences for terminal colors.
const (
	ansiGreen  = "\033[92m"
	ansiRed    = "\033[91m"
	ansiYellow = "\033[93m"
	ansiBold   = "\033[1m"
	ansiReset  = "\033[0m"
)

const ruleWidth = 80

// Printer renders reports to a writer. When Verbose is false only failing
// and warning checks are shown; passing tables collapse to a single line.
type Printer struct {
	w       io.Writer
	verbose bool
	color   bool
}

// PrinterOption is a functional option for configuring Printer instances.
type PrinterOption func(*Printer)

// WithVerbose makes the printer show passing checks too.
func WithVerbose(verbose bool) PrinterOption {
	return func(p *Printer) {
		p.verbose = verbose
	}
}

// WithColor enables or disables ANSI color output.
func WithColor(color bool) PrinterOption {
	return func(p *Printer) {
		p.color = color
	}
}

// NewPrinter creates a Printer writing to w. Color is on by default.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w, color: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

func (p *Printer) statusLabel(s status.Status) string {
	switch s.Outcome {
	case status.OutcomePass:
		return p.paint(ansiGreen, "✓ PASS")
	case status.OutcomeWarning:
		return p.paint(ansiYellow, "⚠ WARNING")
	default:
		return p.paint(ansiRed, "✗ FAIL")
	}
}

func (p *Printer) overallLabel(valid bool) string {
	if valid {
		return p.paint(ansiGreen, "VALID")
	}
	return p.paint(ansiRed, "INVALID")
}

// Header prints a section heading.
func (p *Printer) Header(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(p.w, "\n%s\n%s\n%s\n", p.paint(ansiBold, rule), p.paint(ansiBold, title), p.paint(ansiBold, rule))
}

// check prints one named check line, including the message when the check
// did not pass.
func (p *Printer) check(label string, s status.Status) {
	if s.IsPass() && !p.verbose {
		return
	}
	line := fmt.Sprintf("  %-46s %s", label+":", p.statusLabel(s))
	if s.Message != "" && !s.IsPass() {
		line += fmt.Sprintf("\n      → %s", s.Message)
	}
	fmt.Fprintln(p.w, line)
}

// ColumnReport renders one column name report.
func (p *Printer) ColumnReport(r namecheck.Report) {
	fmt.Fprintf(p.w, "\n%s %s | %s %s\n",
		p.paint(ansiBold, "Column:"), r.Column,
		p.paint(ansiBold, "Overall Status:"), p.overallLabel(r.Valid))
	if r.Valid && !p.verbose {
		return
	}
	fmt.Fprintln(p.w, strings.Repeat("-", ruleWidth))
	p.check("Alphanumeric (letters, numbers, underscores)", r.AlphaNumeric)
	p.check("Starts with letter", r.StartsWithLetter)
	p.check("Snake case format", r.SnakeCase)
	p.check(fmt.Sprintf("Length < %d characters", namecheck.MaxLength), r.Length)
	p.check("No decimal points", r.NoDecimals)
	p.check("Valid filter name usage", r.FilterName)
	p.check("No banned words", r.AllowedWords)
	p.check("Exception words in correct case", r.ExceptionCase)
	p.check("Not violating protected standards", r.NotProtected)
	fmt.Fprintln(p.w, strings.Repeat("-", ruleWidth))
}

// TableReport renders the table-level data check report.
func (p *Printer) TableReport(r datacheck.TableReport) {
	fmt.Fprintf(p.w, "\n%s %s | %s %s\n",
		p.paint(ansiBold, "Table:"), r.Table,
		p.paint(ansiBold, "Overall Status:"), p.overallLabel(r.Valid))
	if r.Valid && !p.verbose {
		return
	}
	fmt.Fprintln(p.w, strings.Repeat("-", ruleWidth))
	p.check("Valid RA column", r.ValidRA)
	p.check("Valid Dec column", r.ValidDec)
	p.check("No -999 sentinel values", r.NoSentinel)
	fmt.Fprintln(p.w, strings.Repeat("-", ruleWidth))
}

// ConsistencyEntry renders one schema reconciliation entry.
func (p *Printer) ConsistencyEntry(e consistency.Entry) {
	fmt.Fprintf(p.w, "\n%s %s | %s %s\n",
		p.paint(ansiBold, "Column:"), e.Column,
		p.paint(ansiBold, "Overall Status:"), p.overallLabel(e.Valid))
	if e.Valid && !p.verbose {
		return
	}
	fmt.Fprintln(p.w, strings.Repeat("-", ruleWidth))
	p.check("Column present in both files", e.InBoth)
	if e.TypeMatch != nil {
		p.check("Valid column datatype", *e.TypeMatch)
	}
	if e.RangeMatch != nil {
		p.check("Valid column range", *e.RangeMatch)
	}
	fmt.Fprintln(p.w, strings.Repeat("-", ruleWidth))
}

// MamlReport renders the metadata document validation report.
func (p *Printer) MamlReport(r maml.Report) {
	fmt.Fprintf(p.w, "\n%s %s | %s %s\n",
		p.paint(ansiBold, "Table:"), r.Table,
		p.paint(ansiBold, "Overall Status:"), p.overallLabel(r.Valid))
	if r.Valid && !p.verbose {
		return
	}
	fmt.Fprintln(p.w, strings.Repeat("-", ruleWidth))
	for _, f := range r.Fields {
		p.check(f.Field, f.Status)
	}
	fmt.Fprintln(p.w, strings.Repeat("-", ruleWidth))
}

// Rule prints the closing rule line after a report group.
func (p *Printer) Rule() {
	fmt.Fprintln(p.w, strings.Repeat("=", ruleWidth))
}
