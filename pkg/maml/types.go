// Package maml models the declared-metadata description of a dataset: the
// survey and table identity, authorship, and the per-column descriptors the
// consistency checker reconciles against observed data.
package maml

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	rerrors "github.com/waves-survey/ripval/pkg/errors"
)

// Survey identifies which survey a table belongs to.
type Survey string

const (
	SurveyWaves    Survey = "WAVES"
	SurveyFourC3R2 Survey = "WAVES-4C3R2"
	SurveySteps    Survey = "WAVES-StePS"
	SurveyOrchidss Survey = "WAVES-ORCHIDSS"
)

// IsValid reports whether the survey is one of the known values.
func (s Survey) IsValid() bool {
	switch s {
	case SurveyWaves, SurveyFourC3R2, SurveySteps, SurveyOrchidss:
		return true
	}
	return false
}

// License identifies the data release license.
type License string

const (
	LicensePrivate License = "Copyright WAVES [Private]"
	LicenseMIT     License = "MIT"
)

// IsValid reports whether the license is one of the known values.
func (l License) IsValid() bool {
	return l == LicensePrivate || l == LicenseMIT
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	titleCaser   = cases.Title(language.English)
)

// Author is a metadata author with a validated email address.
type Author struct {
	Name    string `json:"name" yaml:"name"`
	Surname string `json:"surname" yaml:"surname"`
	Email   string `json:"email" yaml:"email"`
}

// NewAuthor creates an Author, validating the email address.
func NewAuthor(name, surname, email string) (Author, error) {
	if !emailPattern.MatchString(email) {
		return Author{}, rerrors.Newf(rerrors.ErrCodeInvalidConfig, "email %q is not valid", email)
	}
	return Author{Name: name, Surname: surname, Email: email}, nil
}

// ParseAuthor parses the "first last <email>" form used in MAML documents.
func ParseAuthor(s string) (Author, error) {
	open := strings.Index(s, "<")
	close := strings.Index(s, ">")
	if open < 0 || close < open {
		return Author{}, rerrors.Newf(rerrors.ErrCodeInvalidConfig, "author %q is not in 'first last <email>' form", s)
	}
	words := strings.Fields(s[:open])
	if len(words) == 0 {
		return Author{}, rerrors.Newf(rerrors.ErrCodeInvalidConfig, "author %q has no name", s)
	}
	name := words[0]
	surname := strings.Join(words[1:], " ")
	return NewAuthor(name, surname, s[open+1:close])
}

// String renders the author in the canonical "First Last <email>" form.
func (a Author) String() string {
	return fmt.Sprintf("%s %s <%s>", titleCaser.String(a.Name), titleCaser.String(a.Surname), a.Email)
}

// Doi is a digital object identifier attached to a dataset.
type Doi struct {
	DOI  string `json:"doi" yaml:"DOI"`
	Type string `json:"type" yaml:"type"`
}

// Dependency names another table or dataset this one depends on.
type Dependency struct {
	Survey  string `json:"survey" yaml:"survey"`
	Dataset string `json:"dataset" yaml:"dataset"`
	Table   string `json:"table" yaml:"table"`
	Version string `json:"version" yaml:"version"`
}

// MinMax is a declared numeric bound for a column, inclusive at both ends
// when range-checked.
type MinMax struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Column is the declared descriptor for a single column.
type Column struct {
	Name     string  `json:"name" yaml:"name"`
	UCD      string  `json:"ucd,omitempty" yaml:"ucd,omitempty"`
	DataType string  `json:"dataType" yaml:"data_type"`
	QC       *MinMax `json:"qc,omitempty" yaml:"qc,omitempty"`
	Unit     string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Info     string  `json:"info,omitempty" yaml:"info,omitempty"`
}

// missing returns the names of the descriptor fields that are unset.
func (c Column) missing() []string {
	var fields []string
	if c.Name == "" {
		fields = append(fields, "name")
	}
	if c.UCD == "" {
		fields = append(fields, "ucd")
	}
	if c.DataType == "" {
		fields = append(fields, "data_type")
	}
	if c.QC == nil {
		fields = append(fields, "qc")
	}
	if c.Unit == "" {
		fields = append(fields, "unit")
	}
	if c.Info == "" {
		fields = append(fields, "info")
	}
	return fields
}

// Document is a full MAML metadata description of one table.
type Document struct {
	Survey      Survey       `json:"survey" yaml:"survey"`
	Dataset     string       `json:"dataset" yaml:"dataset"`
	Table       string       `json:"table" yaml:"table"`
	Version     string       `json:"version" yaml:"version"`
	Date        string       `json:"date" yaml:"date"`
	Author      Author       `json:"author" yaml:"author"`
	Coauthors   []Author     `json:"coauthors,omitempty" yaml:"coauthors,omitempty"`
	Description string       `json:"description" yaml:"description"`
	DOIs        []Doi        `json:"dois,omitempty" yaml:"dois,omitempty"`
	Depends     []Dependency `json:"depends,omitempty" yaml:"depends,omitempty"`
	Comments    []string     `json:"comments,omitempty" yaml:"comments,omitempty"`
	Keywords    []string     `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	License     License      `json:"license" yaml:"license"`
	MAMLVersion string       `json:"mamlVersion" yaml:"MAML_version"`
	Fields      *Columns     `json:"fields" yaml:"fields"`
}

// AddCoauthor appends a coauthor.
func (d *Document) AddCoauthor(a Author) {
	d.Coauthors = append(d.Coauthors, a)
}

// AddComment appends a free-text comment.
func (d *Document) AddComment(comment string) {
	d.Comments = append(d.Comments, comment)
}

// AddDependency appends a dataset dependency.
func (d *Document) AddDependency(dep Dependency) {
	d.Depends = append(d.Depends, dep)
}

// AddDOI appends a DOI.
func (d *Document) AddDOI(doi Doi) {
	d.DOIs = append(d.DOIs, doi)
}

// AddKeyword appends a keyword.
func (d *Document) AddKeyword(keyword string) {
	d.Keywords = append(d.Keywords, keyword)
}
