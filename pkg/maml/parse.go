package maml

import (
	"encoding/json"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	rerrors "github.com/waves-survey/ripval/pkg/errors"
	"github.com/waves-survey/ripval/pkg/status"
)

// docYAML mirrors the on-disk MAML layout.
type docYAML struct {
	Survey      string      `yaml:"survey"`
	Dataset     string      `yaml:"dataset"`
	Table       string      `yaml:"table"`
	Version     string      `yaml:"version"`
	Date        string      `yaml:"date"`
	Author      string      `yaml:"author"`
	Coauthors   []string    `yaml:"coauthors"`
	DOIs        []Doi       `yaml:"DOIs"`
	Depends     []Dependency `yaml:"depends"`
	Description string      `yaml:"description"`
	Comments    []string    `yaml:"comments"`
	License     string      `yaml:"license"`
	Keywords    []string    `yaml:"keywords"`
	MAMLVersion string      `yaml:"MAML_version"`
	Fields      []fieldYAML `yaml:"fields"`
}

type fieldYAML struct {
	Name     string  `yaml:"name"`
	Unit     string  `yaml:"unit"`
	Info     string  `yaml:"info"`
	UCD      string  `yaml:"ucd"`
	DataType string  `yaml:"data_type"`
	QC       *MinMax `yaml:"qc"`
}

// Load reads and parses a MAML file from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rerrors.Wrap(rerrors.ErrCodeIO, err, "reading maml file "+path)
	}
	return Parse(data)
}

// Parse parses a MAML document. Structural problems (unparseable YAML)
// return an error; semantic problems (bad survey name, missing fields) are
// left for Validate so a complete report can still be produced.
func Parse(data []byte) (*Document, error) {
	var raw docYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, rerrors.Wrap(rerrors.ErrCodeInvalidConfig, err, "parsing maml yaml")
	}

	doc := &Document{
		Survey:      Survey(raw.Survey),
		Dataset:     raw.Dataset,
		Table:       raw.Table,
		Version:     raw.Version,
		Date:        raw.Date,
		Description: raw.Description,
		DOIs:        raw.DOIs,
		Depends:     raw.Depends,
		Comments:    raw.Comments,
		Keywords:    raw.Keywords,
		License:     License(raw.License),
		MAMLVersion: raw.MAMLVersion,
	}

	if raw.Author != "" {
		author, err := ParseAuthor(raw.Author)
		if err != nil {
			return nil, err
		}
		doc.Author = author
	}

	// Coauthors that fail to parse are skipped rather than rejecting the
	// whole document.
	for _, s := range raw.Coauthors {
		coauthor, err := ParseAuthor(s)
		if err != nil {
			slog.Warn("skipping unparseable coauthor", "coauthor", s, "error", err)
			continue
		}
		doc.Coauthors = append(doc.Coauthors, coauthor)
	}

	cols := make([]Column, 0, len(raw.Fields))
	for _, f := range raw.Fields {
		cols = append(cols, Column{
			Name:     f.Name,
			UCD:      f.UCD,
			DataType: f.DataType,
			QC:       f.QC,
			Unit:     f.Unit,
			Info:     f.Info,
		})
	}
	doc.Fields = NewColumns(cols...)

	return doc, nil
}

// FieldStatus pairs a metadata field name with its validation status.
type FieldStatus struct {
	Field  string        `json:"field" yaml:"field"`
	Status status.Status `json:"status" yaml:"status"`
}

// Report is the validation result for one MAML document.
type Report struct {
	Table  string        `json:"table" yaml:"table"`
	Fields []FieldStatus `json:"fields" yaml:"fields"`
	Valid  bool          `json:"valid" yaml:"valid"`
}

// Validate checks the document's required fields and enumerations and
// returns a per-field report. It never raises: every problem is reported
// as a Fail status.
func (d *Document) Validate() Report {
	var fields []FieldStatus

	add := func(field string, s status.Status) {
		fields = append(fields, FieldStatus{Field: field, Status: s})
	}

	if d.Survey.IsValid() {
		add("survey", status.Pass())
	} else {
		add("survey", status.Failf("unknown survey %q", string(d.Survey)))
	}

	required := []struct {
		field string
		value string
	}{
		{"dataset", d.Dataset},
		{"table", d.Table},
		{"version", d.Version},
		{"date", d.Date},
		{"description", d.Description},
		{"MAML_version", d.MAMLVersion},
	}
	for _, rf := range required {
		if rf.value != "" {
			add(rf.field, status.Pass())
		} else {
			add(rf.field, status.Failf("required field is empty"))
		}
	}

	if emailPattern.MatchString(d.Author.Email) {
		add("author", status.Pass())
	} else {
		add("author", status.Failf("author email %q is not valid", d.Author.Email))
	}

	if d.License.IsValid() {
		add("license", status.Pass())
	} else {
		add("license", status.Failf("unknown license %q", string(d.License)))
	}

	if d.Fields != nil && d.Fields.Len() > 0 {
		add("fields", status.Pass())
	} else {
		add("fields", status.Failf("no column descriptions declared"))
	}

	valid := true
	for _, f := range fields {
		if !f.Status.IsPass() {
			valid = false
			break
		}
	}
	return Report{Table: d.Table, Fields: fields, Valid: valid}
}

// MarshalYAML emits the columns as an ordered list of descriptors.
func (c *Columns) MarshalYAML() (interface{}, error) {
	cols := make([]Column, 0, len(c.order))
	for _, name := range c.order {
		cols = append(cols, *c.byName[name])
	}
	return cols, nil
}

// MarshalJSON emits the columns as an ordered list of descriptors.
func (c *Columns) MarshalJSON() ([]byte, error) {
	cols := make([]Column, 0, len(c.order))
	for _, name := range c.order {
		cols = append(cols, *c.byName[name])
	}
	return json.Marshal(cols)
}
