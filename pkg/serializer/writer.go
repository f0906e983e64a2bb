// Package serializer writes validation results to a file or stdout in a
// machine-readable format.
package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	rerrors "github.com/waves-survey/ripval/pkg/errors"
)

// StdoutURI is the special path indicating output should be written to
// stdout.
const StdoutURI = "-"

// Format identifies a supported output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// IsUnknown reports whether the format is not one of the supported values.
func (f Format) IsUnknown() bool {
	return f != FormatJSON && f != FormatYAML
}

// Writer serializes values to a destination path in a fixed format.
type Writer struct {
	format Format
	path   string
}

// NewFileWriterOrStdout creates a Writer for the given path; an empty path
// or "-" writes to stdout.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	return &Writer{format: format, path: path}
}

// Serialize encodes the value and writes it to the destination.
func (w *Writer) Serialize(v any) error {
	encoded, err := w.encode(v)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if w.path != "" && w.path != StdoutURI {
		f, err := os.Create(w.path)
		if err != nil {
			return rerrors.Wrap(rerrors.ErrCodeIO, err, "creating output file "+w.path)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if _, err := out.Write(encoded); err != nil {
		return rerrors.Wrap(rerrors.ErrCodeIO, err, "writing output")
	}
	return nil
}

func (w *Writer) encode(v any) ([]byte, error) {
	switch w.format {
	case FormatJSON:
		encoded, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, rerrors.Wrap(rerrors.ErrCodeInternal, err, "failed to serialize to json")
		}
		return append(encoded, '\n'), nil
	case FormatYAML:
		encoded, err := yaml.Marshal(v)
		if err != nil {
			return nil, rerrors.Wrap(rerrors.ErrCodeInternal, err, "failed to serialize to yaml")
		}
		return encoded, nil
	}
	return nil, rerrors.Newf(rerrors.ErrCodeInvalidConfig, "unknown output format: %q", fmt.Sprint(w.format))
}
