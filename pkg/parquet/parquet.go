// Package parquet adapts a Parquet file into a dataset.Dataset. Column
// schemas are read once at open time; column values are read lazily and
// cached for the lifetime of the handle.
package parquet

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/common"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"

	rerrors "github.com/waves-survey/ripval/pkg/errors"
)

// File is a dataset.Dataset backed by a local Parquet file.
type File struct {
	name    string
	columns []string
	types   map[string]string
	inPaths map[string]string

	mu      sync.Mutex
	numeric map[string][]float64
	text    map[string][]string

	fr source.ParquetFile
	pr *reader.ParquetReader
}

// Open reads the schema of a local Parquet file and returns a Dataset over
// it. Close must be called when the caller is done with the values.
func Open(path string) (*File, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, rerrors.Wrap(rerrors.ErrCodeIO, err, "opening parquet file "+path)
	}

	pr, err := reader.NewParquetColumnReader(fr, 4)
	if err != nil {
		_ = fr.Close()
		return nil, rerrors.Wrap(rerrors.ErrCodeIO, err, "reading parquet schema from "+path)
	}

	f := &File{
		name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		types:   make(map[string]string),
		inPaths: make(map[string]string),
		numeric: make(map[string][]float64),
		text:    make(map[string][]string),
		fr:      fr,
		pr:      pr,
	}

	sh := pr.SchemaHandler
	for _, inPath := range sh.ValueColumns {
		exPath, ok := sh.InPathToExPath[inPath]
		if !ok {
			continue
		}
		parts := strings.Split(exPath, common.PAR_GO_PATH_DELIMITER)
		if len(parts) < 2 {
			continue
		}
		// Nested groups are joined with dots; flat survey tables have a
		// single segment under the root.
		name := strings.Join(parts[1:], ".")

		idx, ok := sh.MapIndex[inPath]
		if !ok {
			continue
		}
		f.columns = append(f.columns, name)
		f.types[name] = canonicalType(sh.SchemaElements[idx])
		f.inPaths[name] = inPath
	}

	return f, nil
}

// Close releases the underlying reader and file handle.
func (f *File) Close() error {
	f.pr.ReadStop()
	return f.fr.Close()
}

// Name implements dataset.Dataset.
func (f *File) Name() string { return f.name }

// Columns implements dataset.Dataset.
func (f *File) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

// ColumnType implements dataset.Dataset.
func (f *File) ColumnType(name string) (string, error) {
	ct, ok := f.types[name]
	if !ok {
		return "", rerrors.Newf(rerrors.ErrCodeLookupFailure, "no column with the name %q found", name)
	}
	return ct, nil
}

// NumericValues implements dataset.Dataset.
func (f *File) NumericValues(name string) ([]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cached, ok := f.numeric[name]; ok {
		return cached, nil
	}

	ct, ok := f.types[name]
	if !ok {
		return nil, rerrors.Newf(rerrors.ErrCodeLookupFailure, "no column with the name %q found", name)
	}
	if ct == "string" || ct == "bool" {
		return nil, rerrors.Newf(rerrors.ErrCodeLookupFailure, "column %q is not numeric", name)
	}

	raw, err := f.readColumn(name)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			values = append(values, n)
		case float32:
			values = append(values, float64(n))
		case int64:
			values = append(values, float64(n))
		case int32:
			values = append(values, float64(n))
		case nil:
			// Null entries carry no value to range-check.
		}
	}

	f.numeric[name] = values
	return values, nil
}

// StringValues implements dataset.Dataset.
func (f *File) StringValues(name string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cached, ok := f.text[name]; ok {
		return cached, nil
	}

	ct, ok := f.types[name]
	if !ok {
		return nil, rerrors.Newf(rerrors.ErrCodeLookupFailure, "no column with the name %q found", name)
	}
	if ct != "string" {
		return nil, rerrors.Newf(rerrors.ErrCodeLookupFailure, "column %q is not a string column", name)
	}

	raw, err := f.readColumn(name)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}

	f.text[name] = values
	return values, nil
}

func (f *File) readColumn(name string) ([]interface{}, error) {
	inPath, ok := f.inPaths[name]
	if !ok {
		return nil, rerrors.Newf(rerrors.ErrCodeLookupFailure, "no column with the name %q found", name)
	}
	values, _, _, err := f.pr.ReadColumnByPath(inPath, f.pr.GetNumRows())
	if err != nil {
		return nil, rerrors.Wrap(rerrors.ErrCodeIO, err, "reading parquet column "+name)
	}
	return values, nil
}

// canonicalType maps a Parquet physical type to the canonical type string
// used by the declared metadata (the lowercase polars spellings).
func canonicalType(se *parquet.SchemaElement) string {
	if se == nil || se.Type == nil {
		return "unknown"
	}
	switch *se.Type {
	case parquet.Type_DOUBLE:
		return "float64"
	case parquet.Type_FLOAT:
		return "float32"
	case parquet.Type_INT64:
		return "int64"
	case parquet.Type_INT32:
		return "int32"
	case parquet.Type_BOOLEAN:
		return "bool"
	case parquet.Type_BYTE_ARRAY, parquet.Type_FIXED_LEN_BYTE_ARRAY:
		return "string"
	}
	return strings.ToLower(se.Type.String())
}
