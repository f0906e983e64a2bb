package maml

import (
	"context"
	"log/slog"
	"strings"

	"github.com/waves-survey/ripval/pkg/dataset"
	"github.com/waves-survey/ripval/pkg/vocab"
)

// UCDGuesser suggests a UCD tag for a column name. An empty suggestion
// means no guess.
type UCDGuesser interface {
	Guess(ctx context.Context, column string) (string, error)
}

// FieldsFromDataset builds as much column metadata as possible from an
// observed dataset: canonical types, min/max bounds for numeric columns,
// UCD suggestions from the guesser and unit suggestions from the protected
// vocabulary. Fields it cannot infer stay unset and show up in
// MissingValues for the author to fill in.
func FieldsFromDataset(ctx context.Context, ds dataset.Dataset, v *vocab.Vocabulary, guesser UCDGuesser) (*Columns, error) {
	var cols []Column
	for _, name := range ds.Columns() {
		columnType, err := ds.ColumnType(name)
		if err != nil {
			return nil, err
		}

		col := Column{Name: name, DataType: columnType}

		if values, err := ds.NumericValues(name); err == nil && len(values) > 0 {
			min, max := values[0], values[0]
			for _, value := range values[1:] {
				if value < min {
					min = value
				}
				if value > max {
					max = value
				}
			}
			col.QC = &MinMax{Min: min, Max: max}
		}

		if guesser != nil {
			ucd, err := guesser.Guess(ctx, name)
			if err != nil {
				slog.Warn("ucd guess failed", "column", name, "error", err)
			} else {
				col.UCD = ucd
			}
		}

		col.Unit = guessUnit(name, v)
		cols = append(cols, col)
	}
	return NewColumns(cols...), nil
}

// guessUnit suggests a unit from the protected vocabulary: a multi-token
// protected name appearing as a substring, or a single-token one matching
// an underscore token, contributes its first registered unit. The first
// match wins.
func guessUnit(column string, v *vocab.Vocabulary) string {
	for _, pw := range v.Protected {
		if len(pw.Units) == 0 {
			continue
		}
		if strings.Contains(pw.Name, "_") && strings.Contains(column, pw.Name) {
			return pw.Units[0]
		}
		for _, token := range strings.Split(column, "_") {
			if token == pw.Name {
				return pw.Units[0]
			}
		}
	}
	return ""
}
