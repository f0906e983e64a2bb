package maml

import (
	rerrors "github.com/waves-survey/ripval/pkg/errors"
)

// Columns is a keyed repository of column descriptors. Lookups of absent
// names return a structured lookup failure instead of panicking, so batch
// validation can continue past any single bad column.
type Columns struct {
	order  []string
	byName map[string]*Column
}

// NewColumns creates a Columns repository from the given descriptors,
// preserving their order. A duplicated name overwrites the earlier entry.
func NewColumns(cols ...Column) *Columns {
	c := &Columns{byName: make(map[string]*Column, len(cols))}
	for i := range cols {
		col := cols[i]
		if _, exists := c.byName[col.Name]; !exists {
			c.order = append(c.order, col.Name)
		}
		c.byName[col.Name] = &col
	}
	return c
}

// Len returns the number of columns.
func (c *Columns) Len() int { return len(c.order) }

// Has reports whether a column with the given name exists.
func (c *Columns) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names returns the column names in declaration order.
func (c *Columns) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Column returns a copy of the descriptor for the given name.
func (c *Columns) Column(name string) (Column, error) {
	col, err := c.lookup(name)
	if err != nil {
		return Column{}, err
	}
	return *col, nil
}

// DataTypes returns the declared type of every column, in order.
func (c *Columns) DataTypes() []string {
	out := make([]string, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name].DataType)
	}
	return out
}

// UCDs returns the UCD tag of every column, in order.
func (c *Columns) UCDs() []string {
	out := make([]string, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name].UCD)
	}
	return out
}

// Units returns the unit of every column, in order.
func (c *Columns) Units() []string {
	out := make([]string, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name].Unit)
	}
	return out
}

// Infos returns the free-text info of every column, in order.
func (c *Columns) Infos() []string {
	out := make([]string, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name].Info)
	}
	return out
}

// SetInfo sets the free-text info for the given column.
func (c *Columns) SetInfo(name, info string) error {
	col, err := c.lookup(name)
	if err != nil {
		return err
	}
	col.Info = info
	return nil
}

// Info returns the free-text info for the given column.
func (c *Columns) Info(name string) (string, error) {
	col, err := c.lookup(name)
	if err != nil {
		return "", err
	}
	return col.Info, nil
}

// SetUnit sets the unit for the given column.
func (c *Columns) SetUnit(name, unit string) error {
	col, err := c.lookup(name)
	if err != nil {
		return err
	}
	col.Unit = unit
	return nil
}

// Unit returns the unit for the given column.
func (c *Columns) Unit(name string) (string, error) {
	col, err := c.lookup(name)
	if err != nil {
		return "", err
	}
	return col.Unit, nil
}

// SetUCD sets the UCD tag for the given column.
func (c *Columns) SetUCD(name, ucd string) error {
	col, err := c.lookup(name)
	if err != nil {
		return err
	}
	col.UCD = ucd
	return nil
}

// UCD returns the UCD tag for the given column.
func (c *Columns) UCD(name string) (string, error) {
	col, err := c.lookup(name)
	if err != nil {
		return "", err
	}
	return col.UCD, nil
}

// SetMinMax sets the numeric bound for the given column. String-typed
// columns cannot carry a bound.
func (c *Columns) SetMinMax(name string, min, max float64) error {
	col, err := c.lookup(name)
	if err != nil {
		return err
	}
	if col.DataType == "string" {
		return rerrors.Newf(rerrors.ErrCodeInvalidConfig, "cannot set the min max of a 'string' type column: %q", name)
	}
	col.QC = &MinMax{Min: min, Max: max}
	return nil
}

// MinMax returns the numeric bound for the given column, or nil when the
// column carries none.
func (c *Columns) MinMax(name string) (*MinMax, error) {
	col, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	return col.QC, nil
}

// IsComplete reports whether every column has all its metadata fields set.
func (c *Columns) IsComplete() bool {
	for _, name := range c.order {
		if len(c.byName[name].missing()) != 0 {
			return false
		}
	}
	return true
}

// MissingValues returns, for every incomplete column, the names of its
// unset fields.
func (c *Columns) MissingValues() map[string][]string {
	missing := make(map[string][]string)
	for _, name := range c.order {
		if fields := c.byName[name].missing(); len(fields) != 0 {
			missing[name] = fields
		}
	}
	return missing
}

func (c *Columns) lookup(name string) (*Column, error) {
	col, ok := c.byName[name]
	if !ok {
		return nil, rerrors.Newf(rerrors.ErrCodeLookupFailure, "no column with the name %q found", name)
	}
	return col, nil
}
