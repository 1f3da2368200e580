package frame

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/internal/options"
)

// Table is the canonical boxable tabular representation: a list of named,
// equal-length columns. Exactly one slice field of each Column must be set,
// determining the column's type. Missing values in a float column are NaN.
type Table struct {
	Columns []Column
}

// Column is one named column of a Table.
type Column struct {
	Name    string
	Times   []time.Time
	Floats  []float64
	Strings []string
}

func (c Column) len() int {
	switch {
	case c.Times != nil:
		return len(c.Times)
	case c.Floats != nil:
		return len(c.Floats)
	default:
		return len(c.Strings)
	}
}

func (c Column) kinds() int {
	n := 0
	if c.Times != nil {
		n++
	}
	if c.Floats != nil {
		n++
	}
	if c.Strings != nil {
		n++
	}

	return n
}

// AdoptOption configures column-role resolution during adoption.
type AdoptOption = options.Option[*adoptConfig]

type adoptConfig struct {
	timeColumn  string
	valueColumn string
}

// WithTimeColumn pins the named column as the time column, demoting any
// other time-typed columns to identifier columns.
func WithTimeColumn(name string) AdoptOption {
	return options.NoError(func(c *adoptConfig) { c.timeColumn = name })
}

// WithValueColumn pins the named column as the value column, demoting any
// other numeric columns to identifier columns.
func WithValueColumn(name string) AdoptOption {
	return options.NoError(func(c *adoptConfig) { c.valueColumn = name })
}

// Adopt converts a recognized boxable input into a canonical Frame,
// resolving which columns play the time, value and identifier roles. A
// *Frame input is cloned and passed through. Role ambiguity, a missing role
// column, or zero usable rows fail with errs.ErrSchema; an unrecognized
// input fails with errs.ErrNotBoxable.
func Adopt(in any, opts ...AdoptOption) (*Frame, error) {
	if f, ok := in.(*Frame); ok {
		return f.Clone(), nil
	}

	boxer, ok := BoxerFor(in)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a recognized representation", errs.ErrNotBoxable, in)
	}

	return boxer.ToFrame(in, opts...)
}

// adoptTable performs role inference over a Table. One time column and one
// numeric value column are required; all remaining columns become identifier
// columns in their original order. With more than one candidate for a role,
// adoption fails unless the choice is pinned via WithTimeColumn or
// WithValueColumn, in which case the unpicked candidates are rendered to
// strings and kept as identifier columns.
func adoptTable(tab Table, opts ...AdoptOption) (*Frame, error) {
	cfg := &adoptConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(tab.Columns) == 0 {
		return nil, fmt.Errorf("%w: table has no columns", errs.ErrSchema)
	}

	rows := tab.Columns[0].len()
	for _, c := range tab.Columns {
		if c.kinds() != 1 {
			return nil, fmt.Errorf("%w: column %q must have exactly one typed slice", errs.ErrSchema, c.Name)
		}
		if c.len() != rows {
			return nil, fmt.Errorf("%w: column %q length %d != %d", errs.ErrSchema, c.Name, c.len(), rows)
		}
	}

	timeIdx, err := pickRole(tab, cfg.timeColumn, "time", -1, func(c Column) bool { return c.Times != nil })
	if err != nil {
		return nil, err
	}
	valueIdx, err := pickRole(tab, cfg.valueColumn, "value", timeIdx, func(c Column) bool { return c.Floats != nil })
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, fmt.Errorf("%w: zero rows after role assignment", errs.ErrSchema)
	}

	f := &Frame{
		TimeName:  tab.Columns[timeIdx].Name,
		ValueName: tab.Columns[valueIdx].Name,
		Kind:      kindOf(tab.Columns[timeIdx].Times),
		Origin:    tagTable,
		Records:   make([]Record, rows),
	}

	var idCols []int
	for i, c := range tab.Columns {
		if i == timeIdx || i == valueIdx {
			continue
		}
		idCols = append(idCols, i)
		f.IDNames = append(f.IDNames, c.Name)
	}

	times := tab.Columns[timeIdx].Times
	values := tab.Columns[valueIdx].Floats
	for r := 0; r < rows; r++ {
		id := make(ID, len(idCols))
		for j, ci := range idCols {
			id[j] = idCellString(tab.Columns[ci], r)
		}
		f.Records[r] = Record{
			ID:      id,
			Time:    times[r],
			Value:   values[r],
			Missing: math.IsNaN(values[r]),
		}
	}

	return f, nil
}

// pickRole selects the index of the column playing a role. Pinned names take
// precedence; otherwise exactly one candidate must match. exclude is the
// index of a column already claimed by another role, or -1.
func pickRole(tab Table, pinned, role string, exclude int, match func(Column) bool) (int, error) {
	if pinned != "" {
		for i, c := range tab.Columns {
			if c.Name == pinned && i != exclude {
				if !match(c) {
					return 0, fmt.Errorf("%w: column %q cannot serve as the %s column", errs.ErrSchema, pinned, role)
				}
				return i, nil
			}
		}

		return 0, fmt.Errorf("%w: no column named %q", errs.ErrSchema, pinned)
	}

	found := -1
	for i, c := range tab.Columns {
		if i == exclude || !match(c) {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("%w: more than one plausible %s column (%q, %q)", errs.ErrSchema, role, tab.Columns[found].Name, c.Name)
		}
		found = i
	}
	if found < 0 {
		return 0, fmt.Errorf("%w: no %s column found", errs.ErrSchema, role)
	}

	return found, nil
}

// idCellString renders a demoted candidate cell as an identifier value.
func idCellString(c Column, row int) string {
	switch {
	case c.Strings != nil:
		return c.Strings[row]
	case c.Floats != nil:
		return strconv.FormatFloat(c.Floats[row], 'g', -1, 64)
	default:
		return c.Times[row].Format(time.RFC3339)
	}
}
