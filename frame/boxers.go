package frame

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/arloliu/tsframe/errs"
)

// ==============================================================================
// Table representation
// ==============================================================================

type tableBoxer struct{}

func (tableBoxer) Tag() string { return tagTable }

func (tableBoxer) Detect(in any) bool {
	switch in.(type) {
	case Table, *Table:
		return true
	default:
		return false
	}
}

func (tableBoxer) ToFrame(in any, opts ...AdoptOption) (*Frame, error) {
	switch v := in.(type) {
	case Table:
		return adoptTable(v, opts...)
	case *Table:
		return adoptTable(*v, opts...)
	default:
		return nil, fmt.Errorf("%w: %T is not a Table", errs.ErrNotBoxable, in)
	}
}

func (tableBoxer) FromFrame(f *Frame) (any, error) {
	n := len(f.Records)
	cols := make([]Column, 0, len(f.IDNames)+2)

	for j, name := range f.IDNames {
		vals := make([]string, n)
		for i, r := range f.Records {
			vals[i] = r.ID[j]
		}
		cols = append(cols, Column{Name: name, Strings: vals})
	}

	times := make([]time.Time, n)
	values := make([]float64, n)
	for i, r := range f.Records {
		times[i] = r.Time
		values[i] = r.Value
		if r.Missing {
			values[i] = math.NaN()
		}
	}
	cols = append(cols,
		Column{Name: f.TimeName, Times: times},
		Column{Name: f.ValueName, Floats: values},
	)

	return Table{Columns: cols}, nil
}

// ==============================================================================
// Records representation
// ==============================================================================

// recordsBoxer handles []map[string]any rows keyed by column name: one
// time.Time cell, one numeric cell (float64 or int, nil meaning missing),
// and string cells for identifiers.
type recordsBoxer struct{}

func (recordsBoxer) Tag() string { return tagRecords }

func (recordsBoxer) Detect(in any) bool {
	_, ok := in.([]map[string]any)

	return ok
}

func (recordsBoxer) ToFrame(in any, opts ...AdoptOption) (*Frame, error) {
	rows, ok := in.([]map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a record list", errs.ErrNotBoxable, in)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: zero rows", errs.ErrSchema)
	}

	// Columnize on the first row's key set, in sorted order for determinism.
	names := make([]string, 0, len(rows[0]))
	for name := range rows[0] {
		names = append(names, name)
	}
	sort.Strings(names)

	cols := make([]Column, len(names))
	for j, name := range names {
		cols[j].Name = name
		for i, row := range rows {
			cell, ok := row[name]
			if !ok {
				return nil, fmt.Errorf("%w: row %d is missing column %q", errs.ErrSchema, i, name)
			}
			if err := appendCell(&cols[j], cell); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
	}

	f, err := adoptTable(Table{Columns: cols}, opts...)
	if err != nil {
		return nil, err
	}
	f.Origin = tagRecords

	return f, nil
}

func appendCell(c *Column, cell any) error {
	switch v := cell.(type) {
	case time.Time:
		c.Times = append(c.Times, v)
	case float64:
		c.Floats = append(c.Floats, v)
	case int:
		c.Floats = append(c.Floats, float64(v))
	case nil:
		c.Floats = append(c.Floats, math.NaN())
	case string:
		c.Strings = append(c.Strings, v)
	default:
		return fmt.Errorf("%w: unsupported cell type %T in column %q", errs.ErrSchema, cell, c.Name)
	}
	if c.kinds() > 1 {
		return fmt.Errorf("%w: mixed cell types in column %q", errs.ErrSchema, c.Name)
	}

	return nil
}

func (recordsBoxer) FromFrame(f *Frame) (any, error) {
	rows := make([]map[string]any, len(f.Records))
	for i, r := range f.Records {
		row := make(map[string]any, len(f.IDNames)+2)
		for j, name := range f.IDNames {
			row[name] = r.ID[j]
		}
		row[f.TimeName] = r.Time
		if r.Missing {
			row[f.ValueName] = nil
		} else {
			row[f.ValueName] = r.Value
		}
		rows[i] = row
	}

	return rows, nil
}

// ==============================================================================
// Wide representation
// ==============================================================================

// Wide is a wide-format representation: one shared time column and one
// value column per series. Values[i] is parallel to Times; NaN marks a
// missing or absent observation.
type Wide struct {
	TimeName string
	Times    []time.Time
	Names    []string
	Values   [][]float64
}

type wideBoxer struct{}

func (wideBoxer) Tag() string { return tagWide }

func (wideBoxer) Detect(in any) bool {
	switch in.(type) {
	case Wide, *Wide:
		return true
	default:
		return false
	}
}

func (wideBoxer) ToFrame(in any, _ ...AdoptOption) (*Frame, error) {
	var w Wide
	switch v := in.(type) {
	case Wide:
		w = v
	case *Wide:
		w = *v
	default:
		return nil, fmt.Errorf("%w: %T is not a Wide", errs.ErrNotBoxable, in)
	}

	if len(w.Names) != len(w.Values) {
		return nil, fmt.Errorf("%w: %d series names for %d value columns", errs.ErrSchema, len(w.Names), len(w.Values))
	}
	if len(w.Times) == 0 || len(w.Names) == 0 {
		return nil, fmt.Errorf("%w: zero rows after role assignment", errs.ErrSchema)
	}
	for i, vals := range w.Values {
		if len(vals) != len(w.Times) {
			return nil, fmt.Errorf("%w: series %q has %d values for %d timestamps", errs.ErrSchema, w.Names[i], len(vals), len(w.Times))
		}
	}

	timeName := w.TimeName
	if timeName == "" {
		timeName = "time"
	}

	f := &Frame{
		IDNames:   []string{"id"},
		TimeName:  timeName,
		ValueName: "value",
		Kind:      kindOf(w.Times),
		Origin:    tagWide,
		Records:   make([]Record, 0, len(w.Times)*len(w.Names)),
	}
	for i, name := range w.Names {
		for j, t := range w.Times {
			f.Records = append(f.Records, Record{
				ID:      ID{name},
				Time:    t,
				Value:   w.Values[i][j],
				Missing: math.IsNaN(w.Values[i][j]),
			})
		}
	}

	return f, nil
}

// FromFrame pivots the frame: the union of all timestamps becomes the time
// column, sorted ascending, and each id tuple becomes one series column
// (tuple components joined with a dot). Keys absent from a series are NaN.
func (wideBoxer) FromFrame(f *Frame) (any, error) {
	seen := make(map[int64]int)
	var times []time.Time
	for _, r := range f.Records {
		key := r.Time.UnixNano()
		if _, ok := seen[key]; !ok {
			seen[key] = 0
			times = append(times, r.Time)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	for i, t := range times {
		seen[t.UnixNano()] = i
	}

	w := Wide{TimeName: f.TimeName, Times: times}
	used := make(map[string]bool)
	for _, g := range f.Groups() {
		vals := make([]float64, len(times))
		for i := range vals {
			vals[i] = math.NaN()
		}
		for _, row := range g.Rows {
			r := f.Records[row]
			if !r.Missing {
				vals[seen[r.Time.UnixNano()]] = r.Value
			}
		}

		// Dot-joining tuples can alias, e.g. {"a.b"} and {"a", "b"}; keep
		// column names unique by suffixing later collisions.
		name := g.ID.String()
		for i := 2; used[name]; i++ {
			name = fmt.Sprintf("%s.%d", g.ID.String(), i)
		}
		used[name] = true

		w.Names = append(w.Names, name)
		w.Values = append(w.Values, vals)
	}

	return w, nil
}
