package bind

import (
	"fmt"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/frame"
)

// joinKey identifies one (id, time) cell of the outer join. The id hash can
// collide, so lookups verify the tuple before trusting a hit.
type joinKey struct {
	id uint64
	ts int64
}

type joinIndex struct {
	f    *frame.Frame
	rows map[joinKey][]int
}

func newJoinIndex(f *frame.Frame) *joinIndex {
	idx := &joinIndex{f: f, rows: make(map[joinKey][]int, len(f.Records))}
	for i, r := range f.Records {
		key := joinKey{id: r.ID.Key(), ts: r.Time.UnixNano()}
		idx.rows[key] = append(idx.rows[key], i)
	}

	return idx
}

func (idx *joinIndex) lookup(r frame.Record) (int, bool) {
	key := joinKey{id: r.ID.Key(), ts: r.Time.UnixNano()}
	for _, row := range idx.rows[key] {
		if idx.f.Records[row].ID.Equal(r.ID) {
			return row, true
		}
	}

	return 0, false
}

// Combine merges two frames with a full outer join on (id, time). The
// frames must share the same identifier column set by name and cardinality,
// failing with errs.ErrIncompatibleSeries otherwise; b's columns are
// reordered to a's order when they match in a different order.
//
// On a shared key, a's value wins unless it is missing, in which case b's
// value fills it (the documented coalesce rule). Keys only b supplies are
// appended after a's records; the output is not sorted by time.
func Combine(a, b *frame.Frame) (*frame.Frame, error) {
	remap, err := idRemap(a.IDNames, b.IDNames)
	if err != nil {
		return nil, err
	}

	out := a.Clone()
	if a.Kind == frame.KindDateTime || b.Kind == frame.KindDateTime {
		out.Kind = frame.KindDateTime
	}

	idx := newJoinIndex(out)
	for _, r := range b.Records {
		rec := r
		rec.ID = remapID(r.ID, remap)

		row, ok := idx.lookup(rec)
		if !ok {
			rec.ID = append(frame.ID(nil), rec.ID...)
			out.Records = append(out.Records, rec)
			key := joinKey{id: rec.ID.Key(), ts: rec.Time.UnixNano()}
			idx.rows[key] = append(idx.rows[key], len(out.Records)-1)

			continue
		}
		if out.Records[row].Missing && !rec.Missing {
			out.Records[row].Value = rec.Value
			out.Records[row].Missing = false
		}
	}

	return out, nil
}

// idRemap computes, for each of a's id columns, the position of the same
// column in b. The sets must be equal.
func idRemap(a, b []string) ([]int, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: id columns %v vs %v", errs.ErrIncompatibleSeries, a, b)
	}

	remap := make([]int, len(a))
	for i, name := range a {
		found := -1
		for j, other := range b {
			if other == name {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: id columns %v vs %v", errs.ErrIncompatibleSeries, a, b)
		}
		remap[i] = found
	}

	return remap, nil
}

func remapID(id frame.ID, remap []int) frame.ID {
	identity := true
	for i, j := range remap {
		if i != j {
			identity = false
			break
		}
	}
	if identity {
		return id
	}

	out := make(frame.ID, len(id))
	for i, j := range remap {
		out[i] = id[j]
	}

	return out
}
