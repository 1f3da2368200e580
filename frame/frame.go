package frame

import (
	"sort"
	"strings"
	"time"

	"github.com/arloliu/tsframe/internal/hash"
)

// TimeKind is the type category of a frame's time column.
type TimeKind uint8

const (
	KindDate     TimeKind = iota + 1 // KindDate means all timestamps are plain dates (midnight clock).
	KindDateTime                     // KindDateTime means at least one timestamp carries a clock time.
)

// ID is an ordered tuple of identifier values. The empty tuple denotes a
// single unnamed series. Tuples are compared component-wise and
// order-sensitive.
type ID []string

// Equal reports component-wise equality of two tuples.
func (id ID) Equal(other ID) bool {
	if len(id) != len(other) {
		return false
	}
	for i := range id {
		if id[i] != other[i] {
			return false
		}
	}

	return true
}

// Key returns the tuple's 64-bit hash, used as a group partition key.
func (id ID) Key() uint64 {
	return hash.Key(id)
}

func (id ID) String() string {
	return strings.Join(id, ".")
}

// Record is one observation: an identifier tuple, a timestamp, and a value
// that may be missing.
type Record struct {
	ID      ID
	Time    time.Time
	Value   float64
	Missing bool
}

// Frame is the canonical long-format representation all core operations
// consume and produce. Column roles are resolved once at adoption and held
// fixed; timezone metadata on timestamps is carried but never interpreted.
//
// Within a frame, (ID, Time) pairs are unique. Within each id group, records
// are expected in ascending time order; window-taking operations re-sort a
// group when the precondition is violated.
type Frame struct {
	IDNames   []string
	TimeName  string
	ValueName string
	Kind      TimeKind

	// Origin is the representation tag of the boxer that produced the frame.
	Origin string

	Records []Record
}

// Len returns the number of records.
func (f *Frame) Len() int {
	return len(f.Records)
}

// Clone returns a deep copy of the frame. Operations clone before mutating
// so callers never observe changes to their inputs.
func (f *Frame) Clone() *Frame {
	out := &Frame{
		IDNames:   append([]string(nil), f.IDNames...),
		TimeName:  f.TimeName,
		ValueName: f.ValueName,
		Kind:      f.Kind,
		Origin:    f.Origin,
		Records:   make([]Record, len(f.Records)),
	}
	for i, r := range f.Records {
		r.ID = append(ID(nil), r.ID...)
		out.Records[i] = r
	}

	return out
}

// Group is one id tuple together with the frame row indices belonging to it,
// in record order.
type Group struct {
	ID   ID
	Rows []int
}

// Groups partitions the frame into an ordered mapping from id tuple to row
// indices, in order of first appearance. Partitioning is keyed by the
// tuple's hash; hash collisions are resolved by comparing tuples.
func (f *Frame) Groups() []Group {
	groups := make([]Group, 0, 8)
	byKey := make(map[uint64][]int, 8)

	for i, r := range f.Records {
		key := r.ID.Key()
		found := -1
		for _, gi := range byKey[key] {
			if groups[gi].ID.Equal(r.ID) {
				found = gi
				break
			}
		}
		if found < 0 {
			groups = append(groups, Group{ID: r.ID})
			found = len(groups) - 1
			byKey[key] = append(byKey[key], found)
		}
		groups[found].Rows = append(groups[found].Rows, i)
	}

	return groups
}

// GroupTimes returns the group's timestamps in record order.
func (f *Frame) GroupTimes(g Group) []time.Time {
	ts := make([]time.Time, len(g.Rows))
	for i, row := range g.Rows {
		ts[i] = f.Records[row].Time
	}

	return ts
}

// SortGroup reorders the group's records among their own row positions so
// the group is time-ascending. Rows belonging to other groups are untouched.
func (f *Frame) SortGroup(g Group) {
	recs := make([]Record, len(g.Rows))
	for i, row := range g.Rows {
		recs[i] = f.Records[row]
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Time.Before(recs[j].Time) })
	for i, row := range g.Rows {
		f.Records[row] = recs[i]
	}
}

// groupSorted reports whether the group's records are time-ascending.
func (f *Frame) groupSorted(g Group) bool {
	for i := 1; i < len(g.Rows); i++ {
		if f.Records[g.Rows[i]].Time.Before(f.Records[g.Rows[i-1]].Time) {
			return false
		}
	}

	return true
}

// EnsureSorted re-sorts every group that violates the ascending-time
// precondition, and reports whether any re-sort happened.
func (f *Frame) EnsureSorted() bool {
	resorted := false
	for _, g := range f.Groups() {
		if !f.groupSorted(g) {
			f.SortGroup(g)
			resorted = true
		}
	}

	return resorted
}

// Span returns a copy of the frame keeping records with start <= t <= end.
// A zero start or end leaves that side unbounded.
func (f *Frame) Span(start, end time.Time) *Frame {
	out := f.Clone()
	kept := out.Records[:0]
	for _, r := range out.Records {
		if !start.IsZero() && r.Time.Before(start) {
			continue
		}
		if !end.IsZero() && r.Time.After(end) {
			continue
		}
		kept = append(kept, r)
	}
	out.Records = kept

	return out
}

// kindOf classifies a set of timestamps as dates or date-times.
func kindOf(ts []time.Time) TimeKind {
	for _, t := range ts {
		hh, mm, ss := t.Clock()
		if hh != 0 || mm != 0 || ss != 0 || t.Nanosecond() != 0 {
			return KindDateTime
		}
	}

	return KindDate
}
