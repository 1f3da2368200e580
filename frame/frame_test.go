package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthly(id ID, start time.Time, values ...float64) []Record {
	recs := make([]Record, len(values))
	for i, v := range values {
		recs[i] = Record{ID: id, Time: start.AddDate(0, i, 0), Value: v}
	}

	return recs
}

// ==============================================================================
// ID Tests
// ==============================================================================

func TestID_Equal(t *testing.T) {
	require.True(t, ID{}.Equal(ID(nil)))
	require.True(t, ID{"a", "b"}.Equal(ID{"a", "b"}))
	require.False(t, ID{"a", "b"}.Equal(ID{"b", "a"}))
	require.False(t, ID{"a"}.Equal(ID{"a", ""}))
}

func TestID_String(t *testing.T) {
	require.Equal(t, "", ID{}.String())
	require.Equal(t, "de.gdp", ID{"de", "gdp"}.String())
}

// ==============================================================================
// Frame Tests
// ==============================================================================

func TestFrame_Groups(t *testing.T) {
	f := &Frame{
		IDNames:   []string{"id"},
		TimeName:  "time",
		ValueName: "value",
		Records: append(
			monthly(ID{"a"}, date(2020, time.January, 1), 1, 2),
			append(
				monthly(ID{"b"}, date(2020, time.January, 1), 3),
				monthly(ID{"a"}, date(2020, time.March, 1), 4)...,
			)...,
		),
	}

	groups := f.Groups()
	require.Len(t, groups, 2)

	// First-appearance order, with interleaved rows gathered per tuple.
	require.Equal(t, ID{"a"}, groups[0].ID)
	require.Equal(t, []int{0, 1, 3}, groups[0].Rows)
	require.Equal(t, ID{"b"}, groups[1].ID)
	require.Equal(t, []int{2}, groups[1].Rows)
}

func TestFrame_GroupsEmptyTuple(t *testing.T) {
	f := &Frame{Records: monthly(ID{}, date(2020, time.January, 1), 1, 2, 3)}

	groups := f.Groups()
	require.Len(t, groups, 1)
	require.Equal(t, []int{0, 1, 2}, groups[0].Rows)
}

func TestFrame_CloneIsDeep(t *testing.T) {
	f := &Frame{
		IDNames: []string{"id"},
		Records: monthly(ID{"a"}, date(2020, time.January, 1), 1, 2),
	}

	c := f.Clone()
	c.Records[0].Value = 99
	c.Records[0].ID[0] = "mutated"
	c.IDNames[0] = "mutated"

	require.Equal(t, 1.0, f.Records[0].Value)
	require.Equal(t, ID{"a"}, f.Records[0].ID)
	require.Equal(t, "id", f.IDNames[0])
}

func TestFrame_EnsureSorted(t *testing.T) {
	f := &Frame{Records: []Record{
		{ID: ID{"a"}, Time: date(2020, time.March, 1), Value: 3},
		{ID: ID{"b"}, Time: date(2020, time.January, 1), Value: 10},
		{ID: ID{"a"}, Time: date(2020, time.January, 1), Value: 1},
		{ID: ID{"a"}, Time: date(2020, time.February, 1), Value: 2},
	}}

	require.True(t, f.EnsureSorted())

	// Group "a" is ascending again; the "b" row kept its position.
	g := f.Groups()[0]
	require.Equal(t, []float64{1, 2, 3}, []float64{
		f.Records[g.Rows[0]].Value,
		f.Records[g.Rows[1]].Value,
		f.Records[g.Rows[2]].Value,
	})
	require.Equal(t, 10.0, f.Records[1].Value)

	require.False(t, f.EnsureSorted())
}

func TestFrame_Span(t *testing.T) {
	f := &Frame{Records: monthly(ID{"a"}, date(2020, time.January, 1), 1, 2, 3, 4)}

	mid := f.Span(date(2020, time.February, 1), date(2020, time.March, 1))
	require.Len(t, mid.Records, 2)
	require.Equal(t, 2.0, mid.Records[0].Value)
	require.Equal(t, 3.0, mid.Records[1].Value)

	open := f.Span(time.Time{}, date(2020, time.February, 1))
	require.Len(t, open.Records, 2)

	// The input is untouched.
	require.Len(t, f.Records, 4)
}
