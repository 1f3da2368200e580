package bind

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/frame"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthlyFrame(id string, start time.Time, values ...float64) *frame.Frame {
	f := &frame.Frame{
		IDNames:   []string{"id"},
		TimeName:  "time",
		ValueName: "value",
		Kind:      frame.KindDate,
		Origin:    "table",
	}
	for i, v := range values {
		f.Records = append(f.Records, frame.Record{
			ID:    frame.ID{id},
			Time:  start.AddDate(0, i, 0),
			Value: v,
		})
	}

	return f
}

// ==============================================================================
// Combine Tests
// ==============================================================================

func TestCombine_Coalesce(t *testing.T) {
	a := monthlyFrame("1", date(2020, time.January, 1), 5)
	b := monthlyFrame("1", date(2020, time.January, 1), 9, 7)

	out, err := Combine(a, b)
	require.NoError(t, err)
	require.Len(t, out.Records, 2)

	// a wins on the shared key, b fills the gap.
	require.Equal(t, 5.0, out.Records[0].Value)
	require.Equal(t, date(2020, time.February, 1), out.Records[1].Time)
	require.Equal(t, 7.0, out.Records[1].Value)
}

func TestCombine_MissingLeftValueIsFilled(t *testing.T) {
	a := monthlyFrame("1", date(2020, time.January, 1), 5)
	a.Records[0].Missing = true
	b := monthlyFrame("1", date(2020, time.January, 1), 9)

	out, err := Combine(a, b)
	require.NoError(t, err)
	require.False(t, out.Records[0].Missing)
	require.Equal(t, 9.0, out.Records[0].Value)
}

func TestCombine_DisjointGroups(t *testing.T) {
	a := monthlyFrame("gdp", date(2020, time.January, 1), 1, 2)
	b := monthlyFrame("cpi", date(2020, time.January, 1), 10)

	out, err := Combine(a, b)
	require.NoError(t, err)
	require.Len(t, out.Records, 3)
	require.Len(t, out.Groups(), 2)
}

func TestCombine_ReordersRightIDColumns(t *testing.T) {
	a := &frame.Frame{
		IDNames:   []string{"country", "series"},
		TimeName:  "time",
		ValueName: "value",
		Records: []frame.Record{
			{ID: frame.ID{"de", "gdp"}, Time: date(2020, time.January, 1), Value: 1},
		},
	}
	b := &frame.Frame{
		IDNames:   []string{"series", "country"},
		TimeName:  "time",
		ValueName: "value",
		Records: []frame.Record{
			{ID: frame.ID{"gdp", "de"}, Time: date(2020, time.January, 1), Value: 2},
			{ID: frame.ID{"cpi", "de"}, Time: date(2020, time.January, 1), Value: 3},
		},
	}

	out, err := Combine(a, b)
	require.NoError(t, err)
	require.Equal(t, []string{"country", "series"}, out.IDNames)
	require.Len(t, out.Records, 2)
	require.Equal(t, 1.0, out.Records[0].Value, "a wins on the shared key")
	require.Equal(t, frame.ID{"de", "cpi"}, out.Records[1].ID)
}

func TestCombine_IncompatibleIDColumns(t *testing.T) {
	a := monthlyFrame("1", date(2020, time.January, 1), 5)

	b := a.Clone()
	b.IDNames = []string{"region"}
	_, err := Combine(a, b)
	require.ErrorIs(t, err, errs.ErrIncompatibleSeries)

	c := a.Clone()
	c.IDNames = []string{"id", "region"}
	_, err = Combine(a, c)
	require.ErrorIs(t, err, errs.ErrIncompatibleSeries)
}

func TestCombine_DoesNotMutateInputs(t *testing.T) {
	a := monthlyFrame("1", date(2020, time.January, 1), 5)
	b := monthlyFrame("1", date(2020, time.February, 1), 7)

	_, err := Combine(a, b)
	require.NoError(t, err)
	require.Len(t, a.Records, 1)
	require.Len(t, b.Records, 1)
}

// ==============================================================================
// Extend Tests
// ==============================================================================

func TestExtend_Forward(t *testing.T) {
	f := monthlyFrame("1", date(2020, time.October, 1), 8, 9, 10)

	out, err := Extend(f, []float64{20, 30}, false)
	require.NoError(t, err)
	require.Len(t, out.Records, 5)

	require.Equal(t, date(2021, time.January, 1), out.Records[3].Time)
	require.Equal(t, 20.0, out.Records[3].Value)
	require.Equal(t, date(2021, time.February, 1), out.Records[4].Time)
	require.Equal(t, 30.0, out.Records[4].Value)
}

func TestExtend_Backward(t *testing.T) {
	f := monthlyFrame("1", date(2020, time.March, 1), 3, 4)

	out, err := Extend(f, []float64{1, 2}, true)
	require.NoError(t, err)
	require.Len(t, out.Records, 4)

	// Prepended records keep the values in argument order, earliest first.
	require.Equal(t, date(2020, time.January, 1), out.Records[0].Time)
	require.Equal(t, 1.0, out.Records[0].Value)
	require.Equal(t, date(2020, time.February, 1), out.Records[1].Time)
	require.Equal(t, 2.0, out.Records[1].Value)

	g := out.Groups()[0]
	times := out.GroupTimes(g)
	for i := 1; i < len(times); i++ {
		require.True(t, times[i].After(times[i-1]), "group stays time-ascending")
	}
}

func TestExtend_NaNValueIsMissing(t *testing.T) {
	f := monthlyFrame("1", date(2020, time.October, 1), 8, 9, 10)

	out, err := Extend(f, []float64{20, math.NaN(), 30}, false)
	require.NoError(t, err)
	require.Len(t, out.Records, 6)

	require.False(t, out.Records[3].Missing)
	require.True(t, out.Records[4].Missing, "NaN value extends as a missing record")
	require.True(t, math.IsNaN(out.Records[4].Value))
	require.False(t, out.Records[5].Missing)
	require.Equal(t, 30.0, out.Records[5].Value)
}

func TestExtend_MoreValuesThanHistory(t *testing.T) {
	f := monthlyFrame("1", date(2020, time.January, 1), 1, 2)

	out, err := Extend(f, []float64{3, 4, 5, 6, 7}, false)
	require.NoError(t, err)
	require.Len(t, out.Records, 7)
	require.Equal(t, date(2020, time.July, 1), out.Records[6].Time)
}

func TestExtend_PerGroup(t *testing.T) {
	a := monthlyFrame("a", date(2020, time.January, 1), 1, 2)
	b := monthlyFrame("b", date(2019, time.June, 1), 5, 6)
	f, err := Combine(a, b)
	require.NoError(t, err)

	out, err := Extend(f, []float64{99}, false)
	require.NoError(t, err)
	require.Len(t, out.Records, 6)

	// Each group continues from its own last timestamp.
	var added []frame.Record
	for _, r := range out.Records[4:] {
		added = append(added, r)
	}
	require.Equal(t, date(2020, time.March, 1), added[0].Time)
	require.Equal(t, frame.ID{"a"}, added[0].ID)
	require.Equal(t, date(2019, time.August, 1), added[1].Time)
	require.Equal(t, frame.ID{"b"}, added[1].ID)
}

func TestExtend_ShortGroup(t *testing.T) {
	f := monthlyFrame("1", date(2020, time.January, 1), 1)

	_, err := Extend(f, []float64{2}, false)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestExtend_IrregularGroup(t *testing.T) {
	f := &frame.Frame{
		IDNames:   []string{"id"},
		TimeName:  "time",
		ValueName: "value",
		Records: []frame.Record{
			{ID: frame.ID{"1"}, Time: date(2020, time.January, 1), Value: 1},
			{ID: frame.ID{"1"}, Time: date(2020, time.January, 3), Value: 2},
			{ID: frame.ID{"1"}, Time: date(2020, time.January, 10), Value: 3},
		},
	}

	_, err := Extend(f, []float64{4}, false)
	require.ErrorIs(t, err, errs.ErrIrregularSeries)
}

func TestExtend_NoValuesIsClone(t *testing.T) {
	f := monthlyFrame("1", date(2020, time.January, 1), 1, 2)

	out, err := Extend(f, nil, false)
	require.NoError(t, err)
	require.Equal(t, f.Records, out.Records)
}

// ==============================================================================
// All Tests
// ==============================================================================

func TestAll_CombinesAndExtends(t *testing.T) {
	a := monthlyFrame("1", date(2020, time.January, 1), 5)
	b := monthlyFrame("1", date(2020, time.February, 1), 7)

	out, err := All(a, b, 9.0, []float64{11, 13})
	require.NoError(t, err)
	require.Len(t, out.Records, 5)
	require.Equal(t, date(2020, time.May, 1), out.Records[4].Time)
	require.Equal(t, 13.0, out.Records[4].Value)
}

func TestAll_LeadingNumericsPrepend(t *testing.T) {
	f := monthlyFrame("1", date(2020, time.March, 1), 3, 4)

	out, err := All([]float64{1, 2}, f)
	require.NoError(t, err)
	require.Len(t, out.Records, 4)
	require.Equal(t, date(2020, time.January, 1), out.Records[0].Time)
	require.Equal(t, 1.0, out.Records[0].Value)
}

func TestAll_TagFromFirstBoxable(t *testing.T) {
	w := frame.Wide{
		Times:  []time.Time{date(2020, time.January, 1), date(2020, time.February, 1)},
		Names:  []string{"x"},
		Values: [][]float64{{1, 2}},
	}

	out, err := All(3.0, w)
	require.NoError(t, err)
	require.Equal(t, "wide", out.Origin)
}

func TestAll_NoBoxableOperand(t *testing.T) {
	_, err := All(1.0, []float64{2, 3})
	require.ErrorIs(t, err, errs.ErrNotBoxable)
}

func TestAll_UnrecognizedOperand(t *testing.T) {
	f := monthlyFrame("1", date(2020, time.January, 1), 1, 2)

	_, err := All(f, struct{ x int }{1})
	require.ErrorIs(t, err, errs.ErrNotBoxable)
}

// ==============================================================================
// Regularize Tests
// ==============================================================================

func TestRegularize_FillsMonthlyGaps(t *testing.T) {
	f := &frame.Frame{
		IDNames:   []string{"id"},
		TimeName:  "time",
		ValueName: "value",
		Records: []frame.Record{
			{ID: frame.ID{"1"}, Time: date(2020, time.January, 1), Value: 1},
			{ID: frame.ID{"1"}, Time: date(2020, time.February, 1), Value: 2},
			{ID: frame.ID{"1"}, Time: date(2020, time.May, 1), Value: 5},
		},
	}

	out, err := Regularize(f)
	require.NoError(t, err)
	require.Len(t, out.Records, 5)

	require.Equal(t, date(2020, time.March, 1), out.Records[2].Time)
	require.True(t, out.Records[2].Missing)
	require.Equal(t, date(2020, time.April, 1), out.Records[3].Time)
	require.True(t, out.Records[3].Missing)
	require.Equal(t, 5.0, out.Records[4].Value)
}

func TestRegularize_AlreadyRegular(t *testing.T) {
	f := monthlyFrame("1", date(2020, time.January, 1), 1, 2, 3)

	out, err := Regularize(f)
	require.NoError(t, err)
	require.Equal(t, f.Records, out.Records)
}

func TestRegularize_GappyDatesUseTheDailyGrid(t *testing.T) {
	f := &frame.Frame{
		IDNames:   []string{"id"},
		TimeName:  "time",
		ValueName: "value",
		Records: []frame.Record{
			{ID: frame.ID{"1"}, Time: date(2020, time.January, 1), Value: 1},
			{ID: frame.ID{"1"}, Time: date(2020, time.January, 3), Value: 2},
			{ID: frame.ID{"1"}, Time: date(2020, time.January, 4), Value: 3},
		},
	}

	out, err := Regularize(f)
	require.NoError(t, err)
	require.Len(t, out.Records, 4)
	require.Equal(t, date(2020, time.January, 2), out.Records[1].Time)
	require.True(t, out.Records[1].Missing)
}

func TestRegularize_Irregular(t *testing.T) {
	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	f := &frame.Frame{
		IDNames:   []string{"id"},
		TimeName:  "time",
		ValueName: "value",
		Records: []frame.Record{
			{ID: frame.ID{"1"}, Time: base, Value: 1},
			{ID: frame.ID{"1"}, Time: base.Add(7*time.Minute + 13*time.Second), Value: 2},
			{ID: frame.ID{"1"}, Time: base.Add(9*time.Minute + 1*time.Second), Value: 3},
		},
	}

	_, err := Regularize(f)
	require.ErrorIs(t, err, errs.ErrIrregularSeries)
}
