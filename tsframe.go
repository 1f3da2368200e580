// Package tsframe normalizes heterogeneous tabular time-series inputs into
// one canonical long-format frame and operates on it: frequency detection,
// calendar-period bucketing, time shifting, and series binding.
//
// # Canonical frame
//
// Every operation runs on the frame.Frame type, an ordered sequence of
// (id, time, value) records. Boundary adapters convert concrete tabular
// shapes to and from it through a registry of boxers, so the algorithms
// never inspect representation types:
//
//	tab := frame.Table{Columns: []frame.Column{
//	    {Name: "id", Strings: []string{"gdp", "gdp", "gdp"}},
//	    {Name: "time", Times: []time.Time{t0, t1, t2}},
//	    {Name: "value", Floats: []float64{100, 102, 105}},
//	}}
//	f, _ := tsframe.Adopt(tab)
//
// # Core operations
//
// Detect the sampling frequency of a timestamp sequence, bucket timestamps
// into calendar periods, and shift sequences by periods or by a duration
// specification:
//
//	det, _ := tsframe.DetectFrequency(stamps)   // freq.Monthly, ...
//	start := tsframe.Bucket(t, period.UnitQuarter)
//	lagged, _ := tsframe.Shift(stamps, 1)       // one period forward
//	later, _ := tsframe.Shift(stamps, "2 months")
//
// Bind series together: merge frames with an outer join where the left
// operand wins, append bare values with synthesized timestamps, or fold any
// mix of operands:
//
//	merged, _ := tsframe.Combine(a, b)
//	longer, _ := tsframe.Extend(f, []float64{20, 30}, false)
//	bound, _ := tsframe.Bind(tabA, tabB, 47.3)
//
// # Package structure
//
// This package provides convenient top-level wrappers around the frame,
// freq, period, shift, bind and agg packages, which can be used directly
// for fine-grained control.
package tsframe

import (
	"time"

	"github.com/arloliu/tsframe/agg"
	"github.com/arloliu/tsframe/bind"
	"github.com/arloliu/tsframe/frame"
	"github.com/arloliu/tsframe/freq"
	"github.com/arloliu/tsframe/period"
	"github.com/arloliu/tsframe/shift"
)

// Adopt converts a recognized boxable input into a canonical frame,
// inferring which columns play the time, value and identifier roles.
func Adopt(in any, opts ...frame.AdoptOption) (*frame.Frame, error) {
	return frame.Adopt(in, opts...)
}

// Render materializes a frame into the representation named by tag.
func Render(f *frame.Frame, tag string) (any, error) {
	return frame.Render(f, tag)
}

// DetectFrequency classifies the spacing of a chronologically ordered
// timestamp sequence.
func DetectFrequency(ts []time.Time) (freq.Detection, error) {
	return freq.Detect(ts)
}

// Bucket maps a timestamp to the start-of-period representative for the
// given granularity.
func Bucket(t time.Time, g period.Unit) time.Time {
	return period.Bucket(t, g)
}

// Shift moves a timestamp sequence by an integer period count (frequency
// aware) or by a duration specification string such as "1 month"
// (frequency agnostic).
func Shift(ts []time.Time, by any) ([]time.Time, error) {
	return shift.Apply(ts, by)
}

// Combine merges two frames with a full outer join on (id, time); a's
// values win on shared keys.
func Combine(a, b *frame.Frame) (*frame.Frame, error) {
	return bind.Combine(a, b)
}

// Extend appends values to every id group of a frame, synthesizing their
// timestamps from the group's detected frequency. With backwards set, the
// values are prepended instead.
func Extend(f *frame.Frame, values []float64, backwards bool) (*frame.Frame, error) {
	return bind.Extend(f, values, backwards)
}

// Bind folds any mix of boxable and plain numeric operands into one frame,
// left to right. The output's representation tag comes from the first
// boxable operand.
func Bind(operands ...any) (*frame.Frame, error) {
	return bind.All(operands...)
}

// Aggregate reduces a frame to a coarser calendar granularity, by
// arithmetic mean unless overridden with agg options.
func Aggregate(f *frame.Frame, g period.Unit, opts ...agg.Option) (*frame.Frame, error) {
	return agg.Aggregate(f, g, opts...)
}
