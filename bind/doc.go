// Package bind combines series: merging frames, appending bare values, and
// filling the gaps of regular series.
//
// Combine performs a full outer join of two frames on (id, time) with a
// left-wins coalesce: where both frames supply a value the left frame's
// value is kept, a missing left value is filled from the right, and keys
// only one frame supplies pass through.
//
// Extend appends plain numeric values to a frame by synthesizing their
// timestamps: each id group's frequency is detected on the window of
// history actually available and the group's last (or, extending
// backwards, first) timestamp is shifted period by period.
//
// All folds any mix of boxable and numeric operands left to right:
//
//	out, err := bind.All(tableA, tableB, 47.3, []float64{48.1, 49.0})
//
// Numeric operands extend the accumulated frame forward; numerics listed
// before the first boxable operand extend it backward instead, so values
// keep the position the argument list gives them. The result's
// representation tag comes from the first boxable operand.
package bind
