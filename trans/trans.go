// Package trans provides per-group series transforms: differencing and
// percent change against the value a fixed number of records earlier.
package trans

import (
	"fmt"
	"math"

	"github.com/arloliu/tsframe/frame"
)

// Diff returns the frame with each value replaced by its difference to the
// value lag records earlier in the same id group. The first lag records of
// every group become missing, as does any record whose operand is missing.
func Diff(f *frame.Frame, lag int) (*frame.Frame, error) {
	return transform(f, lag, func(cur, prev float64) (float64, bool) {
		return cur - prev, false
	})
}

// PercentChange returns the frame with each value replaced by its percent
// change against the value lag records earlier in the same id group. A zero
// base value yields a missing result.
func PercentChange(f *frame.Frame, lag int) (*frame.Frame, error) {
	return transform(f, lag, func(cur, prev float64) (float64, bool) {
		if prev == 0 {
			return 0, true
		}

		return 100 * (cur/prev - 1), false
	})
}

func transform(f *frame.Frame, lag int, fn func(cur, prev float64) (float64, bool)) (*frame.Frame, error) {
	if lag <= 0 {
		return nil, fmt.Errorf("lag must be positive, got %d", lag)
	}

	out := f.Clone()
	out.EnsureSorted()

	for _, g := range out.Groups() {
		// Walk back to front so earlier operands are still untransformed.
		for i := len(g.Rows) - 1; i >= 0; i-- {
			rec := &out.Records[g.Rows[i]]
			if i < lag {
				rec.Value = math.NaN()
				rec.Missing = true

				continue
			}
			prev := out.Records[g.Rows[i-lag]]
			if rec.Missing || prev.Missing {
				rec.Value = math.NaN()
				rec.Missing = true

				continue
			}
			v, miss := fn(rec.Value, prev.Value)
			rec.Value = v
			rec.Missing = miss
			if miss {
				rec.Value = math.NaN()
			}
		}
	}

	return out, nil
}
