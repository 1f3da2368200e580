package bind

import (
	"fmt"
	"time"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/frame"
	"github.com/arloliu/tsframe/freq"
	"github.com/arloliu/tsframe/shift"
)

// Regularize fills the gaps of a gappy regular series: for every id group
// it detects the frequency, walks the full period grid from the group's
// first to its last timestamp, and inserts a missing-valued record for each
// absent period. Groups come back contiguous and time-ascending.
//
// Gappy input is read against the grid of its tightest spacing: daily dates
// with holes fill on the daily grid, monthly stamps with a skipped month on
// the monthly grid. A group whose timestamps fit no unit grid fails with
// errs.ErrIrregularSeries, and a group with fewer than two timestamps with
// errs.ErrInsufficientData.
func Regularize(f *frame.Frame) (*frame.Frame, error) {
	out := f.Clone()
	out.EnsureSorted()

	result := out.Clone()
	result.Records = result.Records[:0]

	for _, g := range out.Groups() {
		times := out.GroupTimes(g)
		if len(times) < 2 {
			return nil, fmt.Errorf("%w: group %q has %d timestamps", errs.ErrInsufficientData, g.ID, len(times))
		}

		det := detectSpaced(times)
		if !det.Regular() {
			return nil, fmt.Errorf("%w: group %q has no constant frequency to regularize to", errs.ErrIrregularSeries, g.ID)
		}

		have := make(map[int64]int, len(g.Rows))
		for _, row := range g.Rows {
			have[out.Records[row].Time.UnixNano()] = row
		}

		last := times[len(times)-1]
		for t := times[0]; !t.After(last); t = shift.Next(t, 1, det) {
			if row, ok := have[t.UnixNano()]; ok {
				result.Records = append(result.Records, out.Records[row])
			} else {
				result.Records = append(result.Records, frame.Record{
					ID:      append(frame.ID(nil), g.ID...),
					Time:    t,
					Missing: true,
				})
			}
		}
	}

	return result, nil
}

// detectSpaced classifies a sequence that may contain gaps: consecutive
// deltas that are exact multiples of a common period still count as that
// period. It first tries plain detection, then falls back to detection on
// the two closest-spaced neighbours and verifies every delta is a whole
// number of the candidate period.
func detectSpaced(times []time.Time) freq.Detection {
	if det, err := freq.Detect(times); err == nil && det.Regular() {
		return det
	}

	// Use the tightest adjacent pair as the period candidate.
	best := -1
	for i := 1; i < len(times); i++ {
		if best < 0 || times[i].Sub(times[i-1]) < times[best].Sub(times[best-1]) {
			best = i
		}
	}
	det, err := freq.Detect(times[best-1 : best+1])
	if err != nil || !det.Regular() {
		return freq.Detection{}
	}

	// Every timestamp must land on the candidate grid.
	cur := times[0]
	i := 0
	for i < len(times) {
		if cur.Equal(times[i]) {
			i++
		} else if cur.After(times[i]) {
			return freq.Detection{}
		}
		if i < len(times) {
			cur = shift.Next(cur, 1, det)
		}
	}

	return det
}
