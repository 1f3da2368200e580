package bind

import (
	"fmt"
	"math"
	"time"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/frame"
	"github.com/arloliu/tsframe/freq"
	"github.com/arloliu/tsframe/shift"
)

// windowMargin is the number of extra historical timestamps, beyond the
// count being synthesized, handed to frequency detection during extension.
// The margin is a tunable accuracy knob, not part of the contract.
const windowMargin = 5

// Extend appends len(values) synthesized records to every id group of the
// frame. Timestamps are synthesized by detecting each group's frequency on a
// trailing window and shifting it forward (backwards=false), or on a leading
// window shifted backward (backwards=true), in which case the new records
// are inserted before the existing ones so each group stays time-ascending.
//
// A group with fewer than two timestamps fails with
// errs.ErrInsufficientData; a group with no constant frequency fails with
// errs.ErrIrregularSeries.
func Extend(f *frame.Frame, values []float64, backwards bool) (*frame.Frame, error) {
	out := f.Clone()
	k := len(values)
	if k == 0 {
		return out, nil
	}
	out.EnsureSorted()

	var added []frame.Record
	for _, g := range out.Groups() {
		times := out.GroupTimes(g)
		if len(times) < 2 {
			return nil, fmt.Errorf("%w: group %q has %d timestamps, extension needs at least 2", errs.ErrInsufficientData, g.ID, len(times))
		}

		stamps, err := synthesize(times, k, backwards)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.ID, err)
		}

		for i, t := range stamps {
			added = append(added, frame.Record{
				ID:      append(frame.ID(nil), g.ID...),
				Time:    t,
				Value:   values[i],
				Missing: math.IsNaN(values[i]),
			})
		}
	}

	if backwards {
		out.Records = append(added, out.Records...)
	} else {
		out.Records = append(out.Records, added...)
	}

	return out, nil
}

// synthesize produces k new timestamps continuing the sequence: past its end
// when backwards is false, before its start otherwise. The frequency is
// detected on the trailing (or leading) min(len(times), k+windowMargin)
// stamps, and the new stamps are shifts of 1..k periods from the sequence's
// last (or first) timestamp, returned in ascending order.
func synthesize(times []time.Time, k int, backwards bool) ([]time.Time, error) {
	w := k + windowMargin
	if w > len(times) {
		w = len(times)
	}

	var window []time.Time
	if backwards {
		window = times[:w]
	} else {
		window = times[len(times)-w:]
	}

	det, err := freq.Detect(window)
	if err != nil {
		return nil, err
	}
	if !det.Regular() {
		return nil, fmt.Errorf("%w: cannot synthesize timestamps without a constant frequency", errs.ErrIrregularSeries)
	}

	stamps := make([]time.Time, k)
	if backwards {
		anchor := times[0]
		for i := range stamps {
			stamps[i] = shift.Next(anchor, i-k, det)
		}
	} else {
		anchor := times[len(times)-1]
		for i := range stamps {
			stamps[i] = shift.Next(anchor, i+1, det)
		}
	}

	return stamps, nil
}
