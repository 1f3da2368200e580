// Package shift moves timestamp sequences through calendar time.
//
// Two modes are provided. Integer mode (ByPeriods) is frequency-aware: it
// detects the sequence's frequency and moves every timestamp by a signed
// number of periods, failing on irregular input. Duration mode (ByDuration)
// is frequency-agnostic: it applies a parsed duration specification with
// calendar arithmetic, clamping day-of-month where the target month is
// shorter.
//
// The sign convention of integer mode is fixed: by = +1 moves every
// timestamp to the next period (a lag in calendar time), by = -1 to the
// previous one (a lead).
package shift

import (
	"fmt"
	"time"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/freq"
	"github.com/arloliu/tsframe/period"
)

// ByPeriods moves every timestamp forward by `by` periods of the sequence's
// detected frequency (backward for negative `by`). The sequence must be
// chronologically ordered and regular; irregular input fails with
// errs.ErrIrregularSeries and fewer than two timestamps with
// errs.ErrInsufficientData.
func ByPeriods(ts []time.Time, by int) ([]time.Time, error) {
	det, err := freq.Detect(ts)
	if err != nil {
		return nil, err
	}
	if !det.Regular() {
		return nil, fmt.Errorf("%w: integer-mode shift needs a constant frequency", errs.ErrIrregularSeries)
	}

	return ByDetected(ts, by, det), nil
}

// ByDetected moves every timestamp by `by` periods of an already-detected
// regular frequency. Callers that have run freq.Detect themselves, or that
// apply one detection to several windows, use this to skip re-detection.
func ByDetected(ts []time.Time, by int, det freq.Detection) []time.Time {
	out := make([]time.Time, len(ts))
	for i, t := range ts {
		out[i] = one(t, by, det)
	}

	return out
}

// Next moves a single timestamp by `by` periods of a detected regular
// frequency. Extension and regularization use it to walk a period grid from
// an anchor timestamp.
func Next(t time.Time, by int, det freq.Detection) time.Time {
	return one(t, by, det)
}

func one(t time.Time, by int, det freq.Detection) time.Time {
	if by == 0 {
		return t
	}

	switch det.Freq {
	case freq.Daily:
		return t.AddDate(0, 0, by)
	case freq.Weekly:
		return t.AddDate(0, 0, 7*by)
	case freq.Monthly, freq.Quarterly, freq.Annual:
		return addMonths(t, by*det.Freq.Months(), det.MonthEnd)
	default:
		return t.Add(time.Duration(by) * det.Step)
	}
}

// ByDuration advances every timestamp by the given duration specification.
// Regularity is not required. Month, quarter and year shifts preserve the
// day-of-month where valid and clamp to the last day of the target month
// otherwise; the shift is applied as one jump from the original timestamp,
// so Jan 31 + "2 months" is Mar 31, not Mar 28.
func ByDuration(ts []time.Time, d period.Duration) []time.Time {
	out := make([]time.Time, len(ts))
	for i, t := range ts {
		out[i] = byDurationOne(t, d)
	}

	return out
}

func byDurationOne(t time.Time, d period.Duration) time.Time {
	switch d.Unit {
	case period.UnitSecond:
		return t.Add(time.Duration(d.Count) * time.Second)
	case period.UnitMinute:
		return t.Add(time.Duration(d.Count) * time.Minute)
	case period.UnitHour:
		return t.Add(time.Duration(d.Count) * time.Hour)
	case period.UnitDay:
		return t.AddDate(0, 0, d.Count)
	case period.UnitWeek:
		return t.AddDate(0, 0, 7*d.Count)
	case period.UnitMonth:
		return addMonths(t, d.Count, false)
	case period.UnitQuarter:
		return addMonths(t, 3*d.Count, false)
	case period.UnitYear:
		return addMonths(t, 12*d.Count, false)
	default:
		return t
	}
}

// Apply dispatches on the type of `by`: a signed integer selects integer
// mode, a duration specification string or a parsed period.Duration selects
// duration mode.
func Apply(ts []time.Time, by any) ([]time.Time, error) {
	switch v := by.(type) {
	case int:
		return ByPeriods(ts, v)
	case int64:
		return ByPeriods(ts, int(v))
	case string:
		d, err := period.ParseDuration(v)
		if err != nil {
			return nil, err
		}
		return ByDuration(ts, d), nil
	case period.Duration:
		return ByDuration(ts, v), nil
	default:
		return nil, fmt.Errorf("unsupported shift argument type %T", by)
	}
}

// addMonths moves t by n calendar months in a single jump. The clock fields
// and location are preserved. When monthEnd is set and t is the last day of
// its month, the result is the last day of the target month; otherwise the
// day-of-month is kept, clamped to the target month's length.
func addMonths(t time.Time, n int, monthEnd bool) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	// Anchor on day 1 so AddDate cannot normalize across month boundaries.
	anchor := time.Date(y, m, 1, hh, mm, ss, t.Nanosecond(), t.Location()).AddDate(0, n, 0)
	last := daysInMonth(anchor.Year(), anchor.Month())

	day := d
	if monthEnd && d == daysInMonth(y, m) {
		day = last
	} else if day > last {
		day = last
	}

	return time.Date(anchor.Year(), anchor.Month(), day, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
