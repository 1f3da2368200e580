package freq

import (
	"fmt"
	"time"

	"github.com/arloliu/tsframe/errs"
)

// Frequency classifies the spacing of a timestamp sequence.
type Frequency uint8

const (
	Irregular Frequency = iota // Irregular means no consistent spacing was found.
	Second                     // Second spacing, one clock second apart.
	Minute                     // Minute spacing, one clock minute apart.
	Hourly                     // Hourly spacing, one clock hour apart.
	Daily                      // Daily spacing, one calendar day apart.
	Weekly                     // Weekly spacing, seven calendar days apart.
	Monthly                    // Monthly spacing, one calendar month apart.
	Quarterly                  // Quarterly spacing, three calendar months apart.
	Annual                     // Annual spacing, twelve calendar months apart.
)

func (f Frequency) String() string {
	switch f {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hourly:
		return "hourly"
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Annual:
		return "annual"
	default:
		return "irregular"
	}
}

// Fixed reports whether the frequency has a constant step in elapsed time.
func (f Frequency) Fixed() bool {
	return f >= Second && f <= Weekly
}

// Months returns the frequency's period length in calendar months, or 0 for
// fixed-length and irregular frequencies.
func (f Frequency) Months() int {
	switch f {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case Annual:
		return 12
	default:
		return 0
	}
}

// Step returns the nominal step of a fixed-length frequency, or 0 for
// calendar and irregular frequencies.
func (f Frequency) Step() time.Duration {
	switch f {
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hourly:
		return time.Hour
	case Daily:
		return 24 * time.Hour
	case Weekly:
		return 7 * 24 * time.Hour
	default:
		return 0
	}
}

// Detection is the result of classifying a timestamp sequence.
type Detection struct {
	Freq Frequency
	// Step is the nominal spacing for fixed-length frequencies, 0 otherwise.
	Step time.Duration
	// MonthEnd reports whether a monthly/quarterly/annual sequence is
	// aligned to the last day of the month rather than a fixed day-of-month.
	MonthEnd bool
}

// Regular reports whether the sequence had a consistent detected frequency.
func (d Detection) Regular() bool {
	return d.Freq != Irregular
}

// fixedSteps is checked from coarsest to finest so that a seven-day delta
// classifies as weekly, not as 168 hourly steps.
var fixedSteps = []Frequency{Weekly, Daily, Hourly, Minute, Second}

// Detect classifies a chronologically ordered timestamp sequence. At least
// two timestamps are required, with accuracy improving up to around five.
//
// Constant deltas (within a tolerance derived from the unit, which absorbs
// daylight-saving offsets for daily and weekly spacing) classify as the
// matching fixed frequency. Varying deltas with a consistent calendar month
// count and day-of-month or month-end alignment classify as monthly,
// quarterly or annual. Anything else is Irregular, which is a valid result,
// not an error.
func Detect(ts []time.Time) (Detection, error) {
	if len(ts) < 2 {
		return Detection{}, fmt.Errorf("%w: frequency detection needs at least 2 timestamps, got %d", errs.ErrInsufficientData, len(ts))
	}

	for _, f := range fixedSteps {
		if matchesFixed(ts, f.Step()) {
			return Detection{Freq: f, Step: f.Step()}, nil
		}
	}

	if det, ok := matchesCalendar(ts); ok {
		return det, nil
	}

	return Detection{Freq: Irregular}, nil
}

// matchesFixed reports whether every consecutive delta equals step within
// step/12. The slack covers daylight-saving transitions, where a calendar
// day spans 23 or 25 hours.
func matchesFixed(ts []time.Time, step time.Duration) bool {
	tol := step / 12
	for i := 1; i < len(ts); i++ {
		d := ts[i].Sub(ts[i-1])
		if d < step-tol || d > step+tol {
			return false
		}
	}

	return true
}

// matchesCalendar checks for monthly, quarterly or annual spacing by
// comparing calendar-field deltas rather than elapsed time. All timestamps
// must share the same clock time and either the same day-of-month or
// month-end alignment, with a constant month delta of 1, 3 or 12.
func matchesCalendar(ts []time.Time) (Detection, bool) {
	first := ts[0]

	months := monthsBetween(ts[0], ts[1])
	var f Frequency
	switch months {
	case 1:
		f = Monthly
	case 3:
		f = Quarterly
	case 12:
		f = Annual
	default:
		return Detection{}, false
	}

	allMonthEnd := isMonthEnd(first)
	sameDay := true
	for i := 1; i < len(ts); i++ {
		if !sameClock(ts[i], first) {
			return Detection{}, false
		}
		if monthsBetween(ts[i-1], ts[i]) != months {
			return Detection{}, false
		}
		allMonthEnd = allMonthEnd && isMonthEnd(ts[i])
		sameDay = sameDay && ts[i].Day() == first.Day()
	}
	if !allMonthEnd && !sameDay {
		return Detection{}, false
	}

	return Detection{Freq: f, MonthEnd: allMonthEnd}, true
}

func monthsBetween(a, b time.Time) int {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()

	return (by-ay)*12 + int(bm-am)
}

func sameClock(a, b time.Time) bool {
	ah, amin, as := a.Clock()
	bh, bmin, bs := b.Clock()

	return ah == bh && amin == bmin && as == bs && a.Nanosecond() == b.Nanosecond()
}

func isMonthEnd(t time.Time) bool {
	return t.Day() == daysInMonth(t.Year(), t.Month())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
