package period

import (
	"strconv"
	"time"
)

// Unit is a calendar granularity. It serves both as the unit of a parsed
// duration specification and as the target granularity for bucketing.
type Unit uint8

const (
	UnitSecond  Unit = iota + 1 // UnitSecond is one clock second.
	UnitMinute                  // UnitMinute is one clock minute.
	UnitHour                    // UnitHour is one clock hour.
	UnitDay                     // UnitDay is one calendar day.
	UnitWeek                    // UnitWeek is one ISO week, starting Monday.
	UnitMonth                   // UnitMonth is one calendar month.
	UnitQuarter                 // UnitQuarter is three calendar months.
	UnitYear                    // UnitYear is one calendar year.
)

func (u Unit) String() string {
	switch u {
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitQuarter:
		return "quarter"
	case UnitYear:
		return "year"
	default:
		return "unknown"
	}
}

// Fixed reports whether the unit has a constant length in elapsed time.
// Month, quarter and year vary with the calendar.
func (u Unit) Fixed() bool {
	return u >= UnitSecond && u <= UnitWeek
}

// Months returns the unit's length in calendar months, or 0 for fixed-length
// units.
func (u Unit) Months() int {
	switch u {
	case UnitMonth:
		return 1
	case UnitQuarter:
		return 3
	case UnitYear:
		return 12
	default:
		return 0
	}
}

// Duration is a parsed duration specification: a signed count of calendar
// units. The zero value is not a valid duration.
type Duration struct {
	Count int
	Unit  Unit
}

func (d Duration) String() string {
	if d.Count == 1 || d.Count == -1 {
		return strconv.Itoa(d.Count) + " " + d.Unit.String()
	}

	return strconv.Itoa(d.Count) + " " + d.Unit.String() + "s"
}

// Bucket maps t to the start-of-period representative for the requested
// granularity: the first calendar day for month, quarter and year, Monday
// midnight for week, and plain truncation for day and finer. The result is
// idempotent and preserves t's location.
func Bucket(t time.Time, g Unit) time.Time {
	y, m, d := t.Date()
	loc := t.Location()

	switch g {
	case UnitYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case UnitQuarter:
		qm := time.Month((int(m)-1)/3*3 + 1)
		return time.Date(y, qm, 1, 0, 0, 0, 0, loc)
	case UnitMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case UnitWeek:
		// Monday is day 0 of the ISO week.
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-back, 0, 0, 0, 0, loc)
	case UnitDay:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case UnitHour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc)
	case UnitMinute:
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
	case UnitSecond:
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
	default:
		return t
	}
}
