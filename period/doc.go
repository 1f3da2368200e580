// Package period provides calendar granularities, start-of-period bucketing,
// and duration-specification parsing.
//
// # Bucketing
//
// Bucket maps a timestamp to the canonical start of its calendar period,
// which aggregation uses as a grouping key:
//
//	period.Bucket(t, period.UnitMonth)   // first day of t's month, midnight
//	period.Bucket(t, period.UnitQuarter) // first day of t's quarter
//	period.Bucket(t, period.UnitWeek)    // Monday of t's ISO week
//
// Bucketing is idempotent: bucketing an already-bucketed timestamp returns
// it unchanged.
//
// # Duration specifications
//
// ParseDuration accepts "[sign]integer unit[s]" with an optional space, and
// a bare unit name meaning a count of one:
//
//	period.ParseDuration("1 month")  // {Count: 1, Unit: UnitMonth}
//	period.ParseDuration("-2 weeks") // {Count: -2, Unit: UnitWeek}
//	period.ParseDuration("quarter")  // {Count: 1, Unit: UnitQuarter}
//
// Durations feed the duration mode of the shift package, which applies them
// with calendar arithmetic.
package period
