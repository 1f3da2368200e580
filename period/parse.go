package period

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/tsframe/errs"
)

var unitNames = map[string]Unit{
	"sec":     UnitSecond,
	"second":  UnitSecond,
	"min":     UnitMinute,
	"minute":  UnitMinute,
	"hour":    UnitHour,
	"day":     UnitDay,
	"week":    UnitWeek,
	"month":   UnitMonth,
	"quarter": UnitQuarter,
	"year":    UnitYear,
}

// ParseDuration parses a duration specification of the form
// "[sign]integer unit[s]", e.g. "1 month", "-2 weeks", "7 days". A bare unit
// name implies a count of 1. Whitespace between count and unit is optional.
func ParseDuration(s string) (Duration, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Duration{}, fmt.Errorf("%w: empty string", errs.ErrInvalidDuration)
	}

	// Split the leading [sign]integer from the unit word.
	i := 0
	if trimmed[0] == '+' || trimmed[0] == '-' {
		i++
	}
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}

	count := 1
	if digits := strings.TrimSpace(trimmed[:i]); digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return Duration{}, fmt.Errorf("%w: %q", errs.ErrInvalidDuration, s)
		}
		count = n
	}

	word := strings.ToLower(strings.TrimSpace(trimmed[i:]))
	word = strings.TrimSuffix(word, "s")
	unit, ok := unitNames[word]
	if !ok {
		return Duration{}, fmt.Errorf("%w: unknown unit in %q", errs.ErrInvalidDuration, s)
	}

	return Duration{Count: count, Unit: unit}, nil
}
