// Package agg aggregates a frame to a coarser calendar granularity.
//
// Records are grouped by (id, start-of-period bucket) and each bucket's
// values are reduced, by arithmetic mean unless WithReducer overrides it.
// By default a bucket containing any missing value yields a missing result;
// WithIgnoreMissing reduces over the present values instead.
package agg

import (
	"math"
	"sort"
	"time"

	"github.com/arloliu/tsframe/frame"
	"github.com/arloliu/tsframe/internal/options"
	"github.com/arloliu/tsframe/period"
)

// Option configures an aggregation.
type Option = options.Option[*config]

type config struct {
	ignoreMissing bool
	reduce        func([]float64) float64
}

// WithIgnoreMissing drops missing values from each bucket instead of
// poisoning the bucket's result. A bucket whose values are all missing
// still yields a missing result.
func WithIgnoreMissing() Option {
	return options.NoError(func(c *config) { c.ignoreMissing = true })
}

// WithReducer replaces the arithmetic mean with a custom reduction. The
// reducer is only ever called with a non-empty slice.
func WithReducer(fn func([]float64) float64) Option {
	return options.NoError(func(c *config) { c.reduce = fn })
}

// Mean is the default reducer.
func Mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}

	return sum / float64(len(vals))
}

// Sum reduces a bucket to the sum of its values.
func Sum(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}

	return sum
}

// Min reduces a bucket to its smallest value.
func Min(vals []float64) float64 {
	min := vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
	}

	return min
}

// Max reduces a bucket to its largest value.
func Max(vals []float64) float64 {
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}

	return max
}

type bucket struct {
	values  []float64
	missing int
}

// Aggregate buckets every record's timestamp to the start of its period at
// granularity g and reduces each (id, bucket) cell to one record. Output
// groups keep their first-appearance order and are time-ascending.
func Aggregate(f *frame.Frame, g period.Unit, opts ...Option) (*frame.Frame, error) {
	cfg := &config{reduce: Mean}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	src := f.Clone()
	out := src.Clone()
	out.Records = out.Records[:0]
	if g >= period.UnitDay {
		// Start-of-period stamps at day granularity and coarser are plain dates.
		out.Kind = frame.KindDate
	}

	for _, grp := range src.Groups() {
		buckets := make(map[int64]*bucket)
		stamps := make(map[int64]time.Time)
		var order []int64

		for _, row := range grp.Rows {
			r := src.Records[row]
			t := period.Bucket(r.Time, g)
			key := t.UnixNano()
			b, ok := buckets[key]
			if !ok {
				b = &bucket{}
				buckets[key] = b
				stamps[key] = t
				order = append(order, key)
			}
			if r.Missing {
				b.missing++
			} else {
				b.values = append(b.values, r.Value)
			}
		}

		sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
		for _, key := range order {
			b := buckets[key]
			rec := frame.Record{
				ID:   append(frame.ID(nil), grp.ID...),
				Time: stamps[key],
			}
			switch {
			case b.missing > 0 && !cfg.ignoreMissing, len(b.values) == 0:
				rec.Missing = true
				rec.Value = math.NaN()
			default:
				rec.Value = cfg.reduce(b.values)
			}
			out.Records = append(out.Records, rec)
		}
	}

	return out, nil
}
