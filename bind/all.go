package bind

import (
	"fmt"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/frame"
)

// All binds any number of operands into one frame with a left-to-right
// fold: boxable operands merge via Combine, numeric operands append via
// Extend. Numeric operands appearing before the first boxable one are
// prepended (a backward extension), matching their position in the argument
// list.
//
// The output's representation tag is taken from the first boxable operand
// in the original list. At least one operand must be boxable, else
// errs.ErrNotBoxable; an operand that is neither boxable nor numeric also
// fails with errs.ErrNotBoxable.
func All(operands ...any) (*frame.Frame, error) {
	tag, err := resolveTag(operands)
	if err != nil {
		return nil, err
	}

	var (
		acc     *frame.Frame
		leading []float64
	)
	for _, op := range operands {
		if vals, ok := numericValues(op); ok {
			if acc == nil {
				leading = append(leading, vals...)
				continue
			}
			acc, err = Extend(acc, vals, false)
			if err != nil {
				return nil, err
			}

			continue
		}

		next, err := frame.Adopt(op)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = next
			if len(leading) > 0 {
				acc, err = Extend(acc, leading, true)
				if err != nil {
					return nil, err
				}
			}

			continue
		}
		acc, err = Combine(acc, next)
		if err != nil {
			return nil, err
		}
	}

	acc.Origin = tag

	return acc, nil
}

// resolveTag finds the representation tag of the first boxable operand.
// This is an explicit first pass so the tag does not depend on fold order.
func resolveTag(operands []any) (string, error) {
	for _, op := range operands {
		if f, ok := op.(*frame.Frame); ok {
			return f.Origin, nil
		}
		if b, ok := frame.BoxerFor(op); ok {
			return b.Tag(), nil
		}
	}

	return "", fmt.Errorf("%w: at least one operand must be a boxable series", errs.ErrNotBoxable)
}

// numericValues recognizes plain numeric operands and normalizes them to a
// value slice.
func numericValues(op any) ([]float64, bool) {
	switch v := op.(type) {
	case float64:
		return []float64{v}, true
	case float32:
		return []float64{float64(v)}, true
	case int:
		return []float64{float64(v)}, true
	case int64:
		return []float64{float64(v)}, true
	case []float64:
		return v, true
	case []int:
		out := make([]float64, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return out, true
	default:
		return nil, false
	}
}
