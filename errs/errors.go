// Package errs defines the sentinel errors shared by all tsframe packages.
//
// Operations wrap these sentinels with fmt.Errorf("%w: ...") to add context,
// so callers can match on the category with errors.Is while still seeing the
// detail in the message.
package errs

import "errors"

var (
	// ErrSchema indicates that column roles could not be resolved for a
	// tabular input: more than one plausible time or value column, a missing
	// role column, or zero usable rows after role assignment.
	ErrSchema = errors.New("ambiguous or missing column roles")

	// ErrInsufficientData indicates that an operation requiring frequency
	// detection or window-taking was given fewer than 2 timestamps.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrIrregularSeries indicates that an integer-mode shift or a
	// regularization was requested on a sequence with no constant detected
	// frequency.
	ErrIrregularSeries = errors.New("irregular series")

	// ErrIncompatibleSeries indicates a merge of frames whose identifier
	// column sets differ by name or cardinality.
	ErrIncompatibleSeries = errors.New("incompatible series")

	// ErrNotBoxable indicates an operand recognized as neither a boxable
	// series nor a plain numeric value.
	ErrNotBoxable = errors.New("not a boxable series")

	// ErrInvalidDuration indicates a duration specification string that does
	// not match the "[sign]integer unit[s]" grammar.
	ErrInvalidDuration = errors.New("invalid duration specification")
)
