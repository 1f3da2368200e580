// Package options provides generic functional-option plumbing shared by the
// packages that accept configuration (frame adoption, aggregation).
package options

// Option configures a target of type T. Implementations are created with New
// or NoError; packages expose them under their own named aliases.
type Option[T any] interface {
	apply(T) error
}

type funcOption[T any] struct {
	fn func(T) error
}

func (o funcOption[T]) apply(target T) error {
	return o.fn(target)
}

// New wraps a fallible configuration function as an Option.
func New[T any](fn func(T) error) Option[T] {
	return funcOption[T]{fn: fn}
}

// NoError wraps an infallible configuration function as an Option.
func NoError[T any](fn func(T)) Option[T] {
	return funcOption[T]{fn: func(target T) error {
		fn(target)
		return nil
	}}
}

// Apply runs the given options against target in order, stopping at the
// first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
