// Package generators implements lazy, restartable sequence generators and
// their composition into cartesian products.
//
// A Generator produces a fresh Iterator on demand; iterating never mutates
// the generator. Iterators follow a strict protocol: callers check HasNext
// before reading, Peek reads without consuming, Next consumes.
package generators

import "errors"

// ErrNilGenerator reports a nil factor passed to a composing constructor.
var ErrNilGenerator = errors.New("nil generator")

// Iterator is a single-pass cursor over one sequence of a Generator.
//
// Peek returns the current element without consuming it; repeated calls
// return the same element. Next returns that element and advances one step.
// Both require HasNext to be true; calling them on an exhausted iterator
// panics.
type Iterator[T any] interface {
	HasNext() bool
	Peek() T
	Next() T
}

// Generator is a restartable factory of lazy sequences. Every call to
// Iterator starts an independent iteration over the same logical elements.
// Concurrent iterations do not interfere.
type Generator[T any] interface {
	Iterator() Iterator[T]
}
