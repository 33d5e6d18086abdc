package generators

import "fmt"

// Joining generates the cross product of tuple-valued factors, flattening
// each combination into a single tuple by concatenation. Joining a
// two-tuple factor with a three-tuple factor yields five-tuples.
type Joining[T any] struct {
	factors []Generator[[]T]
}

// Join composes tuple-valued factors into a joining generator. Same rules
// as Cross: nil factors are rejected with ErrNilGenerator, zero factors
// yield the empty sequence.
func Join[T any](factors ...Generator[[]T]) (Generator[[]T], error) {
	for i, factor := range factors {
		if factor == nil {
			return nil, fmt.Errorf("factor %d: %w", i, ErrNilGenerator)
		}
	}
	if len(factors) == 0 {
		return Empty[[]T](), nil
	}
	return &Joining[T]{factors}, nil
}

func (g *Joining[T]) Iterator() Iterator[[]T] {
	return &joiningIterator[T]{newOdometer(g.factors)}
}

// joiningIterator reuses the odometer and flattens its tuple of tuples.
type joiningIterator[T any] struct {
	*odometer[[]T]
}

func (it *joiningIterator[T]) Peek() []T {
	return flatten(it.odometer.Peek())
}

func (it *joiningIterator[T]) Next() []T {
	tuple := it.Peek()
	it.advance()
	return tuple
}

func flatten[T any](tuples [][]T) []T {
	size := 0
	for _, tuple := range tuples {
		size += len(tuple)
	}
	out := make([]T, 0, size)
	for _, tuple := range tuples {
		out = append(out, tuple...)
	}
	return out
}

// Lift wraps each element of g in a 1-tuple so that scalar generators can
// participate in a join.
func Lift[T any](g Generator[T]) Generator[[]T] {
	return liftGenerator[T]{g}
}

type liftGenerator[T any] struct {
	inner Generator[T]
}

func (g liftGenerator[T]) Iterator() Iterator[[]T] {
	return liftIterator[T]{g.inner.Iterator()}
}

type liftIterator[T any] struct {
	inner Iterator[T]
}

func (it liftIterator[T]) HasNext() bool {
	return it.inner.HasNext()
}

func (it liftIterator[T]) Peek() []T {
	return []T{it.inner.Peek()}
}

func (it liftIterator[T]) Next() []T {
	return []T{it.inner.Next()}
}
