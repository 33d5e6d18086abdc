package generators

// Of returns a generator over the given values, in order. The backing
// slice is referenced, not copied.
func Of[T any](values ...T) Generator[T] {
	return sliceGenerator[T]{values}
}

// Empty returns a generator of the empty sequence.
func Empty[T any]() Generator[T] {
	return sliceGenerator[T]{}
}

type sliceGenerator[T any] struct {
	values []T
}

func (g sliceGenerator[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{values: g.values}
}

type sliceIterator[T any] struct {
	values []T
	pos    int
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.pos < len(it.values)
}

func (it *sliceIterator[T]) Peek() T {
	return it.values[it.pos]
}

func (it *sliceIterator[T]) Next() T {
	value := it.values[it.pos]
	it.pos++
	return value
}
