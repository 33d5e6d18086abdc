package generators

import "fmt"

// CrossProduct generates every combination of its factors as a tuple, in
// odometer order: the last factor varies fastest, like digits of a
// mixed-radix counter with position 0 as the most significant digit. The
// sequence length is the product of the factor lengths. Factors are held,
// not copied, and the generator is immutable after construction.
type CrossProduct[T any] struct {
	factors []Generator[T]
}

// Cross composes factors into a cross-product generator. A nil factor is
// rejected with ErrNilGenerator before anything is constructed. The
// product of zero factors is the empty sequence, not a single empty tuple.
func Cross[T any](factors ...Generator[T]) (Generator[[]T], error) {
	for i, factor := range factors {
		if factor == nil {
			return nil, fmt.Errorf("factor %d: %w", i, ErrNilGenerator)
		}
	}
	if len(factors) == 0 {
		return Empty[[]T](), nil
	}
	return &CrossProduct[T]{factors}, nil
}

func (g *CrossProduct[T]) Iterator() Iterator[[]T] {
	return newOdometer(g.factors)
}

// odometer holds one live sub-iterator per factor. Shared by CrossProduct
// and Joining.
type odometer[T any] struct {
	factors   []Generator[T]
	iterators []Iterator[T]
}

func newOdometer[T any](factors []Generator[T]) *odometer[T] {
	iterators := make([]Iterator[T], len(factors))
	for i, factor := range factors {
		iterators[i] = factor.Iterator()
	}
	return &odometer[T]{factors: factors, iterators: iterators}
}

// HasNext reports whether every position holds a value. A single exhausted
// position exhausts the whole product.
func (o *odometer[T]) HasNext() bool {
	for _, it := range o.iterators {
		if !it.HasNext() {
			return false
		}
	}
	return true
}

func (o *odometer[T]) Peek() []T {
	tuple := make([]T, len(o.iterators))
	for i, it := range o.iterators {
		tuple[i] = it.Peek()
	}
	return tuple
}

func (o *odometer[T]) Next() []T {
	// Capture before advancing. Next returns exactly what Peek showed.
	tuple := o.Peek()
	o.advance()
	return tuple
}

// advance consumes the rightmost position and carries leftward: each
// position exhausted by its consume restarts from its factor and the carry
// moves to the next more significant position. Position 0 never restarts;
// its exhaustion ends the whole sequence.
func (o *odometer[T]) advance() {
	for i := len(o.iterators) - 1; ; i-- {
		o.iterators[i].Next()
		if o.iterators[i].HasNext() || 0 == i {
			return
		}
		o.iterators[i] = o.factors[i].Iterator()
	}
}
