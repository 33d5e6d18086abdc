package generators

import (
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
)

// All returns a range-over-func view of a fresh iteration of g.
func All[T any](g Generator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := g.Iterator(); it.HasNext(); {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Collect drains a fresh iteration of g into a slice.
func Collect[T any](g Generator[T]) (out []T) {
	for it := g.Iterator(); it.HasNext(); {
		out = append(out, it.Next())
	}
	return
}

// CollectSet drains a fresh iteration of g into a set, dropping duplicates.
func CollectSet[T comparable](g Generator[T]) mapset.Set[T] {
	set := mapset.NewSet[T]()
	for it := g.Iterator(); it.HasNext(); {
		set.Add(it.Next())
	}
	return set
}

// Count counts the elements of a fresh iteration of g.
func Count[T any](g Generator[T]) (count int) {
	for it := g.Iterator(); it.HasNext(); it.Next() {
		count++
	}
	return
}
