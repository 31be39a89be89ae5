package internal

import (
	"iter"
	"slices"
)

// Permutations iterates over every ordering of values, using Heap's algorithm.
// Each yielded slice is a fresh copy that the consumer may keep.
func Permutations[T any](values []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		perm := slices.Clone(values)
		count := make([]int, len(perm))

		if !yield(slices.Clone(perm)) {
			return // Stop if the consumer stops
		}

		for i := 1; i < len(perm); {
			if count[i] < i {
				if i%2 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[count[i]], perm[i] = perm[i], perm[count[i]]
				}
				if !yield(slices.Clone(perm)) {
					return // Stop if the consumer stops
				}
				count[i]++
				i = 1
			} else {
				count[i] = 0
				i++
			}
		}
	}
}
