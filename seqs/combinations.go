package seqs

import (
	"iter"
	"slices"
)

// combinationFrame is a partially built combination whose last element was
// taken from index last of the source.
type combinationFrame[T any] struct {
	last    int
	partial []T
}

// Combinations yields every length-element subsequence of seq, keeping the
// source order inside each combination. Combinations are produced in
// lexicographic order of the selected indices, so for [a b c] and length 2
// the output is [a b], [a c], [b c].
//
// A length of zero yields a single empty combination; a length greater
// than the number of elements yields nothing. For any other length the
// source is collected into a slice when ranging starts and must be finite.
func Combinations[T any](seq iter.Seq[T], length int) (iter.Seq[[]T], error) {
	if seq == nil {
		return nil, nilSource("Combinations")
	}
	if length < 0 {
		return nil, negativeLength("Combinations", length)
	}

	return func(yield func([]T) bool) {
		if length == 0 {
			yield([]T{})
			return
		}

		src := slices.Collect(seq)
		if length > len(src) {
			return
		}

		// Depth-first over an explicit stack. Children are pushed with the
		// highest index first so they pop in ascending order.
		stack := []combinationFrame[T]{{last: -1, partial: nil}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if len(top.partial) == length {
				if !yield(top.partial) {
					return
				}
				continue
			}

			// the last candidate that still leaves enough elements behind it
			need := length - len(top.partial)
			for i := len(src) - need; i > top.last; i-- {
				next := make([]T, len(top.partial)+1, length)
				copy(next, top.partial)
				next[len(top.partial)] = src[i]
				stack = append(stack, combinationFrame[T]{last: i, partial: next})
			}
		}
	}, nil
}
