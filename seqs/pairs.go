package seqs

import (
	"iter"
	"slices"
)

// Pairs yields every unordered pair (s[i], s[j]) with i < j, ordered by i
// and then by j. A source of n elements yields n*(n-1)/2 pairs.
//
// The source is collected into a slice each time the result is ranged
// over, so it must be finite. Use [PairsOf] when the elements are already
// in a slice.
func Pairs[T any](seq iter.Seq[T]) (iter.Seq[Pair[T]], error) {
	if seq == nil {
		return nil, nilSource("Pairs")
	}

	return func(yield func(Pair[T]) bool) {
		for p := range PairsOf(slices.Collect(seq)) {
			if !yield(p) {
				return
			}
		}
	}, nil
}

// PairsOf is [Pairs] over a slice, indexing it directly without a copy.
func PairsOf[T any](s []T) iter.Seq[Pair[T]] {
	return func(yield func(Pair[T]) bool) {
		for i := 0; i < len(s); i++ {
			for j := i + 1; j < len(s); j++ {
				if !yield(Pair[T]{First: s[i], Second: s[j]}) {
					return
				}
			}
		}
	}
}
