package sliceutil

import (
	"fmt"
	"slices"

	"seqkit/seqs"
)

// Pairs returns every unordered pair (collection[i], collection[j]) with
// i < j, ordered by i and then j.
func Pairs[T any](collection []T) []seqs.Pair[T] {
	n := len(collection)
	if n < 2 {
		return []seqs.Pair[T]{}
	}
	// exact pre-allocation: n*(n-1)/2 pairs
	return slices.AppendSeq(make([]seqs.Pair[T], 0, n*(n-1)/2), seqs.PairsOf(collection))
}

// Combinations returns every length-element subsequence of collection in
// lexicographic index order. See seqs.Combinations.
func Combinations[T any](collection []T, length int) ([][]T, error) {
	if length < 0 {
		return nil, fmt.Errorf("sliceutil.Combinations: length %d: %w", length, seqs.ErrNegativeLength)
	}
	combos, err := seqs.Combinations(slices.Values(collection), length)
	if err != nil {
		return nil, err
	}
	return slices.AppendSeq([][]T{}, combos), nil
}
