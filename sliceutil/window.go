package sliceutil

import (
	"fmt"

	"seqkit/seqs"
)

// Adjacent returns every run of length consecutive elements of collection.
// It is the random-access counterpart of seqs.Adjacent: all windows are
// allocated up front in a single backing array, and each window is a
// full-capacity-limited subslice so appending to one never overwrites
// another.
func Adjacent[T any](collection []T, length int) ([][]T, error) {
	if length < 0 {
		return nil, fmt.Errorf("sliceutil.Adjacent: length %d: %w", length, seqs.ErrNegativeLength)
	}
	if length == 0 || length > len(collection) {
		return [][]T{}, nil
	}

	n := len(collection) - length + 1
	backing := make([]T, n*length)
	res := make([][]T, n)
	for i := range res {
		w := backing[i*length : (i+1)*length : (i+1)*length]
		copy(w, collection[i:i+length])
		res[i] = w
	}
	return res, nil
}
