package sliceutil

import (
	"fmt"
	"slices"

	"seqkit/seqs"
)

// SkipAt returns a copy of collection without the element at index.
// The input slice is never modified.
func SkipAt[T any](collection []T, index int) ([]T, error) {
	if index < 0 || index >= len(collection) {
		return nil, fmt.Errorf("sliceutil.SkipAt: index %d (len %d): %w", index, len(collection), seqs.ErrIndexOutOfRange)
	}
	res := make([]T, 0, len(collection)-1)
	res = append(res, collection[:index]...)
	return append(res, collection[index+1:]...), nil
}

// SkipAtOrDefault is like SkipAt but returns a copy of the whole collection
// when index is out of range.
func SkipAtOrDefault[T any](collection []T, index int) []T {
	if index < 0 || index >= len(collection) {
		return slices.Clone(collection)
	}
	res, _ := SkipAt(collection, index)
	return res
}
