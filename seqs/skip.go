package seqs

import (
	"iter"

	"deedles.dev/xiter"
)

// SkipAt yields the elements of seq except the one at index.
//
// A negative index is rejected immediately. Whether index lies past the
// end can only be known once seq is exhausted; in that case the sequence
// ends with a single (zero, err) pair where err wraps ErrIndexOutOfRange.
// Every other pair carries a nil error.
func SkipAt[T any](seq iter.Seq[T], index int) (iter.Seq2[T, error], error) {
	if seq == nil {
		return nil, nilSource("SkipAt")
	}
	if index < 0 {
		return nil, indexOutOfRange("SkipAt", index)
	}

	return func(yield func(T, error) bool) {
		skipped := false
		for i, v := range xiter.Enumerate(seq) {
			if i == index {
				skipped = true
				continue
			}
			if !yield(v, nil) {
				return
			}
		}

		if !skipped {
			var zero T
			yield(zero, indexOutOfRange("SkipAt", index))
		}
	}, nil
}

// SkipAtOrDefault yields the elements of seq except the one at index. An
// index that is negative or past the end removes nothing.
func SkipAtOrDefault[T any](seq iter.Seq[T], index int) (iter.Seq[T], error) {
	if seq == nil {
		return nil, nilSource("SkipAtOrDefault")
	}
	if index < 0 {
		return seq, nil
	}

	return func(yield func(T) bool) {
		for i, v := range xiter.Enumerate(seq) {
			if i == index {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}
