package seqs

import (
	"iter"

	"seqkit/queues"
)

// Adjacent yields every run of length consecutive elements of seq, sliding
// by one element at a time. For a source of n elements it yields n-length+1
// windows, or none when length is zero or greater than n.
//
// Only the current window is buffered, so seq may be infinite. Each yielded
// slice is a fresh copy that the consumer may keep or modify.
func Adjacent[T any](seq iter.Seq[T], length int) (iter.Seq[[]T], error) {
	if seq == nil {
		return nil, nilSource("Adjacent")
	}
	if length < 0 {
		return nil, negativeLength("Adjacent", length)
	}

	return func(yield func([]T) bool) {
		if length == 0 {
			return
		}

		window := queues.NewArrayQueue[T](length)
		for v := range seq {
			window.Push(v)
			if !window.IsFull() {
				continue
			}

			out := make([]T, length)
			window.CopyTo(out)
			if !yield(out) {
				return
			}
		}
	}, nil
}

// Pairwise yields each element of seq paired with its successor:
// (s[0], s[1]), (s[1], s[2]), ... Empty and single-element sources
// yield nothing.
func Pairwise[T any](seq iter.Seq[T]) (iter.Seq[Pair[T]], error) {
	if seq == nil {
		return nil, nilSource("Pairwise")
	}

	return func(yield func(Pair[T]) bool) {
		var prev T
		primed := false
		for v := range seq {
			if !primed {
				prev, primed = v, true
				continue
			}
			if !yield(Pair[T]{First: prev, Second: v}) {
				return
			}
			prev = v
		}
	}, nil
}

// Quintuples yields every run of five consecutive elements of seq.
// A source of n elements yields max(0, n-4) quintuples.
func Quintuples[T any](seq iter.Seq[T]) (iter.Seq[Quintuple[T]], error) {
	if seq == nil {
		return nil, nilSource("Quintuples")
	}

	return func(yield func(Quintuple[T]) bool) {
		// q.Fifth is only a scratch slot until four elements have been seen
		var q Quintuple[T]
		seen := 0
		for v := range seq {
			if seen < 4 {
				switch seen {
				case 0:
					q.First = v
				case 1:
					q.Second = v
				case 2:
					q.Third = v
				case 3:
					q.Fourth = v
				}
				seen++
				continue
			}

			q.Fifth = v
			if !yield(q) {
				return
			}
			q.First, q.Second, q.Third, q.Fourth = q.Second, q.Third, q.Fourth, q.Fifth
		}
	}, nil
}
