package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds the elements of seq. An empty or nil sequence sums to zero.
func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	if seq == nil {
		return total
	}
	for v := range seq {
		total += v
	}
	return total
}

// Min returns the smallest element of seq, or false if seq is empty or nil.
func Min[T Number](seq iter.Seq[T]) (T, bool) {
	return fold(seq, func(acc, v T) T {
		if v < acc {
			return v
		}
		return acc
	})
}

// Max returns the largest element of seq, or false if seq is empty or nil.
func Max[T Number](seq iter.Seq[T]) (T, bool) {
	return fold(seq, func(acc, v T) T {
		if v > acc {
			return v
		}
		return acc
	})
}

// Product multiplies the elements of seq. An empty sequence has no product
// and returns ErrEmptySequence.
func Product[T Number](seq iter.Seq[T]) (T, error) {
	return foldNonEmpty("Product", seq, func(acc, v T) T { return acc * v })
}

// And returns the bitwise AND of the elements of seq.
func And[T constraints.Integer](seq iter.Seq[T]) (T, error) {
	return foldNonEmpty("And", seq, func(acc, v T) T { return acc & v })
}

// Or returns the bitwise OR of the elements of seq.
func Or[T constraints.Integer](seq iter.Seq[T]) (T, error) {
	return foldNonEmpty("Or", seq, func(acc, v T) T { return acc | v })
}

// Xor returns the bitwise XOR of the elements of seq.
func Xor[T constraints.Integer](seq iter.Seq[T]) (T, error) {
	return foldNonEmpty("Xor", seq, func(acc, v T) T { return acc ^ v })
}

// fold seeds the accumulator with the first element. ok is false for an
// empty or nil sequence.
func fold[T any](seq iter.Seq[T], f func(acc, v T) T) (acc T, ok bool) {
	if seq == nil {
		return acc, false
	}
	for v := range seq {
		if !ok {
			acc, ok = v, true
			continue
		}
		acc = f(acc, v)
	}
	return acc, ok
}

func foldNonEmpty[T any](op string, seq iter.Seq[T], f func(acc, v T) T) (T, error) {
	if seq == nil {
		var zero T
		return zero, nilSource(op)
	}
	acc, ok := fold(seq, f)
	if !ok {
		return acc, &ArgumentError{Op: op, Arg: "seq", Err: ErrEmptySequence}
	}
	return acc, nil
}
