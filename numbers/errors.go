package numbers

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrOverflow reports a result that does not fit in the operand type.
	ErrOverflow = errors.New("arithmetic overflow")
	ErrNegative = errors.New("number must not be negative")
	ErrEmpty    = errors.New("no values accumulated")
)

type Number interface {
	constraints.Integer | constraints.Float
}

// mul10Overflows reports whether a*10 does not fit in T.
func mul10Overflows[T constraints.Integer](a T) bool {
	return (a*10)/10 != a
}

// addOverflows reports whether a+b left the range of T. Floats saturate
// to infinity rather than wrap, so they never report overflow here.
func addOverflows[T Number](a, b, sum T) bool {
	return (b > 0 && sum < a) || (b < 0 && sum > a)
}
