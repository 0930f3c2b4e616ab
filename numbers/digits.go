package numbers

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NumberOfDigits returns the number of base-10 digits in n, ignoring the
// sign. Zero has one digit.
func NumberOfDigits[T constraints.Integer](n T) int {
	if n == 0 {
		return 1
	}
	count := 0
	// dividing toward zero keeps the minimum signed value in range
	for n != 0 {
		n /= 10
		count++
	}
	return count
}

// Reverse returns n with its decimal digits in reverse order, keeping the
// sign: Reverse(1234) == 4321, Reverse(-120) == -21.
// It returns ErrOverflow if the result does not fit in T.
func Reverse[T constraints.Integer](n T) (T, error) {
	orig := n
	var rev T
	for n != 0 {
		// for negative n the remainder is negative too
		d := n % 10
		if mul10Overflows(rev) {
			return 0, fmt.Errorf("numbers.Reverse: %d: %w", orig, ErrOverflow)
		}
		m := rev * 10
		next := m + d
		if addOverflows(m, d, next) {
			return 0, fmt.Errorf("numbers.Reverse: %d: %w", orig, ErrOverflow)
		}
		rev = next
		n /= 10
	}
	return rev, nil
}

// IsPalindrome reports whether the decimal digits of n read the same in
// both directions. Negative numbers are never palindromes.
func IsPalindrome[T constraints.Integer](n T) bool {
	if n < 0 {
		return false
	}
	rev, err := Reverse(n)
	if err != nil {
		// a palindrome always reverses to itself, so it cannot overflow
		return false
	}
	return rev == n
}

// Split divides the digits of n into a left and a right part. The right
// part receives the larger half when the digit count is odd:
// Split(1234) == (12, 34), Split(1234567) == (123, 4567).
func Split[T constraints.Integer](n T) (left, right T, err error) {
	if n < 0 {
		return 0, 0, fmt.Errorf("numbers.Split: %d: %w", n, ErrNegative)
	}

	digits := NumberOfDigits(n)
	half := digits/2 + digits%2

	divisor := T(1)
	for range half {
		divisor *= 10
	}
	return n / divisor, n % divisor, nil
}
