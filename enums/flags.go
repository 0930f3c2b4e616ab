// Package enums provides bit-flag tests for integer-backed enum types such as
//
//	type Perm uint8
//
//	const (
//		Read Perm = 1 << iota
//		Write
//		Exec
//	)
//
// The bitwise operations run on the enum's own underlying width, so no
// conversion or reinterpretation is involved.
package enums

import "golang.org/x/exp/constraints"

// HasAnyFlag reports whether value has at least one of the bits in flag set.
func HasAnyFlag[E constraints.Integer](value, flag E) bool {
	return value&flag != 0
}

// HasAllFlags reports whether value has every bit in flags set. An empty
// flags mask is trivially contained.
func HasAllFlags[E constraints.Integer](value, flags E) bool {
	return value&flags == flags
}
