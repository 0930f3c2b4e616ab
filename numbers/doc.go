// Package numbers provides generic helpers for the decimal digits of
// integers and an Accumulator for running statistics.
//
// Arithmetic that could leave the range of the operand type is checked and
// reported as ErrOverflow instead of silently wrapping.
package numbers
