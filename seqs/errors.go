package seqs

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ArgumentError.
var (
	ErrNilSource       = errors.New("source sequence is nil")
	ErrNegativeLength  = errors.New("length must not be negative")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptySequence   = errors.New("sequence contains no elements")
)

// ArgumentError reports an invalid argument passed to one of the sequence
// operations. Err is one of the package sentinels and can be matched with
// errors.Is.
type ArgumentError struct {
	Op    string // operation, e.g. "Adjacent"
	Arg   string // parameter name
	Value any    // offending value, nil for a nil source
	Err   error
}

func (e *ArgumentError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("seqs.%s: %s: %v", e.Op, e.Arg, e.Err)
	}
	return fmt.Sprintf("seqs.%s: %s %v: %v", e.Op, e.Arg, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func nilSource(op string) error {
	return &ArgumentError{Op: op, Arg: "seq", Err: ErrNilSource}
}

func negativeLength(op string, length int) error {
	return &ArgumentError{Op: op, Arg: "length", Value: length, Err: ErrNegativeLength}
}

func indexOutOfRange(op string, index int) error {
	return &ArgumentError{Op: op, Arg: "index", Value: index, Err: ErrIndexOutOfRange}
}
