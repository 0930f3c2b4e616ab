package numbers

import "fmt"

// Accumulator keeps the minimum, maximum, sum and count of the values added
// to it. The zero value is ready to use.
type Accumulator[T Number] struct {
	min, max T
	sum      T
	count    int
}

// Add records v. If the running sum would overflow T, Add returns
// ErrOverflow and leaves the accumulator unchanged.
func (a *Accumulator[T]) Add(v T) error {
	sum := a.sum + v
	if addOverflows(a.sum, v, sum) {
		return fmt.Errorf("numbers.Accumulator.Add: %v: %w", v, ErrOverflow)
	}

	if a.count == 0 || v < a.min {
		a.min = v
	}
	if a.count == 0 || v > a.max {
		a.max = v
	}
	a.sum = sum
	a.count++
	return nil
}

// Min returns the smallest value added, or false if there is none.
func (a *Accumulator[T]) Min() (T, bool) {
	return a.min, a.count > 0
}

// Max returns the largest value added, or false if there is none.
func (a *Accumulator[T]) Max() (T, bool) {
	return a.max, a.count > 0
}

func (a *Accumulator[T]) Sum() T {
	return a.sum
}

func (a *Accumulator[T]) Count() int {
	return a.count
}

// Mean returns Sum divided by Count. For integer types the division
// truncates toward zero, and Mean returns ErrOverflow when Count itself
// does not fit in T.
func (a *Accumulator[T]) Mean() (T, error) {
	if a.count == 0 {
		return 0, fmt.Errorf("numbers.Accumulator.Mean: %w", ErrEmpty)
	}
	n, ok := countAs[T](a.count)
	if !ok {
		return 0, fmt.Errorf("numbers.Accumulator.Mean: count %d: %w", a.count, ErrOverflow)
	}
	return a.sum / n, nil
}

// countAs converts count to T. It reports false when T is an integer type
// too narrow to hold count; float types always convert, possibly rounded.
func countAs[T Number](count int) (T, bool) {
	n := T(count)
	if T(1)/2 != 0 {
		return n, true
	}
	return n, n > 0 && int(n) == count
}

// Reset discards everything added so far.
func (a *Accumulator[T]) Reset() {
	*a = Accumulator[T]{}
}
