package queues

import (
	"iter"
	"math/bits"
)

// ArrayQueue is a bounded FIFO backed by a circular array (ring buffer).
// It holds at most Limit elements. Enqueue refuses values once full, while
// Push makes room by evicting the oldest value, which is what a sliding
// window over a stream needs.
//
// The backing array starts small and doubles as elements arrive, so a large
// limit costs nothing until the queue actually fills.
type ArrayQueue[T any] struct {
	buf   []T // backing array, len(buf) is a power of two
	head  int // index of the first element
	size  int // number of elements in the queue
	mask  int // len(buf) - 1, used for fast modulo: idx & mask
	limit int // logical capacity
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

const initialCapacity = 16

// NewArrayQueue creates an ArrayQueue holding at most limit elements.
// A limit below one is treated as one.
func NewArrayQueue[T any](limit int) *ArrayQueue[T] {
	if limit < 1 {
		limit = 1
	}

	capacity := ceilPow2(min(limit, initialCapacity))
	return &ArrayQueue[T]{
		buf:   make([]T, capacity),
		mask:  capacity - 1,
		limit: limit,
	}
}

// ceilPow2 returns the next power of two >= n, for n >= 1.
func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow doubles the backing array, unwrapping the elements to start at index 0.
// Callers only grow while size < limit, so the array never exceeds
// ceilPow2(limit).
func (aq *ArrayQueue[T]) grow() {
	newCapacity := ceilPow2(aq.size + 1)
	newBuf := make([]T, newCapacity)

	if aq.head+aq.size <= len(aq.buf) {
		// not wrapped around
		copy(newBuf, aq.buf[aq.head:aq.head+aq.size])
	} else {
		// wrapped around: head to end, then start to tail
		n := copy(newBuf, aq.buf[aq.head:])
		copy(newBuf[n:], aq.buf[:aq.tail()])
	}

	clear(aq.buf)
	aq.buf = newBuf
	aq.head = 0
	aq.mask = newCapacity - 1
}

func (aq *ArrayQueue[T]) tail() int {
	return (aq.head + aq.size) & aq.mask
}

// put appends value, growing the backing array if needed. The caller has
// checked that size < limit.
func (aq *ArrayQueue[T]) put(value T) {
	if aq.size == len(aq.buf) {
		aq.grow()
	}
	aq.buf[aq.tail()] = value
	aq.size++
}

func (aq *ArrayQueue[T]) Enqueue(value T) bool {
	if aq.size == aq.limit {
		return false
	}
	aq.put(value)
	return true
}

// Push appends value, evicting and returning the front element if the
// queue was already full.
func (aq *ArrayQueue[T]) Push(value T) (evicted T, ok bool) {
	if aq.size == aq.limit {
		evicted, ok = aq.Dequeue()
	}
	aq.put(value)
	return evicted, ok
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero // clear reference
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

// CopyTo copies min(len(dst), Size()) elements into dst, front first.
func (aq *ArrayQueue[T]) CopyTo(dst []T) int {
	n := min(len(dst), aq.size)
	if n == 0 {
		return 0
	}
	if aq.head+n <= len(aq.buf) {
		return copy(dst[:n], aq.buf[aq.head:aq.head+n])
	}
	// wrapped around
	part1 := copy(dst, aq.buf[aq.head:])
	copy(dst[part1:n], aq.buf[:n-part1])
	return n
}

func (aq *ArrayQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range aq.size {
			if !yield(aq.buf[(aq.head+i)&aq.mask]) {
				return
			}
		}
	}
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) Limit() int {
	return aq.limit
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) IsFull() bool {
	return aq.size == aq.limit
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}
