package queues

import "iter"

// Queue is a FIFO of values of type T.
type Queue[T any] interface {
	// puts an element at the end of the queue, reports false if there is no room
	Enqueue(value T) bool
	// removes and returns the element at the front of the queue
	Dequeue() (value T, ok bool)
	// returns the element at the front of the queue without removing it
	Peek() (value T, ok bool)
	// copies up to len(dst) elements, front first, without removing them
	CopyTo(dst []T) int
	// iterates the elements front to back without removing them
	All() iter.Seq[T]
	// returns the number of elements in the queue
	Size() int
	// returns true if the queue is empty
	IsEmpty() bool
	// removes all elements from the queue
	Clear()
}
