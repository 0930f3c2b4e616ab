package geom

import "fmt"

// Point is an X, Y coordinate pair. Y grows downward, as in image.Point,
// so "top" means smaller Y.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neighbors returns the four points one step away from p along an axis.
func (p Point[T]) Neighbors() (left, right, top, bottom Point[T]) {
	left = Point[T]{X: p.X - 1, Y: p.Y}
	right = Point[T]{X: p.X + 1, Y: p.Y}
	top = Point[T]{X: p.X, Y: p.Y - 1}
	bottom = Point[T]{X: p.X, Y: p.Y + 1}
	return left, right, top, bottom
}

// Corners returns the four points diagonally adjacent to p.
func (p Point[T]) Corners() (topLeft, topRight, bottomLeft, bottomRight Point[T]) {
	topLeft = Point[T]{X: p.X - 1, Y: p.Y - 1}
	topRight = Point[T]{X: p.X + 1, Y: p.Y - 1}
	bottomLeft = Point[T]{X: p.X - 1, Y: p.Y + 1}
	bottomRight = Point[T]{X: p.X + 1, Y: p.Y + 1}
	return topLeft, topRight, bottomLeft, bottomRight
}

// ManhattanDistance returns |p.X-q.X| + |p.Y-q.Y|, the number of axis
// steps between p and q on a grid without diagonal moves.
func (p Point[T]) ManhattanDistance(q Point[T]) T {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// absDiff avoids negative intermediates so unsigned coordinates work.
func absDiff[T Scalar](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
