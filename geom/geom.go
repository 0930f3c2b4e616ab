// Package geom provides utilities for points on an integer or real grid.
//
// It is patterned after image.Point, but generic over the coordinate type.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the coordinate types geom can handle.
type Scalar interface {
	~float32 | ~float64 | constraints.Integer
}
