package quadtree

import "github.com/leonidovia/UltimateQuadTree/geom"

// Rect is the rectangle type used for the tree and its cells.
type Rect = geom.Rect

// Box is the extent of a stored object.
type Box = geom.Box

// Bounder extracts the extent of objects of type T.
//
// Implementations must return Right >= Left and Bottom >= Top, and must keep
// returning the same extent for an object while it is stored. Neither is
// checked: a violation leads to misplaced objects, not to errors.
type Bounder[T any] interface {
	Bounds(obj T) Box
}

// BoundsFunc adapts an ordinary function to the Bounder interface.
type BoundsFunc[T any] func(obj T) Box

// Bounds calls f(obj).
func (f BoundsFunc[T]) Bounds(obj T) Box {
	return f(obj)
}
