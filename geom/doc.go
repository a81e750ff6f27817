// Package geom provides the axis-aligned geometry used by the quadtree.
//
// Rect is the partition cell. It is a plain value: quadrants and edges are
// computed on demand and never cached. Box is the extent of a stored object
// as reported by the caller's bounds capability.
//
// Screen coordinates are assumed: Y grows downwards, so Top <= Bottom.
package geom
