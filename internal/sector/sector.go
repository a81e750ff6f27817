// Package sector implements the recursive partition cells of the quadtree.
//
// A sector is either a leaf, holding objects in a flat set, or a node,
// owning one child sector per quadrant. Sectors live in an arena and refer to
// their children by ID. All operations go through a Store, which carries the
// configuration shared by every sector of one tree.
//
// Traversals at this level report duplicates: an object that straddles a
// midline is stored in each overlapped quadrant. De-duplication is left to
// the caller.
package sector

import (
	"github.com/leonidovia/UltimateQuadTree/geom"
	"github.com/leonidovia/UltimateQuadTree/internal/arena"
)

// Kind is the variant tag of a Sector.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindNode
)

func (k Kind) String() string {
	if k == KindNode {
		return "node"
	}
	return "leaf"
}

// Sector is a tagged union over the leaf and node variants.
// Only the payload matching Kind is meaningful.
type Sector[T comparable] struct {
	Kind  Kind
	Level int
	Rect  geom.Rect

	// leaf payload
	bucket map[T]struct{}

	// node payload
	children [4]arena.ID
	inserted int
}

// Len returns the number of objects held by a leaf, or zero for a node.
func (s *Sector[T]) Len() int {
	return len(s.bucket)
}

// Inserted returns the number of successful inserts routed through a node,
// net of removals. It is zero for a leaf.
func (s *Sector[T]) Inserted() int {
	return s.inserted
}

// Child returns the ID of the child in quadrant q, or arena.Invalid for a leaf.
func (s *Sector[T]) Child(q geom.Quadrant) arena.ID {
	if s.Kind != KindNode {
		return arena.Invalid
	}
	return s.children[q]
}

// Config is shared by all sectors of one tree and never changes.
type Config[T comparable] struct {
	// MaxObjects is the bucket size at which a leaf above MaxLevel refuses inserts.
	MaxObjects int
	// MaxLevel is the deepest level; leaves there grow without bound.
	MaxLevel int
	// Bounds extracts the extent of an object.
	Bounds func(T) geom.Box

	// OnQuarter, if set, is called after a leaf has been split.
	OnQuarter func(level int, r geom.Rect)
	// OnCollapse, if set, is called after a node has been merged into a leaf.
	OnCollapse func(level int, r geom.Rect)
}

// Cell describes one sector for diagnostics.
type Cell struct {
	Rect    geom.Rect
	Level   int
	Leaf    bool
	Objects int
}
