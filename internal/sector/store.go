package sector

import (
	"github.com/leonidovia/UltimateQuadTree/geom"
	"github.com/leonidovia/UltimateQuadTree/internal/arena"
)

// Store owns the sectors of one tree.
type Store[T comparable] struct {
	cfg  Config[T]
	slab *arena.Slab[Sector[T]]
}

// NewStore creates an empty store.
func NewStore[T comparable](cfg Config[T]) *Store[T] {
	return &Store[T]{
		cfg:  cfg,
		slab: arena.New[Sector[T]](),
	}
}

// Config returns the configuration shared by all sectors.
func (s *Store[T]) Config() Config[T] {
	return s.cfg
}

// Get returns the sector for id, or nil if id is not live.
func (s *Store[T]) Get(id arena.ID) *Sector[T] {
	return s.slab.Get(id)
}

// Len returns the number of live sectors.
func (s *Store[T]) Len() int {
	return s.slab.Len()
}

// Reset drops every sector.
func (s *Store[T]) Reset() {
	s.slab.Reset()
}

// NewLeaf allocates an empty leaf.
func (s *Store[T]) NewLeaf(level int, r geom.Rect) arena.ID {
	id, sec := s.slab.Alloc()
	sec.Kind = KindLeaf
	sec.Level = level
	sec.Rect = r
	sec.bucket = make(map[T]struct{})
	return id
}

func (s *Store[T]) newNode(level int, r geom.Rect) arena.ID {
	var children [4]arena.ID
	for _, q := range geom.Quadrants {
		children[q] = s.NewLeaf(level+1, r.Quadrant(q))
	}

	id, sec := s.slab.Alloc()
	sec.Kind = KindNode
	sec.Level = level
	sec.Rect = r
	sec.children = children
	return id
}

// Clear discards the objects of a leaf, or releases every child of a node.
func (s *Store[T]) Clear(id arena.ID) {
	sec := s.slab.Get(id)
	if sec == nil {
		return
	}

	switch sec.Kind {
	case KindLeaf:
		clear(sec.bucket)
	case KindNode:
		for i, child := range sec.children {
			s.Release(child)
			sec.children[i] = arena.Invalid
		}
		sec.inserted = 0
	}
}

// Release clears id and frees its slot.
func (s *Store[T]) Release(id arena.ID) {
	s.Clear(id)
	s.slab.Free(id)
}

// TryInsert stores obj below id.
//
// A leaf refuses once it holds MaxObjects objects, unless it sits at
// MaxLevel. A node never refuses: a refusing child is quartered and the
// insert retried.
func (s *Store[T]) TryInsert(id arena.ID, obj T) bool {
	sec := s.slab.Get(id)

	switch sec.Kind {
	case KindLeaf:
		if len(sec.bucket) >= s.cfg.MaxObjects && sec.Level < s.cfg.MaxLevel {
			return false
		}
		sec.bucket[obj] = struct{}{}
		return true

	case KindNode:
		member := sec.Rect.Membership(s.cfg.Bounds(obj))
		stored := false
		for _, q := range geom.Quadrants {
			if !member[q] {
				continue
			}
			child := sec.children[q]
			if !s.TryInsert(child, obj) {
				if s.slab.Get(child).Kind == KindLeaf {
					child = s.Quarter(child)
					sec.children[q] = child
				}
				s.TryInsert(child, obj)
			}
			stored = true
		}
		if stored {
			sec.inserted++
		}
		return true
	}

	return false
}

// Quarter splits the leaf id into a node covering the same rectangle and
// re-routes its objects into the new quadrants. The leaf is freed and the
// node's ID returned. A node is returned unchanged.
func (s *Store[T]) Quarter(id arena.ID) arena.ID {
	sec := s.slab.Get(id)
	if sec.Kind != KindLeaf {
		return id
	}

	level, r := sec.Level, sec.Rect
	node := s.newNode(level, r)
	for obj := range sec.bucket {
		s.TryInsert(node, obj)
	}
	s.slab.Free(id)

	if s.cfg.OnQuarter != nil {
		s.cfg.OnQuarter(level, r)
	}
	return node
}

// Remove deletes obj from every sector below id that holds it. Each child
// that lost the object is given one chance to collapse.
func (s *Store[T]) Remove(id arena.ID, obj T) bool {
	sec := s.slab.Get(id)

	switch sec.Kind {
	case KindLeaf:
		if _, ok := sec.bucket[obj]; !ok {
			return false
		}
		delete(sec.bucket, obj)
		return true

	case KindNode:
		member := sec.Rect.Membership(s.cfg.Bounds(obj))
		removed := false
		for _, q := range geom.Quadrants {
			if !member[q] {
				continue
			}
			child := sec.children[q]
			if !s.Remove(child, obj) {
				continue
			}
			removed = true
			if ok, leaf := s.TryCollapse(child); ok {
				sec.children[q] = leaf
			}
		}
		if removed {
			sec.inserted--
		}
		return removed
	}

	return false
}

// TryCollapse merges the node id into a single leaf when fewer than
// MaxObjects inserts are routed through it. It reports whether a collapse
// happened and the ID that now stands for the sector. Leaves never collapse.
//
// The decision uses the node's insert count, not the number of distinct
// objects stored below it.
func (s *Store[T]) TryCollapse(id arena.ID) (bool, arena.ID) {
	sec := s.slab.Get(id)
	if sec.Kind != KindNode || sec.inserted >= s.cfg.MaxObjects {
		return false, id
	}

	objs := s.Objects(id, nil)
	level, r := sec.Level, sec.Rect
	s.Release(id)

	leaf := s.NewLeaf(level, r)
	bucket := s.slab.Get(leaf).bucket
	for _, obj := range objs {
		bucket[obj] = struct{}{}
	}

	if s.cfg.OnCollapse != nil {
		s.cfg.OnCollapse(level, r)
	}
	return true, leaf
}

// Nearest appends to dst the candidate objects for obj: the whole bucket of
// every leaf obj would be routed to.
func (s *Store[T]) Nearest(id arena.ID, obj T, dst []T) []T {
	sec := s.slab.Get(id)

	switch sec.Kind {
	case KindLeaf:
		for o := range sec.bucket {
			dst = append(dst, o)
		}
	case KindNode:
		member := sec.Rect.Membership(s.cfg.Bounds(obj))
		for _, q := range geom.Quadrants {
			if member[q] {
				dst = s.Nearest(sec.children[q], obj, dst)
			}
		}
	}
	return dst
}

// Objects appends to dst every object stored below id, depth-first.
func (s *Store[T]) Objects(id arena.ID, dst []T) []T {
	sec := s.slab.Get(id)

	switch sec.Kind {
	case KindLeaf:
		for o := range sec.bucket {
			dst = append(dst, o)
		}
	case KindNode:
		for _, child := range sec.children {
			dst = s.Objects(child, dst)
		}
	}
	return dst
}

// Rects appends to dst the rectangle of id followed by those of its
// descendants, in pre-order.
func (s *Store[T]) Rects(id arena.ID, dst []geom.Rect) []geom.Rect {
	sec := s.slab.Get(id)
	dst = append(dst, sec.Rect)
	if sec.Kind == KindNode {
		for _, child := range sec.children {
			dst = s.Rects(child, dst)
		}
	}
	return dst
}

// Cells is Rects with per-sector detail.
func (s *Store[T]) Cells(id arena.ID, dst []Cell) []Cell {
	sec := s.slab.Get(id)
	dst = append(dst, Cell{
		Rect:    sec.Rect,
		Level:   sec.Level,
		Leaf:    sec.Kind == KindLeaf,
		Objects: len(sec.bucket),
	})
	if sec.Kind == KindNode {
		for _, child := range sec.children {
			dst = s.Cells(child, dst)
		}
	}
	return dst
}
