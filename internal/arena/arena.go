package arena

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

const (
	// segmentBits determines the size of each segment.
	// 8 bits = 256 slots per segment.
	segmentBits = 8
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1
)

// ID is a handle to a slot in a Slab.
type ID uint32

// Invalid is never returned by Alloc.
const Invalid ID = math.MaxUint32

// Slab is a segmented slot allocator.
type Slab[E any] struct {
	segments []*segment[E]
	next     uint32          // first never-used ID
	free     *roaring.Bitmap // released IDs below next
}

type segment[E any] struct {
	items [segmentSize]E
}

// New creates an empty Slab.
func New[E any]() *Slab[E] {
	return &Slab[E]{
		free: roaring.New(),
	}
}

// Alloc reserves a slot and returns its ID and a pointer to its zeroed value.
// The pointer stays valid until the slot is freed or the slab is reset.
func (s *Slab[E]) Alloc() (ID, *E) {
	if !s.free.IsEmpty() {
		id := s.free.Minimum()
		s.free.Remove(id)
		return ID(id), s.slot(id)
	}

	id := s.next
	segIdx := int(id >> segmentBits)
	if segIdx >= len(s.segments) {
		s.segments = append(s.segments, &segment[E]{})
	}
	s.next++
	return ID(id), s.slot(id)
}

// Get returns the value stored in slot id, or nil if the slot is not live.
func (s *Slab[E]) Get(id ID) *E {
	if uint32(id) >= s.next || s.free.Contains(uint32(id)) {
		return nil
	}
	return s.slot(uint32(id))
}

// Free releases slot id. Freeing a slot that is not live is a no-op.
func (s *Slab[E]) Free(id ID) {
	if uint32(id) >= s.next || s.free.Contains(uint32(id)) {
		return
	}
	var zero E
	*s.slot(uint32(id)) = zero
	s.free.Add(uint32(id))
}

// Len returns the number of live slots.
func (s *Slab[E]) Len() int {
	return int(uint64(s.next) - s.free.GetCardinality())
}

// Cap returns the number of slots backed by allocated segments.
func (s *Slab[E]) Cap() int {
	return len(s.segments) * segmentSize
}

// Reset releases every slot and drops all segments.
func (s *Slab[E]) Reset() {
	s.segments = nil
	s.next = 0
	s.free.Clear()
}

func (s *Slab[E]) slot(id uint32) *E {
	return &s.segments[id>>segmentBits].items[id&segmentMask]
}
