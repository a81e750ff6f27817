package testutil

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/leonidovia/UltimateQuadTree/geom"
)

// Item is a boxed test object. Items are compared by pointer.
type Item struct {
	ID  uuid.UUID
	Box geom.Box
}

// NewItem creates an Item with a random ID spanning [left, right] x [top, bottom].
func NewItem(left, top, right, bottom float64) *Item {
	return &Item{
		ID:  uuid.New(),
		Box: geom.Box{Left: left, Right: right, Top: top, Bottom: bottom},
	}
}

// ItemBounds returns the box of an Item.
func ItemBounds(it *Item) geom.Box {
	return it.Box
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Box returns a random box inside world whose sides are at most maxSize.
func (r *RNG) Box(world geom.Rect, maxSize float64) geom.Box {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.boxLocked(world, maxSize)
}

func (r *RNG) boxLocked(world geom.Rect, maxSize float64) geom.Box {
	w := min(r.rand.Float64()*maxSize, world.Width)
	h := min(r.rand.Float64()*maxSize, world.Height)
	x := world.X + r.rand.Float64()*(world.Width-w)
	y := world.Y + r.rand.Float64()*(world.Height-h)
	return geom.Box{Left: x, Right: x + w, Top: y, Bottom: y + h}
}

// Items returns n items with random boxes inside world.
// IDs are derived from the RNG, so equal seeds give equal items.
func (r *RNG) Items(n int, world geom.Rect, maxSize float64) []*Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]*Item, n)
	for i := range items {
		var id uuid.UUID
		r.rand.Read(id[:]) // nolint gosec
		items[i] = &Item{
			ID:  id,
			Box: r.boxLocked(world, maxSize),
		}
	}
	return items
}

// Shuffle returns a shuffled copy of items.
func (r *RNG) Shuffle(items []*Item) []*Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Item, len(items))
	copy(out, items)
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Overlapping returns the items whose boxes intersect box, touching edges included.
func Overlapping(items []*Item, box geom.Box) []*Item {
	var out []*Item
	for _, it := range items {
		if it.Box.Intersects(box) {
			out = append(out, it)
		}
	}
	return out
}
