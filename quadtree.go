package quadtree

import (
	"iter"
	"time"

	"github.com/leonidovia/UltimateQuadTree/geom"
	"github.com/leonidovia/UltimateQuadTree/internal/arena"
	"github.com/leonidovia/UltimateQuadTree/internal/sector"
)

// QuadTree is a region quadtree over objects of type T.
//
// T must be comparable: leaves store objects in sets and query results are
// de-duplicated by equality. A QuadTree is not safe for concurrent use while
// it is being modified. Read-only methods may run concurrently with each other.
type QuadTree[T comparable] struct {
	rect       geom.Rect
	maxObjects int
	maxLevel   int
	count      int

	bounds Bounder[T]
	store  *sector.Store[T]
	root   arena.ID

	queryConcurrency int
	metrics          MetricsCollector
	logger           *Logger
}

// New creates a quadtree covering the rectangle at (x, y) with the given size.
//
// bounds is required; New returns an error matching ErrInvalidArgument when
// it is nil. The defaults are DefaultMaxObjects and DefaultMaxLevel.
func New[T comparable](x, y, width, height float64, bounds Bounder[T], optFns ...Option) (*QuadTree[T], error) {
	if isNil(bounds) {
		return nil, nilArgument("bounds")
	}

	opts := applyOptions(optFns)
	rect := geom.NewRect(x, y, width, height)

	qt := &QuadTree[T]{
		rect:             rect,
		maxObjects:       opts.maxObjects,
		maxLevel:         opts.maxLevel,
		bounds:           bounds,
		queryConcurrency: opts.queryConcurrency,
		metrics:          opts.metricsCollector,
		logger:           opts.logger.WithRect(rect),
	}

	qt.store = sector.NewStore(sector.Config[T]{
		MaxObjects: qt.maxObjects,
		MaxLevel:   qt.maxLevel,
		Bounds:     bounds.Bounds,
		OnQuarter: func(level int, r geom.Rect) {
			qt.metrics.RecordQuarter(level)
			qt.logger.LogQuarter(level, r)
		},
		OnCollapse: func(level int, r geom.Rect) {
			qt.metrics.RecordCollapse(level)
			qt.logger.LogCollapse(level, r)
		},
	})
	qt.root = qt.store.NewLeaf(0, rect)

	return qt, nil
}

// Rect returns the region covered by the tree.
func (qt *QuadTree[T]) Rect() Rect { return qt.rect }

// MaxObjects returns the configured leaf capacity.
func (qt *QuadTree[T]) MaxObjects() int { return qt.maxObjects }

// MaxLevel returns the configured maximum depth.
func (qt *QuadTree[T]) MaxLevel() int { return qt.maxLevel }

// Len returns the number of accepted inserts minus successful removals.
func (qt *QuadTree[T]) Len() int { return qt.count }

// Clear removes every object and resets the tree to a single empty leaf.
func (qt *QuadTree[T]) Clear() {
	qt.store.Release(qt.root)
	qt.store.Reset()
	qt.root = qt.store.NewLeaf(0, qt.rect)
	qt.count = 0
}

// Insert adds obj to the tree.
//
// It returns false, and changes nothing, when the extent of obj lies entirely
// outside the tree. Partially overlapping objects are accepted.
func (qt *QuadTree[T]) Insert(obj T) (bool, error) {
	start := time.Now()
	if isNil(obj) {
		err := nilArgument("obj")
		qt.metrics.RecordInsert(time.Since(start), false, err)
		return false, err
	}

	accepted := qt.insert(obj)
	qt.metrics.RecordInsert(time.Since(start), accepted, nil)
	return accepted, nil
}

func (qt *QuadTree[T]) insert(obj T) bool {
	box := qt.bounds.Bounds(obj)
	if qt.rect.Excludes(box) {
		qt.logger.LogRejected(box)
		return false
	}

	if !qt.store.TryInsert(qt.root, obj) {
		if qt.store.Get(qt.root).Kind == sector.KindLeaf {
			qt.root = qt.store.Quarter(qt.root)
		}
		qt.store.TryInsert(qt.root, obj)
	}
	qt.count++
	qt.logger.LogInsert(box, qt.count)
	return true
}

// InsertRange inserts objs one after another and returns how many were
// accepted. It is not atomic: when a nil element stops the run, the
// elements before it stay inserted.
func (qt *QuadTree[T]) InsertRange(objs []T) (int, error) {
	start := time.Now()
	if objs == nil {
		return 0, nilArgument("objs")
	}

	accepted := 0
	for i, obj := range objs {
		if isNil(obj) {
			err := nilElement("objs", i)
			qt.metrics.RecordRange("insert", len(objs), len(objs)-accepted, time.Since(start))
			qt.logger.LogRange("insert range", len(objs), accepted, err)
			return accepted, err
		}
		if qt.insert(obj) {
			accepted++
		}
	}

	qt.metrics.RecordRange("insert", len(objs), len(objs)-accepted, time.Since(start))
	qt.logger.LogRange("insert range", len(objs), accepted, nil)
	return accepted, nil
}

// Remove deletes obj from the tree and reports whether it was present.
func (qt *QuadTree[T]) Remove(obj T) (bool, error) {
	start := time.Now()
	if isNil(obj) {
		err := nilArgument("obj")
		qt.metrics.RecordRemove(time.Since(start), false, err)
		return false, err
	}

	removed := qt.remove(obj)
	qt.metrics.RecordRemove(time.Since(start), removed, nil)
	return removed, nil
}

func (qt *QuadTree[T]) remove(obj T) bool {
	if !qt.store.Remove(qt.root, obj) {
		qt.logger.LogRemove(false, qt.count)
		return false
	}
	qt.count--

	// Above the threshold the root cannot collapse.
	if qt.count < qt.maxObjects {
		if ok, root := qt.store.TryCollapse(qt.root); ok {
			qt.root = root
		}
	}
	qt.logger.LogRemove(true, qt.count)
	return true
}

// RemoveRange removes objs one after another and returns how many were
// present. It is not atomic: when a nil element stops the run, the elements
// before it stay removed.
func (qt *QuadTree[T]) RemoveRange(objs []T) (int, error) {
	start := time.Now()
	if objs == nil {
		return 0, nilArgument("objs")
	}

	removed := 0
	for i, obj := range objs {
		if isNil(obj) {
			err := nilElement("objs", i)
			qt.metrics.RecordRange("remove", len(objs), len(objs)-removed, time.Since(start))
			qt.logger.LogRange("remove range", len(objs), removed, err)
			return removed, err
		}
		if qt.remove(obj) {
			removed++
		}
	}

	qt.metrics.RecordRange("remove", len(objs), len(objs)-removed, time.Since(start))
	qt.logger.LogRange("remove range", len(objs), removed, nil)
	return removed, nil
}

// GetNearestObjects returns the distinct objects sharing a leaf with obj:
// every object stored in any cell obj would be routed to. The candidates are
// not filtered by distance or overlap. obj need not be stored in the tree.
//
// The result is a snapshot; later changes to the tree do not affect it.
func (qt *QuadTree[T]) GetNearestObjects(obj T) ([]T, error) {
	start := time.Now()
	if isNil(obj) {
		err := nilArgument("obj")
		qt.metrics.RecordQuery(0, time.Since(start), err)
		return nil, err
	}

	res := qt.nearest(obj)
	qt.metrics.RecordQuery(len(res), time.Since(start), nil)
	return res, nil
}

func (qt *QuadTree[T]) nearest(obj T) []T {
	return distinct(qt.store.Nearest(qt.root, obj, nil))
}

// GetObjects returns every distinct object in the tree.
func (qt *QuadTree[T]) GetObjects() []T {
	return distinct(qt.store.Objects(qt.root, nil))
}

// All returns an iterator over a snapshot of GetObjects.
func (qt *QuadTree[T]) All() iter.Seq[T] {
	objs := qt.GetObjects()
	return func(yield func(T) bool) {
		for _, obj := range objs {
			if !yield(obj) {
				return
			}
		}
	}
}

// GetGrid returns the rectangle of every cell in pre-order: a cell, then its
// left-top, left-bottom, right-top and right-bottom children.
func (qt *QuadTree[T]) GetGrid() []Rect {
	return qt.store.Rects(qt.root, nil)
}

// distinct removes duplicates from objs in place, keeping first occurrences.
func distinct[T comparable](objs []T) []T {
	if len(objs) < 2 {
		return objs
	}
	seen := make(map[T]struct{}, len(objs))
	out := objs[:0]
	for _, obj := range objs {
		if _, ok := seen[obj]; ok {
			continue
		}
		seen[obj] = struct{}{}
		out = append(out, obj)
	}
	return out
}
