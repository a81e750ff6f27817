package sector

import (
	"testing"

	"github.com/leonidovia/UltimateQuadTree/geom"
	"github.com/leonidovia/UltimateQuadTree/internal/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type obj struct {
	name string
	box  geom.Box
}

func newObj(name string, left, top, right, bottom float64) *obj {
	return &obj{name: name, box: geom.Box{Left: left, Right: right, Top: top, Bottom: bottom}}
}

func newStore(maxObjects, maxLevel int) *Store[*obj] {
	return NewStore(Config[*obj]{
		MaxObjects: maxObjects,
		MaxLevel:   maxLevel,
		Bounds:     func(o *obj) geom.Box { return o.box },
	})
}

var world = geom.NewRect(0, 0, 100, 100)

func TestLeaf_TryInsert(t *testing.T) {
	s := newStore(2, 3)
	root := s.NewLeaf(0, world)

	require.True(t, s.TryInsert(root, newObj("a", 1, 1, 2, 2)))
	require.True(t, s.TryInsert(root, newObj("b", 3, 3, 4, 4)))
	assert.False(t, s.TryInsert(root, newObj("c", 5, 5, 6, 6)), "full leaf above max level refuses")
	assert.Equal(t, 2, s.Get(root).Len())

	t.Run("AtMaxLevel", func(t *testing.T) {
		deep := s.NewLeaf(3, world)
		for i := 0; i < 10; i++ {
			require.True(t, s.TryInsert(deep, newObj("x", 1, 1, 2, 2)))
		}
		assert.Equal(t, 10, s.Get(deep).Len())
	})

	t.Run("SetSemantics", func(t *testing.T) {
		leaf := s.NewLeaf(0, world)
		o := newObj("dup", 1, 1, 2, 2)
		require.True(t, s.TryInsert(leaf, o))
		require.True(t, s.TryInsert(leaf, o))
		assert.Equal(t, 1, s.Get(leaf).Len())
	})
}

func TestQuarter(t *testing.T) {
	var quartered []int
	s := NewStore(Config[*obj]{
		MaxObjects: 2,
		MaxLevel:   3,
		Bounds:     func(o *obj) geom.Box { return o.box },
		OnQuarter:  func(level int, _ geom.Rect) { quartered = append(quartered, level) },
	})

	root := s.NewLeaf(0, world)
	a := newObj("a", 10, 10, 11, 11)
	b := newObj("b", 60, 60, 61, 61)
	require.True(t, s.TryInsert(root, a))
	require.True(t, s.TryInsert(root, b))

	node := s.Quarter(root)
	sec := s.Get(node)
	require.NotNil(t, sec)
	assert.Equal(t, KindNode, sec.Kind)
	assert.Equal(t, 0, sec.Level)
	assert.Equal(t, world, sec.Rect)
	assert.Equal(t, 2, sec.Inserted())
	assert.Nil(t, s.Get(root), "leaf slot is released")
	assert.Equal(t, []int{0}, quartered)

	for _, q := range geom.Quadrants {
		child := s.Get(sec.Child(q))
		require.NotNil(t, child)
		assert.Equal(t, KindLeaf, child.Kind)
		assert.Equal(t, 1, child.Level)
		assert.Equal(t, world.Quadrant(q), child.Rect)
	}
	assert.Equal(t, 1, s.Get(sec.Child(geom.LeftTop)).Len())
	assert.Equal(t, 1, s.Get(sec.Child(geom.RightBottom)).Len())
	assert.Equal(t, 0, s.Get(sec.Child(geom.RightTop)).Len())

	t.Run("NodeUnchanged", func(t *testing.T) {
		assert.Equal(t, node, s.Quarter(node))
		assert.Equal(t, []int{0}, quartered)
	})
}

func TestNode_TryInsert(t *testing.T) {
	t.Run("StraddlingObjectIsDuplicated", func(t *testing.T) {
		s := newStore(1, 3)
		root := s.Quarter(s.NewLeaf(0, world))

		center := newObj("center", 40, 40, 60, 60)
		require.True(t, s.TryInsert(root, center))

		sec := s.Get(root)
		assert.Equal(t, 1, sec.Inserted(), "counted once, not per quadrant")
		assert.Len(t, s.Objects(root, nil), 4)
	})

	t.Run("SplitsOverflowingChild", func(t *testing.T) {
		s := newStore(2, 3)
		root := s.Quarter(s.NewLeaf(0, world))

		require.True(t, s.TryInsert(root, newObj("a", 10, 10, 11, 11)))
		require.True(t, s.TryInsert(root, newObj("b", 20, 20, 21, 21)))
		require.True(t, s.TryInsert(root, newObj("c", 30, 30, 31, 31)))

		sec := s.Get(root)
		lt := s.Get(sec.Child(geom.LeftTop))
		assert.Equal(t, KindNode, lt.Kind)
		assert.Equal(t, 1, lt.Level)
		assert.Equal(t, 3, sec.Inserted())
		assert.Len(t, s.Rects(root, nil), 9)
	})

	t.Run("NoMatchingQuadrant", func(t *testing.T) {
		s := newStore(2, 3)
		root := s.Quarter(s.NewLeaf(0, world))

		inverted := newObj("inverted", 60, 60, 40, 40)
		assert.True(t, s.TryInsert(root, inverted))
		assert.Equal(t, 0, s.Get(root).Inserted())
		assert.Empty(t, s.Objects(root, nil))
	})

	t.Run("RecursionStopsAtMaxLevel", func(t *testing.T) {
		s := newStore(1, 2)
		root := s.NewLeaf(0, world)
		require.True(t, s.TryInsert(root, newObj("a", 1, 1, 2, 2)))
		require.False(t, s.TryInsert(root, newObj("b", 1, 1, 2, 2)))
		root = s.Quarter(root)
		require.True(t, s.TryInsert(root, newObj("b", 1, 1, 2, 2)))
		require.True(t, s.TryInsert(root, newObj("c", 1, 1, 2, 2)))

		maxLevel := 0
		for _, c := range s.Cells(root, nil) {
			maxLevel = max(maxLevel, c.Level)
		}
		assert.Equal(t, 2, maxLevel)
		assert.Len(t, s.Objects(root, nil), 3)
	})
}

func TestRemove(t *testing.T) {
	s := newStore(2, 3)
	root := s.NewLeaf(0, world)

	a := newObj("a", 10, 10, 11, 11)
	require.True(t, s.TryInsert(root, a))

	assert.False(t, s.Remove(root, newObj("ghost", 10, 10, 11, 11)))
	assert.True(t, s.Remove(root, a))
	assert.False(t, s.Remove(root, a))

	t.Run("Straddling", func(t *testing.T) {
		s := newStore(1, 3)
		root := s.Quarter(s.NewLeaf(0, world))
		keep := newObj("keep", 10, 10, 11, 11)
		center := newObj("center", 40, 40, 60, 60)
		require.True(t, s.TryInsert(root, keep))
		require.True(t, s.TryInsert(root, center))
		require.Equal(t, 2, s.Get(root).Inserted())

		assert.True(t, s.Remove(root, center))
		assert.Equal(t, 1, s.Get(root).Inserted())
		assert.Equal(t, []*obj{keep}, s.Objects(root, nil))
	})
}

func TestTryCollapse(t *testing.T) {
	var collapsed []int
	s := NewStore(Config[*obj]{
		MaxObjects: 3,
		MaxLevel:   3,
		Bounds:     func(o *obj) geom.Box { return o.box },
		OnCollapse: func(level int, _ geom.Rect) { collapsed = append(collapsed, level) },
	})

	leaf := s.NewLeaf(0, world)
	ok, same := s.TryCollapse(leaf)
	assert.False(t, ok)
	assert.Equal(t, leaf, same)

	a := newObj("a", 10, 10, 11, 11)
	b := newObj("b", 60, 10, 61, 11)
	center := newObj("center", 40, 40, 60, 60)
	require.True(t, s.TryInsert(leaf, a))
	require.True(t, s.TryInsert(leaf, b))
	root := s.Quarter(leaf)
	require.True(t, s.TryInsert(root, center))
	require.Equal(t, 3, s.Get(root).Inserted())

	ok, _ = s.TryCollapse(root)
	assert.False(t, ok, "insert count at threshold")

	require.True(t, s.Remove(root, b))
	ok, merged := s.TryCollapse(root)
	require.True(t, ok)
	assert.Equal(t, []int{0}, collapsed)

	sec := s.Get(merged)
	require.NotNil(t, sec)
	assert.Equal(t, KindLeaf, sec.Kind)
	assert.Equal(t, 0, sec.Level)
	assert.Equal(t, world, sec.Rect)
	assert.ElementsMatch(t, []*obj{a, center}, s.Objects(merged, nil), "duplicates of center are merged")
	assert.Equal(t, 1, s.Len(), "children and node slots are released")
}

func TestRemove_CollapsesChildren(t *testing.T) {
	s := newStore(2, 3)
	root := s.Quarter(s.NewLeaf(0, world))

	a := newObj("a", 10, 10, 11, 11)
	b := newObj("b", 20, 20, 21, 21)
	c := newObj("c", 30, 30, 31, 31)
	for _, o := range []*obj{a, b, c} {
		require.True(t, s.TryInsert(root, o))
	}
	require.Len(t, s.Rects(root, nil), 9)

	require.True(t, s.Remove(root, c))
	assert.Len(t, s.Rects(root, nil), 9, "left-top node still has two inserts")

	require.True(t, s.Remove(root, b))
	assert.Len(t, s.Rects(root, nil), 5, "left-top node collapsed, root untouched")
	assert.Equal(t, KindLeaf, s.Get(s.Get(root).Child(geom.LeftTop)).Kind)
	assert.Equal(t, []*obj{a}, s.Objects(root, nil))
}

func TestNearest(t *testing.T) {
	s := newStore(1, 3)
	root := s.NewLeaf(0, world)

	a := newObj("a", 10, 10, 11, 11)
	require.True(t, s.TryInsert(root, a))
	assert.Equal(t, []*obj{a}, s.Nearest(root, newObj("q", 90, 90, 91, 91), nil), "leaf returns its whole bucket")

	root = s.Quarter(root)
	b := newObj("b", 60, 60, 61, 61)
	center := newObj("center", 40, 40, 60, 60)
	require.True(t, s.TryInsert(root, b))
	require.True(t, s.TryInsert(root, center))

	t.Run("SingleQuadrant", func(t *testing.T) {
		assert.Equal(t, []*obj{a}, s.Nearest(root, newObj("q", 5, 5, 6, 6), nil))
		assert.Equal(t, []*obj{center}, s.Nearest(root, newObj("q", 30, 30, 31, 31), nil))
	})

	t.Run("AllQuadrantsKeepDuplicates", func(t *testing.T) {
		got := s.Nearest(root, newObj("q", 49, 49, 51, 51), nil)
		assert.Len(t, got, 5)
		assert.Contains(t, got, b)
		assert.NotContains(t, got, a)

		n := 0
		for _, o := range got {
			if o == center {
				n++
			}
		}
		assert.Equal(t, 4, n)
	})
}

func TestRects(t *testing.T) {
	s := newStore(1, 3)
	root := s.NewLeaf(0, world)
	assert.Equal(t, []geom.Rect{world}, s.Rects(root, nil))

	root = s.Quarter(root)
	assert.Equal(t, []geom.Rect{
		world,
		world.TopLeft(),
		world.BottomLeft(),
		world.TopRight(),
		world.BottomRight(),
	}, s.Rects(root, nil))

	cells := s.Cells(root, nil)
	require.Len(t, cells, 5)
	assert.False(t, cells[0].Leaf)
	assert.True(t, cells[1].Leaf)
	assert.Equal(t, 1, cells[4].Level)
}

func TestClear(t *testing.T) {
	s := newStore(1, 3)
	root := s.NewLeaf(0, world)
	require.True(t, s.TryInsert(root, newObj("a", 10, 10, 11, 11)))
	root = s.Quarter(root)
	require.Equal(t, 5, s.Len())

	s.Clear(root)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Get(root).Inserted())

	s.Release(root)
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Get(root))
	assert.Equal(t, arena.Invalid, (&Sector[*obj]{}).Child(geom.LeftTop))
}
