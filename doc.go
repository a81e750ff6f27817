// Package quadtree provides a generic region quadtree for objects with
// axis-aligned bounding boxes.
//
// The tree covers a fixed rectangle and splits it recursively into four
// quadrants as leaves fill up. Callers describe their objects through a
// Bounder; the tree never looks at objects otherwise.
//
// # Quick Start
//
//	type Sprite struct{ X, Y, W, H float64 }
//
//	bounds := quadtree.BoundsFunc[*Sprite](func(s *Sprite) quadtree.Box {
//	    return quadtree.Box{Left: s.X, Right: s.X + s.W, Top: s.Y, Bottom: s.Y + s.H}
//	})
//
//	qt, err := quadtree.New(0, 0, 1024, 768, bounds,
//	    quadtree.WithMaxObjects(8),
//	    quadtree.WithMaxLevel(6),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	qt.Insert(player)
//	candidates, _ := qt.GetNearestObjects(player)
//
// # Splitting and Collapsing
//
// A leaf holding MaxObjects objects refuses the next insert and is replaced by
// a node with four empty children, into which its objects are re-inserted
// ("quarter"). Leaves at MaxLevel never refuse. When a removal leaves fewer
// than MaxObjects inserts routed through a node, the node is replaced by a
// single leaf holding the distinct objects of its subtree ("collapse").
//
// # Straddling Objects
//
// An object whose box touches or crosses a midline is stored in every
// quadrant it overlaps, up to four. GetObjects and GetNearestObjects remove
// these duplicates; GetGrid enumerates cells and does not.
//
// # Concurrency
//
// Mutating methods (Insert, Remove, Clear and their range variants) require
// exclusive access. Read-only methods may run concurrently with each other;
// NearestBatch relies on this to spread queries over goroutines.
package quadtree
