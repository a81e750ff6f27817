// Package testutil provides testing utilities for the quadtree.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random boxed items and for computing
// exact overlap sets to check query results against.
//
// # Random Items
//
//	rng := testutil.NewRNG(seed)
//	items := rng.Items(1000, world, 5)   // boxes up to 5x5 inside world
//
// # Ground Truth
//
//	want := testutil.Overlapping(items, query.Box)
package testutil
