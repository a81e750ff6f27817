// Package arena provides slot storage for quadtree sectors.
//
// A Slab hands out small integer IDs instead of pointers so that a parent
// sector refers to its children by handle. Split and collapse churn recycles
// released slots rather than allocating fresh ones.
//
// # Features
//
//   - Fixed-size segments (256 slots) so element addresses are stable
//   - Released IDs tracked in a roaring bitmap, lowest ID reused first
//   - Released slots are zeroed, so stale payloads are not retained
//
// # Safety
//
// A Slab is not safe for concurrent mutation. Get may be called from several
// goroutines at once as long as no Alloc, Free or Reset runs concurrently.
package arena
