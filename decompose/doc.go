// Package decompose partitions the free space of a rectangular wall around a
// set of axis-aligned obstacles into axis-aligned rectangular cells, using a
// vertical-sweep boustrophedon cellular decomposition.
//
// Decompose(W, H, obstacles) returns a finite list of Cells whose union
// equals the free wall space up to measure zero: no cell overlaps any input
// obstacle, and two distinct cells share at most a boundary edge.
//
// Algorithm (vertical sweep):
//
//  1. Build the sorted, deduplicated set of critical x-coordinates
//     {0, W} ∪ {obstacle.Left, obstacle.Right for every obstacle}. Adjacent
//     values within geometry.EPSILON collapse into one. These define
//     vertical slabs.
//  2. For each slab wide enough to matter, collect the obstacles that
//     horizontally overlap it, sorted by Bottom ascending, and sweep y from
//     0 upward: every gap between consecutive (possibly overlapping or
//     nested) obstacle intervals becomes one cell, and any remaining gap up
//     to the wall height becomes a final cell.
//  3. Cells receive ids 0, 1, 2, … in emission order, which is deterministic
//     given the input obstacle order after sort.
//
// With no obstacles the whole wall is a single cell. A slab fully blocked by
// an obstacle spanning its height contributes no cell. Zero-width slabs
// (two critical x values within EPSILON) are skipped.
package decompose
