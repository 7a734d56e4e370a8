package decompose

import "github.com/trowelbot/wallplan/geometry"

// Cell is one axis-aligned rectangular region of obstacle-free wall space,
// produced by Decompose and never mutated afterwards. ID is stable within a
// single Decompose call and assigned in emission order.
type Cell struct {
	geometry.Rect
	ID int
}
