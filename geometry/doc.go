// Package geometry defines the shared 2D primitives — Point and Rect — and
// the single tolerance EPSILON used by every stage of the planner to guard
// comparisons that would otherwise be confused by floating-point noise.
//
// Coordinates lie in a plane with origin at the wall's bottom-left, x
// increasing right, y increasing up. Distances are real numbers in a
// consistent unit (e.g. metres).
package geometry
