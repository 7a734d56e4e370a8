// Package assemble concatenates each cell's boustrophedon pattern, in visit
// order, with straight-line transitions between consecutive cells, and
// computes the summary metadata reported alongside the finished path.
//
// For each cell in the visit order, Assemble appends its coverage segments;
// if a next cell follows, it appends one Transition segment from the
// current cell's exit to the next cell's entry. Coincident endpoints
// (distance below geometry.EPSILON) still produce a zero-length transition
// segment — the planner does not filter these, preserving the one segment
// per logical step invariant for any downstream consumer that wants to
// replay the path in order.
package assemble
