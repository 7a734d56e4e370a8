// Package wallplan computes a complete, obstacle-avoiding coverage path
// across a rectangular wall for a finishing tool of known working width.
//
// Plan is the single entry point:
//
//	result, err := wallplan.Plan(wallplan.PlanRequest{
//		Wall:       wallplan.Wall{Width: 10, Height: 10},
//		Tool:       wallplan.ToolSpec{Width: 1, OverlapMargin: 0},
//		Obstacles:  []wallplan.Obstacle{{Left: 4, Bottom: 4, Right: 6, Top: 6}},
//	})
//
// Plan is a pure, synchronous, single-threaded function: given the wall's
// dimensions, the tool's working width, and a set of axis-aligned rectangular
// obstacles, it returns an ordered list of path segments that sweep every
// reachable region of the wall in a boustrophedon (zig-zag) pattern, avoid
// the obstacles, and minimize total travel via a greedy-plus-2-opt visit
// order over the decomposed regions.
//
// The computation is organized as a four-stage pipeline, each stage
// consuming the prior stage's output and adding no hidden state:
//
//	geometry    — shared point/rectangle primitives and the tolerance EPSILON
//	decompose/  — vertical-sweep cellular decomposition of free wall space
//	pattern/    — per-cell boustrophedon row generation
//	order/      — greedy nearest-entry seed plus 2-opt visit-order refinement
//	assemble/   — concatenation of per-cell patterns with inter-cell transitions
//
// Everything outside this pipeline — the HTTP surface that accepts a plan
// request, the database that persists walls/obstacles/trajectories, request
// validation at the transport boundary, and any visualization/playback
// tooling — is deliberately out of scope: Plan consumes a fully-formed
// PlanRequest and returns a PlanResult, and how those are transported or
// persisted is the caller's concern.
package wallplan
