// Package order chooses a visit order over decomposed cells that minimizes
// total inter-cell transition distance.
//
// The cost of a candidate order π = [c0, c1, …, cn-1] is the transition
// cost T(π) = Σ dist(exit(cπ_i), entry(cπ_i+1)) over consecutive cells —
// the same quantity the assemble package later realizes as Transition
// segments. Order is computed in two phases:
//
//	Phase A — greedy nearest-entry seed: start from the cell whose
//	  (Left, Bottom) is lexicographically smallest (ties broken by smaller
//	  id), then repeatedly append the unvisited cell whose entry point is
//	  closest to the current exit point.
//
//	Phase B — 2-opt local improvement: repeatedly look for a segment
//	  reversal that strictly decreases T(π), accepting the first one found
//	  (first-improvement) and restarting the scan, for at most 50 outer
//	  passes. Reversal only changes concatenation order — a cell's own
//	  recorded entry/exit points are never swapped — so each candidate's
//	  cost is re-derived by reading entry/exit per cell from the unchanged
//	  pattern set, not by an incremental boundary-only delta.
package order
