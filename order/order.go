package order

import (
	"sort"

	"github.com/trowelbot/wallplan/decompose"
	"github.com/trowelbot/wallplan/geometry"
	"github.com/trowelbot/wallplan/matrix"
)

// Order returns a permutation of all cell ids that minimizes the total
// inter-cell transition distance, computed by a greedy nearest-entry seed
// (Phase A) followed by first-improvement 2-opt refinement (Phase B). An
// empty cells slice returns an empty order.
func Order(cells []decompose.Cell, points map[int]EntryExit) []int {
	if len(cells) == 0 {
		return nil
	}

	cost := buildCostMatrix(cells, points)
	seed := greedySeed(cells, points)

	return twoOpt(seed, cost)
}

// buildCostMatrix precomputes dist(exit(a), entry(b)) for every ordered
// pair of cell ids, so the 2-opt refinement reads a cached float64 instead
// of recomputing Euclidean distances on every candidate swap — the same
// "prefetch weights into a dense buffer" trick a hot first-improvement loop
// relies on regardless of domain.
func buildCostMatrix(cells []decompose.Cell, points map[int]EntryExit) *matrix.Dense {
	n := len(cells)
	dm, _ := matrix.NewDense(n, n) // n >= 1 here, NewDense cannot fail

	for _, a := range cells {
		for _, b := range cells {
			if a.ID == b.ID {
				continue
			}
			d := geometry.Dist(points[a.ID].Exit, points[b.ID].Entry)
			_ = dm.Set(a.ID, b.ID, d)
		}
	}

	return dm
}

// greedySeed implements Phase A: start at the cell with the lexicographically
// smallest (Left, Bottom) (ties broken by smaller id), then repeatedly visit
// the closest unvisited entry point to the current exit point.
func greedySeed(cells []decompose.Cell, points map[int]EntryExit) []int {
	start := startCell(cells)

	visited := make(map[int]bool, len(cells))
	visited[start.ID] = true
	order := make([]int, 1, len(cells))
	order[0] = start.ID

	current := points[start.ID].Exit
	for len(order) < len(cells) {
		best := -1
		bestDist := 0.0
		for _, c := range cells {
			if visited[c.ID] {
				continue
			}
			d := geometry.Dist(current, points[c.ID].Entry)
			switch {
			case best == -1, d < bestDist-geometry.EPSILON:
				best, bestDist = c.ID, d
			case d < bestDist+geometry.EPSILON && c.ID < best:
				best, bestDist = c.ID, d
			}
		}

		visited[best] = true
		order = append(order, best)
		current = points[best].Exit
	}

	return order
}

func startCell(cells []decompose.Cell) decompose.Cell {
	sorted := make([]decompose.Cell, len(cells))
	copy(sorted, cells)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Left != b.Left {
			return a.Left < b.Left
		}
		if a.Bottom != b.Bottom {
			return a.Bottom < b.Bottom
		}

		return a.ID < b.ID
	})

	return sorted[0]
}

// twoOpt implements Phase B: first-improvement 2-opt over the order produced
// by Phase A, for at most maxTwoOptPasses outer passes. A candidate is
// order[0:i] ++ reverse(order[i:j]) ++ order[j:] for j in (i, n-1] — the
// half-open upper bound pins index 0 (via i >= 1) and the last index n-1
// (via order[j:], which always retains at least the final element) so
// neither tour endpoint ever moves. Its cost is fully re-derived from the
// (unchanged) cost matrix rather than an incremental boundary-only delta,
// since cells' recorded entry/exit points are not swapped by reversal.
func twoOpt(seed []int, cost *matrix.Dense) []int {
	cur := make([]int, len(seed))
	copy(cur, seed)
	n := len(cur)

	curCost := tourCost(cur, cost)
	for pass := 0; pass < maxTwoOptPasses; pass++ {
		improved := false

		for i := 1; i <= n-3 && !improved; i++ {
			for j := i + 1; j <= n-1 && !improved; j++ {
				candidate := reversedBetween(cur, i, j-1)
				candidateCost := tourCost(candidate, cost)
				if candidateCost < curCost-geometry.EPSILON {
					cur = candidate
					curCost = candidateCost
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	return cur
}

// tourCost sums dist(exit, entry) over consecutive cells in order, reading
// cached values from the precomputed cost matrix.
func tourCost(order []int, cost *matrix.Dense) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		v, _ := cost.At(order[i], order[i+1])
		total += v
	}

	return total
}

// reversedBetween returns a copy of order with the sub-slice [i, j] (both
// inclusive) reversed.
func reversedBetween(order []int, i, j int) []int {
	out := make([]int, len(order))
	copy(out, order)
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}

	return out
}
