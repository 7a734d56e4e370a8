package decompose

import (
	"sort"

	"github.com/trowelbot/wallplan/geometry"
)

// interval is a (bottom, top) obstacle extent within a single vertical slab.
type interval struct {
	bottom, top float64
}

// Decompose partitions the free space of a W×H wall around obstacles into
// axis-aligned rectangular cells via vertical-sweep boustrophedon cellular
// decomposition. Callers are expected to have already validated W, H, and
// obstacles (non-positive dimensions or obstacles extending outside the
// wall are precondition violations caught upstream, not here).
//
// Complexity: O((S·k) log k) where S is the number of slabs and k is the
// number of obstacles overlapping the widest slab.
func Decompose(w, h float64, obstacles []geometry.Rect) []Cell {
	xs := criticalXs(w, obstacles)

	var cells []Cell
	nextID := 0

	for i := 0; i+1 < len(xs); i++ {
		xl, xr := xs[i], xs[i+1]
		if xr-xl <= geometry.EPSILON {
			continue // zero-width slab, skip
		}

		ivs := slabIntervals(xl, xr, obstacles)
		sort.Slice(ivs, func(a, b int) bool { return ivs[a].bottom < ivs[b].bottom })

		currentY := 0.0
		for _, iv := range ivs {
			if currentY < iv.bottom-geometry.EPSILON {
				cells = append(cells, newCell(nextID, xl, currentY, xr, iv.bottom))
				nextID++
			}
			if iv.top > currentY {
				currentY = iv.top
			}
		}
		if currentY < h-geometry.EPSILON {
			cells = append(cells, newCell(nextID, xl, currentY, xr, h))
			nextID++
		}
	}

	return cells
}

func newCell(id int, left, bottom, right, top float64) Cell {
	return Cell{
		Rect: geometry.Rect{Left: left, Bottom: bottom, Right: right, Top: top},
		ID:   id,
	}
}

// criticalXs builds the sorted, deduplicated set {0, W} ∪ {o.Left, o.Right}
// with values within EPSILON of each other collapsed into one.
func criticalXs(w float64, obstacles []geometry.Rect) []float64 {
	raw := make([]float64, 0, 2*len(obstacles)+2)
	raw = append(raw, 0, w)
	for _, o := range obstacles {
		raw = append(raw, o.Left, o.Right)
	}
	sort.Float64s(raw)

	dedup := raw[:0:0] //nolint:staticcheck // deliberate fresh backing array
	for _, x := range raw {
		if len(dedup) > 0 && x-dedup[len(dedup)-1] <= geometry.EPSILON {
			continue
		}
		dedup = append(dedup, x)
	}

	return dedup
}

// slabIntervals collects the (bottom, top) extents of obstacles whose
// horizontal extent strictly overlaps the slab (xl, xr).
func slabIntervals(xl, xr float64, obstacles []geometry.Rect) []interval {
	var ivs []interval
	for _, o := range obstacles {
		if o.OverlapsHorizontally(xl, xr) {
			ivs = append(ivs, interval{bottom: o.Bottom, top: o.Top})
		}
	}

	return ivs
}
