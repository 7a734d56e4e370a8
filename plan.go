package wallplan

import (
	"github.com/trowelbot/wallplan/assemble"
	"github.com/trowelbot/wallplan/decompose"
	"github.com/trowelbot/wallplan/geometry"
	"github.com/trowelbot/wallplan/order"
	"github.com/trowelbot/wallplan/pattern"
)

// Plan computes a complete, obstacle-avoiding coverage path for req. It is a
// pure, synchronous, single-threaded function: validation runs once at
// entry, and the four pipeline stages — Decompose, pattern.Generate, Order,
// and Assemble — run in sequence with no shared mutable state, so Plan is
// safe to call concurrently from multiple goroutines on distinct requests.
//
// Validation failures are returned as one of ErrInvalidDimensions,
// ErrInvalidTool, or ErrInvalidObstacle; there are no retries and no partial
// results.
func Plan(req PlanRequest) (PlanResult, error) {
	if err := validate(req); err != nil {
		return PlanResult{}, err
	}

	cells := decompose.Decompose(req.Wall.Width, req.Wall.Height, req.Obstacles)
	if len(cells) == 0 {
		return PlanResult{Metadata: Metadata{CoverageEfficiency: 1.0}}, nil
	}

	pitch := req.Tool.Pitch()
	patterns := make(map[int][]geometry.PathSegment, len(cells))
	points := make(map[int]order.EntryExit, len(cells))
	for _, c := range cells {
		segs := pattern.Generate(c, req.Tool.Width, req.Tool.OverlapMargin)
		patterns[c.ID] = segs
		points[c.ID] = order.EntryExit{Entry: pattern.Entry(segs), Exit: pattern.Exit(segs)}
	}

	visitOrder := order.Order(cells, points)

	return assemble.Assemble(cells, patterns, visitOrder, pitch), nil
}
