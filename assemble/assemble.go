package assemble

import (
	"github.com/trowelbot/wallplan/decompose"
	"github.com/trowelbot/wallplan/geometry"
	"github.com/trowelbot/wallplan/pattern"
)

// Assemble concatenates each cell's pattern, in visitOrder, with a
// Transition segment between consecutive cells, and computes the resulting
// Metadata. pitch is the row pitch (toolWidth - overlapMargin) used to
// derive the theoretical-minimum coverage length.
func Assemble(cells []decompose.Cell, patterns map[int][]geometry.PathSegment, visitOrder []int, pitch float64) Result {
	var segments []geometry.PathSegment

	for i, id := range visitOrder {
		cellSegs := patterns[id]
		segments = append(segments, cellSegs...)

		if i+1 < len(visitOrder) {
			nextID := visitOrder[i+1]
			segments = append(segments, geometry.PathSegment{
				Start: pattern.Exit(cellSegs),
				End:   pattern.Entry(patterns[nextID]),
				Kind:  geometry.Transition,
			})
		}
	}

	meta := computeMetadata(cells, segments, visitOrder, pitch)

	return Result{Segments: segments, Metadata: meta}
}

func computeMetadata(cells []decompose.Cell, segments []geometry.PathSegment, visitOrder []int, pitch float64) Metadata {
	var coverageLen, transitionLen float64
	for _, s := range segments {
		switch s.Kind {
		case geometry.Coverage:
			coverageLen += s.Length()
		case geometry.Transition:
			transitionLen += s.Length()
		}
	}

	totalLen := coverageLen + transitionLen

	var theoreticalMin float64
	for _, c := range cells {
		rows := pattern.RowCount(c.Height(), pitch)
		theoreticalMin += float64(rows) * c.Width()
	}

	efficiency := 1.0
	if totalLen > geometry.EPSILON {
		efficiency = theoreticalMin / totalLen
		switch {
		case efficiency < 0:
			efficiency = 0
		case efficiency > 1:
			efficiency = 1
		}
	}

	order := make([]int, len(visitOrder))
	copy(order, visitOrder)

	return Metadata{
		CoverageLength:     coverageLen,
		TransitionLength:   transitionLen,
		TotalLength:        totalLen,
		TheoreticalMin:     theoreticalMin,
		CoverageEfficiency: efficiency,
		NumCells:           len(cells),
		CellOrder:          order,
	}
}
