package pattern

import (
	"github.com/trowelbot/wallplan/decompose"
	"github.com/trowelbot/wallplan/geometry"
)

// Generate returns the boustrophedon coverage scan for a single cell at the
// given tool width and overlap margin. Callers are expected to have already
// validated toolWidth > overlapMargin >= 0; pitch is assumed positive.
//
// The first row is centred at cell.Bottom + toolWidth/2 so the tool's lower
// edge just reaches the cell's bottom edge. Direction alternates starting
// left-to-right. Rows continue while the row's far edge, y + toolWidth/2,
// still fits within cell.Top + EPSILON, advancing by
// pitch = toolWidth - overlapMargin each time.
//
// If the cell is shorter than one row (no row fits before cell.Top), a
// single centred row at the cell's vertical midpoint is emitted instead, so
// every cell contributes at least one coverage segment.
func Generate(cell decompose.Cell, toolWidth, overlapMargin float64) []geometry.PathSegment {
	pitch := toolWidth - overlapMargin

	var segments []geometry.PathSegment
	leftToRight := true
	for y := cell.Bottom + toolWidth/2; y+toolWidth/2 <= cell.Top+geometry.EPSILON; y += pitch {
		segments = append(segments, rowSegment(cell, y, leftToRight))
		leftToRight = !leftToRight
	}

	if len(segments) == 0 {
		y := (cell.Bottom + cell.Top) / 2
		segments = append(segments, rowSegment(cell, y, true))
	}

	return segments
}

func rowSegment(cell decompose.Cell, y float64, leftToRight bool) geometry.PathSegment {
	if leftToRight {
		return geometry.PathSegment{
			Start: geometry.Point{X: cell.Left, Y: y},
			End:   geometry.Point{X: cell.Right, Y: y},
			Kind:  geometry.Coverage,
		}
	}

	return geometry.PathSegment{
		Start: geometry.Point{X: cell.Right, Y: y},
		End:   geometry.Point{X: cell.Left, Y: y},
		Kind:  geometry.Coverage,
	}
}

// Entry returns the first point the tool visits in segs — the start of the
// first coverage segment.
func Entry(segs []geometry.PathSegment) geometry.Point {
	return segs[0].Start
}

// Exit returns the last point the tool visits in segs — the end of the last
// coverage segment.
func Exit(segs []geometry.PathSegment) geometry.Point {
	return segs[len(segs)-1].End
}

// RowCount returns ceil(height / pitch), the number of coverage rows a cell
// of the given height would need at the given pitch — used by the assemble
// package to compute the theoretical-minimum coverage length.
func RowCount(height, pitch float64) int {
	n := int(height / pitch)
	if float64(n)*pitch < height-geometry.EPSILON {
		n++
	}
	if n < 1 {
		n = 1
	}

	return n
}
