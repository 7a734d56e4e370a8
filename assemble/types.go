package assemble

import "github.com/trowelbot/wallplan/geometry"

// Metadata summarizes a computed path: its coverage/transition/total
// lengths, the theoretical-minimum coverage length achievable with zero
// transitions, the resulting efficiency ratio, and the cell visit order.
type Metadata struct {
	CoverageLength     float64 `json:"coverage_length"`
	TransitionLength   float64 `json:"transition_length"`
	TotalLength        float64 `json:"total_length"`
	TheoreticalMin     float64 `json:"theoretical_min"`
	CoverageEfficiency float64 `json:"coverage_efficiency"`
	NumCells           int     `json:"num_cells"`
	CellOrder          []int   `json:"cell_order"`
}

// Result is the ordered list of path segments plus their Metadata — the
// complete output of a single Assemble call.
type Result struct {
	Segments []geometry.PathSegment `json:"segments"`
	Metadata Metadata               `json:"metadata"`
}
