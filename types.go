package wallplan

import "github.com/trowelbot/wallplan/geometry"

// Wall is the rectangular surface to cover: width W > 0, height H > 0.
type Wall struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Obstacle is an axis-aligned rectangle the tool must avoid. Overlaps
// between obstacles are permitted; the decomposer treats them as their
// union. Obstacle shares its field layout with geometry.Rect so a
// PlanRequest's obstacle list can be passed straight through to Decompose.
type Obstacle = geometry.Rect

// ToolSpec describes the finishing tool: its physical working width and the
// per-row overlap margin subtracted from it to guarantee overlap between
// consecutive coverage passes. Required: Width - OverlapMargin > 0.
type ToolSpec struct {
	Width         float64 `json:"width"`
	OverlapMargin float64 `json:"overlap_margin"`
}

// Pitch returns the effective row spacing tool_width - overlap_margin.
func (t ToolSpec) Pitch() float64 {
	return t.Width - t.OverlapMargin
}

// PlanRequest is the fully-formed, unvalidated input to Plan.
type PlanRequest struct {
	Wall      Wall       `json:"wall"`
	Tool      ToolSpec   `json:"tool"`
	Obstacles []Obstacle `json:"obstacles"`
}
