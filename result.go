package wallplan

import (
	"github.com/trowelbot/wallplan/assemble"
	"github.com/trowelbot/wallplan/geometry"
)

// PathSegment is an ordered pair of points the tool travels between, tagged
// coverage (tool active) or transition (tool idle).
type PathSegment = geometry.PathSegment

// SegmentCoverage and SegmentTransition re-export the two-valued Kind tag
// carried by every PathSegment.
const (
	SegmentCoverage   = geometry.Coverage
	SegmentTransition = geometry.Transition
)

// Metadata summarizes a PlanResult: coverage/transition/total lengths, the
// theoretical-minimum coverage length, the resulting efficiency ratio, the
// cell count, and the visit order.
type Metadata = assemble.Metadata

// PlanResult is the complete output of Plan: the ordered path segments plus
// summary Metadata.
type PlanResult = assemble.Result
