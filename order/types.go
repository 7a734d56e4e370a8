package order

import "github.com/trowelbot/wallplan/geometry"

// EntryExit carries the two points the order and assemble packages reason
// about for a cell: where its pattern starts (Entry) and where it ends
// (Exit). Everything else about the pattern — row count, direction — is
// irrelevant to sequencing.
type EntryExit struct {
	Entry, Exit geometry.Point
}

// maxTwoOptPasses bounds the 2-opt refinement's outer loop, guaranteeing
// worst-case termination independent of the strict-decrease acceptance rule.
const maxTwoOptPasses = 50
