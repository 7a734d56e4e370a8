// Package pattern generates the per-cell boustrophedon (zig-zag) scan: a
// non-empty sequence of horizontal coverage segments, alternating direction,
// sweeping a single decompose.Cell from bottom to top at a row pitch derived
// from the tool's working width and overlap margin.
//
// A cell's pattern has a definite entry (the first segment's start) and exit
// (the last segment's end) — the only two points the order and assemble
// packages reason about when sequencing and stitching cells together.
package pattern
