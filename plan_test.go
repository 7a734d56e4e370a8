package wallplan_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wallplan "github.com/trowelbot/wallplan"
)

func TestPlan_EmptyWall_SingleCellTenRows(t *testing.T) {
	res, err := wallplan.Plan(wallplan.PlanRequest{
		Wall: wallplan.Wall{Width: 10, Height: 10},
		Tool: wallplan.ToolSpec{Width: 1, OverlapMargin: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Metadata.NumCells)
	assert.InDelta(t, 100, res.Metadata.TotalLength, 1e-6)
	assert.InDelta(t, 0, res.Metadata.TransitionLength, 1e-6)
	for _, s := range res.Segments {
		assert.Equal(t, wallplan.SegmentCoverage, s.Kind)
	}
}

func TestPlan_CentralObstacle_FourCells(t *testing.T) {
	res, err := wallplan.Plan(wallplan.PlanRequest{
		Wall:      wallplan.Wall{Width: 10, Height: 10},
		Tool:      wallplan.ToolSpec{Width: 1, OverlapMargin: 0},
		Obstacles: []wallplan.Obstacle{{Left: 4, Bottom: 4, Right: 6, Top: 6}},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Metadata.NumCells)
}

func TestPlan_HorizontalBand_TwoCellsOneTransition(t *testing.T) {
	res, err := wallplan.Plan(wallplan.PlanRequest{
		Wall:      wallplan.Wall{Width: 10, Height: 10},
		Tool:      wallplan.ToolSpec{Width: 1, OverlapMargin: 0},
		Obstacles: []wallplan.Obstacle{{Left: 0, Bottom: 4, Right: 10, Top: 6}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Metadata.NumCells)

	transitions := 0
	for _, s := range res.Segments {
		if s.Kind == wallplan.SegmentTransition {
			transitions++
		}
	}
	assert.Equal(t, 1, transitions)
}

func TestPlan_TwoPillars_FiveCells(t *testing.T) {
	res, err := wallplan.Plan(wallplan.PlanRequest{
		Wall: wallplan.Wall{Width: 10, Height: 10},
		Tool: wallplan.ToolSpec{Width: 1, OverlapMargin: 0},
		Obstacles: []wallplan.Obstacle{
			{Left: 2, Bottom: 2, Right: 4, Top: 8},
			{Left: 6, Bottom: 2, Right: 8, Top: 8},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Metadata.NumCells)
	assert.Len(t, res.Metadata.CellOrder, 5)
}

func TestPlan_OverlapMargin_ProducesExpectedPitchRowCount(t *testing.T) {
	res, err := wallplan.Plan(wallplan.PlanRequest{
		Wall: wallplan.Wall{Width: 10, Height: 10},
		Tool: wallplan.ToolSpec{Width: 2, OverlapMargin: 0.5},
	})
	require.NoError(t, err)

	coverage := 0
	for _, s := range res.Segments {
		if s.Kind == wallplan.SegmentCoverage {
			coverage++
		}
	}
	assert.Equal(t, 6, coverage)
}

func TestPlan_FullyBlockedWall_EmptyResult(t *testing.T) {
	res, err := wallplan.Plan(wallplan.PlanRequest{
		Wall:      wallplan.Wall{Width: 10, Height: 10},
		Tool:      wallplan.ToolSpec{Width: 1, OverlapMargin: 0},
		Obstacles: []wallplan.Obstacle{{Left: 0, Bottom: 0, Right: 10, Top: 10}},
	})
	require.NoError(t, err)

	assert.Empty(t, res.Segments)
	assert.Equal(t, 0, res.Metadata.NumCells)
	assert.InDelta(t, 0, res.Metadata.TotalLength, 1e-6)
	assert.InDelta(t, 1.0, res.Metadata.CoverageEfficiency, 1e-6)
}

func TestPlan_Deterministic(t *testing.T) {
	req := wallplan.PlanRequest{
		Wall: wallplan.Wall{Width: 10, Height: 10},
		Tool: wallplan.ToolSpec{Width: 1, OverlapMargin: 0},
		Obstacles: []wallplan.Obstacle{
			{Left: 2, Bottom: 2, Right: 4, Top: 8},
			{Left: 6, Bottom: 2, Right: 8, Top: 8},
		},
	}

	a, err := wallplan.Plan(req)
	require.NoError(t, err)
	b, err := wallplan.Plan(req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPlan_InvalidDimensions(t *testing.T) {
	_, err := wallplan.Plan(wallplan.PlanRequest{
		Wall: wallplan.Wall{Width: 0, Height: 10},
		Tool: wallplan.ToolSpec{Width: 1},
	})
	assert.True(t, errors.Is(err, wallplan.ErrInvalidDimensions))
}

func TestPlan_InvalidTool(t *testing.T) {
	_, err := wallplan.Plan(wallplan.PlanRequest{
		Wall: wallplan.Wall{Width: 10, Height: 10},
		Tool: wallplan.ToolSpec{Width: 1, OverlapMargin: 1},
	})
	assert.True(t, errors.Is(err, wallplan.ErrInvalidTool))
}

func TestPlan_InvalidObstacle_OutsideWall(t *testing.T) {
	_, err := wallplan.Plan(wallplan.PlanRequest{
		Wall:      wallplan.Wall{Width: 10, Height: 10},
		Tool:      wallplan.ToolSpec{Width: 1},
		Obstacles: []wallplan.Obstacle{{Left: 8, Bottom: 0, Right: 12, Top: 2}},
	})
	assert.True(t, errors.Is(err, wallplan.ErrInvalidObstacle))
}

func TestPlan_InvalidObstacle_Degenerate(t *testing.T) {
	_, err := wallplan.Plan(wallplan.PlanRequest{
		Wall:      wallplan.Wall{Width: 10, Height: 10},
		Tool:      wallplan.ToolSpec{Width: 1},
		Obstacles: []wallplan.Obstacle{{Left: 4, Bottom: 4, Right: 4, Top: 6}},
	})
	assert.True(t, errors.Is(err, wallplan.ErrInvalidObstacle))
}
