package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trowelbot/wallplan/decompose"
	"github.com/trowelbot/wallplan/geometry"
	"github.com/trowelbot/wallplan/order"
)

func TestOrder_Empty(t *testing.T) {
	got := order.Order(nil, nil)
	assert.Empty(t, got)
}

func TestOrder_SingleCell(t *testing.T) {
	cells := []decompose.Cell{{ID: 0, Rect: geometry.Rect{Left: 0, Bottom: 0, Right: 1, Top: 1}}}
	points := map[int]order.EntryExit{0: {Entry: geometry.Point{}, Exit: geometry.Point{X: 1}}}

	got := order.Order(cells, points)
	assert.Equal(t, []int{0}, got)
}

func TestOrder_StartsAtLexicographicallySmallestCell(t *testing.T) {
	cells := []decompose.Cell{
		{ID: 0, Rect: geometry.Rect{Left: 5, Bottom: 0, Right: 6, Top: 1}},
		{ID: 1, Rect: geometry.Rect{Left: 0, Bottom: 0, Right: 1, Top: 1}},
		{ID: 2, Rect: geometry.Rect{Left: 0, Bottom: 5, Right: 1, Top: 6}},
	}
	points := map[int]order.EntryExit{
		0: {Entry: geometry.Point{X: 5}, Exit: geometry.Point{X: 6}},
		1: {Entry: geometry.Point{X: 0}, Exit: geometry.Point{X: 1}},
		2: {Entry: geometry.Point{X: 0, Y: 5}, Exit: geometry.Point{X: 1, Y: 5}},
	}

	got := order.Order(cells, points)
	assert.Equal(t, 1, got[0], "cell 1 has the smallest (Left,Bottom)")
}

func TestOrder_IsPermutation(t *testing.T) {
	cells := make([]decompose.Cell, 6)
	points := make(map[int]order.EntryExit, 6)
	for i := range cells {
		cells[i] = decompose.Cell{ID: i, Rect: geometry.Rect{Left: float64(i), Bottom: 0, Right: float64(i) + 1, Top: 1}}
		points[i] = order.EntryExit{Entry: geometry.Point{X: float64(i)}, Exit: geometry.Point{X: float64(i) + 1}}
	}

	got := order.Order(cells, points)
	assert.Len(t, got, len(cells))

	seen := make(map[int]bool, len(got))
	for _, id := range got {
		assert.False(t, seen[id], "id %d repeated", id)
		seen[id] = true
	}
}

func TestOrder_NoCostlierThanNaiveLayout(t *testing.T) {
	// Four cells at the corners of the wall: the order returned must cost
	// no more than the naive id order [0, 1, 2, 3].
	cells := []decompose.Cell{
		{ID: 0, Rect: geometry.Rect{Left: 0, Bottom: 0, Right: 1, Top: 1}},
		{ID: 1, Rect: geometry.Rect{Left: 9, Bottom: 0, Right: 10, Top: 1}},
		{ID: 2, Rect: geometry.Rect{Left: 0, Bottom: 9, Right: 1, Top: 10}},
		{ID: 3, Rect: geometry.Rect{Left: 9, Bottom: 9, Right: 10, Top: 10}},
	}
	points := map[int]order.EntryExit{
		0: {Entry: geometry.Point{X: 0, Y: 0}, Exit: geometry.Point{X: 1, Y: 0}},
		1: {Entry: geometry.Point{X: 9, Y: 0}, Exit: geometry.Point{X: 10, Y: 0}},
		2: {Entry: geometry.Point{X: 0, Y: 9}, Exit: geometry.Point{X: 1, Y: 9}},
		3: {Entry: geometry.Point{X: 9, Y: 9}, Exit: geometry.Point{X: 10, Y: 9}},
	}

	got := order.Order(cells, points)
	assert.Len(t, got, 4)

	naive := transitionCost([]int{0, 1, 2, 3}, points)
	optimized := transitionCost(got, points)
	assert.LessOrEqual(t, optimized, naive+geometry.EPSILON)
}

func transitionCost(ord []int, points map[int]order.EntryExit) float64 {
	total := 0.0
	for i := 0; i+1 < len(ord); i++ {
		total += geometry.Dist(points[ord[i]].Exit, points[ord[i+1]].Entry)
	}

	return total
}
