package wallplan

import "errors"

// Sentinel errors raised by Plan as precondition failures before any
// computation begins. Validation runs once at Plan's entry; internal stages
// trust their inputs and never fail on well-formed data.
var (
	// ErrInvalidDimensions indicates a non-positive wall width or height.
	ErrInvalidDimensions = errors.New("wallplan: invalid wall dimensions")

	// ErrInvalidTool indicates a non-positive tool width, a negative overlap
	// margin, or an overlap margin that is not strictly less than the tool
	// width.
	ErrInvalidTool = errors.New("wallplan: invalid tool spec")

	// ErrInvalidObstacle indicates a degenerate obstacle rectangle (left >=
	// right or bottom >= top) or one extending outside the wall.
	ErrInvalidObstacle = errors.New("wallplan: invalid obstacle")
)
