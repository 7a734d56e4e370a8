package wallplan

import "fmt"

func validate(req PlanRequest) error {
	if req.Wall.Width <= 0 || req.Wall.Height <= 0 {
		return fmt.Errorf("%w: width=%g height=%g", ErrInvalidDimensions, req.Wall.Width, req.Wall.Height)
	}

	if req.Tool.Width <= 0 {
		return fmt.Errorf("%w: tool width %g must be positive", ErrInvalidTool, req.Tool.Width)
	}
	if req.Tool.OverlapMargin < 0 {
		return fmt.Errorf("%w: overlap margin %g must be >= 0", ErrInvalidTool, req.Tool.OverlapMargin)
	}
	if req.Tool.OverlapMargin >= req.Tool.Width {
		return fmt.Errorf("%w: overlap margin %g must be < tool width %g", ErrInvalidTool, req.Tool.OverlapMargin, req.Tool.Width)
	}

	for i, o := range req.Obstacles {
		if o.Left >= o.Right || o.Bottom >= o.Top {
			return fmt.Errorf("%w: obstacle %d is degenerate %+v", ErrInvalidObstacle, i, o)
		}
		if o.Left < 0 || o.Right > req.Wall.Width || o.Bottom < 0 || o.Top > req.Wall.Height {
			return fmt.Errorf("%w: obstacle %d %+v extends outside the %gx%g wall", ErrInvalidObstacle, i, o, req.Wall.Width, req.Wall.Height)
		}
	}

	return nil
}
