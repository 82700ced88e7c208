package spirograph

// Side identifies which half of the viewport a click landed in.
type Side int

const (
	// Left is the pause/resume half.
	Left Side = iota

	// Right is the new-curve half.
	Right
)

// String returns the side name.
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// SideOf classifies a horizontal click position within a viewport of the
// given width. Positions strictly left of the midline are Left.
func SideOf(x, viewportWidth float64) Side {
	if x < viewportWidth/2 {
		return Left
	}
	return Right
}

// SurfaceX converts a pointer position in logical pixels to surface pixels
// for a viewport logicalWidth wide backed by a framebuffer surfaceWidth
// wide. A non-positive logicalWidth leaves x unchanged.
func SurfaceX(x float64, logicalWidth, surfaceWidth int) float64 {
	if logicalWidth <= 0 {
		return x
	}
	return x * float64(surfaceWidth) / float64(logicalWidth)
}

// Click handles a pointer click at horizontal position x.
//
// A click in the left half toggles between Drawing and Paused. A click in
// the right half forces Drawing and starts a fresh curve, whatever the
// previous state was. Click returns the side it acted on.
func (s *Session) Click(x, viewportWidth float64) Side {
	side := SideOf(x, viewportWidth)
	switch side {
	case Left:
		s.Toggle()
	case Right:
		s.SetDrawing(true)
		s.Regenerate()
	}
	return side
}
