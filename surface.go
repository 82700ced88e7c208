package spirograph

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Surface is the drawable the animator paints on. Its method set mirrors the
// part of an HTML canvas 2D context the toy needs.
type Surface interface {
	// Clear erases the whole surface.
	Clear()

	// BeginPath discards any path under construction.
	BeginPath()

	// MoveTo starts a subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo extends the current subpath with a line to (x, y).
	LineTo(x, y float64)

	// Stroke paints the current path with col and discards it.
	Stroke(col color.Color) error
}

// ContextSurface adapts a gg.Context to Surface.
//
// Clear fills the context with the background colour rather than making it
// transparent, so the trace reads the same in a PNG as in a window.
type ContextSurface struct {
	dc         *gg.Context
	background gg.RGBA
	lineWidth  float64
}

// NewContextSurface wraps dc. Strokes use a line width of 1.
func NewContextSurface(dc *gg.Context, background gg.RGBA) *ContextSurface {
	return &ContextSurface{
		dc:         dc,
		background: background,
		lineWidth:  1,
	}
}

// SetLineWidth sets the width used by subsequent strokes.
func (s *ContextSurface) SetLineWidth(w float64) {
	s.lineWidth = w
}

// Context returns the wrapped gg context.
func (s *ContextSurface) Context() *gg.Context {
	return s.dc
}

// Clear implements Surface.
func (s *ContextSurface) Clear() {
	s.dc.ClearWithColor(s.background)
}

// BeginPath implements Surface.
func (s *ContextSurface) BeginPath() {
	s.dc.ClearPath()
}

// MoveTo implements Surface.
func (s *ContextSurface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
}

// LineTo implements Surface.
func (s *ContextSurface) LineTo(x, y float64) {
	s.dc.LineTo(x, y)
}

// Stroke implements Surface.
func (s *ContextSurface) Stroke(col color.Color) error {
	s.dc.SetColor(col)
	s.dc.SetLineWidth(s.lineWidth)
	return s.dc.Stroke()
}
