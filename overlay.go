package spirograph

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// TutorialText is the hint shown while the tutorial overlay is visible.
const TutorialText = "left: pause / resume    right: new curve"

// LoadFace returns a Go Regular face at the given size in points.
func LoadFace(size float64) (text.Face, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("spirograph: load font: %w", err)
	}
	return source.Face(size), nil
}

// Overlay paints the pause indicator and the tutorial hint on top of a
// frame. It never touches the trace surface: hosts composite the trace
// first and paint the overlay on the result.
//
// A nil face disables text; the pause glyph is still drawn.
type Overlay struct {
	face text.Face
	unit float64
}

// NewOverlay creates an overlay for a surface of the given dimension.
func NewOverlay(face text.Face, dimension float64) *Overlay {
	return &Overlay{
		face: face,
		unit: max(dimension/40, 8),
	}
}

// Paint draws the overlay elements that s currently wants visible.
func (o *Overlay) Paint(dc *gg.Context, s *Session) error {
	if s.Paused() {
		if err := o.paintPause(dc); err != nil {
			return err
		}
	}
	if s.TutorialVisible() {
		o.paintTutorial(dc)
	}
	return nil
}

// paintPause draws two vertical bars in the top-left corner.
func (o *Overlay) paintPause(dc *gg.Context) error {
	u := o.unit
	dc.SetRGBA(1, 1, 1, 0.8)
	dc.DrawRoundedRectangle(u, u, u*0.6, u*2, u*0.15)
	dc.DrawRoundedRectangle(u*2, u, u*0.6, u*2, u*0.15)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("spirograph: paint pause indicator: %w", err)
	}
	if o.face != nil {
		dc.SetFont(o.face)
		dc.DrawString("paused", u*3.2, u*2.6)
	}
	return nil
}

// paintTutorial draws the hint centred near the bottom edge.
func (o *Overlay) paintTutorial(dc *gg.Context) {
	if o.face == nil {
		return
	}
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetFont(o.face)
	dc.SetRGBA(1, 1, 1, 0.9)
	dc.DrawStringAnchored(TutorialText, w/2, h-o.unit*2, 0.5, 0.5)
}
