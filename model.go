package spirograph

import (
	"fmt"
	"math"
)

// Default kinematic constants.
const (
	// DefaultBaseAngle is the angular increment of the primary orbit per step.
	DefaultBaseAngle = 0.03

	// DefaultDrawSpeed is the number of kinematic steps painted per frame.
	DefaultDrawSpeed = 4
)

// Radius ranges as fractions of the surface dimension.
// The primary radius lies in [0.2, 0.45) and the secondary in [0.05, 0.30).
const (
	primaryMin   = 0.4
	secondaryMin = 0.1
	radiusSpread = 0.5
)

// Rand is the source of uniform values in [0, 1) used to pick radii.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Model is the kinematic state of one spirograph: a fixed centre, a
// secondary centre orbiting it and a pen tip orbiting the secondary centre.
//
// The points are allocated once in NewModel; Generate and Iterate only
// overwrite their coordinates.
type Model struct {
	dimension float64
	baseAngle float64

	centre          Point
	secondaryCentre Point
	penTip          Point
	initialPenTip   Point

	primaryRadius   float64
	secondaryRadius float64
	circleRatio     float64
}

// NewModel creates a model for a square surface of the given dimension.
// The centre is fixed at (dimension/2, dimension/2). The model has no curve
// until Generate is called.
func NewModel(dimension, baseAngle float64) (*Model, error) {
	if !(dimension > 0) || math.IsInf(dimension, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimension, dimension)
	}
	return &Model{
		dimension: dimension,
		baseAngle: baseAngle,
		centre:    Pt(dimension/2, dimension/2),
	}, nil
}

// Generate picks new radii from rng and resets the secondary centre and the
// pen tip to the top of the primary circle.
func (m *Model) Generate(rng Rand) {
	m.primaryRadius = m.dimension * 0.5 * (primaryMin + radiusSpread*rng.Float64())
	m.secondaryRadius = m.dimension * 0.5 * (secondaryMin + radiusSpread*rng.Float64())
	m.circleRatio = m.primaryRadius / m.secondaryRadius

	m.secondaryCentre.SetPosition(m.centre.X, m.centre.Y-(m.primaryRadius-m.secondaryRadius))
	m.penTip.SetPosition(m.centre.X, m.centre.Y-m.primaryRadius)
	m.initialPenTip.SetPosition(m.penTip.X, m.penTip.Y)

	Logger().Debug("spirograph: curve generated",
		"primary", m.primaryRadius,
		"secondary", m.secondaryRadius,
		"ratio", m.circleRatio)
}

// Iterate advances the model by one step.
//
// The rotations are applied in a fixed order: the secondary centre about
// the centre, the pen tip about the centre, then the pen tip about the
// updated secondary centre at circleRatio times the base angle.
func (m *Model) Iterate() {
	m.secondaryCentre.RotateAbout(m.centre, m.baseAngle)
	m.penTip.RotateAbout(m.centre, m.baseAngle)
	m.penTip.RotateAbout(m.secondaryCentre, m.baseAngle*m.circleRatio)
}

// Dimension returns the side length of the surface the model draws on.
func (m *Model) Dimension() float64 { return m.dimension }

// BaseAngle returns the primary angular increment per step.
func (m *Model) BaseAngle() float64 { return m.baseAngle }

// Centre returns the fixed centre of the primary circle.
func (m *Model) Centre() Point { return m.centre }

// SecondaryCentre returns the current centre of the secondary circle.
func (m *Model) SecondaryCentre() Point { return m.secondaryCentre }

// PenTip returns the current pen position.
func (m *Model) PenTip() Point { return m.penTip }

// InitialPenTip returns the pen position recorded by the last Generate.
func (m *Model) InitialPenTip() Point { return m.initialPenTip }

// PrimaryRadius returns the orbit radius of the secondary centre.
func (m *Model) PrimaryRadius() float64 { return m.primaryRadius }

// SecondaryRadius returns the orbit radius of the pen tip.
func (m *Model) SecondaryRadius() float64 { return m.secondaryRadius }

// CircleRatio returns PrimaryRadius / SecondaryRadius.
func (m *Model) CircleRatio() float64 { return m.circleRatio }

// Degenerate reports whether the pen or secondary centre has collapsed to
// NaN. This only happens when a rotated point coincides with its pivot,
// which the generator's radius ranges never produce.
func (m *Model) Degenerate() bool {
	return m.penTip.IsNaN() || m.secondaryCentre.IsNaN()
}
