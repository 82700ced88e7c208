package spirograph

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Common errors returned by NewSession.
var (
	// ErrInvalidDimension is returned when the surface dimension is not a
	// positive finite number.
	ErrInvalidDimension = errors.New("spirograph: invalid dimension")

	// ErrInvalidDrawSpeed is returned when fewer than one step per frame is
	// configured.
	ErrInvalidDrawSpeed = errors.New("spirograph: invalid draw speed")

	// ErrNilSurface is returned when a nil Surface is passed.
	ErrNilSurface = errors.New("spirograph: nil surface")

	// ErrNilScheduler is returned when a nil Scheduler is passed.
	ErrNilScheduler = errors.New("spirograph: nil scheduler")
)

// Session owns all state of one running toy: the kinematic model, the
// animator and the tutorial timer. Hosts feed it frames and clicks; nothing
// in the package keeps global drawing state.
//
// Session is NOT safe for concurrent use. Frame, Click and the other
// mutating methods must be called from the host's single event thread.
type Session struct {
	model   *Model
	anim    *Animator
	surface Surface
	rng     Rand

	clock        func() time.Time
	tutorial     time.Duration
	started      time.Time
	tutorialGone bool
}

// NewSession creates a session for a square surface of side dimension and
// draws its first curve parameters. The surface is cleared. Call Start to
// begin animating.
func NewSession(dimension float64, surface Surface, scheduler Scheduler, opts ...Option) (*Session, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if scheduler == nil {
		return nil, ErrNilScheduler
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.drawSpeed < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDrawSpeed, o.drawSpeed)
	}

	m, err := NewModel(dimension, o.baseAngle)
	if err != nil {
		return nil, err
	}

	s := &Session{
		model:    m,
		anim:     newAnimator(m, surface, scheduler, &o),
		surface:  surface,
		rng:      o.rng,
		clock:    o.clock,
		tutorial: o.tutorial,
	}
	s.Regenerate()
	return s, nil
}

// Dimension returns scale × min(width, height), the side length of the
// square drawing surface for a viewport of the given size and pixel density.
func Dimension(width, height int, scale float64) float64 {
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}
	return scale * float64(min(width, height))
}

// Start enters the Drawing state, requests the first frame and starts the
// tutorial timer.
func (s *Session) Start() {
	s.started = s.clock()
	s.tutorialGone = s.tutorial <= 0
	Logger().Info("spirograph: session started",
		"dimension", s.model.Dimension(),
		"tutorial", s.tutorial)
	s.anim.start()
}

// Frame runs one scheduled frame. Hosts call it once per RequestFrame.
func (s *Session) Frame() error {
	return s.anim.Frame()
}

// Regenerate draws new radii, resets the pen and clears the surface. It does
// not change the drawing state.
func (s *Session) Regenerate() {
	s.model.Generate(s.rng)
	s.surface.Clear()
}

// Toggle flips between Drawing and Paused.
func (s *Session) Toggle() {
	s.anim.Toggle()
}

// SetDrawing forces the drawing state; it is a no-op if already there.
func (s *Session) SetDrawing(on bool) {
	s.anim.SetDrawing(on)
}

// State returns the current drawing state.
func (s *Session) State() State { return s.anim.State() }

// Paused reports whether the pause indicator should be visible.
func (s *Session) Paused() bool { return s.anim.State() == Paused }

// Pending reports whether a frame has been requested and not yet run.
func (s *Session) Pending() bool { return s.anim.Pending() }

// NeedsRedraw reports whether the host should keep repainting: a frame is
// pending or the tutorial overlay has yet to be taken down.
func (s *Session) NeedsRedraw() bool {
	return s.anim.Pending() || s.TutorialVisible()
}

// Frames returns the number of frames painted so far.
func (s *Session) Frames() uint64 { return s.anim.Frames() }

// Model returns the kinematic model. Callers must not mutate it.
func (s *Session) Model() *Model { return s.model }

// TutorialVisible reports whether the tutorial overlay is still shown. Once
// the delay after Start has elapsed it returns false for good.
func (s *Session) TutorialVisible() bool {
	if s.tutorialGone || s.started.IsZero() {
		return false
	}
	if s.clock().Sub(s.started) >= s.tutorial {
		s.tutorialGone = true
		Logger().Debug("spirograph: tutorial removed")
		return false
	}
	return true
}
