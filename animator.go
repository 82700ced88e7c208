package spirograph

import (
	"fmt"
	"image/color"
)

// State is the drawing state of an Animator.
type State int

const (
	// Drawing means a frame is scheduled and every frame extends the trace.
	Drawing State = iota

	// Paused means no frame is scheduled.
	Paused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Drawing:
		return "drawing"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Animator drives a Model frame by frame and paints the pen trace.
//
// It is a two-state machine (Drawing, Paused). While Drawing it keeps
// exactly one frame requested from its Scheduler; pausing simply declines
// to request the next one.
//
// Animator is NOT safe for concurrent use. All calls must come from the
// host's single event thread.
type Animator struct {
	model     *Model
	surface   Surface
	scheduler Scheduler
	drawSpeed int
	stroke    color.Color
	listener  func(State)

	state   State
	pending bool
	frames  uint64
}

func newAnimator(m *Model, surface Surface, scheduler Scheduler, o *options) *Animator {
	return &Animator{
		model:     m,
		surface:   surface,
		scheduler: scheduler,
		drawSpeed: o.drawSpeed,
		stroke:    o.stroke,
		listener:  o.listener,
		state:     Drawing,
	}
}

// State returns the current state.
func (a *Animator) State() State { return a.state }

// Pending reports whether a frame has been requested and not yet run.
func (a *Animator) Pending() bool { return a.pending }

// Frames returns the number of frames painted so far.
func (a *Animator) Frames() uint64 { return a.frames }

// Frame runs one scheduled frame: it starts a path at the pen tip, advances
// the model DrawSpeed steps extending the path to each new pen position,
// and strokes the path once. The next frame is requested only if the
// animator is still Drawing.
//
// A frame delivered while Paused paints nothing. A stroke error is returned
// after the next frame has been requested, so a failed paint does not stop
// the animation.
func (a *Animator) Frame() error {
	a.pending = false
	if a.state != Drawing {
		return nil
	}

	a.surface.BeginPath()
	p := a.model.PenTip()
	a.surface.MoveTo(p.X, p.Y)
	for range a.drawSpeed {
		a.model.Iterate()
		p = a.model.PenTip()
		a.surface.LineTo(p.X, p.Y)
	}
	err := a.surface.Stroke(a.stroke)
	a.frames++

	if a.state == Drawing {
		a.request()
	}
	if err != nil {
		return fmt.Errorf("spirograph: stroke frame %d: %w", a.frames, err)
	}
	return nil
}

// Toggle flips between Drawing and Paused. Resuming requests a frame.
func (a *Animator) Toggle() {
	if a.state == Drawing {
		a.transition(Paused)
	} else {
		a.transition(Drawing)
	}
}

// SetDrawing forces the state. It is a no-op when the animator is already
// in the requested state, so repeated calls never schedule a second frame.
func (a *Animator) SetDrawing(on bool) {
	want := Paused
	if on {
		want = Drawing
	}
	if want == a.state {
		return
	}
	a.transition(want)
}

func (a *Animator) start() {
	a.state = Drawing
	a.request()
	a.notify()
}

func (a *Animator) transition(s State) {
	a.state = s
	if s == Drawing {
		a.request()
	}
	Logger().Info("spirograph: state changed", "state", s)
	a.notify()
}

func (a *Animator) notify() {
	if a.listener != nil {
		a.listener(a.state)
	}
}

// request asks the scheduler for a frame unless one is already pending.
func (a *Animator) request() {
	if a.pending {
		return
	}
	a.pending = true
	a.scheduler.RequestFrame()
}
