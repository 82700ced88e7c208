package spirograph

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/gogpu/gg"
)

// DefaultTutorialDelay is how long the tutorial overlay stays visible.
const DefaultTutorialDelay = 2 * time.Second

// Option configures a Session during creation.
//
// Example:
//
//	// Default: base angle 0.03, four steps per frame, random curves
//	s, err := spirograph.NewSession(800, surface, scheduler)
//
//	// Reproducible curves
//	s, err := spirograph.NewSession(800, surface, scheduler, spirograph.WithSeed(42))
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	baseAngle float64
	drawSpeed int
	rng       Rand
	stroke    color.Color
	tutorial  time.Duration
	clock     func() time.Time
	listener  func(State)
}

// defaultOptions returns the default session options.
func defaultOptions() options {
	return options{
		baseAngle: DefaultBaseAngle,
		drawSpeed: DefaultDrawSpeed,
		rng:       globalRand{},
		stroke:    gg.White.Color(),
		tutorial:  DefaultTutorialDelay,
		clock:     time.Now,
	}
}

// WithBaseAngle sets the primary angular increment per kinematic step.
func WithBaseAngle(rad float64) Option {
	return func(o *options) {
		o.baseAngle = rad
	}
}

// WithDrawSpeed sets how many kinematic steps are painted per frame.
// NewSession rejects values below 1.
func WithDrawSpeed(steps int) Option {
	return func(o *options) {
		o.drawSpeed = steps
	}
}

// WithRand sets the source used to pick radii for new curves.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed makes curve generation reproducible by seeding a PCG source.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithStrokeColor sets the trace colour. The default is white.
func WithStrokeColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.stroke = c
		}
	}
}

// WithTutorial sets how long the tutorial overlay is shown after Start.
// Zero disables it.
func WithTutorial(d time.Duration) Option {
	return func(o *options) {
		o.tutorial = d
	}
}

// WithClock replaces time.Now for the tutorial timer.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithStateListener registers fn to be called whenever the animator enters
// a state, including the initial Drawing state on Start. Hosts use it to
// show or hide the pause indicator.
func WithStateListener(fn func(State)) Option {
	return func(o *options) {
		o.listener = fn
	}
}

// globalRand draws from the math/rand/v2 top-level generator.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
