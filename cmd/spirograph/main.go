// Command spirograph renders a spirograph animation headlessly and saves the
// final frame as a PNG.
//
// It drives the same Session an interactive host does, with a FrameQueue in
// place of a display loop and a simulated 60 Hz clock, so a given -seed
// always produces the same image.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/spirograph"
)

const frameInterval = time.Second / 60

func main() {
	var (
		size       = flag.Int("size", 800, "viewport size in logical pixels")
		scale      = flag.Float64("scale", 1, "device pixel ratio")
		frames     = flag.Int("frames", 600, "number of frames to run")
		seed       = flag.Uint64("seed", 0, "PRNG seed (0 picks a random curve)")
		regenerate = flag.Int("regenerate-every", 0, "click the right half every N frames (0 disables)")
		pauseAt    = flag.Int("pause-at", -1, "click the left half at frame N (-1 disables)")
		overlay    = flag.Bool("overlay", false, "paint the pause indicator and tutorial into the output")
		output     = flag.String("output", "spiro.png", "output file")
		verbose    = flag.Bool("v", false, "log session events to stderr")
	)
	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		spirograph.SetLogger(l)
		gg.SetLogger(l)
	}

	dim := spirograph.Dimension(*size, *size, *scale)
	px := int(dim)
	dc := gg.NewContext(px, px)
	surface := spirograph.NewContextSurface(dc, gg.Black)

	clock := newStepClock(time.Now(), frameInterval)
	opts := []spirograph.Option{spirograph.WithClock(clock.Now)}
	if *seed != 0 {
		opts = append(opts, spirograph.WithSeed(*seed))
	}

	var queue spirograph.FrameQueue
	s, err := spirograph.NewSession(dim, surface, &queue, opts...)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	s.Start()

	width := float64(px)
	for i := 0; i < *frames; i++ {
		if *regenerate > 0 && i > 0 && i%*regenerate == 0 {
			s.Click(width*0.75, width)
		}
		if i == *pauseAt {
			s.Click(width*0.25, width)
		}
		if queue.Next() {
			if err := s.Frame(); err != nil {
				log.Printf("Frame %d: %v", i, err)
			}
		}
		clock.Step()
	}

	out := dc
	if *overlay {
		out = gg.NewContext(px, px)
		out.DrawImage(gg.ImageBufFromImage(dc.Image()), 0, 0)
		face, err := spirograph.LoadFace(dim / 40)
		if err != nil {
			log.Printf("Overlay text disabled: %v", err)
		}
		if err := spirograph.NewOverlay(face, dim).Paint(out, s); err != nil {
			log.Printf("Overlay: %v", err)
		}
	}

	if err := out.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	m := s.Model()
	log.Printf("Saved %s (%dx%d, %d frames, ratio %.4f, %s)\n",
		*output, px, px, s.Frames(), m.CircleRatio(), s.State())
}

// stepClock is a manual clock advanced once per simulated frame.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func newStepClock(start time.Time, step time.Duration) *stepClock {
	return &stepClock{now: start, step: step}
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Step() { c.now = c.now.Add(c.step) }
