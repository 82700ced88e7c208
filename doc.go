// Package spirograph animates a pen tracing an epicyclic curve.
//
// # Overview
//
// Two nested circles turn about a fixed centre: a secondary centre orbits
// the centre at a fixed base angle per step, and the pen orbits the
// secondary centre at a rate scaled by the ratio of the two radii. Each
// animation frame advances the model a few steps and strokes the segment
// the pen travelled, so the curve builds up on the surface over time.
//
// # Quick Start
//
//	dc := gg.NewContext(800, 800)
//	surface := spirograph.NewContextSurface(dc, gg.Black)
//	var frames spirograph.FrameQueue
//
//	s, err := spirograph.NewSession(800, surface, &frames, spirograph.WithSeed(1))
//	if err != nil {
//		log.Fatal(err)
//	}
//	s.Start()
//	for i := 0; i < 600 && frames.Next(); i++ {
//		_ = s.Frame()
//	}
//	dc.SavePNG("spiro.png")
//
// # Interaction
//
// Hosts forward clicks to [Session.Click]. A click in the left half of the
// viewport pauses or resumes; a click in the right half starts a new curve
// and resumes drawing.
//
// # Threading
//
// A Session is driven from a single event thread. The host calls
// [Session.Frame] once for every [Scheduler.RequestFrame] and delivers
// clicks between frames; nothing is locked.
//
// # Coordinate System
//
// Same as gg: origin at top-left, X right, Y down. Angles used by
// [Point.AngleTo] and [Point.RotateAbout] are measured from +Y towards +X.
package spirograph
