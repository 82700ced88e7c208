// Command spirowindow runs the spirograph toy in a gogpu window.
//
// Architecture:
//
//	Session → ContextSurface (trace gg.Context)
//	trace + Overlay → ggcanvas.Canvas → gogpu.Context (GPU) → Window
//
// Rendering is event-driven: an animation token is held only while the
// session has a frame pending, so a paused toy idles at 0% CPU.
//
// Click the left half of the window to pause or resume, the right half to
// start a new curve. Space and Enter do the same from the keyboard.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/spirograph"
)

func main() {
	var (
		width   = flag.Int("width", 900, "window width")
		height  = flag.Int("height", 900, "window height")
		seed    = flag.Uint64("seed", 0, "PRNG seed (0 picks random curves)")
		verbose = flag.Bool("v", false, "log session events to stderr")
	)
	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		spirograph.SetLogger(l)
		gg.SetLogger(l)
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("Spirograph").
		WithSize(*width, *height).
		WithContinuousRender(false))

	h := &host{app: app, logicalWidth: *width}
	if *seed != 0 {
		h.opts = append(h.opts, spirograph.WithSeed(*seed))
	}

	app.OnDraw(h.draw)

	app.EventSource().OnMousePress(func(button gpucontext.MouseButton, x, _ float64) {
		if button != gpucontext.MouseButtonLeft || h.session == nil {
			return
		}
		// gogpu reports the pointer in logical pixels.
		sx := spirograph.SurfaceX(x, h.logicalWidth, h.viewportWidth)
		side := h.session.Click(sx, float64(h.viewportWidth))
		spirograph.Logger().Debug("click", "side", side, "x", x)
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if h.session == nil {
			return
		}
		switch key {
		case gpucontext.KeySpace:
			h.session.Toggle()
		case gpucontext.KeyEnter:
			h.session.SetDrawing(true)
			h.session.Regenerate()
		}
	})

	app.OnClose(func() {
		h.stopAnimation()
		if h.canvas != nil {
			if err := h.canvas.Close(); err != nil {
				log.Printf("Canvas close: %v", err)
			}
		}
		if a := gg.Accelerator(); a != nil {
			a.Close()
		}
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

// host adapts a gogpu App to the spirograph Session: it owns the animation
// token that stands in for the frame-scheduling primitive and composites
// the trace with the overlay every redraw.
type host struct {
	app  *gogpu.App
	opts []spirograph.Option

	session *spirograph.Session
	trace   *gg.Context
	overlay *spirograph.Overlay
	canvas  *ggcanvas.Canvas
	token   *gogpu.AnimationToken

	logicalWidth  int
	viewportWidth int
	offsetX       float64
	offsetY       float64
}

// RequestFrame keeps the window redrawing at VSync until the session stops
// asking for frames.
func (h *host) RequestFrame() {
	if h.token == nil {
		h.token = h.app.StartAnimation()
	}
}

func (h *host) stopAnimation() {
	if h.token != nil {
		h.token.Stop()
		h.token = nil
	}
}

func (h *host) draw(dc *gogpu.Context) {
	w, ht := dc.Width(), dc.Height()
	if w <= 0 || ht <= 0 {
		return
	}
	h.viewportWidth = w

	if h.canvas == nil {
		provider := h.app.GPUContextProvider()
		if provider == nil {
			return
		}
		var err error
		h.canvas, err = ggcanvas.New(provider, w, ht)
		if err != nil {
			log.Fatalf("Failed to create canvas: %v", err)
		}
		log.Printf("Backend: %s, canvas %dx%d", dc.Backend(), w, ht)
	}

	if h.session == nil {
		h.start(w, ht)
	}

	if h.session.Pending() {
		if err := h.session.Frame(); err != nil {
			spirograph.Logger().Warn("frame failed", "err", err)
		}
	}

	if err := h.canvas.Draw(h.composite); err != nil {
		log.Printf("Draw error: %v", err)
	}
	if err := h.canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
		log.Printf("Render error: %v", err)
	}

	if !h.session.NeedsRedraw() {
		h.stopAnimation()
	}
}

// start sizes the trace surface once. gogpu reports the framebuffer in
// physical pixels, so the device pixel ratio is already folded in.
func (h *host) start(w, ht int) {

	dim := spirograph.Dimension(w, ht, 1)
	px := int(dim)
	h.trace = gg.NewContext(px, px)
	h.offsetX = float64(w-px) / 2
	h.offsetY = float64(ht-px) / 2

	face, err := spirograph.LoadFace(dim / 40)
	if err != nil {
		log.Printf("Overlay text disabled: %v", err)
	}
	h.overlay = spirograph.NewOverlay(face, dim)

	surface := spirograph.NewContextSurface(h.trace, gg.Black)
	h.session, err = spirograph.NewSession(dim, surface, h, h.opts...)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	h.session.Start()
}

func (h *host) composite(cc *gg.Context) {
	cc.ClearWithColor(gg.Black)
	if err := h.trace.FlushGPU(); err != nil {
		spirograph.Logger().Warn("trace flush failed", "err", err)
	}
	cc.DrawImage(gg.ImageBufFromImage(h.trace.Image()), h.offsetX, h.offsetY)
	if err := h.overlay.Paint(cc, h.session); err != nil {
		spirograph.Logger().Warn("overlay failed", "err", err)
	}
}
