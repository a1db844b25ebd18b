package main

import (
	"log"

	"golang.org/x/image/colornames"

	"github.com/Hackzzila/FrameUi/engine/colors"
	"github.com/Hackzzila/FrameUi/engine/dom"
	"github.com/Hackzzila/FrameUi/engine/event"
	"github.com/Hackzzila/FrameUi/engine/gfx/docrender"
	"github.com/Hackzzila/FrameUi/engine/gfx/gl"
	"github.com/Hackzzila/FrameUi/engine/platform"
	"github.com/Hackzzila/FrameUi/engine/render"
)

// demoDocument stands in for the external compiler: a root background
// plus a few content boxes, in logical units.
func demoDocument() *dom.CompiledDocument {
	return dom.Compile([]dom.Box{
		{Left: 0, Top: 0, Width: 1280, Height: 720, Background: colors.FromRGBA(colornames.Slategray)},
		{Left: 40, Top: 40, Width: 400, Height: 240, Background: colors.FromRGBA(colornames.Steelblue)},
		{Left: 480, Top: 40, Width: 400, Height: 240, Background: colors.FromRGBA(colornames.Seagreen)},
		{Left: 40, Top: 320, Width: 840, Height: 120, Background: colors.FromRGBA(colornames.Goldenrod).WithAlpha(0.8)},
	})
}

func main() {
	cfg := platform.Config{
		Title:  "FrameUi sandbox",
		Width:  1280,
		Height: 720,
		VSync:  true,
	}

	win, err := platform.NewWindow(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer win.Destroy()

	// Context is current after NewWindow; load the table and build the
	// painter while it still is.
	ctx, err := gl.Load(gl.OpenGL, win.ProcResolver())
	if err != nil {
		log.Fatal(err)
	}
	painter, err := docrender.New(ctx)
	if err != nil {
		log.Fatal(err)
	}
	win.DetachContext()

	r := render.New(ctx, win.ContentScale(), win.FramebufferSize(), painter)
	h := event.New(r, demoDocument(), win, win)
	defer h.Release()

	win.BindHandler(h)
	platform.Run(win, h)
}
