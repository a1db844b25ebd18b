// Package platform adapts a GLFW window to the event layer: it supplies
// the symbol resolver for context loading, implements the bracketing
// callbacks, and forwards window events to a handler.
package platform

import (
	"fmt"
	"log"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Hackzzila/FrameUi/engine/event"
	"github.com/Hackzzila/FrameUi/engine/gfx/gl"
	"github.com/Hackzzila/FrameUi/engine/render"
)

// Config for window creation.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window wraps one GLFW window plus its GL context. It implements
// event.Windowing; the user tag is ignored because GLFW binds context
// state to the window object itself.
type Window struct {
	w *glfw.Window
}

// NewWindow creates the window and leaves its context current so the
// caller can load the GL table. Must run on the main thread; the OS
// thread is locked here.
func NewWindow(cfg Config) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("platform: glfw init: %w", err)
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("platform: create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return &Window{w: win}, nil
}

// ProcResolver returns a gl.ProcResolver backed by GLFW. Valid only
// while this window's context is current.
func (w *Window) ProcResolver() gl.ProcResolver {
	return func(name string) unsafe.Pointer {
		return glfw.GetProcAddress(name)
	}
}

// event.Windowing impl. GLFW keys context currency off the window, so
// the opaque tag is unused here.
func (w *Window) MakeCurrent(_ any)    { w.w.MakeContextCurrent() }
func (w *Window) SwapBuffers(_ any)    { w.w.SwapBuffers() }
func (w *Window) MakeNotCurrent(_ any) { glfw.DetachCurrentContext() }

// DetachContext releases currency after initial loading, before the
// event loop takes over bracketing.
func (w *Window) DetachContext() { glfw.DetachCurrentContext() }

// FramebufferSize returns the current framebuffer size in physical
// pixels.
func (w *Window) FramebufferSize() render.DeviceSize {
	fw, fh := w.w.GetFramebufferSize()
	return render.DeviceSize{Width: int32(fw), Height: int32(fh)}
}

// ContentScale returns the current device pixel ratio (x axis; GLFW
// reports both, they only differ on exotic setups).
func (w *Window) ContentScale() float32 {
	sx, _ := w.w.GetContentScale()
	return sx
}

// BindHandler installs the GLFW callbacks that feed h: framebuffer size
// to HandleResize, content scale to HandleScaleFactorChange, window
// refresh to HandleRedraw.
func (w *Window) BindHandler(h *event.Handler) {
	w.w.SetFramebufferSizeCallback(func(_ *glfw.Window, fw, fh int) {
		h.HandleResize(render.DeviceSize{Width: int32(fw), Height: int32(fh)})
	})
	w.w.SetContentScaleCallback(func(_ *glfw.Window, sx, _ float32) {
		h.HandleScaleFactorChange(sx)
	})
	w.w.SetRefreshCallback(func(_ *glfw.Window) {
		h.HandleRedraw()
	})
}

func (w *Window) PollEvents()       { glfw.PollEvents() }
func (w *Window) ShouldClose() bool { return w.w.ShouldClose() }
func (w *Window) SetTitle(t string) { w.w.SetTitle(t) }

// Destroy tears down the window and GLFW itself.
func (w *Window) Destroy() {
	w.w.Destroy()
	glfw.Terminate()
}

// Run drives h until the window closes: poll events, then one idle tick
// per iteration. Hosts with a damage signal get extra cycles through
// the refresh callback; continuous hosts live off the tick alone.
func Run(w *Window, h *event.Handler) {
	for !w.ShouldClose() {
		w.PollEvents()
		h.HandleEmpty()
	}
	log.Println("platform: window closed")
}
