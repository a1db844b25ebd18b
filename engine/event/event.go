// Package event translates host window events into renderer state
// updates and bracketed render-and-swap cycles. It is the only layer
// allowed to change which GL context is current: every paint is wrapped
// as make-current, render, swap-buffers, make-not-current, so several
// handlers can share one thread or one native context without stepping
// on each other.
package event

import (
	"github.com/Hackzzila/FrameUi/engine/dom"
	"github.com/Hackzzila/FrameUi/engine/render"
)

// DeviceSize is re-exported so hosts only deal with one package.
type DeviceSize = render.DeviceSize

// Windowing is the context-bracketing strategy supplied by the host.
// Every method receives the handler's opaque user tag and is assumed
// synchronous and non-reentrant; SwapBuffers may block on vsync.
type Windowing interface {
	MakeCurrent(user any)
	SwapBuffers(user any)
	MakeNotCurrent(user any)
}

// Callbacks adapts three plain functions to the Windowing interface,
// for hosts that hand over raw function pointers rather than an object.
// Nil functions are treated as no-ops.
type Callbacks struct {
	SwapBuffersFunc    func(user any)
	MakeCurrentFunc    func(user any)
	MakeNotCurrentFunc func(user any)
}

func (c Callbacks) MakeCurrent(user any) {
	if c.MakeCurrentFunc != nil {
		c.MakeCurrentFunc(user)
	}
}

func (c Callbacks) SwapBuffers(user any) {
	if c.SwapBuffersFunc != nil {
		c.SwapBuffersFunc(user)
	}
}

func (c Callbacks) MakeNotCurrent(user any) {
	if c.MakeNotCurrentFunc != nil {
		c.MakeNotCurrentFunc(user)
	}
}

// Event is one discrete window event.
type Event interface{ isEvent() }

// Resized reports a new framebuffer size in physical pixels.
type Resized struct{ Size DeviceSize }

// ScaleFactorChanged reports a new device pixel ratio.
type ScaleFactorChanged struct{ Scale float32 }

// Redraw asks for one full-frame paint.
type Redraw struct{}

// Empty is the idle tick delivered once per host loop iteration. It
// paints exactly like Redraw; it exists so continuous-render hosts with
// no native damage signal still get a well-formed cycle every tick.
type Empty struct{}

func (Resized) isEvent()            {}
func (ScaleFactorChanged) isEvent() {}
func (Redraw) isEvent()             {}
func (Empty) isEvent()              {}

// Handler owns one renderer and drives it from host events. One handler
// per window/context pairing.
type Handler struct {
	renderer  *render.Renderer
	windowing Windowing
	doc       *dom.CompiledDocument
	user      any
}

// New wraps renderer, taking ownership of it. doc is the document
// painted on every redraw; passing nil selects per-call binding, where
// the host threads a document in through SetDocument before triggering
// a redraw. No callback is invoked here.
func New(renderer *render.Renderer, doc *dom.CompiledDocument, w Windowing, user any) *Handler {
	return &Handler{
		renderer:  renderer,
		windowing: w,
		doc:       doc,
		user:      user,
	}
}

// Handle dispatches one event. Events must be delivered in the order
// the host produced them; state updates are guaranteed visible to every
// later paint.
func (h *Handler) Handle(ev Event) {
	switch ev := ev.(type) {
	case Resized:
		h.HandleResize(ev.Size)
	case ScaleFactorChanged:
		h.HandleScaleFactorChange(ev.Scale)
	case Redraw:
		h.HandleRedraw()
	case Empty:
		h.HandleEmpty()
	}
}

// HandleResize stores the new framebuffer size. No GL call and no
// bracketing; the next redraw picks the size up.
func (h *Handler) HandleResize(size DeviceSize) {
	h.renderer.SetDeviceSize(size)
}

// HandleScaleFactorChange stores the new device pixel ratio. Same
// no-bracketing contract as HandleResize.
func (h *Handler) HandleScaleFactorChange(scale float32) {
	h.renderer.SetScaleFactor(scale)
}

// HandleRedraw runs one bracketed full-frame render-and-swap cycle.
func (h *Handler) HandleRedraw() {
	h.renderCycle()
}

// HandleEmpty is the idle tick. Behaviorally identical to HandleRedraw.
func (h *Handler) HandleEmpty() {
	h.renderCycle()
}

// renderCycle is the bracketing invariant in one place: make-current,
// render the full frame, swap, make-not-current. Always the complete
// sequence, even for a zero-area viewport or a nil document — the
// painter is responsible for the visual no-op in those cases.
func (h *Handler) renderCycle() {
	h.windowing.MakeCurrent(h.user)
	h.renderer.Render(false, h.doc)
	h.windowing.SwapBuffers(h.user)
	h.windowing.MakeNotCurrent(h.user)
}

// User returns the opaque tag passed to every Windowing callback.
func (h *Handler) User() any { return h.user }

// SetUser replaces the opaque tag.
func (h *Handler) SetUser(user any) { h.user = user }

// Document returns the currently bound document, nil under per-call
// binding until the host sets one.
func (h *Handler) Document() *dom.CompiledDocument { return h.doc }

// SetDocument rebinds the document painted on subsequent redraws.
func (h *Handler) SetDocument(doc *dom.CompiledDocument) { h.doc = doc }

// Renderer exposes the owned renderer for direct state queries.
func (h *Handler) Renderer() *render.Renderer { return h.renderer }

// Release tears down the owned renderer inside a current context, then
// invalidates the handler. The bound document is never freed here; it
// stays owned by whoever compiled it. A second Release panics.
func (h *Handler) Release() {
	if h.renderer == nil {
		panic("event: Handler released twice")
	}
	h.windowing.MakeCurrent(h.user)
	h.renderer.Release()
	h.windowing.MakeNotCurrent(h.user)
	h.renderer = nil
	h.doc = nil
}
