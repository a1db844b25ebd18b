// Package render owns per-window viewport state and dispatches paint
// calls against a compiled document. It never touches context currency;
// the event layer decides when the context is current.
package render

import (
	"github.com/chewxy/math32"

	"github.com/Hackzzila/FrameUi/engine/dom"
	"github.com/Hackzzila/FrameUi/engine/gfx/gl"
)

// DeviceSize is a viewport size in physical pixels. Both fields are
// expected to be >= 0; a zero-area size is degenerate but legal and
// must result in a visual no-op, not a fault.
type DeviceSize struct {
	Width, Height int32
}

// Painter issues the actual draw calls for one frame. Implementations
// may assume the context is current on the calling goroutine, and must
// tolerate degenerate geometry and a nil document by doing nothing.
type Painter interface {
	Paint(ctx *gl.Context, size DeviceSize, pixelRatio float32, doc *dom.CompiledDocument, inner bool)
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc func(ctx *gl.Context, size DeviceSize, pixelRatio float32, doc *dom.CompiledDocument, inner bool)

func (f PainterFunc) Paint(ctx *gl.Context, size DeviceSize, pixelRatio float32, doc *dom.CompiledDocument, inner bool) {
	f(ctx, size, pixelRatio, doc, inner)
}

// Renderer holds the mutable render state for one window: the owned GL
// context, the current device size and the current device pixel ratio.
type Renderer struct {
	ctx        *gl.Context
	size       DeviceSize
	pixelRatio float32
	layoutW    float32
	layoutH    float32
	painter    Painter
}

// New creates a renderer, taking ownership of ctx. The caller keeps
// pixelRatio > 0; no GL call is issued here, so no context needs to be
// current at construction time.
func New(ctx *gl.Context, pixelRatio float32, size DeviceSize, p Painter) *Renderer {
	r := &Renderer{
		ctx:        ctx,
		size:       size,
		pixelRatio: pixelRatio,
		painter:    p,
	}
	r.updateLayoutSize()
	return r
}

// SetDeviceSize replaces the stored viewport size. Pure state update;
// the next paint picks it up.
func (r *Renderer) SetDeviceSize(size DeviceSize) {
	r.size = size
	r.updateLayoutSize()
}

// SetScaleFactor replaces the stored device pixel ratio. Precondition:
// ratio > 0; a non-positive or non-finite ratio degrades to a zero
// layout size rather than faulting.
func (r *Renderer) SetScaleFactor(ratio float32) {
	r.pixelRatio = ratio
	r.updateLayoutSize()
}

func (r *Renderer) updateLayoutSize() {
	if r.pixelRatio <= 0 || math32.IsNaN(r.pixelRatio) || math32.IsInf(r.pixelRatio, 0) {
		r.layoutW, r.layoutH = 0, 0
		return
	}
	r.layoutW = float32(r.size.Width) / r.pixelRatio
	r.layoutH = float32(r.size.Height) / r.pixelRatio
}

// DeviceSize returns the current viewport size.
func (r *Renderer) DeviceSize() DeviceSize { return r.size }

// ScaleFactor returns the current device pixel ratio.
func (r *Renderer) ScaleFactor() float32 { return r.pixelRatio }

// LayoutSize returns the viewport size in logical units, i.e. the
// device size divided by the pixel ratio.
func (r *Renderer) LayoutSize() (w, h float32) { return r.layoutW, r.layoutH }

// Context exposes the owned GL context, e.g. for painters that want to
// probe optional entry points.
func (r *Renderer) Context() *gl.Context { return r.ctx }

// Render paints doc with the current size and pixel ratio. inner
// selects content-only rendering versus the full frame; the distinction
// is owned by the painter and passed through unchanged.
//
// Precondition: the caller has made the owned context current.
func (r *Renderer) Render(inner bool, doc *dom.CompiledDocument) {
	if r.painter == nil {
		return
	}
	r.painter.Paint(r.ctx, r.size, r.pixelRatio, doc, inner)
}

// Release frees the owned GL context. Exactly one Release per renderer;
// a second call is a programming error and panics.
func (r *Renderer) Release() {
	if r.ctx == nil {
		panic("render: Renderer released twice")
	}
	r.ctx.Release()
	r.ctx = nil
	r.painter = nil
}
