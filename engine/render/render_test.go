package render

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hackzzila/FrameUi/engine/colors"
	"github.com/Hackzzila/FrameUi/engine/dom"
	"github.com/Hackzzila/FrameUi/engine/gfx/gl"
)

var dummy byte

func testContext(t *testing.T) *gl.Context {
	t.Helper()
	ctx, err := gl.Load(gl.OpenGL, func(string) unsafe.Pointer {
		return unsafe.Pointer(&dummy)
	})
	require.NoError(t, err)
	return ctx
}

// recordingPainter captures every Paint call.
type recordingPainter struct {
	calls []paintCall
}

type paintCall struct {
	ctx        *gl.Context
	size       DeviceSize
	pixelRatio float32
	doc        *dom.CompiledDocument
	inner      bool
}

func (p *recordingPainter) Paint(ctx *gl.Context, size DeviceSize, ratio float32, doc *dom.CompiledDocument, inner bool) {
	p.calls = append(p.calls, paintCall{ctx, size, ratio, doc, inner})
}

func TestRenderSeesLatestState(t *testing.T) {
	ctx := testContext(t)
	p := &recordingPainter{}
	r := New(ctx, 1.0, DeviceSize{Width: 800, Height: 600}, p)
	doc := dom.Compile([]dom.Box{{Width: 10, Height: 10, Background: colors.Red}})

	r.Render(false, doc)
	r.SetDeviceSize(DeviceSize{Width: 1024, Height: 768})
	r.SetScaleFactor(2.0)
	r.Render(true, doc)

	require.Len(t, p.calls, 2)
	assert.Equal(t, paintCall{ctx, DeviceSize{800, 600}, 1.0, doc, false}, p.calls[0])
	assert.Equal(t, paintCall{ctx, DeviceSize{1024, 768}, 2.0, doc, true}, p.calls[1])
}

func TestSettersAreIdempotent(t *testing.T) {
	r := New(testContext(t), 2.0, DeviceSize{Width: 200, Height: 100}, nil)

	for i := 0; i < 3; i++ {
		r.SetDeviceSize(DeviceSize{Width: 200, Height: 100})
		r.SetScaleFactor(2.0)
	}
	assert.Equal(t, DeviceSize{200, 100}, r.DeviceSize())
	assert.Equal(t, float32(2.0), r.ScaleFactor())

	w, h := r.LayoutSize()
	assert.Equal(t, float32(100), w)
	assert.Equal(t, float32(50), h)
}

func TestZeroSizeRenders(t *testing.T) {
	p := &recordingPainter{}
	r := New(testContext(t), 1.0, DeviceSize{}, p)

	r.Render(false, nil)

	require.Len(t, p.calls, 1)
	assert.Equal(t, DeviceSize{}, p.calls[0].size)
	assert.Nil(t, p.calls[0].doc)
}

func TestDegenerateScaleFactor(t *testing.T) {
	r := New(testContext(t), 1.0, DeviceSize{Width: 100, Height: 100}, nil)

	r.SetScaleFactor(0)
	w, h := r.LayoutSize()
	assert.Zero(t, w)
	assert.Zero(t, h)

	r.SetScaleFactor(2)
	w, h = r.LayoutSize()
	assert.Equal(t, float32(50), w)
	assert.Equal(t, float32(50), h)
}

func TestRenderWithoutPainter(t *testing.T) {
	r := New(testContext(t), 1.0, DeviceSize{Width: 1, Height: 1}, nil)
	assert.NotPanics(t, func() { r.Render(false, nil) })
}

func TestPainterFunc(t *testing.T) {
	var got paintCall
	p := PainterFunc(func(ctx *gl.Context, size DeviceSize, ratio float32, doc *dom.CompiledDocument, inner bool) {
		got = paintCall{ctx, size, ratio, doc, inner}
	})
	ctx := testContext(t)
	r := New(ctx, 1.5, DeviceSize{Width: 3, Height: 4}, p)

	r.Render(true, nil)
	assert.Equal(t, paintCall{ctx, DeviceSize{3, 4}, 1.5, nil, true}, got)
}

func TestReleaseOnce(t *testing.T) {
	ctx := testContext(t)
	r := New(ctx, 1.0, DeviceSize{}, nil)

	r.Release()
	assert.True(t, ctx.Released())
	assert.Panics(t, func() { r.Release() })
}
