// Package docrender is the default paint procedure: it draws every box
// of a compiled document as a solid colored quad through the desktop-GL
// binding. The renderer treats it as opaque; any other Painter can be
// swapped in.
package docrender

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/Hackzzila/FrameUi/engine/dom"
	glctx "github.com/Hackzzila/FrameUi/engine/gfx/gl"
	"github.com/Hackzzila/FrameUi/engine/render"
)

// Clear color behind the document, matching nothing in particular —
// it is only visible where no box covers the frame.
var clearColor = [4]float32{0.3, 0.0, 0.0, 1.0}

// floats per vertex: x, y, r, g, b, a
const vertexStride = 6

// Painter implements render.Painter over go-gl. Construct it after the
// context has been loaded for the OpenGL variant, with that context
// current.
type Painter struct {
	program uint32
	vao     uint32
	vbo     uint32
	vboCap  int
	verts   []float32
}

// New compiles the quad pipeline. Precondition: the target context is
// current and was loaded with glctx.OpenGL.
func New(ctx *glctx.Context) (*Painter, error) {
	if ctx.API() != glctx.OpenGL {
		return nil, fmt.Errorf("docrender: context is %s, need %s", ctx.API(), glctx.OpenGL)
	}

	p := &Painter{}
	var err error
	p.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec4 aColor;
	const stride = vertexStride * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	return p, nil
}

// Shutdown deletes the GL objects. Context must be current.
func (p *Painter) Shutdown() {
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
	}
	*p = Painter{}
}

// Paint draws doc into the current framebuffer. Degenerate geometry and
// nil documents clear the frame and stop there. inner skips the clear
// pass and paints only the document content.
func (p *Painter) Paint(_ *glctx.Context, size render.DeviceSize, pixelRatio float32, doc *dom.CompiledDocument, inner bool) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	gl.Viewport(0, 0, size.Width, size.Height)
	if !inner {
		gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}

	if doc.Len() == 0 || pixelRatio <= 0 || math32.IsNaN(pixelRatio) || math32.IsInf(pixelRatio, 0) {
		return
	}

	// Logical units -> clip space. Y flips so the document origin is the
	// top-left corner.
	layoutW := float32(size.Width) / pixelRatio
	layoutH := float32(size.Height) / pixelRatio
	sx := 2.0 / layoutW
	sy := 2.0 / layoutH

	p.verts = p.verts[:0]
	doc.Walk(func(_ int, b dom.Box) bool {
		if b.Width <= 0 || b.Height <= 0 {
			return true
		}
		x0 := b.Left*sx - 1
		y0 := 1 - b.Top*sy
		x1 := (b.Left+b.Width)*sx - 1
		y1 := 1 - (b.Top+b.Height)*sy
		c := b.Background
		p.quad(x0, y0, x1, y1, c[0], c[1], c[2], c[3])
		return true
	})
	if len(p.verts) == 0 {
		return
	}

	gl.UseProgram(p.program)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	if len(p.verts) > p.vboCap {
		p.vboCap = len(p.verts)
		gl.BufferData(gl.ARRAY_BUFFER, p.vboCap*4, gl.Ptr(p.verts), gl.STREAM_DRAW)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(p.verts)*4, gl.Ptr(p.verts))
	}
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(p.verts)/vertexStride))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// quad appends two triangles covering (x0,y0)-(x1,y1) in clip space.
func (p *Painter) quad(x0, y0, x1, y1, r, g, b, a float32) {
	p.verts = append(p.verts,
		x0, y0, r, g, b, a,
		x1, y0, r, g, b, a,
		x1, y1, r, g, b, a,

		x0, y0, r, g, b, a,
		x1, y1, r, g, b, a,
		x0, y1, r, g, b, a,
	)
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
out vec4 vColor;
void main() {
    vColor = aColor;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec4 vColor;
out vec4 FragColor;
void main() {
    FragColor = vColor;
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
