// Package gl loads a GL or GLES function table from a host-supplied
// symbol resolver and wraps it in an owned Context handle.
package gl

import (
	"fmt"
	"unsafe"

	gles "github.com/go-gl/gl/v3.1/gles2"
	gl33 "github.com/go-gl/gl/v3.3-core/gl"
)

// API selects which entry-point table Load resolves.
type API int

const (
	OpenGL API = iota
	GLES
)

func (a API) String() string {
	switch a {
	case OpenGL:
		return "OpenGL"
	case GLES:
		return "GLES"
	default:
		return fmt.Sprintf("API(%d)", int(a))
	}
}

// ProcResolver looks up one GL entry point by name, returning nil when
// the symbol is unavailable. It is called synchronously during Load and
// never retained afterwards.
type ProcResolver func(name string) unsafe.Pointer

// Entry points every usable context must provide. Resolution failure on
// any of these fails the whole load.
var mandatoryProcs = []string{
	"glActiveTexture",
	"glAttachShader",
	"glBindBuffer",
	"glBindTexture",
	"glBlendFuncSeparate",
	"glBufferData",
	"glBufferSubData",
	"glClear",
	"glClearColor",
	"glCompileShader",
	"glCreateProgram",
	"glCreateShader",
	"glDeleteBuffers",
	"glDeleteProgram",
	"glDeleteShader",
	"glDeleteTextures",
	"glDisable",
	"glDrawArrays",
	"glDrawElements",
	"glEnable",
	"glEnableVertexAttribArray",
	"glFlush",
	"glGenBuffers",
	"glGenTextures",
	"glGetError",
	"glGetIntegerv",
	"glGetProgramInfoLog",
	"glGetProgramiv",
	"glGetShaderInfoLog",
	"glGetShaderiv",
	"glGetString",
	"glGetUniformLocation",
	"glLinkProgram",
	"glPixelStorei",
	"glScissor",
	"glShaderSource",
	"glTexImage2D",
	"glTexParameteri",
	"glUniform1i",
	"glUniform4f",
	"glUseProgram",
	"glVertexAttribPointer",
	"glViewport",
}

// Entry points newer than the baseline API level. Missing ones are
// recorded absent and must never be invoked; Has reports availability.
var optionalProcs = []string{
	"glBindImageTexture",
	"glDebugMessageCallback",
	"glDispatchCompute",
	"glGetProgramBinary",
	"glInvalidateFramebuffer",
	"glMemoryBarrier",
	"glTexStorage2D",
}

// Context is a resolved GL/GLES function table. A Context is exclusively
// owned by one renderer for its whole lifetime and released exactly once.
type Context struct {
	api      API
	procs    map[string]unsafe.Pointer
	released bool
}

// Load resolves the full entry-point table for api through resolve.
// Loading is all-or-nothing for the mandatory set: if any mandatory
// symbol resolves to nil, no Context is returned. Optional symbols may
// be missing; they are recorded absent.
func Load(api API, resolve ProcResolver) (*Context, error) {
	if resolve == nil {
		return nil, fmt.Errorf("gl: nil proc resolver")
	}

	procs := make(map[string]unsafe.Pointer, len(mandatoryProcs)+len(optionalProcs))
	for _, name := range mandatoryProcs {
		p := resolve(name)
		if p == nil {
			return nil, fmt.Errorf("gl: missing mandatory entry point %s", name)
		}
		procs[name] = p
	}
	for _, name := range optionalProcs {
		if p := resolve(name); p != nil {
			procs[name] = p
		}
	}

	// Populate the matching binding table from the same resolver so the
	// paint procedure can issue calls through it.
	var err error
	switch api {
	case OpenGL:
		err = gl33.InitWithProcAddrFunc(resolve)
	case GLES:
		err = gles.InitWithProcAddrFunc(resolve)
	default:
		return nil, fmt.Errorf("gl: unknown API %s", api)
	}
	if err != nil {
		return nil, fmt.Errorf("gl: init %s table: %w", api, err)
	}

	return &Context{api: api, procs: procs}, nil
}

// API reports which table variant this context was loaded with.
func (c *Context) API() API { return c.api }

// Proc returns the resolved entry point, or nil if it is absent.
func (c *Context) Proc(name string) unsafe.Pointer { return c.procs[name] }

// Has reports whether an entry point resolved at load time.
func (c *Context) Has(name string) bool { return c.procs[name] != nil }

// Release invalidates the context. Calling it twice is a programming
// error and panics.
func (c *Context) Release() {
	if c.released {
		panic("gl: Context released twice")
	}
	c.released = true
	c.procs = nil
}

// Released reports whether Release has run.
func (c *Context) Released() bool { return c.released }
