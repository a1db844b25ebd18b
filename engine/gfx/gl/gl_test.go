package gl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dummy byte

// fakeResolver resolves every symbol to a dummy pointer except the
// listed names, which resolve to nil.
func fakeResolver(missing ...string) ProcResolver {
	gone := make(map[string]bool, len(missing))
	for _, name := range missing {
		gone[name] = true
	}
	return func(name string) unsafe.Pointer {
		if gone[name] {
			return nil
		}
		return unsafe.Pointer(&dummy)
	}
}

func TestLoadAllSymbols(t *testing.T) {
	ctx, err := Load(OpenGL, fakeResolver())
	require.NoError(t, err)
	require.NotNil(t, ctx)

	assert.Equal(t, OpenGL, ctx.API())
	assert.True(t, ctx.Has("glClear"))
	assert.NotNil(t, ctx.Proc("glViewport"))
}

func TestLoadGLES(t *testing.T) {
	ctx, err := Load(GLES, fakeResolver())
	require.NoError(t, err)
	assert.Equal(t, GLES, ctx.API())
}

func TestLoadMissingMandatoryFails(t *testing.T) {
	ctx, err := Load(OpenGL, fakeResolver("glClear"))
	assert.Nil(t, ctx)
	assert.ErrorContains(t, err, "glClear")
}

func TestLoadMissingOptionalTolerated(t *testing.T) {
	ctx, err := Load(OpenGL, fakeResolver("glDispatchCompute"))
	require.NoError(t, err)

	assert.False(t, ctx.Has("glDispatchCompute"))
	assert.Nil(t, ctx.Proc("glDispatchCompute"))
	assert.True(t, ctx.Has("glTexStorage2D"))
}

func TestLoadNilResolver(t *testing.T) {
	ctx, err := Load(OpenGL, nil)
	assert.Nil(t, ctx)
	assert.Error(t, err)
}

func TestLoadUnknownAPI(t *testing.T) {
	ctx, err := Load(API(42), fakeResolver())
	assert.Nil(t, ctx)
	assert.Error(t, err)
}

func TestReleaseOnce(t *testing.T) {
	ctx, err := Load(OpenGL, fakeResolver())
	require.NoError(t, err)

	assert.False(t, ctx.Released())
	ctx.Release()
	assert.True(t, ctx.Released())
	assert.Panics(t, func() { ctx.Release() })
}

func TestAPIString(t *testing.T) {
	assert.Equal(t, "OpenGL", OpenGL.String())
	assert.Equal(t, "GLES", GLES.String())
	assert.Equal(t, "API(7)", API(7).String())
}
