package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRGBA(t *testing.T) {
	assert.Equal(t, White, FromRGBA(color.RGBA{255, 255, 255, 255}))
	assert.Equal(t, Color{0, 0, 0, 1}, FromRGBA(color.RGBA{A: 255}))
	assert.Equal(t, float32(1), FromRGBA(color.RGBA{R: 255}).R())
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.25)
	assert.Equal(t, Color{1, 0, 0, 0.25}, c)
	// value semantics: the original is untouched
	assert.Equal(t, float32(1), Red.A())
}
