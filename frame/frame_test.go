package frame

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetGetRoundTrip(t *testing.T) {
	f := New(2, 2)
	f.SetBlending(BlendReplace)
	f.Set(0, 0, 0xFF0000FF)
	f.Set(1, 1, 0x00FF00FF)
	assert.Equal(t, uint32(0xFF0000FF), f.At(0, 0))
	assert.Equal(t, uint32(0x00FF00FF), f.At(1, 1))
	assert.Equal(t, uint32(0), f.At(0, 1))
}

func TestWithReplaceBlendingRestoresMode(t *testing.T) {
	f := New(1, 1)
	f.SetBlending(BlendSourceOver)
	WithReplaceBlending(f, func() {
		assert.Equal(t, BlendReplace, f.Blending())
	})
	assert.Equal(t, BlendSourceOver, f.Blending())
}

func TestWithReplaceBlendingRestoresOnPanic(t *testing.T) {
	f := New(1, 1)
	f.SetBlending(BlendSourceOver)
	assert.Panics(t, func() {
		WithReplaceBlending(f, func() {
			panic("boom")
		})
	})
	assert.Equal(t, BlendSourceOver, f.Blending())
}

func TestFromImageCollapsesAlphaToTopBit(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{10, 20, 30, 0x7F})
	img.Set(1, 0, color.RGBA{10, 20, 30, 0x80})
	f := FromImage(img)
	assert.Equal(t, uint32(0), f.At(0, 0)&0xFF)
	assert.Equal(t, uint32(0xFF), f.At(1, 0)&0xFF)
}

func TestToImageRoundTrip(t *testing.T) {
	f := New(1, 1)
	f.SetBlending(BlendReplace)
	f.Set(0, 0, 0x10203040)
	img := f.ToImage()
	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0x10), r>>8)
	assert.Equal(t, uint32(0x20), g>>8)
	assert.Equal(t, uint32(0x30), b>>8)
	assert.Equal(t, uint32(0x40), a>>8)
}
