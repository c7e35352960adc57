package dither

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bodgit/paletteer/frame"
	"github.com/bodgit/paletteer/palette"
)

func checkerFrame(w, h int) *frame.RGBA {
	f := frame.New(w, h)
	f.SetBlending(frame.BlendReplace)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				f.Set(x, y, 0xFF0000FF)
			} else {
				f.Set(x, y, 0x0000FFFF)
			}
		}
	}
	return f
}

func twoColorPalette() *palette.Store {
	return palette.Exact([]uint32{0xFF0000FF, 0x0000FFFF}, 2)
}

func everyPixelInPalette(t *testing.T, s *palette.Store, f *frame.RGBA) {
	allowed := map[uint32]bool{}
	for i := 0; i < s.ColorCount; i++ {
		allowed[s.Color(byte(i))] = true
	}
	w, h := f.Width(), f.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.True(t, allowed[f.At(x, y)], "pixel (%d,%d) = %#08x not in palette", x, y, f.At(x, y))
		}
	}
}

func TestSolidOnlyEmitsPaletteColors(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(8, 8)
	New().Solid(s, f)
	everyPixelInPalette(t, s, f)
}

func TestSolidIdempotent(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(8, 8)
	New().Solid(s, f)
	snapshot := make([]byte, len(f.Pix))
	copy(snapshot, f.Pix)
	New().Solid(s, f)
	assert.Equal(t, snapshot, f.Pix)
}

func TestFloydSteinbergOnlyEmitsPaletteColors(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(16, 16)
	New().FloydSteinberg(s, f)
	everyPixelInPalette(t, s, f)
}

func TestSierraLiteOnlyEmitsPaletteColors(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(16, 16)
	New().SierraLite(s, f)
	everyPixelInPalette(t, s, f)
}

func TestScatterOnlyEmitsPaletteColors(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(16, 16)
	New().Scatter(s, f)
	everyPixelInPalette(t, s, f)
}

func TestJimenezOnlyEmitsPaletteColors(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(16, 16)
	New().Jimenez(s, f)
	everyPixelInPalette(t, s, f)
}

func TestBlueNoiseOnlyEmitsPaletteColors(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(16, 16)
	New().BlueNoise(s, f)
	everyPixelInPalette(t, s, f)
}

func TestChaoticNoiseOnlyEmitsPaletteColors(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(16, 16)
	New().ChaoticNoise(s, f)
	everyPixelInPalette(t, s, f)
}

func TestKnollOnlyEmitsPaletteColors(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(8, 8)
	New().Knoll(s, f)
	everyPixelInPalette(t, s, f)
}

func TestKnollRobertsOnlyEmitsPaletteColors(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(8, 8)
	New().KnollRoberts(s, f)
	everyPixelInPalette(t, s, f)
}

func TestTransparentPixelStaysTransparent(t *testing.T) {
	s := palette.Exact([]uint32{0, 0xFF0000FF, 0x0000FFFF}, 3)
	f := frame.New(2, 1)
	f.SetBlending(frame.BlendReplace)
	f.Set(0, 0, 0x12345600)
	f.Set(1, 0, 0xFF0000FF)
	New().Dither(s, f, Diffusion)
	assert.Equal(t, uint32(0), f.At(0, 0))
}

func TestDitherDispatchDefaultsToScatter(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(4, 4)
	g := checkerFrame(4, 4)
	New().Dither(s, f, Algorithm(999))
	New().Scatter(s, g)
	assert.Equal(t, g.Pix, f.Pix)
}

func TestBlendingModeRestoredAfterDither(t *testing.T) {
	s := twoColorPalette()
	f := checkerFrame(4, 4)
	f.SetBlending(frame.BlendSourceOver)
	New().FloydSteinberg(s, f)
	assert.Equal(t, frame.BlendSourceOver, f.Blending())
}

func TestSortNetworksProduceAscendingLuma(t *testing.T) {
	colors := []uint32{0xFFFFFFFF, 0x000000FF, 0x808080FF, 0x404040FF, 0xC0C0C0FF, 0x202020FF, 0x606060FF, 0xE0E0E0FF}
	c8 := append([]uint32(nil), colors...)
	sort8(c8)
	for i := 1; i < len(c8); i++ {
		assert.LessOrEqual(t, luma(c8[i-1]), luma(c8[i]))
	}

	c16 := make([]uint32, 16)
	for i := range c16 {
		c16[i] = colors[i%len(colors)] ^ uint32(i<<4)&0xFF00
	}
	sort16(c16)
	for i := 1; i < len(c16); i++ {
		assert.LessOrEqual(t, luma(c16[i-1]), luma(c16[i]))
	}
}
