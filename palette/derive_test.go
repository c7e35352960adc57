package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/paletteer/frame"
)

func solidFrame(w, h int, c uint32) *frame.RGBA {
	f := frame.New(w, h)
	f.SetBlending(frame.BlendReplace)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Set(x, y, c)
		}
	}
	return f
}

func TestExactFallsBackToHaltonicOnNilPalette(t *testing.T) {
	s := Exact(nil, 256)
	assert.Equal(t, Haltonic, s.Colors)
	assert.Equal(t, MaxColors, s.ColorCount)
}

func TestExactFallsBackToHaltonicOnShortPalette(t *testing.T) {
	s := Exact([]uint32{0xFF0000FF}, 256)
	assert.Equal(t, Haltonic, s.Colors)
}

func TestExactFallsBackToHaltonicOnLowLimit(t *testing.T) {
	s := Exact([]uint32{0xFF0000FF, 0x00FF00FF, 0x0000FFFF}, 1)
	assert.Equal(t, Haltonic, s.Colors)
}

func TestExactSkipsEntriesWithAlphaBitClear(t *testing.T) {
	s := Exact([]uint32{0xFF0000FF, 0x00FF0000, 0x0000FFFF}, 3)
	assert.Equal(t, uint32(0), s.Colors[1])
}

func TestExactCapsAtMaxColors(t *testing.T) {
	rgba := make([]uint32, 300)
	for i := range rgba {
		rgba[i] = uint32(i)<<8 | 0xFF
	}
	s := Exact(rgba, 300)
	assert.Equal(t, MaxColors, s.ColorCount)
}

func TestRestoreRoundTripsPaletteAndMapping(t *testing.T) {
	original := Exact([]uint32{0xFF0000FF, 0x00FF00FF, 0x0000FFFF}, 3)

	rgba := make([]uint32, original.ColorCount)
	for i := range rgba {
		rgba[i] = original.Color(byte(i))
	}

	restored := Restore(rgba, original.Mapping[:])
	assert.Equal(t, original.Mapping, restored.Mapping)
	assert.Equal(t, original.ColorCount, restored.ColorCount)
}

func TestRestoreFallsBackOnBadMappingLength(t *testing.T) {
	s := Restore([]uint32{0xFF0000FF}, []byte{1, 2, 3})
	assert.Equal(t, Haltonic, s.Colors)
}

func TestAnalyzeUsesMostFrequentColorsUnderLimit(t *testing.T) {
	frames := []frame.Frame{
		solidFrame(4, 4, 0xFF0000FF),
	}
	f2 := frame.New(4, 4)
	f2.SetBlending(frame.BlendReplace)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 0 {
				f2.Set(x, y, 0x00FF00FF)
			} else {
				f2.Set(x, y, 0xFF0000FF)
			}
		}
	}
	frames = append(frames, f2)

	s := Analyze(frames, 150, 256)
	require.Greater(t, s.ColorCount, 0)
	assert.Equal(t, uint32(0xFF0000FF), s.Colors[0])
}

func TestAnalyzeReservesSlotZeroWhenTransparentPresent(t *testing.T) {
	f := frame.New(2, 1)
	f.SetBlending(frame.BlendReplace)
	f.Set(0, 0, 0x12345600)
	f.Set(1, 0, 0xFF0000FF)

	s := Analyze([]frame.Frame{f}, 150, 256)
	assert.True(t, s.HasTransparent())
}

func TestAnalyzeAppliesThresholdWhenOverLimit(t *testing.T) {
	f := frame.New(4, 1)
	f.SetBlending(frame.BlendReplace)
	f.Set(0, 0, 0xFF0000FF)
	f.Set(1, 0, 0xF00000FF)
	f.Set(2, 0, 0x00FF00FF)
	f.Set(3, 0, 0x0000FFFF)

	s := Analyze([]frame.Frame{f}, 150, 3)
	assert.LessOrEqual(t, s.ColorCount, 3)
}
