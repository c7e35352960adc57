package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasTransparentReflectsSlotZero(t *testing.T) {
	s := Exact([]uint32{0, 0xFF0000FF, 0x00FF00FF}, 3)
	assert.True(t, s.HasTransparent())

	s2 := Exact([]uint32{0xFF0000FF, 0x00FF00FF}, 2)
	assert.False(t, s2.HasTransparent())
}

func TestDitherStrengthDefaultsToHalf(t *testing.T) {
	s := Exact([]uint32{0xFF0000FF, 0x00FF00FF}, 2)
	assert.Equal(t, 0.5, s.DitherStrength())
}

func TestSetDitherStrengthHalvesInput(t *testing.T) {
	s := Exact([]uint32{0xFF0000FF, 0x00FF00FF}, 2)
	s.SetDitherStrength(1.0)
	assert.Equal(t, 0.5, s.DitherStrength())
	s.SetDitherStrength(0.2)
	assert.InDelta(t, 0.1, s.DitherStrength(), 1e-9)
}

func TestSetDitherStrengthClampsNegative(t *testing.T) {
	s := Exact([]uint32{0xFF0000FF, 0x00FF00FF}, 2)
	s.SetDitherStrength(-5)
	assert.Equal(t, 0.0, s.DitherStrength())
}

func TestNearestReturnsExactMatchForPaletteColor(t *testing.T) {
	s := Exact([]uint32{0xFF0000FF, 0x00FF00FF, 0x0000FFFF}, 3)
	idx := s.Nearest(0, 0xFF, 0)
	assert.Equal(t, uint32(0x00FF00FF), s.Color(idx))
}

func TestCloneIsIndependent(t *testing.T) {
	s := Exact([]uint32{0xFF0000FF, 0x00FF00FF}, 2)
	c := s.Clone()
	c.SetDitherStrength(0.1)
	assert.NotEqual(t, s.DitherStrength(), c.DitherStrength())
	c.Mapping[0] = 0xFF
	assert.NotEqual(t, s.Mapping[0], c.Mapping[0])
}

func TestGammaPreservesAlphaChannel(t *testing.T) {
	s := Exact([]uint32{0xFF0000FF, 0x00FF00FF}, 2)
	s.SetDitherStrength(0.3)
	for i := 0; i < s.ColorCount; i++ {
		assert.Equal(t, s.Color(byte(i))&0xFF, s.Gamma(i)&0xFF)
	}
}
