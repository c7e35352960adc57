package colorspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShrinkStretchRoundTrip(t *testing.T) {
	for _, c := range []uint32{0xFF0000FF, 0x00FF00FF, 0x0000FFFF, 0x123456FF, 0x808080FF} {
		s := Shrink(c)
		back := Stretch(s)
		assert.Equal(t, uint32(0xFF), back&0xFF)
		// Differs only in the low 3 bits of each channel.
		for _, shift := range []uint{24, 16, 8} {
			a, b := (c>>shift)&0xFF, (back>>shift)&0xFF
			assert.LessOrEqual(t, int(absDiff(a, b)), 7)
		}
	}
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestDifferenceIdentity(t *testing.T) {
	assert.Equal(t, 0.0, Difference(0xFF0000FF, 0xFF0000FF))
}

func TestDifferenceOrdering(t *testing.T) {
	dGreen := Difference(0xFF0000FF, 0x00FF00FF)
	dPink := Difference(0xFF0000FF, 0xFF8080FF)
	assert.Greater(t, dGreen, dPink)
}

func TestDifferenceAlphaMismatch(t *testing.T) {
	assert.True(t, math.IsInf(Difference(0xFF000000, 0xFF0000FF), 1))
}

func TestDifferenceChannelsMatchesPacked(t *testing.T) {
	a := uint32(0x112233FF)
	got := DifferenceRGB(a, 0x44, 0x55, 0x66)
	want := DifferenceChannels(0x11, 0x22, 0x33, 0x44, 0x55, 0x66)
	assert.InDelta(t, want, got, 1e-9)
}
