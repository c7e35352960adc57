package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/paletteer/frame"
)

func TestMedianCutRespectsLimit(t *testing.T) {
	f := frame.New(8, 8)
	f.SetBlending(frame.BlendReplace)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			f.Set(x, y, uint32(x)<<27|uint32(y)<<19|0xFF)
		}
	}

	s := MedianCut([]frame.Frame{f}, 8)
	require.Greater(t, s.ColorCount, 0)
	assert.LessOrEqual(t, s.ColorCount, 8)
}

func TestMedianCutClampsLimitToMaxColors(t *testing.T) {
	f := frame.New(4, 4)
	f.SetBlending(frame.BlendReplace)
	f.Set(0, 0, 0xFF0000FF)
	s := MedianCut([]frame.Frame{f}, 1000)
	assert.LessOrEqual(t, s.ColorCount, MaxColors)
}

func TestMedianCutReservesTransparentSlotWhenPresent(t *testing.T) {
	f := frame.New(2, 1)
	f.SetBlending(frame.BlendReplace)
	f.Set(0, 0, 0x12345600)
	f.Set(1, 0, 0xFF0000FF)

	s := MedianCut([]frame.Frame{f}, 4)
	assert.True(t, s.HasTransparent())
}

func TestMedianCutOnEmptyFrameSet(t *testing.T) {
	s := MedianCut(nil, 16)
	assert.NotNil(t, s)
}
