package paletteer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/paletteer/dither"
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

func TestPipelineReduceOnlyEmitsPaletteColors(t *testing.T) {
	s := palette.Exact([]uint32{0xFF0000FF, 0x0000FFFF}, 2)
	frames := []frame.Frame{checkerFrame(8, 8), checkerFrame(8, 8), checkerFrame(8, 8)}

	p := &Pipeline{Concurrency: 2}
	require.NoError(t, p.Reduce(context.Background(), s, frames, dither.Diffusion))

	allowed := map[uint32]bool{s.Color(0): true, s.Color(1): true}
	for _, f := range frames {
		rgba := f.(*frame.RGBA)
		for y := 0; y < rgba.Height(); y++ {
			for x := 0; x < rgba.Width(); x++ {
				assert.True(t, allowed[rgba.At(x, y)])
			}
		}
	}
}

func TestPipelineReduceEmptyFrameSet(t *testing.T) {
	s := palette.Exact([]uint32{0xFF0000FF, 0x0000FFFF}, 2)
	p := &Pipeline{}
	assert.NoError(t, p.Reduce(context.Background(), s, nil, dither.Diffusion))
}

func TestPipelineReduceCancelledContext(t *testing.T) {
	s := palette.Exact([]uint32{0xFF0000FF, 0x0000FFFF}, 2)
	frames := []frame.Frame{checkerFrame(4, 4)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &Pipeline{Concurrency: 1}
	assert.NoError(t, p.Reduce(ctx, s, frames, dither.Diffusion))
}
