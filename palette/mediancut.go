package palette

import (
	stdcolor "image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/bodgit/paletteer/frame"
)

// MedianCut builds a Store using go-quantize's median-cut algorithm instead
// of the perceptual-threshold greedy selection Analyze performs. It trades
// perceptual accuracy for speed on frames with very large distinct-color
// counts, where Analyze's O(distinct*limit) greedy loop would dominate.
// go-quantize only sees a single source image, so multiple frames are
// concatenated side-by-side into one synthetic image first and the
// resulting palette reflects every frame. When any frame has a transparent
// pixel, the reserved transparent slot counts against limit.
func MedianCut(frames []frame.Frame, limit int) *Store {
	if limit > MaxColors {
		limit = MaxColors
	}
	if limit < 1 {
		limit = MaxColors
	}

	img := concatFrames(frames)

	hasTransparent := false
	for _, f := range frames {
		w, h := f.Width(), f.Height()
		for y := 0; y < h && !hasTransparent; y++ {
			for x := 0; x < w; x++ {
				if f.At(x, y)&0x80 == 0 {
					hasTransparent = true
					break
				}
			}
		}
	}

	capacity := limit
	if hasTransparent && capacity > 1 {
		capacity--
	}
	q := quantize.MedianCutQuantizer{}
	cp := q.Quantize(make(stdcolor.Palette, 0, capacity), img)

	rgba := make([]uint32, 0, len(cp)+1)
	if hasTransparent {
		rgba = append(rgba, 0)
	}
	for _, c := range cp {
		r, g, b, _ := c.RGBA()
		rgba = append(rgba, uint32(r>>8)<<24|uint32(g>>8)<<16|uint32(b>>8)<<8|0xFF)
	}

	return Exact(rgba, len(rgba))
}

func concatFrames(frames []frame.Frame) draw.Image {
	if len(frames) == 0 {
		return frame.New(1, 1).ToImage()
	}
	h := 0
	w := 0
	for _, f := range frames {
		if f.Height() > h {
			h = f.Height()
		}
		w += f.Width()
	}
	out := frame.New(w, h)
	out.SetBlending(frame.BlendReplace)
	ox := 0
	for _, f := range frames {
		fw, fh := f.Width(), f.Height()
		for y := 0; y < fh; y++ {
			for x := 0; x < fw; x++ {
				out.Set(ox+x, y, f.At(x, y))
			}
		}
		ox += fw
	}
	return out.ToImage()
}
