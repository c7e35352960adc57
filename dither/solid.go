package dither

import (
	"github.com/bodgit/paletteer/frame"
	"github.com/bodgit/paletteer/palette"
)

// Solid writes each pixel's nearest palette color with no perturbation
// at all, producing blocky flat regions instead of dithering artifacts.
func (d *Ditherer) Solid(s *palette.Store, f frame.Frame) {
	frame.WithReplaceBlending(f, func() {
		w, h := f.Width(), f.Height()
		hasTransparent := s.HasTransparent()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := f.At(x, y)
				if c&0x80 == 0 && hasTransparent {
					f.Set(x, y, 0)
					continue
				}
				r, g, b := channels(c)
				f.Set(x, y, s.Color(s.Nearest(r, g, b)))
			}
		}
	})
}
