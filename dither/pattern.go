package dither

import (
	"github.com/bodgit/paletteer/colorspace"
	"github.com/bodgit/paletteer/frame"
	"github.com/bodgit/paletteer/palette"
)

// thresholdMatrix8 is the 2x4 ordered-dither matrix Joel Yliluoma
// described for an 8-candidate pattern dither.
var thresholdMatrix8 = [8]int{
	0, 4, 2, 6,
	3, 7, 1, 5,
}

// thresholdMatrix16 is the 4x4 Bayer-like matrix Knoll's pattern dither
// indexes by pixel position to pick which of sixteen sorted candidates
// to emit.
var thresholdMatrix16 = [16]int{
	0, 12, 3, 15,
	8, 4, 11, 7,
	2, 14, 1, 13,
	10, 6, 9, 5,
}

func luma(c uint32) float64 {
	return colorspace.Oklab[0][colorspace.Shrink(c)]
}

func compareSwap(c []uint32, a, b int) {
	if luma(c[a]) > luma(c[b]) {
		c[a], c[b] = c[b], c[a]
	}
}

// sort8 orders an 8-element candidate array by Oklab L using the
// known-optimal 19-comparator sorting network for length 8, preserving
// deterministic tie-breaking instead of relying on a general sort.
func sort8(c []uint32) {
	compareSwap(c, 0, 1)
	compareSwap(c, 2, 3)
	compareSwap(c, 0, 2)
	compareSwap(c, 1, 3)
	compareSwap(c, 1, 2)
	compareSwap(c, 4, 5)
	compareSwap(c, 6, 7)
	compareSwap(c, 4, 6)
	compareSwap(c, 5, 7)
	compareSwap(c, 5, 6)
	compareSwap(c, 0, 4)
	compareSwap(c, 1, 5)
	compareSwap(c, 1, 4)
	compareSwap(c, 2, 6)
	compareSwap(c, 3, 7)
	compareSwap(c, 3, 6)
	compareSwap(c, 2, 4)
	compareSwap(c, 3, 5)
	compareSwap(c, 3, 4)
}

// sort16 orders a 16-element candidate array by Oklab L using the
// known-optimal sorting network for length 16.
func sort16(c []uint32) {
	compareSwap(c, 0, 1)
	compareSwap(c, 2, 3)
	compareSwap(c, 4, 5)
	compareSwap(c, 6, 7)
	compareSwap(c, 8, 9)
	compareSwap(c, 10, 11)
	compareSwap(c, 12, 13)
	compareSwap(c, 14, 15)
	compareSwap(c, 0, 2)
	compareSwap(c, 4, 6)
	compareSwap(c, 8, 10)
	compareSwap(c, 12, 14)
	compareSwap(c, 1, 3)
	compareSwap(c, 5, 7)
	compareSwap(c, 9, 11)
	compareSwap(c, 13, 15)
	compareSwap(c, 0, 4)
	compareSwap(c, 8, 12)
	compareSwap(c, 1, 5)
	compareSwap(c, 9, 13)
	compareSwap(c, 2, 6)
	compareSwap(c, 10, 14)
	compareSwap(c, 3, 7)
	compareSwap(c, 11, 15)
	compareSwap(c, 0, 8)
	compareSwap(c, 1, 9)
	compareSwap(c, 2, 10)
	compareSwap(c, 3, 11)
	compareSwap(c, 4, 12)
	compareSwap(c, 5, 13)
	compareSwap(c, 6, 14)
	compareSwap(c, 7, 15)
	compareSwap(c, 5, 10)
	compareSwap(c, 6, 9)
	compareSwap(c, 3, 12)
	compareSwap(c, 13, 14)
	compareSwap(c, 7, 11)
	compareSwap(c, 1, 2)
	compareSwap(c, 4, 8)
	compareSwap(c, 1, 4)
	compareSwap(c, 7, 13)
	compareSwap(c, 2, 8)
	compareSwap(c, 11, 14)
	compareSwap(c, 2, 4)
	compareSwap(c, 5, 6)
	compareSwap(c, 9, 10)
	compareSwap(c, 11, 13)
	compareSwap(c, 3, 8)
	compareSwap(c, 7, 12)
	compareSwap(c, 6, 8)
	compareSwap(c, 10, 12)
	compareSwap(c, 3, 5)
	compareSwap(c, 7, 9)
	compareSwap(c, 3, 4)
	compareSwap(c, 5, 6)
	compareSwap(c, 7, 8)
	compareSwap(c, 9, 10)
	compareSwap(c, 11, 12)
	compareSwap(c, 6, 7)
	compareSwap(c, 8, 9)
}

// Knoll reduces a frame using Thomas Knoll's pattern dither: sixteen
// candidate colors are generated per pixel by repeatedly perturbing the
// target with a running error and looking it up, then the candidates
// are sorted by perceptual lightness and one is picked by pixel
// position via thresholdMatrix16. This produces a visible needlepoint
// grid and is far slower than the other dithers, since every pixel
// does sixteen full palette lookups.
func (d *Ditherer) Knoll(s *palette.Store, f frame.Frame) {
	d.knollPattern(s, f, 16, s.DitherStrength()*s.PopulationBias, func(x, y int) int {
		return thresholdMatrix16[(x&3)|(y&3)<<2]
	})
}

// KnollRoberts is Knoll with eight candidates instead of sixteen and
// its threshold-matrix index skewed by a Roberts-sequence offset, which
// trades the square grid artifact for a less regular hexagonal one.
func (d *Ditherer) KnollRoberts(s *palette.Store, f frame.Frame) {
	d.knollPattern(s, f, 8, s.DitherStrength()*s.PopulationBias*0.6, func(x, y int) int {
		skew := int(float64(x)*0x1.C13FA9A902A6328Fp3+float64(y)*0x1.9E3779B97F4A7C15p-2) & 3
		return thresholdMatrix8[skew^((x&3)|(y&1)<<2)]
	})
}

func (d *Ditherer) knollPattern(s *palette.Store, f frame.Frame, n int, errorMul float64, index func(x, y int) int) {
	frame.WithReplaceBlending(f, func() {
		w, h := f.Width(), f.Height()
		hasTransparent := s.HasTransparent()
		candidates := make([]uint32, n)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				color := f.At(x, y)
				if color&0x80 == 0 && hasTransparent {
					f.Set(x, y, 0)
					continue
				}

				cr, cg, cb := channels(color)
				var er, eg, eb int

				for i := 0; i < n; i++ {
					rr := clamp(int(float64(cr) + float64(er)*errorMul))
					gg := clamp(int(float64(cg) + float64(eg)*errorMul))
					bb := clamp(int(float64(cb) + float64(eb)*errorMul))

					usedIndex := s.Nearest(rr, gg, bb)
					candidates[i] = s.Color(usedIndex)
					used := s.Gamma(int(usedIndex))
					ur, ug, ub := channels(used)

					er += int(cr) - int(ur)
					eg += int(cg) - int(ug)
					eb += int(cb) - int(ub)
				}

				if n == 16 {
					sort16(candidates)
				} else {
					sort8(candidates)
				}
				f.Set(x, y, candidates[index(x, y)])
			}
		}
	})
}
