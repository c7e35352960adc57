package dither

import (
	"math"

	"github.com/bodgit/paletteer/colorspace"
	"github.com/bodgit/paletteer/frame"
	"github.com/bodgit/paletteer/palette"
)

// lookup resolves the snapped channels to a palette color, used by the
// ordered dithers for both their first and second passes.
func lookup(s *palette.Store, r, g, b uint8) uint32 {
	return s.Color(s.Nearest(r, g, b))
}

// orderedPixel runs the snap/transparency check shared by every ordered
// dither and calls fn with the reconstructed opaque channels; fn
// returns the final color to write.
func orderedPixel(s *palette.Store, f frame.Frame, hasTransparent bool, x, y int, fn func(r, g, b uint8) uint32) {
	pixel := f.At(x, y)
	if pixel&0x80 == 0 && hasTransparent {
		f.Set(x, y, 0)
		return
	}
	r, g, b := channels(snap(pixel))
	f.Set(x, y, fn(r, g, b))
}

// Jimenez perturbs each pixel's target along the vector toward its
// first-pass nearest color, using gradient interleaved noise (a fast
// approximation of blue noise based on an irrational-number lattice) to
// pick the perturbation's sign and magnitude.
func (d *Ditherer) Jimenez(s *palette.Store, f frame.Frame) {
	frame.WithReplaceBlending(f, func() {
		w, h := f.Width(), f.Height()
		hasTransparent := s.HasTransparent()
		strength := s.DitherStrength() * s.PopulationBias * 3.333

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				orderedPixel(s, f, hasTransparent, x, y, func(r, g, b uint8) uint32 {
					used := lookup(s, r, g, b)
					ur, ug, ub := channels(used)

					pos := frac(52.9829189 * frac(0.06711056*float64(x)+0.00583715*float64(y)))
					adj := math.Sin(pos*2-1) * strength

					rr := clamp(int(r) + int(adj*float64(int(r)-int(ur))))
					gg := clamp(int(g) + int(adj*float64(int(g)-int(ug))))
					bb := clamp(int(b) + int(adj*float64(int(b)-int(ub))))
					return lookup(s, rr, gg, bb)
				})
			}
		}
	})
}

// BlueNoise perturbs each pixel's target using a tiling blue-noise
// texture plus a fine checkerboard term, both looked up by pixel
// position, with no error accumulated between pixels.
func (d *Ditherer) BlueNoise(s *palette.Store, f frame.Frame) {
	frame.WithReplaceBlending(f, func() {
		w, h := f.Width(), f.Height()
		hasTransparent := s.HasTransparent()
		strength := s.DitherStrength() * s.PopulationBias * 1.5

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				orderedPixel(s, f, hasTransparent, x, y, func(r, g, b uint8) uint32 {
					used := lookup(s, r, g, b)
					ur, ug, ub := channels(used)

					adj := blueNoiseAdjustment(x, y) * strength

					rr := clamp(int(r) + int(adj*float64(int(r)-int(ur))))
					gg := clamp(int(g) + int(adj*float64(int(g)-int(ug))))
					bb := clamp(int(b) + int(adj*float64(int(b)-int(ub))))
					return lookup(s, rr, gg, bb)
				})
			}
		}
	})
}

const blueNoiseScale = 1.0 / 127.5

func blueNoiseAdjustment(x, y int) float64 {
	adj := (float64(colorspace.RawBlueNoise[(x&63)|(y&63)<<6]) + 0.5) * blueNoiseScale
	checker := float64((x+y)&1) - 0.5
	adj += checker * (0.5 + float64(colorspace.RawBlueNoise[(x*19&63)|(y*23&63)<<6])) * -0x1.6p-10
	return adj
}

// ChaoticNoise mixes the blue-noise term BlueNoise uses with a tiny
// stateful pseudo-random perturbation derived from the colors
// encountered so far, giving a less regular look than BlueNoise on
// larger palettes.
func (d *Ditherer) ChaoticNoise(s *palette.Store, f frame.Frame) {
	frame.WithReplaceBlending(f, func() {
		w, h := f.Width(), f.Height()
		hasTransparent := s.HasTransparent()
		strength := s.DitherStrength() * s.PopulationBias * 1.5

		var state uint64 = 0xC13FA9A902A6328F

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				orderedPixel(s, f, hasTransparent, x, y, func(r, g, b uint8) uint32 {
					used := lookup(s, r, g, b)
					ur, ug, ub := channels(used)

					base := (float64(colorspace.RawBlueNoise[(x&63)|(y&63)<<6]) + 0.5) * blueNoiseScale
					adj := base * base * base

					checker := float64((x+y)&1) - 0.5
					old := state
					t1 := (old ^ 0x9E3779B97F4A7C15) * 0xC6BC279692B5CC83
					t2 := (^old ^ 0xDB4F0B9175AE2165) * 0xD1B54A32D192ED03
					state = (old ^ packed(r, g, b)) * 0xD1342543DE82EF95 + 0x91E10DA5C79E7B1D
					mix := (int64(t1) >> 15) + (int64(t2) >> 15) + (int64(state) >> 15)
					adj += checker * 0x1.8p-49 * strength * float64(mix)

					rr := clamp(int(r) + int(adj*float64(int(r)-int(ur))))
					gg := clamp(int(g) + int(adj*float64(int(g)-int(ug))))
					bb := clamp(int(b) + int(adj*float64(int(b)-int(ub))))
					return lookup(s, rr, gg, bb)
				})
			}
		}
	})
}

func packed(r, g, b uint8) uint64 {
	return uint64(r)<<24 | uint64(g)<<16 | uint64(b)<<8 | 0xFF
}

func frac(v float64) float64 {
	return v - math.Trunc(v)
}
