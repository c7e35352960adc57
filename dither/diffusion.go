package dither

import (
	"github.com/bodgit/paletteer/colorspace"
	"github.com/bodgit/paletteer/frame"
	"github.com/bodgit/paletteer/palette"
)

// diffusionWeights names where FloydSteinberg, SierraLite, and Scatter
// send a pixel's quantization error: right stays in the current row
// (one column ahead), the other three land in the row below.
type diffusionWeights struct {
	right, downLeft, down, downRight float64
}

// FloydSteinberg distributes residual error to four neighbors with
// weights 7/3/5/1 out of 16, the classic error-diffusion dither.
func (d *Ditherer) FloydSteinberg(s *palette.Store, f frame.Frame) {
	w1 := s.DitherStrength() * s.PopulationBias * 0.125
	d.diffuse(s, f, diffusionWeights{right: w1 * 7, downLeft: w1 * 3, down: w1 * 5, downRight: w1}, false)
}

// SierraLite distributes residual error to three neighbors only: full
// weight right, half weight down-left and down.
func (d *Ditherer) SierraLite(s *palette.Store, f frame.Frame) {
	w := s.DitherStrength() * s.PopulationBias
	d.diffuse(s, f, diffusionWeights{right: w, downLeft: w * 0.5, down: w * 0.5, downRight: 0}, false)
}

// Scatter is Floyd-Steinberg with every weight additionally scaled down
// and the current row's accumulated error multiplied by a
// triangular-distribution blue-noise factor before it perturbs the
// target, breaking up Floyd-Steinberg's regular artifacts.
func (d *Ditherer) Scatter(s *palette.Store, f frame.Frame) {
	w1 := s.DitherStrength() * s.PopulationBias * 0.140625
	d.diffuse(s, f, diffusionWeights{right: w1 * 7, downLeft: w1 * 3, down: w1 * 5, downRight: w1}, true)
}

func (d *Ditherer) diffuse(s *palette.Store, f frame.Frame, w diffusionWeights, scatter bool) {
	frame.WithReplaceBlending(f, func() {
		width, height := f.Width(), f.Height()
		if width == 0 || height == 0 {
			return
		}
		d.ensureRows(width)
		hasTransparent := s.HasTransparent()

		for y := 0; y < height; y++ {
			ny := y + 1
			for i := 0; i < width; i++ {
				d.curR[i], d.curG[i], d.curB[i] = d.nextR[i], d.nextG[i], d.nextB[i]
				d.nextR[i], d.nextG[i], d.nextB[i] = 0, 0, 0
			}

			for x := 0; x < width; x++ {
				pixel := f.At(x, y)
				if pixel&0x80 == 0 && hasTransparent {
					f.Set(x, y, 0)
					continue
				}

				er, eg, eb := d.curR[x], d.curG[x], d.curB[x]
				if scatter {
					tbn := colorspace.TriBlueNoiseMultipliers[(x&63)|((y<<6)&0xFC0)]
					er = toInt8(float64(er) * tbn)
					eg = toInt8(float64(eg) * tbn)
					eb = toInt8(float64(eb) * tbn)
				}

				r0, g0, b0 := channels(snap(pixel))
				rr := clamp(int(r0) + int(er))
				gg := clamp(int(g0) + int(eg))
				bb := clamp(int(b0) + int(eb))

				idx := s.Nearest(rr, gg, bb)
				used := s.Color(idx)
				f.Set(x, y, used)

				ur, ug, ub := channels(used)
				rdiff := float64(int(r0) - int(ur))
				gdiff := float64(int(g0) - int(ug))
				bdiff := float64(int(b0) - int(ub))

				if x < width-1 {
					d.curR[x+1] = toInt8(float64(d.curR[x+1]) + rdiff*w.right)
					d.curG[x+1] = toInt8(float64(d.curG[x+1]) + gdiff*w.right)
					d.curB[x+1] = toInt8(float64(d.curB[x+1]) + bdiff*w.right)
				}
				if ny < height {
					if x > 0 {
						d.nextR[x-1] = toInt8(float64(d.nextR[x-1]) + rdiff*w.downLeft)
						d.nextG[x-1] = toInt8(float64(d.nextG[x-1]) + gdiff*w.downLeft)
						d.nextB[x-1] = toInt8(float64(d.nextB[x-1]) + bdiff*w.downLeft)
					}
					if w.downRight != 0 && x < width-1 {
						d.nextR[x+1] = toInt8(float64(d.nextR[x+1]) + rdiff*w.downRight)
						d.nextG[x+1] = toInt8(float64(d.nextG[x+1]) + gdiff*w.downRight)
						d.nextB[x+1] = toInt8(float64(d.nextB[x+1]) + bdiff*w.downRight)
					}
					d.nextR[x] = toInt8(float64(d.nextR[x]) + rdiff*w.down)
					d.nextG[x] = toInt8(float64(d.nextG[x]) + gdiff*w.down)
					d.nextB[x] = toInt8(float64(d.nextB[x]) + bdiff*w.down)
				}
			}
		}
	})
}
