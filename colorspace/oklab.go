/*
Package colorspace precomputes the perceptual tables that the rest of this
module uses to measure color distance. Every RGB555 key in [0, 0x8000) has a
corresponding Oklab coordinate, generated once at package initialization and
never mutated afterwards, so the tables may be shared freely across any
number of concurrent quantizers.
*/
package colorspace

import "math"

// Shrink converts a packed RGBA8888 color (R, G, B, A from high byte to low)
// to the 15-bit RGB555 key used to index the Oklab tables.
func Shrink(c uint32) uint16 {
	return uint16(c>>17&0x7C00 | c>>14&0x3E0 | c>>11&0x1F)
}

// Stretch converts an RGB555 key back to an approximation of the closest
// RGBA8888 color, replicating the top 3 bits of each 5-bit channel into the
// low 3 bits of the resulting 8-bit channel. Alpha is always fully opaque.
func Stretch(c uint16) uint32 {
	r := uint32(c>>10&0x1F)<<3 | uint32(c>>10&0x1F)>>2
	g := uint32(c>>5&0x1F)<<3 | uint32(c>>5&0x1F)>>2
	b := uint32(c&0x1F)<<3 | uint32(c&0x1F)>>2
	return r<<24 | g<<16 | b<<8 | 0xFF
}

// Oklab holds the L, a, b coordinates for every RGB555 key.
var Oklab [3][0x8000]float64

func init() {
	idx := 0
	for ri := 0; ri < 32; ri++ {
		r := float64(ri*ri) / (31 * 31)
		for gi := 0; gi < 32; gi++ {
			g := float64(gi*gi) / (31 * 31)
			for bi := 0; bi < 32; bi++ {
				b := float64(bi*bi) / (31 * 31)

				l := cbrt(0.4121656*r + 0.5362752*g + 0.0514576*b)
				m := cbrt(0.2118591*r + 0.6807190*g + 0.1074066*b)
				s := cbrt(0.0883098*r + 0.2818474*g + 0.6302614*b)

				Oklab[0][idx] = 0.2104543*l + 0.7936178*m - 0.0040720*s
				Oklab[1][idx] = 1.9779985*l - 2.4285922*m + 0.4505937*s
				Oklab[2][idx] = 0.0259040*l + 0.7827718*m - 0.8086758*s

				idx++
			}
		}
	}
}

func cbrt(x float64) float64 {
	return math.Copysign(math.Pow(math.Abs(x), 1.0/3.0), x)
}

// distanceScale is the 2^14.2 constant from the spec, applied to every
// squared-Oklab-distance so that a caller-facing threshold stays in the same
// units the source used.
const distanceScale = 0x1.2p+14

// Difference returns the perceptual distance between two RGBA8888 colors. If
// the two colors disagree on their alpha bit (bit 7 of the low byte), the
// distance is +Inf.
func Difference(c1, c2 uint32) float64 {
	if (c1^c2)&0x80 == 0x80 {
		return math.Inf(1)
	}
	return indexDifference(Shrink(c1), Shrink(c2))
}

// DifferenceRGB returns the perceptual distance between c1 (an RGBA8888
// color) and a second color given as separate 8-bit channels. If c1 is
// transparent (alpha bit clear), the distance is +Inf.
func DifferenceRGB(c1 uint32, r2, g2, b2 uint8) float64 {
	if c1&0x80 == 0 {
		return math.Inf(1)
	}
	indexB := uint16(r2)<<7&0x7C00 | uint16(g2)<<2&0x3E0 | uint16(b2)>>3
	return indexDifference(Shrink(c1), indexB)
}

// DifferenceChannels returns the perceptual distance between two colors
// given entirely as 8-bit channels, with no alpha check.
func DifferenceChannels(r1, g1, b1, r2, g2, b2 uint8) float64 {
	indexA := uint16(r1)<<7&0x7C00 | uint16(g1)<<2&0x3E0 | uint16(b1)>>3
	indexB := uint16(r2)<<7&0x7C00 | uint16(g2)<<2&0x3E0 | uint16(b2)>>3
	return indexDifference(indexA, indexB)
}

func indexDifference(a, b uint16) float64 {
	dl := Oklab[0][a] - Oklab[0][b]
	da := Oklab[1][a] - Oklab[1][b]
	db := Oklab[2][a] - Oklab[2][b]
	return (dl*dl + da*da + db*db) * distanceScale
}
