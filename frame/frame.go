/*
Package frame abstracts the read-write RGBA raster that the palette and
dither packages operate on, so neither package needs to know where the
pixels actually live.
*/
package frame

import (
	"image"
	"image/color"
)

// Blending selects how Set composites an incoming color with what's already
// in the frame. Quantization always runs with BlendReplace; the caller's
// original mode is restored once the operation finishes.
type Blending int

const (
	// BlendSourceOver composites normally, the usual default for a frame
	// a caller might hand in.
	BlendSourceOver Blending = iota
	// BlendReplace writes pixels verbatim, with no compositing. Every
	// dither in package dither requires this mode.
	BlendReplace
)

// Frame is a read-write RGBA raster. At/Set exchange packed RGBA8888
// colors (R in the high byte, A in the low byte).
type Frame interface {
	Width() int
	Height() int
	At(x, y int) uint32
	Set(x, y int, c uint32)
	Blending() Blending
	SetBlending(Blending)
}

// WithReplaceBlending sets f's blending mode to BlendReplace for the
// duration of fn, restoring the prior mode afterwards on every exit path,
// including a panic propagating out of fn.
func WithReplaceBlending(f Frame, fn func()) {
	prior := f.Blending()
	f.SetBlending(BlendReplace)
	defer f.SetBlending(prior)
	fn()
}

// RGBA is a Frame backed by a flat, row-major buffer of 4-byte pixels.
type RGBA struct {
	Pix          []byte
	W, H         int
	blendingMode Blending
}

// New allocates a zeroed RGBA frame of the given dimensions.
func New(w, h int) *RGBA {
	return &RGBA{Pix: make([]byte, w*h*4), W: w, H: h}
}

// FromImage copies the pixels of img, row by row, into a new RGBA frame.
// The source's alpha channel is compressed to the single bit this module
// cares about: values at or above 0x80 become opaque (0xFF), others become
// fully transparent (0x00), matching the top-bit alpha contract everywhere
// else in this module.
func FromImage(img image.Image) *RGBA {
	b := img.Bounds()
	f := New(b.Dx(), b.Dy())
	f.SetBlending(BlendReplace)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			alpha := byte(0)
			if c.A >= 0x80 {
				alpha = 0xFF
			}
			f.Set(x-b.Min.X, y-b.Min.Y, uint32(c.R)<<24|uint32(c.G)<<16|uint32(c.B)<<8|uint32(alpha))
		}
	}
	return f
}

// ToImage renders f as a standard library *image.RGBA, useful only for
// writing out a human-viewable preview; this module does not otherwise
// depend on the standard image codecs.
func (f *RGBA) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: byte(c >> 24),
				G: byte(c >> 16),
				B: byte(c >> 8),
				A: byte(c),
			})
		}
	}
	return img
}

func (f *RGBA) Width() int  { return f.W }
func (f *RGBA) Height() int { return f.H }

func (f *RGBA) At(x, y int) uint32 {
	i := (y*f.W + x) * 4
	return uint32(f.Pix[i])<<24 | uint32(f.Pix[i+1])<<16 | uint32(f.Pix[i+2])<<8 | uint32(f.Pix[i+3])
}

func (f *RGBA) Set(x, y int, c uint32) {
	i := (y*f.W + x) * 4
	if f.blendingMode == BlendSourceOver {
		c = sourceOver(f.At(x, y), c)
	}
	f.Pix[i] = byte(c >> 24)
	f.Pix[i+1] = byte(c >> 16)
	f.Pix[i+2] = byte(c >> 8)
	f.Pix[i+3] = byte(c)
}

func (f *RGBA) Blending() Blending     { return f.blendingMode }
func (f *RGBA) SetBlending(b Blending) { f.blendingMode = b }

func sourceOver(dst, src uint32) uint32 {
	sa := src & 0xFF
	if sa == 0xFF || sa >= 0x80 {
		return src
	}
	if sa == 0 {
		return dst
	}
	blend := func(d, s byte) byte {
		return byte((uint32(s)*uint32(sa) + uint32(d)*(0xFF-uint32(sa))) / 0xFF)
	}
	dr, dg, db := byte(dst>>24), byte(dst>>16), byte(dst>>8)
	sr, sg, sb := byte(src>>24), byte(src>>16), byte(src>>8)
	return uint32(blend(dr, sr))<<24 | uint32(blend(dg, sg))<<16 | uint32(blend(db, sb))<<8 | 0xFF
}
