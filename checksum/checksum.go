/*
Package checksum computes the cache key the palette cache (see the cache
package) uses to skip rebuilding a Store for input it has already seen. It
uses a byte-reversed CRC-32 variant: the standard CRC-32 normal polynomial,
but indexed into each 4-byte group in reverse order rather than the
standard library's hash/crc32 natural byte order. This is the same
table-driven algorithm the teacher module's own crc32 package used.
*/
package checksum

import (
	crc "hash/crc32"

	"github.com/bodgit/paletteer/frame"
)

const polynomial = 0x04c11db7

func makeTable(poly uint32) *crc.Table {
	t := new(crc.Table)
	for i := 0; i < 256; i++ {
		c := uint32(i << 24)
		for j := 0; j < 8; j++ {
			if c&0x80000000 != 0 {
				c = c<<1 ^ poly
			} else {
				c <<= 1
			}
			t[i] = c
		}
	}
	return t
}

var table = makeTable(polynomial)

func update(crc uint32, p []byte) uint32 {
	for i := range p {
		crc = crc<<8 ^ table[((crc>>24)^uint32(p[i^3]))&0xff]
	}
	return crc
}

// Checksum returns the CRC-32 checksum of data using the byte-reversed
// update rule.
func Checksum(data []byte) uint32 {
	return update(0, data)
}

// Frames folds every pixel of every frame, in order, into a single
// checksum suitable as a cache key: same pixels in the same frames in
// the same order always produce the same value, and any difference in
// a single pixel, a frame's dimensions, or the frame count changes it.
// It carries no correctness obligation beyond that.
func Frames(frames []frame.Frame) uint32 {
	c := uint32(0)
	var dims [8]byte
	var pixel [4]byte
	for _, f := range frames {
		w, h := f.Width(), f.Height()
		dims[0], dims[1], dims[2], dims[3] = byte(w>>24), byte(w>>16), byte(w>>8), byte(w)
		dims[4], dims[5], dims[6], dims[7] = byte(h>>24), byte(h>>16), byte(h>>8), byte(h)
		c = update(c, dims[:])

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := f.At(x, y)
				pixel[0], pixel[1], pixel[2], pixel[3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
				c = update(c, pixel[:])
			}
		}
	}
	return c
}
