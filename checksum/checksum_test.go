package checksum

import (
	stdcrc32 "hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bodgit/paletteer/frame"
)

func TestChecksumDeterministic(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, Checksum(data), Checksum(data))
}

func TestChecksumDiffersOnContent(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 5}
	assert.NotEqual(t, Checksum(a), Checksum(b))
}

func TestChecksumDiffersFromStandardLibrary(t *testing.T) {
	// The byte-reversed update rule is not the IEEE CRC-32 most callers
	// expect, so it must not coincidentally agree with it.
	data := []byte{0x01, 0x02, 0x03, 0x04}
	assert.NotEqual(t, stdcrc32.ChecksumIEEE(data), Checksum(data))
}

func TestUpdateIsIncremental(t *testing.T) {
	whole := update(0, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	parts := update(update(0, []byte{1, 2, 3, 4}), []byte{5, 6, 7, 8})
	assert.Equal(t, whole, parts)
}

func buildFrame(w, h int, fill uint32) *frame.RGBA {
	f := frame.New(w, h)
	f.SetBlending(frame.BlendReplace)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Set(x, y, fill)
		}
	}
	return f
}

func TestFramesDeterministicAcrossCalls(t *testing.T) {
	frames := []frame.Frame{buildFrame(2, 2, 0xFF0000FF), buildFrame(2, 2, 0x0000FFFF)}
	assert.Equal(t, Frames(frames), Frames(frames))
}

func TestFramesDiffersOnPixelContent(t *testing.T) {
	a := []frame.Frame{buildFrame(2, 2, 0xFF0000FF)}
	b := []frame.Frame{buildFrame(2, 2, 0x00FF00FF)}
	assert.NotEqual(t, Frames(a), Frames(b))
}

func TestFramesDiffersOnDimensions(t *testing.T) {
	a := []frame.Frame{buildFrame(2, 2, 0xFF0000FF)}
	b := []frame.Frame{buildFrame(4, 1, 0xFF0000FF)}
	assert.NotEqual(t, Frames(a), Frames(b))
}

func TestFramesDiffersOnFrameCount(t *testing.T) {
	a := []frame.Frame{buildFrame(2, 2, 0xFF0000FF)}
	b := []frame.Frame{buildFrame(2, 2, 0xFF0000FF), buildFrame(2, 2, 0xFF0000FF)}
	assert.NotEqual(t, Frames(a), Frames(b))
}
