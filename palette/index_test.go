package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMappingAssignsEveryKeyToAPopulatedSlot(t *testing.T) {
	s := Exact([]uint32{0xFF0000FF, 0x00FF00FF, 0x0000FFFF}, 3)
	for _, key := range s.Mapping {
		assert.Less(t, int(key), s.ColorCount)
	}
}

func TestBuildMappingTieBreaksToLowestIndex(t *testing.T) {
	// Two identical colors: every RGB555 key nearest to them is
	// equidistant, so the lower-indexed slot must win.
	s := Exact([]uint32{0xFF0000FF, 0xFF0000FF, 0x00FF00FF}, 3)
	idx := s.Nearest(0xFF, 0, 0)
	assert.Equal(t, byte(0), idx)
}
