package palette

import (
	"sort"

	"github.com/bodgit/paletteer/colorspace"
	"github.com/bodgit/paletteer/frame"
)

// Exact builds a Store from rgbaPalette verbatim, using up to MaxColors
// entries or limit, whichever is less. Alpha is only meaningful for index 0
// (0 marks it as the reserved transparent slot); every other entry is
// treated as fully opaque regardless of what its alpha byte says, except
// that an entry with its alpha bit clear is skipped entirely and its slot
// is left zeroed. If rgbaPalette is nil, shorter than 2 entries, or limit is
// below 2, the built-in Haltonic palette is substituted.
func Exact(rgbaPalette []uint32, limit int) *Store {
	if len(rgbaPalette) < 2 || limit < 2 {
		return exactHaltonic()
	}

	s := newStore()
	plen := limit
	if plen > MaxColors {
		plen = MaxColors
	}
	if plen > len(rgbaPalette) {
		plen = len(rgbaPalette)
	}
	s.ColorCount = plen
	s.PopulationBias = populationBias(plen)

	for i := 0; i < plen; i++ {
		c := rgbaPalette[i]
		if c&0x80 != 0 {
			s.Colors[i] = c
		}
	}

	buildMapping(s, plen)
	s.calculateGamma()
	return s
}

func exactHaltonic() *Store {
	s := newStore()
	s.Colors = Haltonic
	s.ColorCount = MaxColors
	s.PopulationBias = populationBias(MaxColors)
	buildMapping(s, MaxColors)
	s.calculateGamma()
	return s
}

// Restore rebuilds a Store from a previously-saved palette and mapping,
// skipping the O(32768*colorCount) index construction entirely. palette
// must have at most MaxColors entries and mapping must be exactly
// MappingSize bytes; both are copied, not aliased.
func Restore(rgbaPalette []uint32, mapping []byte) *Store {
	if rgbaPalette == nil || len(mapping) != MappingSize {
		return exactHaltonic()
	}
	s := newStore()
	s.ColorCount = len(rgbaPalette)
	if s.ColorCount > MaxColors {
		s.ColorCount = MaxColors
	}
	copy(s.Colors[:], rgbaPalette[:s.ColorCount])
	copy(s.Mapping[:], mapping)
	s.PopulationBias = populationBias(s.ColorCount)
	s.calculateGamma()
	return s
}

// colorCount tracks how many times a post-snap opaque color was observed
// while analyzing a frame set, alongside the order it was first seen so
// that iteration order (and therefore tie-breaking) is stable from one run
// to the next.
type colorCount struct {
	color uint32
	count int
	seq   int
}

// Analyze builds a Store by counting distinct opaque colors across frames
// and greedily selecting the most-frequent ones whose perceptual distance
// to every already-chosen color is at least threshold. threshold is
// interpreted as threshold>>2 internally, matching the spec's T' = T >> 2
// convention; limit caps the resulting palette size (typically 256).
func Analyze(frames []frame.Frame, threshold, limit int) *Store {
	thresholdPrime := float64(threshold >> 2)

	counts := make(map[uint32]*colorCount)
	order := make([]uint32, 0, 1024)
	hasTransparent := false

	for _, f := range frames {
		w, h := f.Width(), f.Height()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := f.At(x, y)
				if c&0x80 != 0 {
					c = snapToGrid(c)
					if cc, ok := counts[c]; ok {
						cc.count++
					} else {
						counts[c] = &colorCount{color: c, count: 1, seq: len(order)}
						order = append(order, c)
					}
				} else {
					hasTransparent = true
				}
			}
		}
	}

	sorted := make([]*colorCount, 0, len(order))
	for _, c := range order {
		sorted = append(sorted, counts[c])
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].count > sorted[j].count
	})

	s := newStore()

	reserve := 0
	if hasTransparent {
		reserve = 1
	}

	if len(sorted)+reserve <= limit {
		i := reserve
		for _, cc := range sorted {
			s.Colors[i] = cc.color
			s.Mapping[colorspace.Shrink(cc.color)] = byte(i)
			i++
		}
		s.ColorCount = i
	} else {
		i, c := 1, 0
		for i < limit && c < len(sorted) {
			candidate := sorted[c].color
			c++

			tooClose := false
			for j := 1; j < i; j++ {
				if colorspace.Difference(candidate, s.Colors[j]) < thresholdPrime {
					tooClose = true
					break
				}
			}
			if tooClose {
				continue
			}

			s.Colors[i] = candidate
			s.Mapping[colorspace.Shrink(candidate)] = byte(i)
			i++
		}
		s.ColorCount = i
	}

	s.PopulationBias = populationBias(s.ColorCount)
	buildMapping(s, limit)
	s.calculateGamma()
	return s
}

// snapToGrid idempotently forces the low 3 bits of R, G, B high and alpha
// to 0xFF, matching the color's reconstruction from the RGB555 grid that
// the palette ultimately lives on.
func snapToGrid(c uint32) uint32 {
	return c | (c>>5&0x07070700 | 0xFF)
}
