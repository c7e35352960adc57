package palette

import "github.com/bodgit/paletteer/colorspace"

// buildMapping fills s.Mapping from s.Colors[0:plen]. Every populated slot's
// own RGB555 key is pre-marked with its own index (when two slots share a
// key, the later slot's index is kept). Every key still holding 0 is then
// assigned the index of the nearest non-transparent entry among slots
// 1..plen-1; slot 0 never takes part in this search, even when it holds an
// opaque color. Ties keep the lowest index, matching the Java source's
// `if (dist > (dist = min(dist, d))) mapping[k] = i` idiom.
func buildMapping(s *Store, plen int) {
	for i := 0; i < plen; i++ {
		c := s.Colors[i]
		if c&0x80 != 0 {
			s.Mapping[colorspace.Shrink(c)] = byte(i)
		}
	}

	for r := 0; r < 32; r++ {
		rr := uint8(r<<3 | r>>2)
		for g := 0; g < 32; g++ {
			gg := uint8(g<<3 | g>>2)
			for b := 0; b < 32; b++ {
				key := r<<10 | g<<5 | b
				if s.Mapping[key] != 0 {
					continue
				}
				bb := uint8(b<<3 | b>>2)
				best := 0
				bestDist := -1.0
				for i := 1; i < plen; i++ {
					d := colorspace.DifferenceRGB(s.Colors[i], rr, gg, bb)
					if bestDist < 0 || d < bestDist {
						bestDist = d
						best = i
					}
				}
				s.Mapping[key] = byte(best)
			}
		}
	}
}
