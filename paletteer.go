/*
Package paletteer reduces true-color RGBA rasters to indexed color using a
perceptually-driven palette and a choice of dithering strategies, optionally
caching derived palettes across runs.
*/
package paletteer

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/bodgit/paletteer/cache"
	"github.com/bodgit/paletteer/checksum"
	"github.com/bodgit/paletteer/dither"
	"github.com/bodgit/paletteer/frame"
	"github.com/bodgit/paletteer/palette"
)

// errNoCache is returned by every cache-dependent method when a Paletteer
// was constructed without a cache file.
var errNoCache = errors.New("paletteer: no cache configured")

// noThreshold is the placeholder cache-key threshold for derivation
// strategies that have no threshold parameter of their own (median-cut,
// exact), so a lookup with an Analyze threshold never returns one of their
// palettes. The cache holds one row per checksum, so storing one of them
// replaces any Analyze result for the same frames, and vice versa.
const noThreshold = -1

// Paletteer ties palette derivation to an optional on-disk cache, the way
// MegaSD ties its game metadata to a GameDB.
type Paletteer struct {
	cache  *cache.Store
	logger *log.Logger
}

// New returns a Paletteer. If cacheFile is non-empty, derived palettes are
// persisted to (and looked up from) the SQLite database at that path.
// logger defaults to a discarding logger if nil.
func New(cacheFile string, logger *log.Logger) (*Paletteer, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	p := &Paletteer{logger: logger}
	if cacheFile != "" {
		c, err := cache.Open(cacheFile)
		if err != nil {
			return nil, err
		}
		p.cache = c
	}
	return p, nil
}

// Close releases the cache database, if one was opened.
func (p *Paletteer) Close() error {
	if p.cache == nil {
		return nil
	}
	return p.cache.Close()
}

// Analyze derives a palette from frames by frequency analysis (palette.Analyze),
// consulting and populating the cache when one is configured.
func (p *Paletteer) Analyze(frames []frame.Frame, threshold, limit int) (*palette.Store, error) {
	sum := fmt.Sprintf("%08X", checksum.Frames(frames))

	if p.cache != nil {
		if s, ok, err := p.cache.Lookup(sum, threshold, limit); err != nil {
			return nil, err
		} else if ok {
			p.logger.Printf("cache hit for %s\n", sum)
			return s, nil
		}
	}

	p.logger.Printf("deriving palette for %s (threshold=%d limit=%d)\n", sum, threshold, limit)
	s := palette.Analyze(frames, threshold, limit)

	if p.cache != nil {
		if err := p.cache.Put(sum, threshold, limit, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MedianCut derives a palette from frames via median-cut, consulting and
// populating the cache the same way Analyze does. Median-cut derivation has
// no threshold; its cache rows carry noThreshold instead, so an Analyze
// lookup over the same frames never returns a median-cut palette.
func (p *Paletteer) MedianCut(frames []frame.Frame, limit int) (*palette.Store, error) {
	sum := fmt.Sprintf("%08X", checksum.Frames(frames))

	if p.cache != nil {
		if s, ok, err := p.cache.Lookup(sum, noThreshold, limit); err != nil {
			return nil, err
		} else if ok {
			p.logger.Printf("cache hit for %s\n", sum)
			return s, nil
		}
	}

	p.logger.Printf("deriving median-cut palette for %s (limit=%d)\n", sum, limit)
	s := palette.MedianCut(frames, limit)

	if p.cache != nil {
		if err := p.cache.Put(sum, noThreshold, limit, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// PutExact stores s, built from a caller-supplied literal palette, under
// sum so a later Lookup (typically from the dither command) can find it
// again without needing the original palette data.
func (p *Paletteer) PutExact(sum string, limit int, s *palette.Store) error {
	if p.cache == nil {
		return errNoCache
	}
	return p.cache.Put(sum, noThreshold, limit, s)
}

// Lookup returns the cached Store for frames, if one was stored by Analyze,
// MedianCut, or PutExact with matching parameters. It never derives a new
// Store; callers that want derivation should call Analyze/MedianCut
// instead.
func (p *Paletteer) Lookup(frames []frame.Frame, threshold, limit int) (*palette.Store, bool, error) {
	if p.cache == nil {
		return nil, false, errNoCache
	}
	sum := fmt.Sprintf("%08X", checksum.Frames(frames))
	if s, ok, err := p.cache.Lookup(sum, threshold, limit); err == nil && ok {
		return s, true, nil
	}
	return p.cache.Lookup(sum, noThreshold, limit)
}

// ListCache returns the checksums of every cached palette.
func (p *Paletteer) ListCache() ([]string, error) {
	if p.cache == nil {
		return nil, errNoCache
	}
	return p.cache.List()
}

// ClearCache removes every cached palette.
func (p *Paletteer) ClearCache() error {
	if p.cache == nil {
		return errNoCache
	}
	return p.cache.Clear()
}

// Dither runs a single frame through one dither algorithm against s,
// in place.
func (p *Paletteer) Dither(s *palette.Store, f frame.Frame, algo dither.Algorithm) {
	dither.New().Dither(s, f, algo)
}
