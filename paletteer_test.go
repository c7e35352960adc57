package paletteer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/paletteer/frame"
)

func TestAnalyzeWithoutCache(t *testing.T) {
	p, err := New("", nil)
	require.NoError(t, err)
	defer p.Close()

	s, err := p.Analyze([]frame.Frame{checkerFrame(8, 8)}, 150, 256)
	require.NoError(t, err)
	assert.Greater(t, s.ColorCount, 0)
}

func TestAnalyzeCachesAcrossCalls(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cache.db")

	p1, err := New(db, nil)
	require.NoError(t, err)
	frames := []frame.Frame{checkerFrame(8, 8)}
	first, err := p1.Analyze(frames, 150, 256)
	require.NoError(t, err)
	require.NoError(t, p1.Close())

	p2, err := New(db, nil)
	require.NoError(t, err)
	defer p2.Close()
	second, err := p2.Analyze(frames, 150, 256)
	require.NoError(t, err)

	assert.Equal(t, first.Mapping, second.Mapping)
}

func TestMedianCutWithoutCache(t *testing.T) {
	p, err := New("", nil)
	require.NoError(t, err)
	defer p.Close()

	s, err := p.MedianCut([]frame.Frame{checkerFrame(8, 8)}, 16)
	require.NoError(t, err)
	assert.Greater(t, s.ColorCount, 0)
}
