package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/paletteer/palette"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLookupMissReturnsFalse(t *testing.T) {
	s := open(t)
	_, ok, err := s.Lookup("deadbeef", 150, 256)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutThenLookupRoundTrips(t *testing.T) {
	s := open(t)
	p := palette.Exact([]uint32{0xFF0000FF, 0x00FF00FF, 0x0000FFFF}, 3)

	require.NoError(t, s.Put("abc123", 150, 256, p))

	restored, ok, err := s.Lookup("abc123", 150, 256)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.Mapping, restored.Mapping)
	assert.Equal(t, p.ColorCount, restored.ColorCount)
}

func TestLookupMismatchedParametersMisses(t *testing.T) {
	s := open(t)
	p := palette.Exact([]uint32{0xFF0000FF, 0x00FF00FF}, 2)
	require.NoError(t, s.Put("abc123", 150, 256, p))

	_, ok, err := s.Lookup("abc123", 151, 256)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Lookup("abc123", 150, 128)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutReplacesExistingEntry(t *testing.T) {
	s := open(t)
	a := palette.Exact([]uint32{0xFF0000FF, 0x00FF00FF}, 2)
	b := palette.Exact([]uint32{0x0000FFFF, 0xFFFF00FF, 0x00FFFFFF}, 3)

	require.NoError(t, s.Put("same", 150, 256, a))
	require.NoError(t, s.Put("same", 150, 256, b))

	restored, ok, err := s.Lookup("same", 150, 256)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, b.ColorCount, restored.ColorCount)
}

func TestListAndClear(t *testing.T) {
	s := open(t)
	p := palette.Exact([]uint32{0xFF0000FF, 0x00FF00FF}, 2)
	require.NoError(t, s.Put("one", 150, 256, p))
	require.NoError(t, s.Put("two", 150, 256, p))

	checksums, err := s.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, checksums)

	require.NoError(t, s.Clear())
	checksums, err = s.List()
	require.NoError(t, err)
	assert.Empty(t, checksums)
}
