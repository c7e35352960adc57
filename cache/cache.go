/*
Package cache persists built palette.Store values keyed by a checksum of the
frames that produced them, so a batch run over the same images twice skips
rebuilding the 32768-entry nearest-color index. It is modeled on the
database/sql usage in this module's teacher's own game database (one
SQLite-backed struct wrapping *sql.DB, CREATE TABLE IF NOT EXISTS at open
time, QueryRow/Exec for lookups and writes).
*/
package cache

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/bodgit/paletteer/palette"
)

// Store wraps a SQLite-backed cache of palette.Store values.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at file and
// ensures its schema exists.
func Open(file string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS palette (
		checksum TEXT PRIMARY KEY,
		colors BLOB NOT NULL,
		mapping BLOB NOT NULL,
		color_count INTEGER NOT NULL,
		threshold INTEGER NOT NULL,
		limit_ INTEGER NOT NULL
	)`); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Lookup returns the cached Store for checksum, but only when it was stored
// with the same threshold and limit; a mismatch on either is treated the
// same as no entry, since the checksum alone does not distinguish different
// derivation parameters run over identical pixels.
func (s *Store) Lookup(checksum string, threshold, limit int) (*palette.Store, bool, error) {
	var colors, mapping []byte
	var colorCount, storedThreshold, storedLimit int

	switch err := s.db.QueryRow(
		"SELECT colors, mapping, color_count, threshold, limit_ FROM palette WHERE checksum = ?",
		checksum,
	).Scan(&colors, &mapping, &colorCount, &storedThreshold, &storedLimit); err {
	case sql.ErrNoRows:
		return nil, false, nil
	case nil:
		if storedThreshold != threshold || storedLimit != limit {
			return nil, false, nil
		}
		rgba := decodeColors(colors, colorCount)
		return palette.Restore(rgba, mapping), true, nil
	default:
		return nil, false, err
	}
}

// Put persists p under checksum, threshold and limit, replacing any
// existing entry for that checksum.
func (s *Store) Put(checksum string, threshold, limit int, p *palette.Store) error {
	colors := encodeColors(p)
	mapping := p.Mapping[:]

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO palette (checksum, colors, mapping, color_count, threshold, limit_) VALUES (?, ?, ?, ?, ?, ?)",
		checksum, colors, mapping, p.ColorCount, threshold, limit,
	)
	return err
}

// List returns the checksums of every cached palette, in no particular
// order.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query("SELECT checksum FROM palette")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var checksum string
		if err := rows.Scan(&checksum); err != nil {
			return nil, err
		}
		out = append(out, checksum)
	}
	return out, rows.Err()
}

// Clear removes every cached palette.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM palette")
	return err
}

func encodeColors(p *palette.Store) []byte {
	b := make([]byte, p.ColorCount*4)
	for i := 0; i < p.ColorCount; i++ {
		c := p.Color(byte(i))
		b[i*4], b[i*4+1], b[i*4+2], b[i*4+3] = byte(c>>24), byte(c>>16), byte(c>>8), byte(c)
	}
	return b
}

func decodeColors(b []byte, colorCount int) []uint32 {
	rgba := make([]uint32, colorCount)
	for i := 0; i < colorCount && (i+1)*4 <= len(b); i++ {
		rgba[i] = uint32(b[i*4])<<24 | uint32(b[i*4+1])<<16 | uint32(b[i*4+2])<<8 | uint32(b[i*4+3])
	}
	return rgba
}
