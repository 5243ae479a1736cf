// ============================================================================
// RENDER HISTORY LEDGER
// ============================================================================
//
// Append-only SQLite record of completed renders: geometry, pool shape,
// wall time, and a BLAKE2b checksum of the finished pixel buffer. The
// checksum makes regressions in the parallel path visible across runs — the
// same scene must hash identically regardless of worker count.
//
// The ledger runs strictly after the image is written; a ledger failure is
// reported but never affects the rendered artifact.

package ledger

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/blake2b"
)

// Record is one completed render.
type Record struct {
	RenderedAt time.Time
	Width      int
	Height     int
	UpperLeft  string // "RE,IM" as given on the command line
	LowerRight string
	Limit      int
	Workers    int
	ChunkRows  int
	Chunks     int // chunks claimed, = ceil(height/chunkRows)
	Elapsed    time.Duration
	Checksum   string // hex BLAKE2b-256 of the pixel buffer
	Output     string // output file path
}

// Checksum hashes a finished pixel buffer for ledger storage and logging.
func Checksum(pixels []byte) string {
	sum := blake2b.Sum256(pixels)
	return hex.EncodeToString(sum[:])
}

// Ledger wraps one open history database.
type Ledger struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS renders (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	rendered_at  INTEGER NOT NULL,
	width        INTEGER NOT NULL,
	height       INTEGER NOT NULL,
	upper_left   TEXT    NOT NULL,
	lower_right  TEXT    NOT NULL,
	iter_limit   INTEGER NOT NULL,
	workers      INTEGER NOT NULL,
	chunk_rows   INTEGER NOT NULL,
	chunks       INTEGER NOT NULL,
	elapsed_ns   INTEGER NOT NULL,
	checksum     TEXT    NOT NULL,
	output       TEXT    NOT NULL
);`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("ledger: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: create schema: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Append stores one render record.
func (l *Ledger) Append(r Record) error {
	_, err := l.db.Exec(`
		INSERT INTO renders (
			rendered_at, width, height, upper_left, lower_right,
			iter_limit, workers, chunk_rows, chunks, elapsed_ns, checksum, output
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RenderedAt.UnixNano(), r.Width, r.Height, r.UpperLeft, r.LowerRight,
		r.Limit, r.Workers, r.ChunkRows, r.Chunks, r.Elapsed.Nanoseconds(),
		r.Checksum, r.Output)
	if err != nil {
		return fmt.Errorf("ledger: append: %w", err)
	}
	return nil
}

// Recent returns up to n records, newest first.
func (l *Ledger) Recent(n int) ([]Record, error) {
	rows, err := l.db.Query(`
		SELECT rendered_at, width, height, upper_left, lower_right,
		       iter_limit, workers, chunk_rows, chunks, elapsed_ns, checksum, output
		FROM renders ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("ledger: query: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var at, elapsed int64
		if err := rows.Scan(&at, &r.Width, &r.Height, &r.UpperLeft, &r.LowerRight,
			&r.Limit, &r.Workers, &r.ChunkRows, &r.Chunks, &elapsed,
			&r.Checksum, &r.Output); err != nil {
			return nil, fmt.Errorf("ledger: scan: %w", err)
		}
		r.RenderedAt = time.Unix(0, at)
		r.Elapsed = time.Duration(elapsed)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger: iterate: %w", err)
	}
	return out, nil
}

// Close releases the underlying database handle.
func (l *Ledger) Close() error {
	return l.db.Close()
}
