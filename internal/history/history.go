// Package history keeps a ledger of pipeline runs in SQLite so
// operators can see what was processed for each client, when, and
// with what outcome. The ledger is append-only; it never feeds back
// into processing.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/shiftbooks/timeclerk/pkg/errors"
)

// Run is one ledger entry: a single pipeline stage executed over one
// client dataset.
type Run struct {
	ID              int64
	Client          string
	Dataset         string
	Stage           string // "clean", "merge", "check"
	Policy          string
	RowsIn          int
	RowsOut         int
	DuplicateGroups int
	IncompleteRows  int
	RanAt           time.Time
}

// DB is the run-history ledger.
type DB struct {
	conn *sql.DB
}

// Open opens (creating if needed) the ledger database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.WrapIO("create", filepath.Dir(path), err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, errors.WrapIO("open", path, err)
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the ledger.
func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY,
  client TEXT NOT NULL,
  dataset TEXT NOT NULL,
  stage TEXT NOT NULL,
  policy TEXT,
  rows_in INTEGER NOT NULL,
  rows_out INTEGER NOT NULL,
  duplicate_groups INTEGER NOT NULL DEFAULT 0,
  incomplete_rows INTEGER NOT NULL DEFAULT 0,
  ran_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_client ON runs(client);
`
	_, err := d.conn.Exec(schema)
	if err != nil {
		return errors.WrapIO("write", "runs schema", err)
	}
	return nil
}

// Record appends a run to the ledger.
func (d *DB) Record(r Run) error {
	ranAt := r.RanAt
	if ranAt.IsZero() {
		ranAt = time.Now().UTC()
	}
	_, err := d.conn.Exec(`
INSERT INTO runs (client, dataset, stage, policy, rows_in, rows_out, duplicate_groups, incomplete_rows, ran_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Client, r.Dataset, r.Stage, r.Policy,
		r.RowsIn, r.RowsOut, r.DuplicateGroups, r.IncompleteRows,
		ranAt.Format(time.RFC3339))
	if err != nil {
		return errors.WrapIO("write", "runs", err)
	}
	return nil
}

// Runs returns the most recent runs for a client, newest first. A
// zero or negative limit returns every run.
func (d *DB) Runs(client string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := d.conn.Query(`
SELECT id, client, dataset, stage, policy, rows_in, rows_out, duplicate_groups, incomplete_rows, ran_at
FROM runs WHERE client = ? ORDER BY id DESC LIMIT ?`, client, limit)
	if err != nil {
		return nil, errors.WrapIO("read", "runs", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var ranAt string
		if err := rows.Scan(&r.ID, &r.Client, &r.Dataset, &r.Stage, &r.Policy,
			&r.RowsIn, &r.RowsOut, &r.DuplicateGroups, &r.IncompleteRows, &ranAt); err != nil {
			return nil, errors.WrapIO("read", "runs", err)
		}
		if t, err := time.Parse(time.RFC3339, ranAt); err == nil {
			r.RanAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
