// Package journal keeps a SQLite log of what the feed played and which
// sources failed to load. It never stores the viewing position: every launch
// starts at the first video.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Kind classifies a journal record.
type Kind string

const (
	KindPlayed Kind = "played"
	KindFailed Kind = "failed"
)

// DefaultRetention is the number of records Prune keeps.
const DefaultRetention = 500

// Record is one journal row.
type Record struct {
	ID     int64
	Kind   Kind
	Source string
	Label  string
	Detail string
	At     time.Time
}

type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	j, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

// New wraps an already opened database and initializes the schema.
func New(db *sql.DB) (*Journal, error) {
	if err := initSchema(db); err != nil {
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &Journal{db: db, now: time.Now}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// RecordPlayed notes that source played to its end.
func (j *Journal) RecordPlayed(source, label string) error {
	return j.insert(KindPlayed, source, label, "")
}

// RecordFailure notes that source could not be loaded or played.
func (j *Journal) RecordFailure(source, label string, cause error) error {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return j.insert(KindFailed, source, label, detail)
}

func (j *Journal) insert(kind Kind, source, label, detail string) error {
	_, err := j.db.Exec(`
		INSERT INTO playback_journal (kind, source, label, detail, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, string(kind), source, label, nullString(detail), j.now().UnixNano())
	return err
}

// Recent returns up to limit records, newest first.
func (j *Journal) Recent(limit int) ([]Record, error) {
	return j.query(`
		SELECT id, kind, source, label, detail, created_at
		FROM playback_journal
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
}

// RecentFailures returns up to limit failure records, newest first.
func (j *Journal) RecentFailures(limit int) ([]Record, error) {
	return j.query(`
		SELECT id, kind, source, label, detail, created_at
		FROM playback_journal
		WHERE kind = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, string(KindFailed), limit)
}

// FailureCount returns how many failures were recorded for source.
func (j *Journal) FailureCount(source string) (int, error) {
	var n int
	err := j.db.QueryRow(`
		SELECT COUNT(*) FROM playback_journal WHERE kind = ? AND source = ?
	`, string(KindFailed), source).Scan(&n)
	return n, err
}

// Prune deletes everything but the newest keep records.
func (j *Journal) Prune(keep int) error {
	if keep < 0 {
		keep = 0
	}
	return withTx(j.db, func(tx *sql.Tx) error {
		var cutoff sql.NullInt64
		err := tx.QueryRow(`
			SELECT id FROM playback_journal
			ORDER BY created_at DESC, id DESC
			LIMIT 1 OFFSET ?
		`, keep).Scan(&cutoff)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		var cutoffAt int64
		if err := tx.QueryRow(`
			SELECT created_at FROM playback_journal WHERE id = ?
		`, cutoff.Int64).Scan(&cutoffAt); err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM playback_journal
			WHERE created_at < ? OR (created_at = ? AND id <= ?)
		`, cutoffAt, cutoffAt, cutoff.Int64)
		return err
	})
}

func (j *Journal) query(q string, args ...any) ([]Record, error) {
	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r       Record
			kind    string
			detail  sql.NullString
			created int64
		)
		if err := rows.Scan(&r.ID, &kind, &r.Source, &r.Label, &detail, &created); err != nil {
			return nil, err
		}
		r.Kind = Kind(kind)
		r.Detail = detail.String
		r.At = time.Unix(0, created)
		records = append(records, r)
	}
	return records, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
