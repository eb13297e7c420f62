// Package store persists report payloads in SQLite, keyed by report id.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/report"
)

// ErrNotFound is returned by Get when no report exists under the id.
var ErrNotFound = errors.New("store: report not found")

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	report_id    TEXT PRIMARY KEY,
	payload_json TEXT NOT NULL,
	created_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);
`

// Store is the report archive. Writes are write-through; a report is
// immutable once stored except for full replacement under the same id.
type Store struct {
	db *sqlx.DB
}

func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a payload under its report id, replacing any previous
// version.
func (s *Store) Put(ctx context.Context, p report.Payload) error {
	if p.ReportID == "" {
		return errors.New("store: empty report id")
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO reports (report_id, payload_json) VALUES (?, ?)`,
		p.ReportID, string(raw))
	if err != nil {
		return fmt.Errorf("store report %s: %w", p.ReportID, err)
	}
	return nil
}

// Get loads the payload stored under id.
func (s *Store) Get(ctx context.Context, id string) (report.Payload, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw,
		`SELECT payload_json FROM reports WHERE report_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return report.Payload{}, ErrNotFound
	}
	if err != nil {
		return report.Payload{}, fmt.Errorf("load report %s: %w", id, err)
	}

	var p report.Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return report.Payload{}, fmt.Errorf("decode report %s: %w", id, err)
	}
	return p, nil
}
