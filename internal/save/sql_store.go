package save

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLStore persists the snapshot as a JSON blob in a single-row SQLite
// table. It is the alternative gateway backend for installs that
// prefer one database file over a loose JSON save.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore opens (and if needed initializes) the SQLite save file.
func NewSQLStore(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS saves (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			payload BLOB NOT NULL,
			updated_at TEXT NOT NULL
		)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init saves table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Load(ctx context.Context) (Snapshot, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM saves WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}

	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (s *SQLStore) Save(ctx context.Context, snap Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saves (id, payload, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		payload, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *SQLStore) Close() error { return s.db.Close() }
