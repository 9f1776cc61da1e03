package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS plays (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    material_key TEXT    NOT NULL,
    chat_id     INTEGER NOT NULL,
    cue_count   INTEGER NOT NULL,
    played_at   TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_plays_played_at ON plays(played_at DESC);
CREATE INDEX IF NOT EXISTS idx_plays_material ON plays(material_key);
`

// Entry is one recorded playback.
type Entry struct {
	ID       int64
	Key      string
	ChatID   int64
	CueCount int
	PlayedAt time.Time
}

// Store manages playback history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordPlay appends one playback row.
func (s *Store) RecordPlay(ctx context.Context, key string, chatID int64, cueCount int) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO plays (material_key, chat_id, cue_count, played_at) VALUES (?, ?, ?, ?)`,
		key, chatID, cueCount, timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert play: %w", err)
	}
	return nil
}

// Recent returns the newest playbacks, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, material_key, chat_id, cue_count, played_at
         FROM plays ORDER BY played_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query plays: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var playedAt string
		if err := rows.Scan(&entry.ID, &entry.Key, &entry.ChatID, &entry.CueCount, &playedAt); err != nil {
			return nil, fmt.Errorf("scan play: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, playedAt); parseErr == nil {
			entry.PlayedAt = ts
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plays: %w", err)
	}
	return entries, nil
}

// PlayCount reports how many times a material has been played.
func (s *Store) PlayCount(ctx context.Context, key string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plays WHERE material_key = ?`, key).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count plays: %w", err)
	}
	return count, nil
}
