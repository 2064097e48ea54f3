// Package storage provides SQLite-based persistence for input recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/config"
)

// ErrNotFound is returned when a recording id does not exist.
var ErrNotFound = errors.New("storage: recording not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RecordingInfo describes a stored recording without its frames.
type RecordingInfo struct {
	ID         int64
	Frontend   string // "tui", "ssh" or "window"
	Player     string
	FrameCount int
	Duration   time.Duration
	CreatedAt  time.Time
}

// Recording is a stored recording including its encoded frames.
type Recording struct {
	RecordingInfo
	Frames []byte
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			frontend TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			frame_count INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			frames BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRecording stores encoded frames and returns the new recording id.
func (s *Store) SaveRecording(frontend, player string, frameCount int, duration time.Duration, frames []byte) (int64, error) {
	if len(frames) == 0 {
		return 0, errors.New("storage: cannot save an empty recording")
	}

	result, err := s.db.Exec(
		`INSERT INTO recordings (frontend, player, frame_count, duration_ms, frames)
		 VALUES (?, ?, ?, ?, ?)`,
		frontend, player, frameCount, duration.Milliseconds(), frames,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save recording: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LoadRecording retrieves a recording with its frames.
func (s *Store) LoadRecording(id int64) (*Recording, error) {
	var rec Recording
	var durationMS int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, frontend, player, frame_count, duration_ms, frames, created_at
		 FROM recordings
		 WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.Frontend, &rec.Player, &rec.FrameCount, &durationMS, &rec.Frames, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recording: %w", err)
	}

	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

// ListRecordings returns the most recent recordings, newest first.
func (s *Store) ListRecordings(limit int) ([]RecordingInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, frontend, player, frame_count, duration_ms, created_at
		 FROM recordings
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var infos []RecordingInfo
	for rows.Next() {
		var info RecordingInfo
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&info.ID, &info.Frontend, &info.Player, &info.FrameCount, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.Duration = time.Duration(durationMS) * time.Millisecond
		info.CreatedAt = parseTime(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteRecording removes a recording.
func (s *Store) DeleteRecording(id int64) error {
	result, err := s.db.Exec("DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
