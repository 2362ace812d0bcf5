// Package storage provides SQLite-based persistence for level completions
// and editor drafts.
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
)

// ErrNoDraft is returned when a named draft does not exist.
var ErrNoDraft = errors.New("storage: draft not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Completion is one finished level.
type Completion struct {
	ID        int64
	PackID    string
	LevelID   string
	Player    string // "local" or the SSH user
	Frames    int64  // Frames from level load to the last star
	Attempts  int
	Stars     int
	CreatedAt time.Time
}

// Draft is a saved editor level.
type Draft struct {
	Name      string
	Text      string
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			frames INTEGER NOT NULL,
			attempts INTEGER NOT NULL DEFAULT 0,
			stars INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level ON completions(pack_id, level_id);
		CREATE INDEX IF NOT EXISTS idx_completions_best ON completions(pack_id, level_id, frames ASC);

		CREATE TABLE IF NOT EXISTS drafts (
			name TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// parseTime handles the driver returning either time.Time or text.
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

// SaveCompletion records a finished level.
// Returns the ID of the inserted record.
func (s *Store) SaveCompletion(c Completion) (int64, error) {
	if c.Player == "" {
		c.Player = "local"
	}
	result, err := s.db.Exec(
		`INSERT INTO completions (pack_id, level_id, player, frames, attempts, stars)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.PackID, c.LevelID, c.Player, c.Frames, c.Attempts, c.Stars,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestCompletions returns the fastest completions of a level, fewest
// frames first.
func (s *Store) BestCompletions(packID, levelID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, level_id, player, frames, attempts, stars, created_at
		 FROM completions
		 WHERE pack_id = ? AND level_id = ?
		 ORDER BY frames ASC, id ASC
		 LIMIT ?`,
		packID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	return scanCompletions(rows)
}

// RecentCompletions returns the latest completions in a pack.
func (s *Store) RecentCompletions(packID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, level_id, player, frames, attempts, stars, created_at
		 FROM completions
		 WHERE pack_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	return scanCompletions(rows)
}

func scanCompletions(rows *sql.Rows) ([]Completion, error) {
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var c Completion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.PackID, &c.LevelID, &c.Player, &c.Frames, &c.Attempts, &c.Stars, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestFrames returns the fastest completion of a level in frames.
// Returns 0 if the level was never completed.
func (s *Store) BestFrames(packID, levelID string) (int64, error) {
	var frames sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(frames) FROM completions WHERE pack_id = ? AND level_id = ?",
		packID, levelID,
	).Scan(&frames)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best frames: %w", err)
	}

	if !frames.Valid {
		return 0, nil
	}

	return frames.Int64, nil
}

// ClearCompletions deletes all completions for a pack.
func (s *Store) ClearCompletions(packID string) error {
	_, err := s.db.Exec("DELETE FROM completions WHERE pack_id = ?", packID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for one level.
type LevelStats struct {
	LevelID     string
	Completions int
	BestFrames  int64
	AvgAttempts float64
	LastPlayed  time.Time
}

// PackStats returns per-level statistics for every completed level in a
// pack, keyed by level ID.
func (s *Store) PackStats(packID string) (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(frames), AVG(attempts), MAX(created_at)
		 FROM completions
		 WHERE pack_id = ?
		 GROUP BY level_id`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.LevelID, &ls.Completions, &ls.BestFrames, &ls.AvgAttempts, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.LevelID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// SaveDraft stores or replaces a named editor draft.
func (s *Store) SaveDraft(name, text string) error {
	_, err := s.db.Exec(
		`INSERT INTO drafts (name, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		name, text,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save draft: %w", err)
	}
	return nil
}

// LoadDraft returns a named draft, or ErrNoDraft.
func (s *Store) LoadDraft(name string) (*Draft, error) {
	var d Draft
	var updatedAt any
	err := s.db.QueryRow(
		"SELECT name, body, updated_at FROM drafts WHERE name = ?",
		name,
	).Scan(&d.Name, &d.Text, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoDraft
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query draft: %w", err)
	}
	d.UpdatedAt = parseTime(updatedAt)
	return &d, nil
}

// Drafts lists all drafts, most recently updated first. Text is omitted.
func (s *Store) Drafts() ([]Draft, error) {
	rows, err := s.db.Query("SELECT name, updated_at FROM drafts ORDER BY updated_at DESC, name ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []Draft
	for rows.Next() {
		var d Draft
		var updatedAt any
		if err := rows.Scan(&d.Name, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		d.UpdatedAt = parseTime(updatedAt)
		drafts = append(drafts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return drafts, nil
}

// DeleteDraft removes a draft. Deleting a missing draft returns ErrNoDraft.
func (s *Store) DeleteDraft(name string) error {
	res, err := s.db.Exec("DELETE FROM drafts WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete draft: %w", err)
	}
	if n == 0 {
		return ErrNoDraft
	}
	return nil
}
