// Package storage persists finished matches in SQLite. It uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// MatchRecord is a finished match as stored on disk.
type MatchRecord struct {
	ID        int64
	Variant   string // variant ID, e.g. "tetra"
	Winner    string // "p1", "p2" or "draw"
	P1Cards   int
	P2Cards   int
	Seed      int64 // RNG seed, enough to replay the match
	Duration  int   // seconds
	CreatedAt time.Time
}

// VariantStats aggregates the stored matches of one variant.
type VariantStats struct {
	Variant    string
	Matches    int
	P1Wins     int
	P2Wins     int
	Draws      int
	LastPlayed time.Time
}

// Open creates or opens the database at the given path, creating parent
// directories and running migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			winner TEXT NOT NULL,
			p1_cards INTEGER NOT NULL,
			p2_cards INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_variant ON matches(variant);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(variant, created_at DESC);
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

// SaveMatch records a finished match and returns its ID.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (variant, winner, p1_cards, p2_cards, seed, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Variant, rec.Winner, rec.P1Cards, rec.P2Cards, rec.Seed, rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentMatches retrieves the most recent matches of a variant, newest
// first. An empty variant returns matches across all variants.
func (s *Store) RecentMatches(variant string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, variant, winner, p1_cards, p2_cards, seed, duration_secs, created_at
		 FROM matches`
	args := []any{}
	if variant != "" {
		query += ` WHERE variant = ?`
		args = append(args, variant)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Variant, &rec.Winner, &rec.P1Cards, &rec.P2Cards,
			&rec.Seed, &rec.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Stats aggregates the stored matches of one variant.
func (s *Store) Stats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 'p1'), 0),
		        COALESCE(SUM(winner = 'p2'), 0),
		        COALESCE(SUM(winner = 'draw'), 0)
		 FROM matches WHERE variant = ?`,
		variant,
	).Scan(&stats.Matches, &stats.P1Wins, &stats.P2Wins, &stats.Draws)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches WHERE variant = ? ORDER BY id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllStats aggregates stored matches per variant.
func (s *Store) AllStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*),
		        COALESCE(SUM(winner = 'p1'), 0),
		        COALESCE(SUM(winner = 'p2'), 0),
		        COALESCE(SUM(winner = 'draw'), 0),
		        MAX(created_at)
		 FROM matches
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var vs VariantStats
		var lastPlayed any
		if err := rows.Scan(&vs.Variant, &vs.Matches, &vs.P1Wins, &vs.P2Wins, &vs.Draws, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		vs.LastPlayed = parseTime(lastPlayed)
		stats[vs.Variant] = &vs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearMatches deletes all matches of the given variant.
func (s *Store) ClearMatches(variant string) error {
	if _, err := s.db.Exec("DELETE FROM matches WHERE variant = ?", variant); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTime handles the driver returning DATETIME columns as either
// time.Time or a string.
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
