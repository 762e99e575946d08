// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is a single finished game.
type MatchRecord struct {
	ID          int64
	MatchID     string
	Seed        int64
	Player1Gems int
	Player2Gems int
	Outcome     string // "player1", "player2" or "tie"
	Turns       int
	Rejected    int
	CreatedAt   time.Time
}

// MatchStats contains aggregated statistics over all recorded matches.
type MatchStats struct {
	Total      int
	Player1    int // Matches won by Player 1
	Player2    int // Matches won by Player 2
	Ties       int
	BestGems   int // Most gems collected by one player in one match
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			seed INTEGER NOT NULL DEFAULT 0,
			player1_gems INTEGER NOT NULL DEFAULT 0,
			player2_gems INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			rejected INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match. A random match ID is assigned when
// rec.MatchID is empty. Returns the ID of the inserted record.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, seed, player1_gems, player2_gems, outcome, turns, rejected)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID, rec.Seed, rec.Player1Gems, rec.Player2Gems, rec.Outcome, rec.Turns, rec.Rejected,
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

const matchColumns = `id, match_id, seed, player1_gems, player2_gems, outcome, turns, rejected, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var rec MatchRecord
	var createdAt any
	err := row.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.Seed,
		&rec.Player1Gems,
		&rec.Player2Gems,
		&rec.Outcome,
		&rec.Turns,
		&rec.Rejected,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and string datetime values.
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

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// MatchByID retrieves a match by its match ID. Returns nil, nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	rec, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// Stats retrieves aggregated statistics for all recorded matches.
func (s *Store) Stats() (*MatchStats, error) {
	stats := &MatchStats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'player1'), 0),
		        COALESCE(SUM(outcome = 'player2'), 0),
		        COALESCE(SUM(outcome = 'tie'), 0),
		        COALESCE(MAX(MAX(player1_gems, player2_gems)), 0),
		        MAX(created_at)
		 FROM matches`,
	).Scan(&stats.Total, &stats.Player1, &stats.Player2, &stats.Ties, &stats.BestGems, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
