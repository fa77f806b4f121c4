// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// GameRecord represents one finished game.
type GameRecord struct {
	ID        int64
	BestTile  int
	Moves     int
	Won       bool
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			best_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_best_tile ON games(best_tile DESC);
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

// SaveGame records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	won := 0
	if rec.Won {
		won = 1
	}

	result, err := s.db.Exec(
		"INSERT INTO games (best_tile, moves, won) VALUES (?, ?, ?)",
		rec.BestTile, rec.Moves, won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopGames retrieves the N best finished games, ordered by best tile
// descending, then by fewest moves.
func (s *Store) TopGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, best_tile, moves, won, created_at
		 FROM games
		 ORDER BY best_tile DESC, moves ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestTile returns the highest tile ever reached. Returns 0 if no games
// have been recorded.
func (s *Store) BestTile() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(best_tile) FROM games").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best tile: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// WinCount returns the number of recorded games that reached the win target.
func (s *Store) WinCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM games WHERE won = 1").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	return n, nil
}

// ClearGames deletes all recorded games.
func (s *Store) ClearGames() error {
	_, err := s.db.Exec("DELETE FROM games")
	if err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// scanGame reads one row into a GameRecord.
func scanGame(rows *sql.Rows) (GameRecord, error) {
	var rec GameRecord
	var won int
	var createdAt any

	if err := rows.Scan(&rec.ID, &rec.BestTile, &rec.Moves, &won, &createdAt); err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	rec.Won = won != 0

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}

	return rec, nil
}
