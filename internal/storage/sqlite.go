// Package storage provides SQLite-based persistence for battle history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/kazarin/soulbox/internal/battle"
)

// Store manages the SQLite database connection for battle persistence.
type Store struct {
	db *sql.DB
}

// BattleRecord is one finished battle.
type BattleRecord struct {
	ID          int64
	OpponentID  string
	Outcome     string // "victory", "defeat", "flee"
	DurationMs  int64
	DamageTaken int
	CreatedAt   time.Time
}

// OpponentStats contains aggregated history for one opponent.
type OpponentStats struct {
	OpponentID    string
	Battles       int
	Victories     int
	BestTimeMs    int64 // Fastest victory, 0 if none
	LeastDamage   int   // Least damage taken in a victory, -1 if none
	LastFoughtAt  time.Time
	TotalDamage   int64
	AvgDurationMs float64
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
		CREATE TABLE IF NOT EXISTS battles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			opponent_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			damage_taken INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_battles_opponent ON battles(opponent_id);
		CREATE INDEX IF NOT EXISTS idx_battles_recent ON battles(created_at DESC);
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

// SaveBattle records a finished battle. Returns the ID of the inserted row.
func (s *Store) SaveBattle(rec BattleRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO battles (opponent_id, outcome, duration_ms, damage_taken) VALUES (?, ?, ?, ?)",
		rec.OpponentID, rec.Outcome, rec.DurationMs, rec.DamageTaken,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save battle: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentBattles retrieves the most recent battles, newest first.
func (s *Store) RecentBattles(limit int) ([]BattleRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, opponent_id, outcome, duration_ms, damage_taken, created_at
		 FROM battles
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query battles: %w", err)
	}
	defer rows.Close()

	return scanBattles(rows)
}

// BattlesFor retrieves all battles against the given opponent, newest first.
func (s *Store) BattlesFor(opponentID string) ([]BattleRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, opponent_id, outcome, duration_ms, damage_taken, created_at
		 FROM battles
		 WHERE opponent_id = ?
		 ORDER BY id DESC`,
		opponentID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query battles: %w", err)
	}
	defer rows.Close()

	return scanBattles(rows)
}

func scanBattles(rows *sql.Rows) ([]BattleRecord, error) {
	var records []BattleRecord
	for rows.Next() {
		var r BattleRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.OpponentID, &r.Outcome, &r.DurationMs, &r.DamageTaken, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseCreatedAt(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseCreatedAt handles both the time.Time and string forms the driver
// returns for DATETIME columns.
func parseCreatedAt(v any) time.Time {
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

// Stats retrieves aggregated history for a specific opponent.
func (s *Store) Stats(opponentID string) (*OpponentStats, error) {
	stats := &OpponentStats{OpponentID: opponentID, LeastDamage: -1}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'victory' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(damage_taken), 0),
		        COALESCE(AVG(duration_ms), 0)
		 FROM battles WHERE opponent_id = ?`,
		opponentID,
	).Scan(&stats.Battles, &stats.Victories, &stats.TotalDamage, &stats.AvgDurationMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get opponent stats: %w", err)
	}

	if stats.Victories > 0 {
		var best sql.NullInt64
		var least sql.NullInt64
		err = s.db.QueryRow(
			`SELECT MIN(duration_ms), MIN(damage_taken)
			 FROM battles WHERE opponent_id = ? AND outcome = 'victory'`,
			opponentID,
		).Scan(&best, &least)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot get victory stats: %w", err)
		}
		if best.Valid {
			stats.BestTimeMs = best.Int64
		}
		if least.Valid {
			stats.LeastDamage = int(least.Int64)
		}
	}

	var lastFought any
	err = s.db.QueryRow(
		`SELECT created_at FROM battles WHERE opponent_id = ? ORDER BY id DESC LIMIT 1`,
		opponentID,
	).Scan(&lastFought)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last fought: %w", err)
	}
	if err == nil {
		stats.LastFoughtAt = parseCreatedAt(lastFought)
	}

	return stats, nil
}

// ClearBattles deletes all battles against the given opponent.
func (s *Store) ClearBattles(opponentID string) error {
	_, err := s.db.Exec("DELETE FROM battles WHERE opponent_id = ?", opponentID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear battles: %w", err)
	}
	return nil
}

// RecordResult implements battle.Recorder.
// This adapter allows the battle engine to persist results without a direct
// storage dependency.
func (s *Store) RecordResult(opponentID, outcome string, elapsedMs int64, damageTaken int) error {
	_, err := s.SaveBattle(BattleRecord{
		OpponentID:  opponentID,
		Outcome:     outcome,
		DurationMs:  elapsedMs,
		DamageTaken: damageTaken,
	})
	return err
}

// Ensure Store implements Recorder
var _ battle.Recorder = (*Store)(nil)
