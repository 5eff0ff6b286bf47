// Package storage provides SQLite-based persistence for finished runs.
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

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run on a track.
type RunRecord struct {
	ID        int64
	TrackID   string
	Score     int
	Distance  float64
	Hits      int
	Frames    int
	Seconds   float64
	Seed      int64
	CreatedAt time.Time
}

// TrackStats contains aggregated statistics for a track.
type TrackStats struct {
	TrackID       string
	Runs          int
	BestScore     int
	AvgScore      float64
	TotalDistance float64
	TotalHits     int
	LastPlayed    time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			track_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			seconds REAL NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_track_id ON runs(track_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(track_id, score DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.TrackID == "" {
		return 0, errors.New("storage: run has no track")
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (track_id, score, distance, hits, frames, seconds, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.TrackID, r.Score, r.Distance, r.Hits, r.Frames, r.Seconds, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs on the given track, highest score first.
// A non-positive limit returns every run.
func (s *Store) TopRuns(trackID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(
		`SELECT id, track_id, score, distance, hits, frames, seconds, seed, created_at
		 FROM runs
		 WHERE track_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		trackID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.TrackID, &r.Score, &r.Distance, &r.Hits,
			&r.Frames, &r.Seconds, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score on the given track.
// Returns 0 if no runs exist.
func (s *Store) BestScore(trackID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE track_id = ?",
		trackID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes all runs on the given track.
func (s *Store) ClearRuns(trackID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE track_id = ?", trackID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// TrackStats retrieves aggregated statistics for a single track.
// A track without runs yields zero stats.
func (s *Store) TrackStats(trackID string) (*TrackStats, error) {
	stats := &TrackStats{TrackID: trackID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(distance), 0), COALESCE(SUM(hits), 0), MAX(created_at)
		 FROM runs WHERE track_id = ?`,
		trackID,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.TotalDistance, &stats.TotalHits, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get track stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllTrackStats retrieves statistics for every track that has been played.
func (s *Store) AllTrackStats() (map[string]*TrackStats, error) {
	rows, err := s.db.Query(
		`SELECT track_id, COUNT(*), MAX(score), AVG(score), SUM(distance), SUM(hits), MAX(created_at)
		 FROM runs
		 GROUP BY track_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all track stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*TrackStats)
	for rows.Next() {
		var ts TrackStats
		var lastPlayed any
		if err := rows.Scan(&ts.TrackID, &ts.Runs, &ts.BestScore, &ts.AvgScore,
			&ts.TotalDistance, &ts.TotalHits, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ts.LastPlayed = parseTime(lastPlayed)
		stats[ts.TrackID] = &ts
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
