package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// RunEntry is the record of one finished session.
type RunEntry struct {
	ID             int64
	Mode           string
	Width          int
	Height         int
	Generations    int
	PeakPopulation int
	CreatedAt      time.Time
}

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (mode, width, height, generations, peak_population)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Mode, r.Width, r.Height, r.Generations, r.PeakPopulation,
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

// TopRuns retrieves the longest runs for a mode.
// Results are ordered by generations, then peak population, descending.
func (s *Store) TopRuns(mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, width, height, generations, peak_population, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY generations DESC, peak_population DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Width, &e.Height, &e.Generations, &e.PeakPopulation, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// LongestRun returns the most generations recorded for a mode.
// Returns 0 if no runs exist.
func (s *Store) LongestRun(mode string) (int, error) {
	var gens sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(generations) FROM runs WHERE mode = ?",
		mode,
	).Scan(&gens)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest run: %w", err)
	}
	if !gens.Valid {
		return 0, nil
	}
	return int(gens.Int64), nil
}
