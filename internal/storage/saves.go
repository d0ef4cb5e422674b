package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/pattern"
)

// SaveEntry describes a saved board without its cells.
type SaveEntry struct {
	ID         int64
	Name       string
	Width      int
	Height     int
	Population int
	CreatedAt  time.Time
}

// SaveGrid stores g under name, replacing any existing save of that name.
// Cells are stored in plaintext format.
func (s *Store) SaveGrid(name string, g life.Grid) error {
	if name == "" {
		return errors.New("storage: save name is empty")
	}
	if g.Empty() {
		return fmt.Errorf("storage: cannot save %q: %w", name, life.ErrEmptyGrid)
	}

	_, err := s.db.Exec(
		`INSERT INTO saves (name, width, height, cells, population)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			cells = excluded.cells,
			population = excluded.population,
			created_at = CURRENT_TIMESTAMP`,
		name, g.Width(), g.Height(), pattern.FormatCells(g), g.Population(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %q: %w", name, err)
	}
	return nil
}

// LoadGrid returns the board saved under name, or ErrNotFound.
func (s *Store) LoadGrid(name string) (life.Grid, error) {
	var width, height int
	var cells string
	err := s.db.QueryRow(
		"SELECT width, height, cells FROM saves WHERE name = ?",
		name,
	).Scan(&width, &height, &cells)
	if errors.Is(err, sql.ErrNoRows) {
		return life.Grid{}, fmt.Errorf("storage: save %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return life.Grid{}, fmt.Errorf("storage: cannot load %q: %w", name, err)
	}

	p, err := pattern.ParsePlaintext(cells)
	if err != nil {
		return life.Grid{}, fmt.Errorf("storage: save %q is corrupt: %w", name, err)
	}
	// The stored dimensions are authoritative.
	g, err := life.Resize(p.Cells, width, height)
	if err != nil {
		return life.Grid{}, fmt.Errorf("storage: save %q is corrupt: %w", name, err)
	}
	return g, nil
}

// ListSaves returns all saves, newest first.
func (s *Store) ListSaves() ([]SaveEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, width, height, population, created_at
		 FROM saves
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var entries []SaveEntry
	for rows.Next() {
		var e SaveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Width, &e.Height, &e.Population, &createdAt); err != nil {
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

// DeleteSave removes the named save, or returns ErrNotFound.
func (s *Store) DeleteSave(name string) error {
	result, err := s.db.Exec("DELETE FROM saves WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("storage: save %q: %w", name, ErrNotFound)
	}
	return nil
}
