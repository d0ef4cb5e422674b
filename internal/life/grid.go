package life

import "fmt"

// Grid is a rectangular board of cells stored as rows.
// The zero value is an empty 0x0 grid.
type Grid struct {
	width int
	rows  [][]Cell
}

// NewBlank returns a width x height grid with every cell Dead.
// Zero extents are allowed and produce an empty structure; callers must
// check Height() > 0 before stepping or resizing it.
func NewBlank(width, height int) (Grid, error) {
	if width < 0 || height < 0 {
		return Grid{}, fmt.Errorf("life: blank %dx%d: %w", width, height, ErrNegativeDimension)
	}
	return Grid{
		width: width,
		rows:  Generate(height, func(int) []Cell { return Fill(width, Dead) }),
	}, nil
}

// FromRows builds a grid from explicit rows, copying them.
// Ragged rows or cell values other than Dead/Alive are rejected.
func FromRows(rows [][]Cell) (Grid, error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	g := Grid{
		width: width,
		rows:  Generate(len(rows), func(y int) []Cell { return append([]Cell(nil), rows[y]...) }),
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g.rows)
}

// Empty reports whether the grid has no rows or no columns.
func (g Grid) Empty() bool {
	return g.Height() == 0 || g.width == 0
}

// InBounds reports whether c addresses a cell of the grid.
func (g Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < len(g.rows)
}

// At returns the cell at c. The boolean is false when c is out of range.
func (g Grid) At(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Dead, false
	}
	return g.rows[c.Y][c.X], true
}

// Alive reports whether the cell at c exists and is Alive.
func (g Grid) Alive(c Coord) bool {
	cell, ok := g.At(c)
	return ok && cell == Alive
}

// Rows returns a deep copy of the cell rows.
func (g Grid) Rows() [][]Cell {
	return Generate(len(g.rows), func(y int) []Cell { return append([]Cell(nil), g.rows[y]...) })
}

// Population returns the number of Alive cells.
func (g Grid) Population() int {
	n := 0
	for _, row := range g.rows {
		for _, cell := range row {
			if cell == Alive {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || len(g.rows) != len(other.rows) {
		return false
	}
	for y, row := range g.rows {
		for x, cell := range row {
			if other.rows[y][x] != cell {
				return false
			}
		}
	}
	return true
}

// Validate checks the row-length and cell-value invariants.
func (g Grid) Validate() error {
	if g.width < 0 {
		return fmt.Errorf("life: width %d: %w", g.width, ErrNegativeDimension)
	}
	for y, row := range g.rows {
		if len(row) != g.width {
			return fmt.Errorf("life: row %d has %d cells, want %d: %w", y, len(row), g.width, ErrMalformed)
		}
		for x, cell := range row {
			if !cell.Valid() {
				return fmt.Errorf("life: cell (%d,%d) has value %d: %w", x, y, cell, ErrMalformed)
			}
		}
	}
	return nil
}

// Resize returns a newWidth x newHeight grid. Rows beyond newHeight are
// dropped and missing rows are appended Dead at newWidth; every row is then
// truncated or padded with Dead cells to newWidth. Cells in the retained
// region keep their state.
func Resize(g Grid, newWidth, newHeight int) (Grid, error) {
	if g.Height() == 0 {
		return Grid{}, fmt.Errorf("life: resize: %w", ErrEmptyGrid)
	}
	if newWidth < 0 || newHeight < 0 {
		return Grid{}, fmt.Errorf("life: resize to %dx%d: %w", newWidth, newHeight, ErrNegativeDimension)
	}

	var rows [][]Cell
	if newHeight <= len(g.rows) {
		rows = g.rows[:newHeight]
	} else {
		rows = append(append([][]Cell(nil), g.rows...),
			Generate(newHeight-len(g.rows), func(int) []Cell { return Fill(newWidth, Dead) })...)
	}

	out := Generate(len(rows), func(y int) []Cell {
		row := rows[y]
		if newWidth <= len(row) {
			return append([]Cell(nil), row[:newWidth]...)
		}
		return append(append([]Cell(nil), row...), Fill(newWidth-len(row), Dead)...)
	})
	return Grid{width: newWidth, rows: out}, nil
}

// Slice returns the sub-rectangle of rows [y, y+height) and columns
// [x, x+width). It never wraps: a request reaching past the grid edge
// returns only the cells that exist, and negative offsets start at 0.
func Slice(g Grid, x, y, width, height int) Grid {
	y0, y1 := clampRange(y, height, len(g.rows))
	x0, x1 := clampRange(x, width, g.width)
	rows := Generate(y1-y0, func(i int) []Cell {
		return append([]Cell(nil), g.rows[y0+i][x0:x1]...)
	})
	w := x1 - x0
	if len(rows) == 0 {
		w = 0
	}
	return Grid{width: w, rows: rows}
}

// clampRange converts (start, length) into a half-open range within [0, limit].
func clampRange(start, length, limit int) (int, int) {
	end := start + length
	start = min(max(start, 0), limit)
	end = min(max(end, start), limit)
	return start, end
}

// Toggle returns a copy of g with the cell at c inverted.
// Coordinates outside the grid are rejected rather than wrapped.
func Toggle(g Grid, c Coord) (Grid, error) {
	cell, ok := g.At(c)
	if !ok {
		return Grid{}, fmt.Errorf("life: toggle %d,%d in %dx%d: %w", c.X, c.Y, g.width, g.Height(), ErrOutOfRange)
	}
	return g.with(c, cell.Flip()), nil
}

// SetAlive returns a copy of g with the cell at c set Alive.
func SetAlive(g Grid, c Coord) (Grid, error) {
	if !g.InBounds(c) {
		return Grid{}, fmt.Errorf("life: set %d,%d in %dx%d: %w", c.X, c.Y, g.width, g.Height(), ErrOutOfRange)
	}
	return g.with(c, Alive), nil
}

// with copies the grid and replaces one cell. Untouched rows are shared
// with g, which is safe because no operation writes into existing rows.
func (g Grid) with(c Coord, v Cell) Grid {
	rows := append([][]Cell(nil), g.rows...)
	row := append([]Cell(nil), rows[c.Y]...)
	row[c.X] = v
	rows[c.Y] = row
	return Grid{width: g.width, rows: rows}
}
