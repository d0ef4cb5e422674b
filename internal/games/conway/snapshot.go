package conway

import "github.com/vovakirdan/tui-life/internal/pattern"

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Mode       string
	Generation int
	Population int
	Peak       int
	Width      int
	Height     int
	Paused     bool
	Linked     bool
	IntervalMS int
	CursorX    int
	CursorY    int
	Cells      string // plaintext rows
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	return Snapshot{
		Mode:       string(g.mode),
		Generation: st.Generation,
		Population: st.Population,
		Peak:       st.Peak,
		Width:      st.BoardW,
		Height:     st.BoardH,
		Paused:     st.Paused,
		Linked:     g.linked,
		IntervalMS: g.interval,
		CursorX:    g.cursor.X,
		CursorY:    g.cursor.Y,
		Cells:      pattern.FormatCells(g.grid),
	}
}
