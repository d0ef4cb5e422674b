package conway

import (
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// viewport is the visible window onto the board. Boards larger than the
// terminal scroll to keep the cursor in view.
type viewport struct {
	x, y       int // top-left visible cell
	cols, rows int // visible cells
	cellW      int // terminal columns per cell
	box        core.Rect
	surface    core.Rect // box interior, where cells are drawn
	tooSmall   bool
}

// follow scrolls so that c is visible.
func (v *viewport) follow(c life.Coord, gridW, gridH int) {
	if c.X < v.x {
		v.x = c.X
	}
	if c.X >= v.x+v.cols {
		v.x = c.X - v.cols + 1
	}
	if c.Y < v.y {
		v.y = c.Y
	}
	if c.Y >= v.y+v.rows {
		v.y = c.Y - v.rows + 1
	}
	v.x = core.Clamp(v.x, 0, max(0, gridW-v.cols))
	v.y = core.Clamp(v.y, 0, max(0, gridH-v.rows))
}

// visible reports whether board cell c is inside the viewport.
func (v viewport) visible(c life.Coord) bool {
	return c.X >= v.x && c.X < v.x+v.cols && c.Y >= v.y && c.Y < v.y+v.rows
}

// Resize adapts the layout to a new terminal size without touching the board.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW, g.screenH = screenW, screenH
	g.layout()
}

// layout recomputes the viewport from the screen and board sizes. The
// configured cell width shrinks towards one column before the board
// starts scrolling.
func (g *Game) layout() {
	gw, gh := g.grid.Width(), g.grid.Height()
	availW := g.screenW - 2
	availH := g.screenH - hudRows - 2

	v := &g.view
	v.cellW = max(1, g.cfg.Style.CellWidth)
	for v.cellW > 1 && gw*v.cellW > availW {
		v.cellW--
	}
	v.cols = min(gw, availW/v.cellW)
	v.rows = min(gh, availH)
	v.tooSmall = v.cols < 1 || v.rows < 1
	if v.tooSmall {
		v.cols, v.rows = 0, 0
		v.box, v.surface = core.Rect{}, core.Rect{}
		return
	}

	boxW := v.cols*v.cellW + 2
	v.box = core.NewRect(max(0, (g.screenW-boxW)/2), hudRows, boxW, v.rows+2)
	v.surface = v.box.Inset(1)
	v.follow(g.cursor, gw, gh)
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(sx, sy int) (life.Coord, bool) {
	if g.view.tooSmall {
		return life.Coord{}, false
	}
	x, y, ok := core.MapPointer(g.view.surface, sx, sy, g.view.cols, g.view.rows)
	if !ok {
		return life.Coord{}, false
	}
	return life.C(g.view.x+x, g.view.y+y), true
}
