package conway

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/pattern"
)

// Step processes one platform tick: input first, then the generation
// counter. A generation is computed every TicksPerGeneration ticks unless
// paused; ActionStep computes exactly one while paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.msgTicks > 0 {
		g.msgTicks--
		if g.msgTicks == 0 {
			g.message = ""
		}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
	}

	g.handleActions(in)
	g.handlePointer(in.Pointer)

	switch {
	case g.paused:
		if in.Has(core.ActionStep) {
			g.advance()
		}
	default:
		g.ticks++
		if g.ticks >= g.ticksPerGeneration() {
			g.ticks = 0
			g.advance()
		}
	}

	return core.StepResult{State: g.State(), Err: g.lastErr}
}

// ticksPerGeneration converts the interval into platform ticks.
func (g *Game) ticksPerGeneration() int {
	return max(1, g.interval*g.tickRate/1000)
}

// advance replaces the board with its successor.
func (g *Game) advance() {
	next, err := life.Step(g.grid)
	if err != nil {
		g.lastErr = err
		return
	}
	g.lastErr = nil
	g.grid = next
	g.generation++

	pop := g.grid.Population()
	g.peak = max(g.peak, pop)
	if pop > 0 {
		g.everAlive = true
	}
}

func (g *Game) restart() {
	g.grid = g.initialBoard()
	g.cursor = g.clampCursor(g.cursor)
	g.resetCounters()
	g.layout()
}

func (g *Game) handleActions(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.ticks = 0
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	}
	switch {
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	if in.Has(core.ActionToggle) {
		g.toggle(g.cursor)
	}
	if in.Has(core.ActionClear) {
		g.clear()
	}
	if in.Has(core.ActionRandomize) {
		g.randomize()
	}

	w, h := g.grid.Width(), g.grid.Height()
	switch {
	case in.Has(core.ActionWider):
		g.changeWidth(w + 1)
	case in.Has(core.ActionNarrower):
		g.changeWidth(w - 1)
	case in.Has(core.ActionTaller):
		g.changeHeight(h + 1)
	case in.Has(core.ActionShorter):
		g.changeHeight(h - 1)
	}
	if in.Has(core.ActionLink) {
		g.linked = !g.linked
	}

	if in.Has(core.ActionFaster) {
		g.setInterval(g.cfg.Tick.Faster(), g.interval)
	}
	if in.Has(core.ActionSlower) {
		g.setInterval(g.cfg.Tick.Slower(), g.interval)
	}

	if in.Has(core.ActionNextPattern) && len(g.catalog) > 0 {
		g.current = (g.current + 1) % len(g.catalog)
		g.notify("pattern: " + g.catalog[g.current].Name)
	}
	if in.Has(core.ActionStamp) {
		g.stamp()
	}
	if in.Has(core.ActionSave) {
		g.save()
	}
}

// handlePointer applies mouse gestures. A press toggles the cell under the
// pointer; a drag toggles each cell it enters, once per cell.
func (g *Game) handlePointer(events []core.PointerEvent) {
	for _, ev := range events {
		if ev.Kind == core.PointerRelease {
			g.drag.Release()
			continue
		}

		c, ok := g.cellAt(ev.X, ev.Y)
		if !ok {
			continue
		}

		act := false
		switch ev.Kind {
		case core.PointerPress:
			act = g.drag.Press(c.X, c.Y)
		case core.PointerDrag:
			act = g.drag.Drag(c.X, c.Y)
		}
		if !act {
			continue
		}
		g.cursor = c
		if ev.Paint {
			g.paint(c)
		} else {
			g.toggle(c)
		}
	}
}

// toggle flips a cell. Coordinates outside the board are ignored.
func (g *Game) toggle(c life.Coord) {
	if !g.grid.InBounds(c) {
		return
	}
	next, err := life.Toggle(g.grid, c)
	if err != nil {
		g.lastErr = err
		return
	}
	g.grid = next
	if g.grid.Alive(c) {
		g.everAlive = true
		g.peak = max(g.peak, g.grid.Population())
	}
}

// paint sets a cell alive. Coordinates outside the board are ignored.
func (g *Game) paint(c life.Coord) {
	if !g.grid.InBounds(c) {
		return
	}
	next, err := life.SetAlive(g.grid, c)
	if err != nil {
		g.lastErr = err
		return
	}
	g.grid = next
	g.everAlive = true
	g.peak = max(g.peak, g.grid.Population())
}

func (g *Game) clear() {
	blank, err := life.NewBlank(g.grid.Width(), g.grid.Height())
	if err != nil {
		g.lastErr = err
		return
	}
	g.grid = blank
	g.resetCounters()
}

func (g *Game) randomize() {
	next, err := life.Randomize(g.grid, g.choose)
	if err != nil {
		g.lastErr = err
		return
	}
	g.grid = next
	g.resetCounters()
}

// changeWidth resizes to width columns. With linked dimensions the board
// becomes width x width.
func (g *Game) changeWidth(width int) {
	if g.linked {
		g.resize(width, width)
		return
	}
	g.resize(width, g.grid.Height())
}

// changeHeight resizes to height rows. With linked dimensions the board
// becomes height x height.
func (g *Game) changeHeight(height int) {
	if g.linked {
		g.resize(height, height)
		return
	}
	g.resize(g.grid.Width(), height)
}

func (g *Game) resize(width, height int) {
	b := g.cfg.Board
	width = core.Clamp(width, b.MinSize, b.MaxSize)
	height = core.Clamp(height, b.MinSize, b.MaxSize)
	if width == g.grid.Width() && height == g.grid.Height() {
		return
	}

	next, err := life.Resize(g.grid, width, height)
	if err != nil {
		g.lastErr = err
		return
	}
	g.grid = next
	g.cursor = g.clampCursor(g.cursor)
	g.peak = max(g.peak, g.grid.Population())
	g.layout()
}

func (g *Game) setInterval(ms, prev int) {
	g.interval = ms
	g.cfg.Tick.IntervalMS = ms
	if ms != prev {
		g.notify(fmt.Sprintf("interval %dms", ms))
	}
}

// stamp ORs the selected pattern onto the board with its top-left corner
// at the cursor, wrapping around the edges.
func (g *Game) stamp() {
	p := g.SelectedPattern()
	if p.Cells.Empty() {
		return
	}
	next, err := pattern.Stamp(g.grid, p, g.cursor)
	if errors.Is(err, life.ErrOutOfRange) {
		g.notify(fmt.Sprintf("%s (%dx%d) does not fit", p.Name, p.Width(), p.Height()))
		return
	}
	if err != nil {
		g.lastErr = err
		return
	}
	g.grid = next
	pop := g.grid.Population()
	g.peak = max(g.peak, pop)
	g.everAlive = g.everAlive || pop > 0
}

// SaveName is the name the save action stores the current board under.
func (g *Game) SaveName() string {
	return fmt.Sprintf("%s-%dx%d-gen%d", g.mode, g.grid.Width(), g.grid.Height(), g.generation)
}

func (g *Game) save() {
	if g.saver == nil {
		g.notify(noticeNoSaver)
		return
	}
	name := g.SaveName()
	if err := g.saver.SaveGrid(name, g.grid); err != nil {
		g.notify("save failed: " + err.Error())
		return
	}
	g.notify("saved " + name)
}

func (g *Game) moveCursor(dx, dy int) {
	if g.grid.Empty() {
		return
	}
	g.cursor = life.C(
		life.Wrap(g.cursor.X+dx, g.grid.Width()),
		life.Wrap(g.cursor.Y+dy, g.grid.Height()),
	)
	g.view.follow(g.cursor, g.grid.Width(), g.grid.Height())
}

func (g *Game) clampCursor(c life.Coord) life.Coord {
	return life.C(
		core.Clamp(c.X, 0, max(0, g.grid.Width()-1)),
		core.Clamp(c.Y, 0, max(0, g.grid.Height()-1)),
	)
}
