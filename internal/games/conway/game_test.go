package conway

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// setup configures the package, creates a game of the given mode and
// resets it on a 200x60 screen. Games start paused unless mutate says otherwise.
func setup(t *testing.T, mode Mode, mutate func(*Settings)) *Game {
	t.Helper()
	s := Settings{Config: config.DefaultLifeConfig()}
	s.Config.Tick.StartPaused = true
	if mutate != nil {
		mutate(&s)
	}
	Configure(s)
	t.Cleanup(func() { Configure(Settings{Config: config.DefaultLifeConfig()}) })

	g := newGame(mode)
	g.Reset(core.RuntimeConfig{ScreenW: 200, ScreenH: 60, TickRate: 30, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func press(x, y int, kind core.PointerKind) core.InputFrame {
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{X: x, Y: y, Kind: kind})
	return in
}

type memSaver struct {
	saved map[string]life.Grid
}

func (m *memSaver) SaveGrid(name string, g life.Grid) error {
	if m.saved == nil {
		m.saved = make(map[string]life.Grid)
	}
	m.saved[name] = g
	return nil
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"life", "soup"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
	g, err := registry.Create("soup")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "soup" {
		t.Errorf("ID() = %q", g.ID())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := setup(t, ModeSoup, func(s *Settings) { s.Config.Tick.StartPaused = false })
		for i := range 200 {
			var in core.InputFrame
			switch i {
			case 30:
				in = frame(core.ActionRandomize)
			case 60:
				in = frame(core.ActionRight, core.ActionToggle)
			case 90:
				in = frame(core.ActionWider)
			default:
				in = frame()
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
	if a.Generation == 0 {
		t.Error("expected the soup to have advanced")
	}
}

func TestTickAccounting(t *testing.T) {
	g := setup(t, ModeLife, func(s *Settings) { s.Config.Tick.StartPaused = false })
	for _, c := range []life.Coord{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}} {
		g.toggle(c)
	}

	// 333ms at 30 ticks per second is one generation every 9 ticks.
	if got := g.ticksPerGeneration(); got != 9 {
		t.Fatalf("ticksPerGeneration() = %d, expected 9", got)
	}
	for range 8 {
		g.Step(frame())
	}
	if g.generation != 0 {
		t.Fatalf("generation advanced early: %d", g.generation)
	}
	g.Step(frame())
	if g.generation != 1 {
		t.Fatalf("expected generation 1, got %d", g.generation)
	}
	for _, c := range []life.Coord{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}} {
		if !g.grid.Alive(c) {
			t.Errorf("expected vertical blinker cell %v alive", c)
		}
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	g := setup(t, ModeLife, nil)
	g.toggle(life.C(5, 5))

	for range 50 {
		g.Step(frame())
	}
	if g.generation != 0 {
		t.Fatalf("paused game advanced to generation %d", g.generation)
	}

	res := g.Step(frame(core.ActionStep))
	if res.State.Generation != 1 {
		t.Fatalf("single step gave generation %d", res.State.Generation)
	}
	if !res.State.Extinct || res.State.Population != 0 {
		t.Errorf("lone cell should die out, got %+v", res.State)
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("pause action should resume")
	}
	res = g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Error("pause action should pause again")
	}
}

func TestCursorToggle(t *testing.T) {
	g := setup(t, ModeLife, nil)
	if g.cursor != life.C(20, 20) {
		t.Fatalf("cursor starts at %v, expected board centre", g.cursor)
	}

	g.Step(frame(core.ActionToggle))
	if !g.grid.Alive(life.C(20, 20)) {
		t.Fatal("toggle did not set the cursor cell alive")
	}
	g.Step(frame(core.ActionToggle))
	if g.grid.Alive(life.C(20, 20)) {
		t.Fatal("second toggle did not clear the cell")
	}

	// The cursor wraps like the board.
	g.cursor = life.C(0, 0)
	g.Step(frame(core.ActionLeft, core.ActionUp))
	if g.cursor != life.C(39, 39) {
		t.Errorf("cursor = %v, expected wrap to (39,39)", g.cursor)
	}
}

func TestPointerDrag(t *testing.T) {
	g := setup(t, ModeLife, nil)
	// 40 cells at two columns each, centred in 200 columns: the surface
	// starts at (60, 3).
	if g.view.surface != core.NewRect(60, 3, 80, 40) {
		t.Fatalf("unexpected surface %+v", g.view.surface)
	}

	g.Step(press(60, 3, core.PointerPress))
	if !g.grid.Alive(life.C(0, 0)) {
		t.Fatal("press should toggle (0,0)")
	}

	// Second column of the same cell: no repeat toggle.
	g.Step(press(61, 3, core.PointerDrag))
	if !g.grid.Alive(life.C(0, 0)) {
		t.Fatal("drag within the same cell toggled it again")
	}

	g.Step(press(62, 3, core.PointerDrag))
	if !g.grid.Alive(life.C(1, 0)) {
		t.Fatal("drag into (1,0) should toggle it")
	}

	g.Step(press(60, 3, core.PointerDrag))
	if g.grid.Alive(life.C(0, 0)) {
		t.Fatal("re-entering (0,0) should toggle it back")
	}

	g.Step(press(0, 0, core.PointerRelease))
	g.Step(press(64, 3, core.PointerDrag))
	if g.grid.Alive(life.C(2, 0)) {
		t.Error("drag after release must be ignored")
	}
	if g.cursor != life.C(0, 0) {
		t.Errorf("cursor should follow the last edited cell, got %v", g.cursor)
	}
}

func TestPointerPaint(t *testing.T) {
	g := setup(t, ModeLife, nil)
	g.toggle(life.C(1, 0))

	paint := func(x, y int, kind core.PointerKind) core.InputFrame {
		in := core.NewInputFrame()
		in.AddPointer(core.PointerEvent{X: x, Y: y, Kind: kind, Paint: true})
		return in
	}

	g.Step(paint(60, 3, core.PointerPress))
	g.Step(paint(62, 3, core.PointerDrag))
	g.Step(paint(64, 3, core.PointerDrag))
	g.Step(paint(62, 3, core.PointerDrag))

	for x := range 3 {
		if !g.grid.Alive(life.C(x, 0)) {
			t.Errorf("(%d,0) should be alive after painting", x)
		}
	}
	if g.grid.Population() != 3 {
		t.Errorf("population = %d, want 3", g.grid.Population())
	}
	if g.State().Peak != 3 {
		t.Errorf("peak = %d, want 3", g.State().Peak)
	}
}

func TestPointerOutsideBoard(t *testing.T) {
	g := setup(t, ModeLife, nil)

	for _, p := range [][2]int{{59, 3}, {60, 2}, {140, 3}, {60, 43}} {
		g.Step(press(p[0], p[1], core.PointerPress))
	}
	if g.grid.Population() != 0 {
		t.Errorf("clicks outside the board changed %d cells", g.grid.Population())
	}
}

func TestViewportScroll(t *testing.T) {
	g := setup(t, ModeLife, nil)
	g.Resize(12, 10)

	v := g.view
	if v.cellW != 1 || v.cols != 10 || v.rows != 6 {
		t.Fatalf("unexpected viewport %+v", v)
	}
	if v.x != 11 || v.y != 15 {
		t.Fatalf("viewport origin (%d,%d), expected (11,15) to show the cursor", v.x, v.y)
	}

	g.Step(press(v.surface.X, v.surface.Y, core.PointerPress))
	if !g.grid.Alive(life.C(11, 15)) {
		t.Error("pointer should map through the scrolled viewport")
	}
}

func TestResizeLinked(t *testing.T) {
	g := setup(t, ModeLife, nil)
	g.toggle(life.C(0, 0))

	g.Step(frame(core.ActionWider))
	if w, h := g.grid.Width(), g.grid.Height(); w != 41 || h != 41 {
		t.Fatalf("linked wider gave %dx%d", w, h)
	}
	if !g.grid.Alive(life.C(0, 0)) {
		t.Error("resize lost a live cell")
	}

	g.Step(frame(core.ActionLink))
	g.Step(frame(core.ActionTaller))
	if w, h := g.grid.Width(), g.grid.Height(); w != 41 || h != 42 {
		t.Fatalf("unlinked taller gave %dx%d", w, h)
	}
	g.Step(frame(core.ActionNarrower))
	if w, h := g.grid.Width(), g.grid.Height(); w != 40 || h != 42 {
		t.Fatalf("unlinked narrower gave %dx%d", w, h)
	}
}

func TestResizeBounds(t *testing.T) {
	g := setup(t, ModeLife, func(s *Settings) {
		s.Config.Board = config.BoardConfig{Width: 3, Height: 3, Linked: true, MinSize: 2, MaxSize: 4}
	})

	steps := []struct {
		action core.Action
		want   int
	}{
		{core.ActionWider, 4},
		{core.ActionWider, 4},
		{core.ActionShorter, 3},
		{core.ActionShorter, 2},
		{core.ActionNarrower, 2},
	}
	for i, s := range steps {
		g.Step(frame(s.action))
		if w, h := g.grid.Width(), g.grid.Height(); w != s.want || h != s.want {
			t.Fatalf("step %d (%v): got %dx%d, expected %dx%d", i, s.action, w, h, s.want, s.want)
		}
	}
	if !g.grid.InBounds(g.cursor) {
		t.Errorf("cursor %v left the %dx%d board", g.cursor, g.grid.Width(), g.grid.Height())
	}
}

func TestClearAndRandomize(t *testing.T) {
	g := setup(t, ModeLife, nil)
	g.Step(frame(core.ActionRandomize))
	if g.grid.Population() == 0 {
		t.Fatal("randomize produced an empty 40x40 board")
	}
	g.Step(frame(core.ActionStep))
	if g.generation != 1 {
		t.Fatalf("expected generation 1, got %d", g.generation)
	}

	res := g.Step(frame(core.ActionClear))
	if res.State.Population != 0 || res.State.Generation != 0 {
		t.Errorf("clear left %+v", res.State)
	}
	if res.State.Extinct {
		t.Error("a cleared board is not extinct")
	}
	if g.grid.Width() != 40 || g.grid.Height() != 40 {
		t.Error("clear changed the board size")
	}
}

func TestSpeed(t *testing.T) {
	g := setup(t, ModeLife, nil)

	g.Step(frame(core.ActionFaster))
	if g.interval != 166 {
		t.Fatalf("faster interval = %d, expected 166", g.interval)
	}
	g.Step(frame(core.ActionSlower))
	if g.interval != 332 {
		t.Fatalf("slower interval = %d, expected 332", g.interval)
	}
	if !strings.Contains(g.message, "332") {
		t.Errorf("expected interval notice, got %q", g.message)
	}
}

func TestStamp(t *testing.T) {
	g := setup(t, ModeLife, nil)
	g.selectPattern("glider")
	if g.SelectedPattern().ID != "glider" {
		t.Fatal("glider not in the catalogue")
	}

	g.cursor = life.C(39, 39)
	g.Step(frame(core.ActionStamp))
	if pop := g.grid.Population(); pop != 5 {
		t.Fatalf("stamped glider has %d cells, expected 5", pop)
	}

	g.Step(frame(core.ActionNextPattern))
	if g.SelectedPattern().ID == "glider" {
		t.Error("next pattern did not change the selection")
	}
}

func TestStampTooLarge(t *testing.T) {
	g := setup(t, ModeLife, func(s *Settings) {
		s.Config.Board.Width, s.Config.Board.Height = 5, 5
	})
	g.selectPattern("gosper-glider-gun")
	g.Step(frame(core.ActionStamp))

	if g.grid.Population() != 0 {
		t.Error("oversized pattern should not be stamped")
	}
	if !strings.Contains(g.message, "does not fit") {
		t.Errorf("expected a notice, got %q", g.message)
	}
}

func TestStartPattern(t *testing.T) {
	g := setup(t, ModeLife, func(s *Settings) {
		s.Config.Start = config.StartConfig{Mode: config.StartPattern, Pattern: "blinker"}
	})
	if pop := g.grid.Population(); pop != 3 {
		t.Errorf("blinker start has %d cells", pop)
	}
	if g.SelectedPattern().ID != "blinker" {
		t.Errorf("selected pattern %q", g.SelectedPattern().ID)
	}

	g = setup(t, ModeLife, func(s *Settings) {
		s.Config.Start = config.StartConfig{Mode: config.StartPattern, Pattern: "no-such-pattern"}
	})
	if g.grid.Population() != 0 || g.message == "" {
		t.Error("unknown start pattern should fall back to a blank board with a notice")
	}
}

func TestStartBoardOverride(t *testing.T) {
	board, _ := life.NewBlank(5, 7)
	board, _ = life.SetAlive(board, life.C(4, 6))

	g := setup(t, ModeSoup, func(s *Settings) { s.Board = board })
	if !g.grid.Equal(board) {
		t.Error("explicit board should override the start mode")
	}
}

func TestRestart(t *testing.T) {
	g := setup(t, ModeLife, func(s *Settings) {
		s.Config.Start = config.StartConfig{Mode: config.StartPattern, Pattern: "glider"}
	})
	start := g.Snapshot().Cells
	for range 5 {
		g.Step(frame(core.ActionStep))
	}
	res := g.Step(frame(core.ActionRestart))
	if res.State.Generation != 0 {
		t.Errorf("restart left generation %d", res.State.Generation)
	}
	if g.Snapshot().Cells != start {
		t.Error("restart should rebuild the starting board")
	}
}

func TestSave(t *testing.T) {
	saver := &memSaver{}
	g := setup(t, ModeLife, func(s *Settings) { s.Saver = saver })
	g.toggle(life.C(3, 4))

	g.Step(frame(core.ActionSave))
	got, ok := saver.saved[g.SaveName()]
	if !ok {
		t.Fatalf("nothing saved under %q (message %q)", g.SaveName(), g.message)
	}
	if !got.Equal(g.grid) {
		t.Error("saved board differs from the live board")
	}

	g = setup(t, ModeLife, nil)
	g.Step(frame(core.ActionSave))
	if g.message != noticeNoSaver {
		t.Errorf("expected %q, got %q", noticeNoSaver, g.message)
	}
}

func TestRender(t *testing.T) {
	g := setup(t, ModeLife, nil)
	g.toggle(life.C(0, 0))

	screen := core.NewScreen(200, 60)
	g.Render(screen)

	if r := screen.Get(59, 2); r != '┌' {
		t.Errorf("box corner = %q", r)
	}
	for _, x := range []int{60, 61} {
		cell := screen.GetCell(x, 3)
		if cell.Rune != '█' || cell.Color != core.ColorAlive {
			t.Errorf("alive cell at column %d rendered as %+v", x, cell)
		}
	}
	if cell := screen.GetCell(100, 23); cell.Rune != cursorDeadRune || cell.Color != core.ColorCursor {
		t.Errorf("cursor rendered as %+v", cell)
	}
	if hud := screen.Row(0); !strings.Contains(hud, "pop 1") || !strings.Contains(hud, "40x40") {
		t.Errorf("HUD missing counters: %q", hud)
	}
	if status := screen.Row(1); !strings.Contains(status, "PAUSED") {
		t.Errorf("status line missing pause state: %q", status)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := setup(t, ModeLife, nil)
	g.Resize(10, 4)

	screen := core.NewScreen(10, 4)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too") {
		t.Error("expected a too-small notice")
	}

	g.Step(press(1, 3, core.PointerPress))
	if g.grid.Population() != 0 {
		t.Error("pointer must be ignored while the board is hidden")
	}
}
