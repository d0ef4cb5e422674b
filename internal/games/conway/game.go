// Package conway implements the Game of Life modes on top of the toroidal
// grid engine: tick accounting, pause and single step, editing with the
// keyboard cursor or the mouse, resizing, pattern stamping and rendering.
package conway

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/pattern"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Mode selects how a session starts.
type Mode string

const (
	ModeLife Mode = "life" // start as configured (blank, random or a pattern)
	ModeSoup Mode = "soup" // always start from a random soup
)

// Saver persists a board under a name.
type Saver interface {
	SaveGrid(name string, g life.Grid) error
}

// Settings are shared by every game created after Configure.
type Settings struct {
	Config config.LifeConfig
	Saver  Saver     // nil disables saving
	Board  life.Grid // initial board overriding the start mode when not empty
}

var (
	settingsMu sync.RWMutex
	settings   = Settings{Config: config.DefaultLifeConfig()}
)

// Configure replaces the settings used by New and NewSoup.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

const (
	hudRows       = 2
	messageTicks  = 90
	defaultRate   = 30
	noticeNoSaver = "saving disabled"
)

// Game is one Game of Life session.
type Game struct {
	mode  Mode
	cfg   config.LifeConfig
	saver Saver
	start life.Grid

	grid    life.Grid
	choose  life.Chooser
	seed    int64
	catalog []pattern.Pattern
	current int // selected catalog entry

	generation int
	peak       int
	everAlive  bool
	paused     bool
	linked     bool
	interval   int // generation interval in ms
	tickRate   int
	ticks      int // platform ticks since the last generation

	cursor life.Coord
	drag   core.DragTracker
	view   viewport

	screenW int
	screenH int

	message  string
	msgTicks int
	lastErr  error
}

// New creates a game in the configured start mode.
func New() *Game {
	return newGame(ModeLife)
}

// NewSoup creates a game that always starts from a random board.
func NewSoup() *Game {
	return newGame(ModeSoup)
}

func newGame(mode Mode) *Game {
	s := currentSettings()
	return &Game{
		mode:    mode,
		cfg:     s.Config,
		saver:   s.Saver,
		start:   s.Board,
		catalog: pattern.Builtins(),
	}
}

func init() {
	registry.Register(string(ModeLife), func() registry.Game { return New() })
	registry.Register(string(ModeSoup), func() registry.Game { return NewSoup() })
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSoup {
		return "Game of Life (Random Soup)"
	}
	return "Game of Life"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeSoup {
		return "Toroidal Life seeded with a random soup"
	}
	return "Toroidal Life, editable with cursor and mouse"
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.choose = life.SeededChooser(g.seed)

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultRate
	}
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH

	g.linked = g.cfg.Board.Linked
	g.interval = g.cfg.Tick.IntervalMS
	g.paused = g.cfg.Tick.StartPaused
	g.ticks = 0
	g.drag.Release()
	g.message, g.msgTicks, g.lastErr = "", 0, nil

	g.grid = g.initialBoard()
	g.cursor = life.C(g.grid.Width()/2, g.grid.Height()/2)
	g.resetCounters()
	g.layout()
}

func (g *Game) initialBoard() life.Grid {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	if !g.start.Empty() {
		return g.start
	}

	mode := g.cfg.Start.Mode
	if g.mode == ModeSoup {
		mode = config.StartRandom
	}

	switch mode {
	case config.StartRandom:
		if grid, err := life.NewRandom(w, h, g.choose); err == nil {
			return grid
		}
	case config.StartPattern:
		blank, _ := life.NewBlank(w, h)
		p, err := pattern.Resolve(g.cfg.Start.Pattern)
		if err != nil {
			g.notify(err.Error())
			return blank
		}
		g.selectPattern(p.ID)
		grid, err := pattern.Stamp(blank, p, pattern.Centered(blank, p))
		if err != nil {
			g.notify(fmt.Sprintf("%s does not fit on %dx%d", p.Name, w, h))
			return blank
		}
		return grid
	}

	blank, _ := life.NewBlank(w, h)
	return blank
}

func (g *Game) resetCounters() {
	g.generation = 0
	g.ticks = 0
	pop := g.grid.Population()
	g.peak = pop
	g.everAlive = pop > 0
}

// State returns the current status.
func (g *Game) State() core.GameState {
	pop := g.grid.Population()
	return core.GameState{
		Generation: g.generation,
		Population: pop,
		Peak:       g.peak,
		BoardW:     g.grid.Width(),
		BoardH:     g.grid.Height(),
		Paused:     g.paused,
		Extinct:    g.everAlive && pop == 0,
	}
}

// Grid returns the current board.
func (g *Game) Grid() life.Grid {
	return g.grid
}

// SelectedPattern returns the pattern placed by the stamp action.
func (g *Game) SelectedPattern() pattern.Pattern {
	if len(g.catalog) == 0 {
		return pattern.Pattern{}
	}
	return g.catalog[g.current]
}

func (g *Game) selectPattern(id string) {
	for i, p := range g.catalog {
		if p.ID == id {
			g.current = i
			return
		}
	}
}

// notify shows a transient message in the HUD.
func (g *Game) notify(msg string) {
	g.message = msg
	g.msgTicks = messageTicks
}
