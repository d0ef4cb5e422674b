package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// RunRecorder stores the record of a finished session.
type RunRecorder interface {
	SaveRun(r storage.RunEntry) (int64, error)
}

// resizer is implemented by modes that can adapt to a new terminal size
// without restarting.
type resizer interface {
	Resize(screenW, screenH int)
}

// GameModel is the Bubble Tea model running one mode.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	renderer  *Renderer
	recorder  RunRecorder
	config    core.RuntimeConfig
	frame     core.InputFrame
	state     core.GameState
	keys      KeyMap
	help      help.Model
	allowBack bool // esc returns to the menu instead of being ignored
	tickID    int64

	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewGameModel creates a model for game. recorder may be nil.
func NewGameModel(game registry.Game, recorder RunRecorder, renderer *Renderer, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if renderer == nil {
		renderer = NewRenderer(nil, core.Palette{})
	}

	m := GameModel{
		game:     game,
		renderer: renderer,
		recorder: recorder,
		config:   cfg,
		frame:    core.NewInputFrame(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickID:   newTickLoop(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// boardHeight is the screen height left after the help footer.
func (m GameModel) boardHeight() int {
	return max(0, m.config.ScreenH-lipgloss.Height(m.help.View(m.keys)))
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.boardHeight()
	m.game.Reset(cfg)
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := pointerEvent(msg); ok {
			m.frame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.allowBack {
			m.recordRun()
			m.backToMenu = true
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.frame.Set(action)
	}
	return m, nil
}

// relayout resizes the screen buffer and tells the game about it. Modes
// that cannot resize in place are restarted.
func (m *GameModel) relayout() {
	h := m.boardHeight()
	m.screen.Resize(m.config.ScreenW, h)
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, h)
		return
	}
	cfg := m.config
	cfg.ScreenH = h
	m.game.Reset(cfg)
}

// handleTick runs one simulation tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.frame.Has(core.ActionRestart) {
		m.recordRun()
		m.runSaved = false
	}

	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()

	return m, tickCmd(m.tickID, m.config.TickRate)
}

// recordRun stores the current session once. Sessions that never advanced
// a generation are not recorded.
func (m *GameModel) recordRun() {
	if m.runSaved || m.recorder == nil {
		return
	}
	st := m.game.State()
	if st.Generation == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session is ending anyway
	m.recorder.SaveRun(storage.RunEntry{
		Mode:           m.game.ID(),
		Width:          st.BoardW,
		Height:         st.BoardH,
		Generations:    st.Generation,
		PeakPopulation: st.Peak,
	})
	m.runSaved = true
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".life", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the board and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	return m.renderer.Render(m.screen) + "\n" + footer
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single mode until the user quits.
func Run(game registry.Game, recorder RunRecorder, renderer *Renderer, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, recorder, renderer, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
