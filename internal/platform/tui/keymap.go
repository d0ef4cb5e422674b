package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// KeyMap holds the in-game key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Toggle      key.Binding
	Pause       key.Binding
	Step        key.Binding
	Clear       key.Binding
	Randomize   key.Binding
	Wider       key.Binding
	Narrower    key.Binding
	Taller      key.Binding
	Shorter     key.Binding
	Link        key.Binding
	Stamp       key.Binding
	NextPattern key.Binding
	Faster      key.Binding
	Slower      key.Binding
	Save        key.Binding
	Restart     key.Binding
	Screenshot  key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→/l", "right")),
		Toggle:      key.NewBinding(key.WithKeys("enter", "t"), key.WithHelp("enter", "toggle cell")),
		Pause:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Step:        key.NewBinding(key.WithKeys("n", "."), key.WithHelp("n", "step")),
		Clear:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Randomize:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "randomize")),
		Wider:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "width")),
		Narrower:    key.NewBinding(key.WithKeys("-", "_")),
		Taller:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]/[", "height")),
		Shorter:     key.NewBinding(key.WithKeys("[")),
		Link:        key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "link size")),
		Stamp:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "stamp pattern")),
		NextPattern: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pattern")),
		Faster:      key.NewBinding(key.WithKeys(">"), key.WithHelp(">/<", "speed")),
		Slower:      key.NewBinding(key.WithKeys("<")),
		Save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save board")),
		Restart:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "restart")),
		Screenshot:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "screenshot")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the one-line footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Toggle, k.Randomize, k.Clear, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded footer.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Pause, k.Step, k.Restart},
		{k.Clear, k.Randomize, k.Stamp, k.NextPattern},
		{k.Wider, k.Taller, k.Link, k.Faster},
		{k.Save, k.Screenshot, k.Back, k.Quit},
	}
}

// bindings pairs each game action with its binding, in match order.
func (k KeyMap) bindings() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Toggle, core.ActionToggle},
		{k.Pause, core.ActionPause},
		{k.Step, core.ActionStep},
		{k.Clear, core.ActionClear},
		{k.Randomize, core.ActionRandomize},
		{k.Wider, core.ActionWider},
		{k.Narrower, core.ActionNarrower},
		{k.Taller, core.ActionTaller},
		{k.Shorter, core.ActionShorter},
		{k.Link, core.ActionLink},
		{k.Stamp, core.ActionStamp},
		{k.NextPattern, core.ActionNextPattern},
		{k.Faster, core.ActionFaster},
		{k.Slower, core.ActionSlower},
		{k.Save, core.ActionSave},
		{k.Restart, core.ActionRestart},
		{k.Back, core.ActionBack},
		{k.Quit, core.ActionQuit},
	}
}

// Action translates a key message to a game action, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, b := range k.bindings() {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// pointerEvent converts a mouse message to a pointer event. Only the left
// button edits the board.
func pointerEvent(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y, Paint: msg.Button == tea.MouseButtonRight}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
			return ev, false
		}
		ev.Kind = core.PointerPress
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
			return ev, false
		}
		ev.Kind = core.PointerDrag
	case tea.MouseActionRelease:
		ev.Kind = core.PointerRelease
	default:
		return ev, false
	}
	return ev, true
}

// MenuAction is a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionRuns
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionRuns
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
