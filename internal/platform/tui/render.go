package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
)

// PaletteFromConfig extracts the board colours from the style config.
func PaletteFromConfig(s config.StyleConfig) core.Palette {
	return core.Palette{Alive: s.AliveColor, Dead: s.DeadColor, Grid: s.GridColor}
}

// Renderer converts a Screen into styled terminal output.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer builds the colour styles. Board cells share the dead colour
// as background so the board reads as one surface. A nil lr uses the
// default lipgloss renderer.
func NewRenderer(lr *lipgloss.Renderer, p core.Palette) *Renderer {
	if lr == nil {
		lr = lipgloss.DefaultRenderer()
	}
	board := lr.NewStyle()
	if p.Dead != "" {
		board = board.Background(lipgloss.Color(p.Dead))
	}
	alive := board
	if p.Alive != "" {
		alive = alive.Foreground(lipgloss.Color(p.Alive))
	}
	grid := lr.NewStyle()
	if p.Grid != "" {
		grid = grid.Foreground(lipgloss.Color(p.Grid))
	}

	return &Renderer{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault: lr.NewStyle(),
		core.ColorAlive:   alive,
		core.ColorDead:    board,
		core.ColorGrid:    grid,
		core.ColorCursor:  board.Foreground(lipgloss.Color("212")),
		core.ColorHUD:     lr.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		core.ColorDim:     lr.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorWarn:    lr.NewStyle().Foreground(lipgloss.Color("208")),
	}}
}

// Render converts a Screen buffer to a styled string.
// Adjacent cells with the same colour are grouped into one styled run.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := r.styles[color]
			if !ok {
				style = r.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
