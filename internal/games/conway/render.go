package conway

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

const cursorDeadRune = '░'

// Render draws the HUD and the visible part of the board. It only reads
// the board.
func (g *Game) Render(dst *core.Screen) {
	g.renderHUD(dst)

	if g.view.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorWarn)
		return
	}

	dst.DrawBox(g.view.box, core.ColorGrid)
	g.renderCells(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	line := fmt.Sprintf(" %s  gen %d  pop %d  peak %d  %dx%d",
		g.Title(), st.Generation, st.Population, st.Peak, st.BoardW, st.BoardH)
	dst.DrawTextColored(0, 0, line, core.ColorHUD)

	var status []string
	switch {
	case st.Extinct:
		status = append(status, "EXTINCT")
	case st.Paused:
		status = append(status, "PAUSED")
	default:
		status = append(status, "RUNNING")
	}
	status = append(status, fmt.Sprintf("%dms", g.interval))
	if g.linked {
		status = append(status, "link on")
	} else {
		status = append(status, "link off")
	}
	if p := g.SelectedPattern(); p.Name != "" {
		status = append(status, "pattern "+p.Name)
	}
	dst.DrawTextColored(1, 1, strings.Join(status, "  "), core.ColorDim)

	if g.message != "" {
		x := max(0, dst.Width()-utf8.RuneCountInString(g.message)-1)
		dst.DrawTextColored(x, 1, g.message, core.ColorWarn)
	}
}

func (g *Game) renderCells(dst *core.Screen) {
	alive := firstRune(g.cfg.Style.AliveRune, '█')
	dead := firstRune(g.cfg.Style.DeadRune, ' ')
	v := g.view

	for vy := range v.rows {
		for vx := range v.cols {
			c := life.C(v.x+vx, v.y+vy)
			r, color := dead, core.ColorDead
			if g.grid.Alive(c) {
				r, color = alive, core.ColorAlive
			}
			if c == g.cursor {
				color = core.ColorCursor
				if r == dead {
					r = cursorDeadRune
				}
			}
			sx := v.surface.X + vx*v.cellW
			for i := range v.cellW {
				dst.SetColored(sx+i, v.surface.Y+vy, r, color)
			}
		}
	}
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
