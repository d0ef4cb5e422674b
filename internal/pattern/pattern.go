// Package pattern reads and writes Game of Life patterns and places them
// onto engine grids. It depends on the life engine; the engine knows
// nothing about file formats.
package pattern

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Kind classifies a pattern by its long-term behaviour.
type Kind string

const (
	KindStillLife  Kind = "still"
	KindOscillator Kind = "oscillator"
	KindSpaceship  Kind = "spaceship"
	KindGun        Kind = "gun"
	KindMethuselah Kind = "methuselah"
	KindOther      Kind = "other"
)

// Pattern is a named rectangle of cells.
type Pattern struct {
	ID       string
	Name     string
	Kind     Kind
	Period   int // 0 when unknown or not periodic
	Comments []string
	Cells    life.Grid
}

// Width returns the pattern width in cells.
func (p Pattern) Width() int { return p.Cells.Width() }

// Height returns the pattern height in cells.
func (p Pattern) Height() int { return p.Cells.Height() }

// Stamp returns a copy of dst with every live cell of p set Alive, the
// pattern's top-left corner placed at at. Placement wraps around the torus,
// so patterns may straddle edges. Dead pattern cells leave dst unchanged.
func Stamp(dst life.Grid, p Pattern, at life.Coord) (life.Grid, error) {
	if dst.Empty() {
		return life.Grid{}, fmt.Errorf("pattern: stamp %q: %w", p.ID, life.ErrEmptyGrid)
	}
	if p.Width() > dst.Width() || p.Height() > dst.Height() {
		return life.Grid{}, fmt.Errorf("pattern: %q is %dx%d, grid is %dx%d: %w",
			p.ID, p.Width(), p.Height(), dst.Width(), dst.Height(), life.ErrOutOfRange)
	}

	rows := dst.Rows()
	for y, row := range p.Cells.Rows() {
		for x, cell := range row {
			if cell != life.Alive {
				continue
			}
			ty := mod(at.Y+y, dst.Height())
			tx := mod(at.X+x, dst.Width())
			rows[ty][tx] = life.Alive
		}
	}
	return life.FromRows(rows)
}

// Centered returns the coordinate that centres p on dst.
func Centered(dst life.Grid, p Pattern) life.Coord {
	return life.C((dst.Width()-p.Width())/2, (dst.Height()-p.Height())/2)
}

// mod is a Euclidean modulo for arbitrary offsets.
func mod(n, m int) int {
	return ((n % m) + m) % m
}
