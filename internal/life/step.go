package life

import "fmt"

// Wrap folds n back into [0, extent) assuming it is off by at most one
// extent, which holds for the unit neighbour offsets.
func Wrap(n, extent int) int {
	switch {
	case n < 0:
		return n + extent
	case n >= extent:
		return n - extent
	default:
		return n
	}
}

// Next applies the survival/birth rule: a live cell survives with 2 or 3
// live neighbours, a dead cell becomes alive with exactly 3.
func Next(cell Cell, liveNeighbors int) Cell {
	switch cell {
	case Alive:
		if liveNeighbors == 2 || liveNeighbors == 3 {
			return Alive
		}
		return Dead
	default:
		if liveNeighbors == 3 {
			return Alive
		}
		return Dead
	}
}

// LiveNeighbors counts Alive cells in the Moore neighbourhood of c,
// wrapping both axes around the torus.
func LiveNeighbors(g Grid, c Coord) (int, error) {
	if g.Height() == 0 {
		return 0, fmt.Errorf("life: neighbours: %w", ErrEmptyGrid)
	}
	if !g.InBounds(c) {
		return 0, fmt.Errorf("life: neighbours of %d,%d: %w", c.X, c.Y, ErrOutOfRange)
	}
	return g.liveNeighbors(c), nil
}

func (g Grid) liveNeighbors(c Coord) int {
	n := 0
	for _, d := range Directions {
		ny := Wrap(c.Y+d.DY, len(g.rows))
		row := g.rows[ny]
		nx := Wrap(c.X+d.DX, len(row))
		if row[nx] == Alive {
			n++
		}
	}
	return n
}

// Step computes the next generation. All reads target g and all writes
// target a freshly allocated grid of the same size.
func Step(g Grid) (Grid, error) {
	if g.Height() == 0 {
		return Grid{}, fmt.Errorf("life: step: %w", ErrEmptyGrid)
	}
	rows := Generate(len(g.rows), func(y int) []Cell {
		return Generate(len(g.rows[y]), func(x int) Cell {
			return Next(g.rows[y][x], g.liveNeighbors(Coord{X: x, Y: y}))
		})
	})
	return Grid{width: g.width, rows: rows}, nil
}

// StepN applies Step n times. n <= 0 returns g unchanged.
func StepN(g Grid, n int) (Grid, error) {
	var err error
	for i := 0; i < n; i++ {
		if g, err = Step(g); err != nil {
			return Grid{}, err
		}
	}
	return g, nil
}
