package life

import (
	"fmt"
	"math/rand/v2"
)

// Chooser returns Dead or Alive with uniform probability.
// It is injected into the random constructors so tests can supply a
// deterministic source.
type Chooser func() Cell

// RandomChooser draws cells from r. The returned Chooser is not safe for
// concurrent use because *rand.Rand is not.
func RandomChooser(r *rand.Rand) Chooser {
	return func() Cell {
		if r.IntN(2) == 1 {
			return Alive
		}
		return Dead
	}
}

// SeededChooser returns a deterministic PCG-backed Chooser.
func SeededChooser(seed int64) Chooser {
	return RandomChooser(rand.New(rand.NewPCG(uint64(seed), 0)))
}

// ConstChooser always returns c.
func ConstChooser(c Cell) Chooser {
	return func() Cell { return c }
}

// CycleChooser returns the given cells in order, repeating forever.
func CycleChooser(cells ...Cell) Chooser {
	i := 0
	return func() Cell {
		if len(cells) == 0 {
			return Dead
		}
		c := cells[i%len(cells)]
		i++
		return c
	}
}

// NewRandom returns a width x height grid with every cell picked by choose,
// row by row.
func NewRandom(width, height int, choose Chooser) (Grid, error) {
	if choose == nil {
		return Grid{}, ErrNilChooser
	}
	if width < 0 || height < 0 {
		return Grid{}, fmt.Errorf("life: random %dx%d: %w", width, height, ErrNegativeDimension)
	}
	return Grid{
		width: width,
		rows: Generate(height, func(int) []Cell {
			return Generate(width, func(int) Cell { return choose() })
		}),
	}, nil
}

// Randomize returns a grid of the same size as g with every cell re-chosen.
func Randomize(g Grid, choose Chooser) (Grid, error) {
	return NewRandom(g.width, g.Height(), choose)
}
