// Package life is the Game of Life grid engine: a toroidal grid of binary
// cells, the single-generation step transform, and reshape operations.
// Every operation returns a fresh Grid and leaves its input untouched, so
// values may be shared freely between goroutines.
package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Valid reports whether c is one of the two cell states.
func (c Cell) Valid() bool {
	return c == Dead || c == Alive
}

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	switch c {
	case Dead:
		return "Dead"
	case Alive:
		return "Alive"
	default:
		return "Invalid"
	}
}

// Coord addresses a single cell. X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c offset by d.
func (c Coord) Add(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is one of the eight Moore-neighbourhood offsets.
type Direction struct {
	DX, DY int
}

// Directions holds the eight neighbour offsets in column-major order,
// (-1,-1) first. The self offset (0,0) is never part of the set.
var Directions = mooreDirections()

func mooreDirections() []Direction {
	dirs := make([]Direction, 0, 8)
	for _, dx := range Generate(3, func(i int) int { return i - 1 }) {
		for _, dy := range Generate(3, func(i int) int { return i - 1 }) {
			if dx == 0 && dy == 0 {
				continue
			}
			dirs = append(dirs, Direction{DX: dx, DY: dy})
		}
	}
	return dirs
}
