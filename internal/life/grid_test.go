package life

import (
	"errors"
	"testing"
)

// gridOf builds a grid from rows of '.' and 'O'.
func gridOf(t *testing.T, lines ...string) Grid {
	t.Helper()
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		rows[y] = make([]Cell, len(line))
		for x, r := range line {
			if r == 'O' {
				rows[y][x] = Alive
			}
		}
	}
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return g
}

// checkDims asserts the dimension invariant.
func checkDims(t *testing.T, g Grid, w, h int) {
	t.Helper()
	if g.Width() != w || g.Height() != h {
		t.Fatalf("expected %dx%d grid, got %dx%d", w, h, g.Width(), g.Height())
	}
	rows := g.Rows()
	if len(rows) != h {
		t.Fatalf("expected %d rows, got %d", h, len(rows))
	}
	for y, row := range rows {
		if len(row) != w {
			t.Fatalf("row %d has %d cells, expected %d", y, len(row), w)
		}
	}
}

// aliveSet returns the coordinates of all live cells.
func aliveSet(g Grid) map[Coord]bool {
	set := make(map[Coord]bool)
	for y, row := range g.Rows() {
		for x, cell := range row {
			if cell == Alive {
				set[C(x, y)] = true
			}
		}
	}
	return set
}

func TestNewBlank(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"square", 4, 4},
		{"wide", 7, 2},
		{"zero width", 0, 3},
		{"zero height", 5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewBlank(tc.w, tc.h)
			if err != nil {
				t.Fatalf("NewBlank() failed: %v", err)
			}
			checkDims(t, g, tc.w, tc.h)
			if g.Population() != 0 {
				t.Errorf("blank grid has population %d", g.Population())
			}
		})
	}
}

func TestNewBlankNegative(t *testing.T) {
	if _, err := NewBlank(-1, 3); !errors.Is(err, ErrNegativeDimension) {
		t.Errorf("expected ErrNegativeDimension, got %v", err)
	}
	if _, err := NewBlank(3, -1); !errors.Is(err, ErrNegativeDimension) {
		t.Errorf("expected ErrNegativeDimension, got %v", err)
	}
}

func TestFromRowsRejectsRagged(t *testing.T) {
	_, err := FromRows([][]Cell{{Dead, Alive}, {Dead}})
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestFromRowsRejectsInvalidCell(t *testing.T) {
	_, err := FromRows([][]Cell{{Dead, Cell(2)}})
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestFromRowsCopies(t *testing.T) {
	src := [][]Cell{{Dead, Dead}, {Dead, Dead}}
	g, err := FromRows(src)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	src[0][0] = Alive
	if g.Alive(C(0, 0)) {
		t.Error("grid should not alias the source rows")
	}
}

func TestNewRandom(t *testing.T) {
	g, err := NewRandom(4, 3, CycleChooser(Alive, Dead))
	if err != nil {
		t.Fatalf("NewRandom() failed: %v", err)
	}
	checkDims(t, g, 4, 3)
	if g.Population() != 6 {
		t.Errorf("expected population 6, got %d", g.Population())
	}
	if !g.Alive(C(0, 0)) || g.Alive(C(1, 0)) {
		t.Error("cells should follow chooser order row by row")
	}
}

func TestNewRandomNilChooser(t *testing.T) {
	if _, err := NewRandom(2, 2, nil); !errors.Is(err, ErrNilChooser) {
		t.Errorf("expected ErrNilChooser, got %v", err)
	}
}

func TestSeededChooserDeterminism(t *testing.T) {
	a, _ := NewRandom(20, 20, SeededChooser(42))
	b, _ := NewRandom(20, 20, SeededChooser(42))
	if !a.Equal(b) {
		t.Error("same seed should produce identical grids")
	}
	c, _ := NewRandom(20, 20, SeededChooser(43))
	if a.Equal(c) {
		t.Error("different seeds should produce different grids")
	}
}

func TestRandomize(t *testing.T) {
	g := gridOf(t, "...", "...")
	r, err := Randomize(g, ConstChooser(Alive))
	if err != nil {
		t.Fatalf("Randomize() failed: %v", err)
	}
	checkDims(t, r, 3, 2)
	if r.Population() != 6 {
		t.Errorf("expected all cells alive, got %d", r.Population())
	}
	if g.Population() != 0 {
		t.Error("Randomize must not modify its input")
	}
}

func TestResizeGrow(t *testing.T) {
	g := gridOf(t,
		"...",
		".O.",
		"...",
	)
	r, err := Resize(g, 5, 5)
	if err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	checkDims(t, r, 5, 5)
	alive := aliveSet(r)
	if len(alive) != 1 || !alive[C(1, 1)] {
		t.Errorf("expected only (1,1) alive, got %v", alive)
	}
}

func TestResizeShrink(t *testing.T) {
	g := gridOf(t,
		"...",
		".O.",
		"..O",
	)
	r, err := Resize(g, 2, 2)
	if err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	checkDims(t, r, 2, 2)
	if !r.Equal(gridOf(t, "..", ".O")) {
		t.Errorf("expected top-left 2x2, got %v", r.Rows())
	}
}

func TestResizeMixed(t *testing.T) {
	g := gridOf(t,
		"O..O",
		"....",
	)
	tests := []struct {
		name string
		w, h int
		want []string
	}{
		{"wider shorter", 6, 1, []string{"O..O.."}},
		{"narrower taller", 2, 4, []string{"O.", "..", "..", ".."}},
		{"same", 4, 2, []string{"O..O", "...."}},
		{"zero width", 0, 2, []string{"", ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Resize(g, tc.w, tc.h)
			if err != nil {
				t.Fatalf("Resize() failed: %v", err)
			}
			checkDims(t, r, tc.w, tc.h)
			if want := gridOf(t, tc.want...); !r.Equal(want) {
				t.Errorf("got %v, expected %v", r.Rows(), want.Rows())
			}
		})
	}
}

func TestResizeErrors(t *testing.T) {
	empty, _ := NewBlank(3, 0)
	if _, err := Resize(empty, 2, 2); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("expected ErrEmptyGrid, got %v", err)
	}
	g := gridOf(t, "..")
	if _, err := Resize(g, -1, 2); !errors.Is(err, ErrNegativeDimension) {
		t.Errorf("expected ErrNegativeDimension, got %v", err)
	}
}

func TestSlice(t *testing.T) {
	g := gridOf(t,
		"O..",
		".O.",
		"..O",
	)

	tests := []struct {
		name       string
		x, y, w, h int
		wantW      int
		wantH      int
	}{
		{"clamped to grid", 0, 0, 10, 10, 3, 3},
		{"inner", 1, 1, 2, 2, 2, 2},
		{"past right edge", 2, 0, 5, 3, 1, 3},
		{"past bottom edge", 0, 2, 3, 5, 3, 1},
		{"fully outside", 5, 5, 2, 2, 0, 0},
		{"negative offset", -1, -1, 2, 2, 1, 1},
		{"zero extent", 0, 0, 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Slice(g, tc.x, tc.y, tc.w, tc.h)
			checkDims(t, s, tc.wantW, tc.wantH)
		})
	}
}

func TestSliceDoesNotWrap(t *testing.T) {
	g := gridOf(t,
		"O..",
		"...",
		"...",
	)
	s := Slice(g, 2, 2, 2, 2)
	checkDims(t, s, 1, 1)
	if s.Population() != 0 {
		t.Error("slice past the edge must not wrap back to (0,0)")
	}

	inner := Slice(g, 0, 0, 2, 1)
	if !inner.Equal(gridOf(t, "O.")) {
		t.Errorf("unexpected slice contents %v", inner.Rows())
	}
}

func TestToggle(t *testing.T) {
	g := gridOf(t, "...", "...")

	on, err := Toggle(g, C(2, 1))
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	if !on.Alive(C(2, 1)) || on.Population() != 1 {
		t.Errorf("expected only (2,1) alive, got %v", aliveSet(on))
	}
	if g.Population() != 0 {
		t.Error("Toggle must not modify its input")
	}

	off, err := Toggle(on, C(2, 1))
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	if !off.Equal(g) {
		t.Error("toggling twice should restore the original grid")
	}
}

func TestToggleOutOfRange(t *testing.T) {
	g := gridOf(t, "...", "...")
	for _, c := range []Coord{C(3, 0), C(0, 2), C(-1, 0), C(0, -1)} {
		if _, err := Toggle(g, c); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Toggle(%v): expected ErrOutOfRange, got %v", c, err)
		}
	}
}

func TestSetAlive(t *testing.T) {
	g := gridOf(t, "O.")
	for _, c := range []Coord{C(0, 0), C(1, 0)} {
		var err error
		if g, err = SetAlive(g, c); err != nil {
			t.Fatalf("SetAlive(%v) failed: %v", c, err)
		}
	}
	if g.Population() != 2 {
		t.Errorf("expected 2 live cells, got %d", g.Population())
	}
	if _, err := SetAlive(g, C(2, 0)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestFillGenerate(t *testing.T) {
	f := Fill(3, Alive)
	if len(f) != 3 || f[0] != Alive || f[2] != Alive {
		t.Errorf("Fill() = %v", f)
	}
	gen := Generate(4, func(i int) int { return i * i })
	want := []int{0, 1, 4, 9}
	for i := range want {
		if gen[i] != want[i] {
			t.Errorf("Generate()[%d] = %d, expected %d", i, gen[i], want[i])
		}
	}
	if len(Fill(-2, Dead)) != 0 || len(Generate(0, func(int) int { return 1 })) != 0 {
		t.Error("non-positive lengths should produce empty slices")
	}
}
