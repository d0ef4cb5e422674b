package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-life/internal/life"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	g, _ := life.NewBlank(3, 3)
	g, _ = life.Toggle(g, life.C(1, 1))
	if err := store.SaveGrid("dot", g); err != nil {
		t.Fatalf("SaveGrid() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	got, err := store.LoadGrid("dot")
	if err != nil {
		t.Fatalf("LoadGrid() failed: %v", err)
	}
	if !got.Equal(g) {
		t.Error("board did not survive reopening the database")
	}
}

func TestSaveAndLoadGrid(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name  string
		w, h  int
		alive []life.Coord
	}{
		{"single", 3, 3, []life.Coord{{X: 1, Y: 1}}},
		{"dead bottom rows", 4, 6, []life.Coord{{X: 0, Y: 0}, {X: 3, Y: 1}}},
		{"all dead", 5, 2, nil},
		{"wide", 12, 1, []life.Coord{{X: 11, Y: 0}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := life.NewBlank(tc.w, tc.h)
			if err != nil {
				t.Fatalf("NewBlank() failed: %v", err)
			}
			for _, c := range tc.alive {
				g, _ = life.SetAlive(g, c)
			}

			if err := store.SaveGrid(tc.name, g); err != nil {
				t.Fatalf("SaveGrid() failed: %v", err)
			}
			got, err := store.LoadGrid(tc.name)
			if err != nil {
				t.Fatalf("LoadGrid() failed: %v", err)
			}
			if got.Width() != tc.w || got.Height() != tc.h {
				t.Errorf("loaded %dx%d, expected %dx%d", got.Width(), got.Height(), tc.w, tc.h)
			}
			if !got.Equal(g) {
				t.Error("loaded board differs from saved board")
			}
		})
	}
}

func TestSaveGridOverwrites(t *testing.T) {
	store := openTestStore(t)

	first, _ := life.NewBlank(3, 3)
	second, _ := life.NewBlank(4, 2)
	second, _ = life.SetAlive(second, life.C(2, 1))

	if err := store.SaveGrid("slot", first); err != nil {
		t.Fatalf("SaveGrid() failed: %v", err)
	}
	if err := store.SaveGrid("slot", second); err != nil {
		t.Fatalf("SaveGrid() overwrite failed: %v", err)
	}

	got, err := store.LoadGrid("slot")
	if err != nil {
		t.Fatalf("LoadGrid() failed: %v", err)
	}
	if !got.Equal(second) {
		t.Error("expected the second save to replace the first")
	}

	saves, err := store.ListSaves()
	if err != nil {
		t.Fatalf("ListSaves() failed: %v", err)
	}
	if len(saves) != 1 {
		t.Fatalf("expected 1 save, got %d", len(saves))
	}
	if saves[0].Population != 1 || saves[0].Width != 4 || saves[0].Height != 2 {
		t.Errorf("unexpected entry %+v", saves[0])
	}
}

func TestSaveGridErrors(t *testing.T) {
	store := openTestStore(t)
	g, _ := life.NewBlank(2, 2)

	if err := store.SaveGrid("", g); err == nil {
		t.Error("expected error for empty name")
	}
	if err := store.SaveGrid("empty", life.Grid{}); !errors.Is(err, life.ErrEmptyGrid) {
		t.Errorf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestLoadAndDeleteMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadGrid("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadGrid() expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteSave("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteSave() expected ErrNotFound, got %v", err)
	}
}

func TestDeleteSave(t *testing.T) {
	store := openTestStore(t)
	g, _ := life.NewBlank(2, 2)

	for _, name := range []string{"a", "b"} {
		if err := store.SaveGrid(name, g); err != nil {
			t.Fatalf("SaveGrid(%q) failed: %v", name, err)
		}
	}
	if err := store.DeleteSave("a"); err != nil {
		t.Fatalf("DeleteSave() failed: %v", err)
	}

	saves, err := store.ListSaves()
	if err != nil {
		t.Fatalf("ListSaves() failed: %v", err)
	}
	if len(saves) != 1 || saves[0].Name != "b" {
		t.Errorf("expected only save b to remain, got %+v", saves)
	}
}

func TestRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Mode: "life", Width: 40, Height: 40, Generations: 120, PeakPopulation: 30},
		{Mode: "life", Width: 40, Height: 40, Generations: 500, PeakPopulation: 12},
		{Mode: "life", Width: 20, Height: 20, Generations: 120, PeakPopulation: 90},
		{Mode: "soup", Width: 40, Height: 40, Generations: 999, PeakPopulation: 400},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("life", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(top))
	}
	if top[0].Generations != 500 {
		t.Errorf("expected longest run first, got %d", top[0].Generations)
	}
	// Ties on generations are broken by peak population.
	if top[1].PeakPopulation != 90 || top[2].PeakPopulation != 30 {
		t.Errorf("unexpected tie order: %+v", top[1:])
	}

	limited, err := store.TopRuns("life", 1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected limit to apply, got %d runs", len(limited))
	}

	longest, err := store.LongestRun("soup")
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if longest != 999 {
		t.Errorf("expected 999, got %d", longest)
	}

	none, err := store.LongestRun("unknown")
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if none != 0 {
		t.Errorf("expected 0 for mode without runs, got %d", none)
	}
}
