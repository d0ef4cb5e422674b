package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/pattern"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// headlessMode is the mode name recorded for headless runs.
const headlessMode = "headless"

var (
	runFlags       boardFlags
	flagGens       int
	flagEvery      int
	flagSaveAs     string
	flagRecord     bool
	flagStopStable bool
	flagVerbose    bool
	flagQuiet      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evolve a board without a UI and print it",
	Long: `Evolve a board for a number of generations and print the final board
in plaintext format (O alive, . dead). Progress is logged to stderr.

Examples:
  life run --pattern glider --width 8 --height 8 --generations 32
  life run --random --seed 42 --generations 500 --every 100
  life run --load my-board --generations 10 --save my-board-10
  life run --pattern r-pentomino --width 120 --height 120 --generations 2000 --stop-stable --record`,
	Run: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runFlags.width, "width", 0, "Board width (default from config)")
	runCmd.Flags().IntVar(&runFlags.height, "height", 0, "Board height (default from config)")
	runCmd.Flags().StringVar(&runFlags.pattern, "pattern", "", "Start from a built-in pattern or a .cells/.yaml file")
	runCmd.Flags().BoolVar(&runFlags.random, "random", false, "Start from a random soup")
	runCmd.Flags().StringVar(&runFlags.load, "load", "", "Start from a saved board")
	runCmd.Flags().IntVarP(&flagGens, "generations", "n", 100, "Number of generations to compute")
	runCmd.Flags().IntVar(&flagEvery, "every", 0, "Log population every N generations (0 = off)")
	runCmd.Flags().StringVar(&flagSaveAs, "save", "", "Save the final board under this name")
	runCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the run in the runs table")
	runCmd.Flags().BoolVar(&flagStopStable, "stop-stable", false, "Stop early when the board stops changing")
	runCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every generation")
	runCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Do not print the final board")
}

func runRun(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flagGens < 0 {
		fail("--generations must not be negative")
	}
	cfg := loadConfig(runFlags)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	if runFlags.load != "" || flagSaveAs != "" || flagRecord {
		store = openStore(true)
		defer store.Close()
	}

	var g life.Grid
	if runFlags.load != "" {
		g = loadBoard(store, runFlags.load)
	} else {
		var err error
		if g, err = buildBoard(cfg, seed); err != nil {
			fail("%v", err)
		}
	}

	logger.Info("starting",
		"size", fmt.Sprintf("%dx%d", g.Width(), g.Height()),
		"population", g.Population(),
		"generations", flagGens,
		"seed", seed,
	)

	res, err := evolve(g, flagGens, flagStopStable, func(gen int, cur life.Grid) {
		pop := cur.Population()
		logger.Debug("generation", "gen", gen, "population", pop)
		if flagEvery > 0 && gen%flagEvery == 0 {
			logger.Info("progress", "gen", gen, "population", pop)
		}
	})
	if err != nil {
		fail("%v", err)
	}

	logger.Info("finished",
		"generations", res.generations,
		"population", res.grid.Population(),
		"peak", res.peak,
		"stable", res.stable,
	)

	if flagSaveAs != "" {
		if err := store.SaveGrid(flagSaveAs, res.grid); err != nil {
			fail("%v", err)
		}
		logger.Info("saved board", "name", flagSaveAs)
	}
	if flagRecord && res.generations > 0 {
		if _, err := store.SaveRun(storage.RunEntry{
			Mode:           headlessMode,
			Width:          res.grid.Width(),
			Height:         res.grid.Height(),
			Generations:    res.generations,
			PeakPopulation: res.peak,
		}); err != nil {
			logger.Warn("could not record run", "error", err)
		}
	}

	if !flagQuiet {
		fmt.Print(pattern.FormatCells(res.grid))
	}
}

// evolution is the outcome of a headless run.
type evolution struct {
	grid        life.Grid
	generations int
	peak        int
	stable      bool // the last step left the board unchanged
}

// evolve steps g up to n times, calling observe after each generation.
// With stopStable it stops as soon as a step leaves the board unchanged.
func evolve(g life.Grid, n int, stopStable bool, observe func(gen int, cur life.Grid)) (evolution, error) {
	res := evolution{grid: g, peak: g.Population()}
	for gen := 1; gen <= n; gen++ {
		next, err := life.Step(res.grid)
		if err != nil {
			return res, err
		}
		res.stable = next.Equal(res.grid)
		res.grid = next
		res.generations = gen
		res.peak = max(res.peak, next.Population())
		if observe != nil {
			observe(gen, next)
		}
		if stopStable && res.stable {
			break
		}
	}
	return res, nil
}
