package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/pattern"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// boardFlags are the board overrides shared by play and run.
type boardFlags struct {
	width   int
	height  int
	speed   string
	pattern string
	random  bool
	load    string
	paused  bool
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig(f boardFlags) config.LifeConfig {
	cfg, err := config.LoadLife(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(f.speed)); err != nil {
		fail("%v", err)
	}
	if f.width > 0 {
		cfg.Board.Width = f.width
	}
	if f.height > 0 {
		cfg.Board.Height = f.height
	}
	switch {
	case f.pattern != "":
		cfg.Start = config.StartConfig{Mode: config.StartPattern, Pattern: f.pattern}
	case f.random:
		cfg.Start = config.StartConfig{Mode: config.StartRandom}
	}
	if f.paused {
		cfg.Tick.StartPaused = true
	}

	if err := cfg.Validate(); err != nil {
		fail("config: %v", err)
	}
	return cfg
}

// openStore opens the database. When required is false a failure is only
// a warning and the returned store is nil.
func openStore(required bool) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err == nil {
		return store
	}
	if required {
		fail("could not open database: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
	return nil
}

// loadBoard fetches a saved board by name.
func loadBoard(store *storage.Store, name string) life.Grid {
	if store == nil {
		fail("cannot load %q without a database", name)
	}
	g, err := store.LoadGrid(name)
	if err != nil {
		fail("%v", err)
	}
	return g
}

// buildBoard creates the starting board for headless runs.
func buildBoard(cfg config.LifeConfig, seed int64) (life.Grid, error) {
	w, h := cfg.Board.Width, cfg.Board.Height
	switch cfg.Start.Mode {
	case config.StartRandom:
		return life.NewRandom(w, h, life.SeededChooser(seed))
	case config.StartPattern:
		p, err := pattern.Resolve(cfg.Start.Pattern)
		if err != nil {
			return life.Grid{}, err
		}
		blank, err := life.NewBlank(w, h)
		if err != nil {
			return life.Grid{}, err
		}
		return pattern.Stamp(blank, p, pattern.Centered(blank, p))
	default:
		return life.NewBlank(w, h)
	}
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}
