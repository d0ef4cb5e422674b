package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/games/conway"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var playFlags boardFlags

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode, or pick one from a menu",
	Long: `Start the Game of Life. Without a mode a menu lets you pick one and
browse the longest runs.

Controls:
  Space          - Pause / resume
  n              - Single step while paused
  Arrows/hjkl    - Move the cursor
  Enter          - Toggle the cell under the cursor
  Mouse          - Left click/drag toggles cells, right paints them alive
  c / r          - Clear / randomize
  + - ] [        - Grow or shrink width and height
  L              - Link width and height
  Tab / p        - Cycle and stamp built-in patterns
  > <            - Faster / slower
  Ctrl+S         - Save the board
  ?              - All keys
  Q/Ctrl+C       - Quit

Speed presets:
  slow (1s), normal (333ms), fast (100ms), turbo (33ms)

Examples:
  life play
  life play soup --speed fast
  life play life --pattern glider --width 20 --height 20
  life play life --load my-board`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playFlags.width, "width", 0, "Board width (default from config)")
	playCmd.Flags().IntVar(&playFlags.height, "height", 0, "Board height (default from config)")
	playCmd.Flags().StringVar(&playFlags.speed, "speed", "", "Speed preset: slow, normal, fast, turbo")
	playCmd.Flags().StringVar(&playFlags.pattern, "pattern", "", "Start from a built-in pattern or a .cells/.yaml file")
	playCmd.Flags().BoolVar(&playFlags.random, "random", false, "Start from a random soup")
	playCmd.Flags().StringVar(&playFlags.load, "load", "", "Start from a saved board")
	playCmd.Flags().BoolVar(&playFlags.paused, "paused", false, "Start paused")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadConfig(playFlags)

	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'life list' to see available modes.")
		os.Exit(1)
	}

	store := openStore(false)
	if store != nil {
		defer store.Close()
	}

	settings := conway.Settings{Config: cfg}
	if store != nil {
		settings.Saver = store
	}
	if playFlags.load != "" {
		settings.Board = loadBoard(store, playFlags.load)
	}
	conway.Configure(settings)

	rt := runtimeConfig()
	renderer := tui.NewRenderer(nil, tui.PaletteFromConfig(cfg.Style))

	var err error
	if len(args) == 0 {
		err = tui.RunSession(store, renderer, rt)
	} else {
		game, createErr := registry.Create(args[0])
		if createErr != nil {
			fail("%v", createErr)
		}
		var recorder tui.RunRecorder
		if store != nil {
			recorder = store
		}
		err = tui.Run(game, recorder, renderer, rt)
	}
	if err != nil {
		fail("running game: %v", err)
	}
}
