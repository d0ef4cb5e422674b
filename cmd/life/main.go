// life is a terminal Game of Life on a toroidal board.
//
// Usage:
//
//	life list                - List playable modes
//	life play [mode]         - Play a mode, or pick one from a menu
//	life patterns            - List built-in patterns
//	life run                 - Evolve a board headlessly and print it
//	life saves               - List, show, import and delete saved boards
//	life runs [mode]         - Show the longest recorded runs
//	life serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible soups
//	--db <path>      - Set database path (default: ~/.life/life.db)
//	--config <path>  - Use a specific config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the Game of Life modes.
	_ "github.com/vovakirdan/tui-life/internal/games/conway"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life runs Conway's Game of Life on a board whose edges wrap around,
so gliders leaving one side come back on the other.

Available commands:
  list      - Show playable modes
  play      - Play a mode directly, or pick one from a menu
  patterns  - Show the built-in pattern catalogue
  run       - Evolve a board without a UI and print the result
  saves     - Manage saved boards
  runs      - Show the longest recorded runs
  serve     - Start SSH server for remote play

Examples:
  life play
  life play soup --seed 7
  life play life --pattern gosper-glider-gun --width 60 --height 40
  life run --pattern r-pentomino --generations 1103
  life serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML (default: search ~/.life/configs, ./configs)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
