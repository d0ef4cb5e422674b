package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	flagRunsLimit int
	flagRunsTUI   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [mode]",
	Short: "Show the longest recorded runs",
	Long: `Display the longest runs for a mode, ranked by generations and then
peak population. A run is recorded when you quit a session that advanced
at least one generation, or by 'life run --record' (mode "headless").

Examples:
  life runs
  life runs soup --limit 20
  life runs --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs of every mode interactively")
}

func runRuns(_ *cobra.Command, args []string) {
	store := openStore(true)
	defer store.Close()

	if flagRunsTUI {
		rt := runtimeConfig()
		if _, err := tui.RunRunsBoard(store, rt.ScreenW, rt.ScreenH); err != nil {
			fail("%v", err)
		}
		return
	}

	mode := "life"
	if len(args) == 1 {
		mode = args[0]
	}

	runs, err := store.TopRuns(mode, flagRunsLimit)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Longest runs - %s\n", mode)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-11s  %-6s  %-9s  %s\n", "Rank", "Generations", "Peak", "Board", "Date")
	fmt.Printf("  %-4s  %-11s  %-6s  %-9s  %s\n", "----", "-----------", "----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-11d  %-6d  %-9s  %s\n", i+1, r.Generations, r.PeakPopulation,
			fmt.Sprintf("%dx%d", r.Width, r.Height), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.LongestRun(mode); err == nil {
		fmt.Println()
		fmt.Printf("Longest: %d generations\n", best)
	}
}
