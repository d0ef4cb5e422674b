package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/pattern"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved boards",
	Long: `List the boards saved with Ctrl+S in the game or 'life run --save'.

Examples:
  life saves
  life saves show life-40x40-gen120
  life saves import gun ./gosper.cells
  life saves delete life-40x40-gen120`,
	Args: cobra.NoArgs,
	Run:  runSavesList,
}

var savesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved board in plaintext format",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		store := openStore(true)
		defer store.Close()

		g := loadBoard(store, args[0])
		fmt.Print(pattern.FormatPlaintext(pattern.Pattern{Name: args[0], Cells: g}))
	},
}

var savesImportCmd = &cobra.Command{
	Use:   "import <name> <pattern>",
	Short: "Save a built-in pattern or pattern file as a board",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		p, err := pattern.Resolve(args[1])
		if err != nil {
			fail("%v", err)
		}

		store := openStore(true)
		defer store.Close()

		if err := store.SaveGrid(args[0], p.Cells); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Saved %s (%dx%d) as %q\n", p.Name, p.Width(), p.Height(), args[0])
	},
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved board",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		store := openStore(true)
		defer store.Close()

		if err := store.DeleteSave(args[0]); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Deleted %q\n", args[0])
	},
}

func init() {
	savesCmd.AddCommand(savesShowCmd, savesImportCmd, savesDeleteCmd)
}

func runSavesList(_ *cobra.Command, _ []string) {
	store := openStore(true)
	defer store.Close()

	saves, err := store.ListSaves()
	if err != nil {
		fail("%v", err)
	}
	if len(saves) == 0 {
		fmt.Println("No saved boards.")
		fmt.Println()
		fmt.Println("Press Ctrl+S while playing to save the board.")
		return
	}

	nameW := len("Name")
	for _, s := range saves {
		nameW = max(nameW, len(s.Name))
	}
	fmt.Printf("  %-*s  %-9s  %-10s  %s\n", nameW, "Name", "Size", "Population", "Saved")
	fmt.Printf("  %-*s  %-9s  %-10s  %s\n", nameW, "----", "----", "----------", "-----")
	for _, s := range saves {
		fmt.Printf("  %-*s  %-9s  %-10d  %s\n", nameW, s.Name,
			fmt.Sprintf("%dx%d", s.Width, s.Height), s.Population, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
