package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/pattern"
)

var flagExport string

var patternsCmd = &cobra.Command{
	Use:   "patterns [id|file]",
	Short: "List built-in patterns or show one",
	Long: `Without arguments, lists the built-in pattern catalogue. With an ID or
a .cells/.yaml file, prints that pattern in plaintext format.

Examples:
  life patterns
  life patterns glider
  life patterns ./my-pattern.cells
  life patterns --export catalogue.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPatterns,
}

func init() {
	patternsCmd.Flags().StringVar(&flagExport, "export", "", "Write the built-in catalogue as YAML to this file")
}

func runPatterns(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		p, err := pattern.Resolve(args[0])
		if err != nil {
			fail("%v", err)
		}
		fmt.Print(pattern.FormatPlaintext(p))
		return
	}

	builtins := pattern.Builtins()
	if flagExport != "" {
		data, err := pattern.MarshalYAML(builtins)
		if err != nil {
			fail("%v", err)
		}
		if err := os.WriteFile(flagExport, data, 0o644); err != nil {
			fail("writing %s: %v", flagExport, err)
		}
		fmt.Printf("Wrote %d patterns to %s\n", len(builtins), flagExport)
		return
	}

	idW := len("ID")
	for _, p := range builtins {
		idW = max(idW, len(p.ID))
	}
	fmt.Printf("  %-*s  %-12s  %-6s  %-7s  %s\n", idW, "ID", "Kind", "Period", "Size", "Name")
	fmt.Printf("  %-*s  %-12s  %-6s  %-7s  %s\n", idW, "--", "----", "------", "----", "----")
	for _, p := range builtins {
		period := "-"
		if p.Period > 0 {
			period = fmt.Sprintf("%d", p.Period)
		}
		size := fmt.Sprintf("%dx%d", p.Width(), p.Height())
		fmt.Printf("  %-*s  %-12s  %-6s  %-7s  %s\n", idW, p.ID, p.Kind, period, size, p.Name)
	}
	fmt.Println()
	fmt.Println("Run 'life play life --pattern <id>' to start from a pattern.")
}
