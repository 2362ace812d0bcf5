package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starline/internal/levels"
	"github.com/vovakirdan/starline/internal/registry"
)

var packsCmd = &cobra.Command{
	Use:   "packs [pack]",
	Short: "List registered level packs",
	Long: `Shows every level pack built into starline. With a pack ID or path,
lists the levels of that pack instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPacks,
}

func runPacks(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		pack, err := openPack(args[0])
		if err != nil {
			return err
		}
		printPackLevels(cmd.OutOrStdout(), pack)
		return nil
	}

	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return nil
	}

	fmt.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, p.ID, p.Levels, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'starline packs <id>' to list its levels, 'starline play <id>' to play it.")
	return nil
}

// printPackLevels writes one row per level with its colors and flags.
func printPackLevels(w io.Writer, pack *levels.Pack) {
	maxIDLen := 2
	for _, l := range pack.Levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Fprintf(w, "%s (%s)\n\n", pack.Title, pack.ID)
	fmt.Fprintf(w, "  %-3s  %-*s  %-7s  %-7s  %-4s  %s\n", "#", maxIDLen, "ID", "Line", "User", "Wind", "Name")
	for i, l := range pack.Levels {
		wind := ""
		if l.Wind {
			wind = "yes"
		}
		fmt.Fprintf(w, "  %-3d  %-*s  %-7s  %-7s  %-4s  %s\n",
			i+1, maxIDLen, l.ID, levels.Hex(l.LineColor), levels.Hex(l.UserLineColor), wind, l.Name)
	}
}
