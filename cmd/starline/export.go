package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starline/internal/playback"
)

var (
	flagExportOut  string
	flagExportClip bool
)

var exportCmd = &cobra.Command{
	Use:   "export <pack> <level>",
	Short: "Print a level in canonical text form",
	Long: `Parse a level and write it back in the canonical level text format,
the same form the editor saves.

Examples:
  starline export builtin valley
  starline export builtin 2 -o valley.txt
  starline export ./mypack ramp --clipboard`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Write to this file instead of stdout")
	exportCmd.Flags().BoolVar(&flagExportClip, "clipboard", false, "Copy the level text to the clipboard")
}

func runExport(cmd *cobra.Command, args []string) error {
	pack, err := openPack(args[0])
	if err != nil {
		return err
	}
	index, err := levelIndex(pack, args[1])
	if err != nil {
		return err
	}

	start, entries, err := pack.Levels[index].Parse()
	if err != nil {
		return err
	}
	text := playback.Encode(start, entries)

	if flagExportClip {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("cannot copy to clipboard: %w", err)
		}
	}

	if flagExportOut != "" {
		return os.WriteFile(flagExportOut, []byte(text+"\n"), 0o644)
	}
	if !flagExportClip {
		fmt.Println(text)
	}
	return nil
}
