package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starline/internal/levels"
	"github.com/vovakirdan/starline/internal/platform/tui"
	"github.com/vovakirdan/starline/internal/registry"
)

var (
	flagRecordsPlain bool
	flagRecordsClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [pack]",
	Short: "Show level records",
	Long: `Show the fastest completion, number of clears and average attempts for
every level. Without a pack, all registered packs are shown and tab
switches between them.

Examples:
  starline records
  starline records builtin --plain
  starline records ./mypack --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagRecordsPlain, "plain", false, "Print a plain table instead of the interactive view")
	recordsCmd.Flags().BoolVar(&flagRecordsClear, "clear", false, "Delete all records of the pack")
}

func runRecords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var packs []*levels.Pack
	if len(args) > 0 {
		pack, err := openPack(args[0])
		if err != nil {
			return err
		}
		packs = append(packs, pack)
	} else {
		for _, info := range registry.List() {
			pack, err := registry.Create(info.ID)
			if err != nil {
				return err
			}
			packs = append(packs, pack)
		}
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(cfg.Paths.Database, logger)
	if store == nil {
		return errors.New("records database unavailable")
	}
	defer store.Close()

	if flagRecordsClear {
		if len(args) == 0 {
			return errors.New("--clear needs a pack")
		}
		if err := store.ClearCompletions(packs[0].ID); err != nil {
			return err
		}
		fmt.Printf("Cleared records for %s.\n", packs[0].ID)
		return nil
	}

	if !flagRecordsPlain {
		width, height := terminalSize()
		return tui.RunRecords(store, packs, cfg.Display.FPS, width, height)
	}

	for _, pack := range packs {
		model := tui.NewRecordsModel(store, []*levels.Pack{pack}, cfg.Display.FPS, 80, 24)
		fmt.Printf("Records - %s\n\n", pack.Title)
		fmt.Printf("  %-3s  %-16s  %-6s  %-8s  %-5s  %s\n", "#", "Level", "Clears", "Best", "Tries", "Last")
		fmt.Printf("  %-3s  %-16s  %-6s  %-8s  %-5s  %s\n", "-", "-----", "------", "----", "-----", "----")
		for _, row := range model.Rows() {
			fmt.Printf("  %-3s  %-16s  %-6s  %-8s  %-5s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
		}
		fmt.Println()
	}
	return nil
}
