package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDraftsDelete string

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List or remove saved editor drafts",
	Long: `Every editor save is also kept as a named draft in the records
database. Reopen one with 'starline edit --draft <name>'.

Examples:
  starline drafts
  starline drafts --delete ramp`,
	Args: cobra.NoArgs,
	RunE: runDrafts,
}

func init() {
	draftsCmd.Flags().StringVar(&flagDraftsDelete, "delete", "", "Remove the named draft")
}

func runDrafts(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
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

	if flagDraftsDelete != "" {
		if err := store.DeleteDraft(flagDraftsDelete); err != nil {
			return err
		}
		fmt.Printf("Deleted draft %s.\n", flagDraftsDelete)
		return nil
	}

	drafts, err := store.Drafts()
	if err != nil {
		return err
	}
	if len(drafts) == 0 {
		fmt.Println("No drafts saved yet.")
		fmt.Println()
		fmt.Println("Run 'starline edit' and press S to save one.")
		return nil
	}

	fmt.Printf("  %-24s  %s\n", "Name", "Saved")
	fmt.Printf("  %-24s  %s\n", "----", "-----")
	for _, d := range drafts {
		fmt.Printf("  %-24s  %s\n", d.Name, d.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
