package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starline/internal/config"
	"github.com/vovakirdan/starline/internal/game"
	"github.com/vovakirdan/starline/internal/levels"
	"github.com/vovakirdan/starline/internal/platform/tui"
	"github.com/vovakirdan/starline/internal/storage"
)

// blankLevel starts the ball in the middle of the view with nothing drawn.
const blankLevel = "1 1 "

var (
	flagEditOut   string
	flagEditDraft string
	flagEditClip  bool
)

var editCmd = &cobra.Command{
	Use:   "edit [level-file]",
	Short: "Record a new level",
	Long: `Open the level editor. Strokes are recorded with their timing so the
level draws itself the same way when played.

Controls:
  Left drag        - Record a stroke
  Drag the ball    - Move the start position
  C                - Place a star at the pointer
  R                - Rewind the last recorded action (hold to repeat)
  A                - Clear everything
  Space            - Test the level
  S                - Save
  Q/Ctrl+C         - Quit

Saving writes the level text to --out (default <export_dir>/<draft>.txt),
stores it as a draft in the records database and, with --clipboard,
copies it to the clipboard.

Examples:
  starline edit
  starline edit --draft ramp
  starline edit levels/ramp.txt --out levels/ramp.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&flagEditOut, "out", "o", "", "File to save the level to")
	editCmd.Flags().StringVar(&flagEditDraft, "draft", "", "Draft name to load and save under")
	editCmd.Flags().BoolVar(&flagEditClip, "clipboard", false, "Also copy saved levels to the clipboard")
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(cfg.Paths.Database, logger)
	if store != nil {
		defer store.Close()
	}

	name := flagEditDraft
	if name == "" {
		name = "level-" + time.Now().Format("20060102-150405")
	}

	pack, err := editSource(args, name, store)
	if err != nil {
		return err
	}

	out := flagEditOut
	if out == "" {
		if len(args) > 0 {
			out = args[0]
		} else {
			dir, err := expandDir(cfg.Paths.ExportDir)
			if err != nil {
				return err
			}
			out = filepath.Join(dir, name+".txt")
		}
	}

	width, height := terminalSize()
	st, err := game.New(pack, game.Options{
		Width:       width,
		Height:      height,
		FrameBudget: uint32(cfg.Playback.FrameBudget),
		Seed:        seed(),
		Editor:      true,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	st.Reveal()
	st.Editor.Export = exporter(out, name, store, logger)

	if err := tui.Run(st, tui.Options{
		Width:      width,
		Height:     height,
		FPS:        cfg.Display.FPS,
		CellAspect: cfg.Display.CellAspect,
		ShowHelp:   cfg.Display.ShowHelp,
	}); err != nil {
		return fmt.Errorf("error running editor: %w", err)
	}
	return nil
}

// editSource picks the level to start from: a named draft, a file, or a
// blank level.
func editSource(args []string, name string, store *storage.Store) (*levels.Pack, error) {
	if flagEditDraft != "" && store != nil {
		d, err := store.LoadDraft(flagEditDraft)
		switch {
		case err == nil:
			return levels.FromText(name, d.Text), nil
		case !errors.Is(err, storage.ErrNoDraft):
			return nil, err
		}
	}
	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err == nil {
			return levels.LoadFile(args[0])
		}
	}
	return levels.FromText(name, blankLevel), nil
}

// exporter saves level text to a file, the drafts table and optionally the
// clipboard. Only the file write can fail the save.
func exporter(path, name string, store *storage.Store, logger *log.Logger) func(string) error {
	return func(text string) error {
		if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", path, err)
		}
		logger.Info("level saved", "path", path, "bytes", len(text))

		if store != nil {
			if err := store.SaveDraft(name, text); err != nil {
				logger.Warn("cannot save draft", "name", name, "err", err)
			}
		}
		if flagEditClip {
			if err := clipboard.WriteAll(text); err != nil {
				logger.Warn("cannot copy to clipboard", "err", err)
			}
		}
		return nil
	}
}

// expandDir expands ~ and creates the directory.
func expandDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	dir, err := config.ExpandHome(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return dir, nil
}
