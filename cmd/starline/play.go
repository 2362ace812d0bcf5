package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starline/internal/game"
	"github.com/vovakirdan/starline/internal/platform/tui"
)

var (
	flagLevel   string
	flagNoTrans bool
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Play a registered pack or a pack directory / level file on disk.

Controls:
  Left drag   - Draw track
  Right drag  - Erase track
  Space       - Release the ball (or click the start marker)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  starline play
  starline play builtin --level valley
  starline play ./mypack --level 3
  starline play ramp.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start at this level ID or 1-based number")
	playCmd.Flags().BoolVar(&flagNoTrans, "stay", false, "Stay on a level after completing it")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ref := cfg.Gameplay.Pack
	if len(args) > 0 {
		ref = args[0]
	}
	pack, err := openPack(ref)
	if err != nil {
		return err
	}

	start := cfg.Gameplay.StartLevel
	if flagLevel != "" {
		start = flagLevel
	}
	index, err := levelIndex(pack, start)
	if err != nil {
		return err
	}

	// Logs go to the file or nowhere; stderr is the game screen.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(cfg.Paths.Database, logger)
	if store != nil {
		defer store.Close()
	}

	player := "local"
	if u, err := user.Current(); err == nil {
		player = u.Username
	}

	width, height := terminalSize()
	audio := tui.NewBellAudio(os.Stderr, cfg.Sound.Bell)
	st, err := game.New(pack, game.Options{
		Width:              width,
		Height:             height,
		FrameBudget:        uint32(cfg.Playback.FrameBudget),
		Seed:               seed(),
		PreventTransitions: cfg.Gameplay.PreventTransitions || flagNoTrans,
		Audio:              audio,
		Recorder:           tui.NewStoreRecorder(store, player, logger),
		Logger:             logger,
	})
	if err != nil {
		return err
	}
	if index > 0 {
		if err := st.LoadLevel(index); err != nil {
			return err
		}
	}

	if err := tui.Run(st, tui.Options{
		Width:      width,
		Height:     height,
		FPS:        cfg.Display.FPS,
		CellAspect: cfg.Display.CellAspect,
		ShowHelp:   cfg.Display.ShowHelp,
		Audio:      audio,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
