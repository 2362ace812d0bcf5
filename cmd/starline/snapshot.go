package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starline/internal/game"
	"github.com/vovakirdan/starline/internal/platform/snapshot"
)

var (
	flagSnapOut    string
	flagSnapDir    string
	flagSnapWidth  int
	flagSnapHeight int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <pack> [level]",
	Short: "Render a level to PNG",
	Long: `Draw a fully revealed level to a PNG image. Without a level every
level of the pack is written to --dir as <level-id>.png.

Examples:
  starline snapshot builtin valley -o valley.png
  starline snapshot builtin --dir shots --width 1920 --height 1080`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&flagSnapOut, "out", "o", "", "Output file for a single level (default <level-id>.png)")
	snapshotCmd.Flags().StringVar(&flagSnapDir, "dir", ".", "Output directory when rendering a whole pack")
	snapshotCmd.Flags().IntVar(&flagSnapWidth, "width", 0, "Image width (0 = config value)")
	snapshotCmd.Flags().IntVar(&flagSnapHeight, "height", 0, "Image height (0 = config value)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pack, err := openPack(args[0])
	if err != nil {
		return err
	}

	width, height := cfg.Snapshot.Width, cfg.Snapshot.Height
	if flagSnapWidth > 0 {
		width = flagSnapWidth
	}
	if flagSnapHeight > 0 {
		height = flagSnapHeight
	}

	st, err := game.New(pack, game.Options{Width: width, Height: height, PreventTransitions: true})
	if err != nil {
		return err
	}

	indexes := make([]int, 0, pack.Len())
	if len(args) > 1 {
		i, err := levelIndex(pack, args[1])
		if err != nil {
			return err
		}
		indexes = append(indexes, i)
	} else {
		for i := range pack.Levels {
			indexes = append(indexes, i)
		}
	}

	if len(indexes) > 1 || flagSnapOut == "" {
		if err := os.MkdirAll(flagSnapDir, 0o755); err != nil {
			return fmt.Errorf("cannot create %s: %w", flagSnapDir, err)
		}
	}

	for _, i := range indexes {
		lvl := pack.Levels[i]
		if err := st.LoadLevel(i); err != nil {
			return err
		}
		st.Reveal()

		opts := snapshot.Options{Stars: cfg.Snapshot.Stars, Ball: true}
		if cfg.Snapshot.Title {
			opts.Caption = lvl.Name
		}

		out := filepath.Join(flagSnapDir, lvl.ID+".png")
		if len(indexes) == 1 && flagSnapOut != "" {
			out = flagSnapOut
		}
		if err := snapshot.Save(st, out, opts); err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", lvl.ID, out)
	}
	return nil
}
