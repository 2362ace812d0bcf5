package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starline/internal/game"
	"github.com/vovakirdan/starline/internal/levels"
	"github.com/vovakirdan/starline/internal/playback"
)

// selfSolveFrames is how long check lets the ball roll on the bare level.
const selfSolveFrames = 3000

var flagCheckSimulate bool

var checkCmd = &cobra.Command{
	Use:   "check <pack|file>...",
	Short: "Validate packs and level files",
	Long: `Parse every level of the given packs and print a summary: recorded
entries, reveal length, segments and stars. With --simulate the ball is
also released on each bare level to see whether it collects every star
without help.

Examples:
  starline check builtin
  starline check ./mypack ramp.txt --simulate`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagCheckSimulate, "simulate", false, "Release the ball on each bare level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var failed []error
	for _, ref := range args {
		pack, err := openPack(ref)
		if err != nil {
			fmt.Printf("%s: %v\n", ref, err)
			failed = append(failed, err)
			continue
		}
		if err := checkPack(pack); err != nil {
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d packs failed", len(failed), len(args))
	}
	return nil
}

// checkPack prints one line per level and returns the joined parse errors.
func checkPack(pack *levels.Pack) error {
	fmt.Printf("%s (%s): %d levels\n", pack.ID, pack.Title, pack.Len())

	var errs []error
	for i := range pack.Levels {
		lvl := &pack.Levels[i]
		_, entries, err := lvl.Parse()
		if err != nil {
			fmt.Printf("  %-16s FAIL %v\n", lvl.ID, err)
			errs = append(errs, err)
			continue
		}

		pb := playback.New()
		pb.Load(entries)
		stars := 0
		for _, e := range entries {
			if e.Kind == playback.PlaceCollectible {
				stars++
			}
		}

		line := fmt.Sprintf("  %-16s ok   %4d entries  %5d frames  %2d stars", lvl.ID, len(entries), pb.Duration(), stars)
		if flagCheckSimulate {
			solved, frames, err := selfSolves(pack, i)
			switch {
			case err != nil:
				line += "  simulate: " + err.Error()
			case solved:
				line += fmt.Sprintf("  solves itself in %d frames", frames)
			default:
				line += "  needs drawing"
			}
		}
		fmt.Println(line)
	}
	return errors.Join(errs...)
}

// selfSolves releases the ball on the fully drawn level with no player
// lines and reports whether every star is collected.
func selfSolves(pack *levels.Pack, index int) (bool, int, error) {
	if index < 0 || index >= pack.Len() {
		return false, 0, fmt.Errorf("level %d out of range [0, %d)", index, pack.Len())
	}
	// A pack of just this level, so a broken sibling cannot fail the load.
	single := &levels.Pack{ID: pack.ID, Title: pack.Title, Levels: pack.Levels[index : index+1]}
	st, err := game.New(single, game.Options{Width: 1280, Height: 720, PreventTransitions: true})
	if err != nil {
		return false, 0, err
	}
	st.Reveal()
	st.Handle(game.DrawTick{}) // Places the ball
	st.Handle(game.KeyDown{Key: game.KeyLaunch})

	for frame := 1; frame <= selfSolveFrames; frame++ {
		st.Handle(game.DrawTick{})
		if st.Level.Complete {
			return true, frame, nil
		}
	}
	return false, selfSolveFrames, nil
}
