// starline is a terminal game about drawing tracks for a rolling ball.
//
// Usage:
//
//	starline play [pack]          - Play a pack (default from config)
//	starline edit [level-file]    - Record a new level
//	starline packs                - List registered packs
//	starline check <pack|file>... - Validate packs and level files
//	starline export <pack> <lvl>  - Print a level in canonical text form
//	starline snapshot <pack> <lvl> - Render a level to PNG
//	starline serve                - Start SSH server for remote play
//	starline records [pack]       - Show level records
//	starline drafts               - List or remove saved editor drafts
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.starline/config.yaml, ./configs/starline.yaml)
//	--fps <rate>    - Override display.fps
//	--seed <value>  - RNG seed for bell pitch jitter (0 = time based)
//	--db <path>     - Override paths.database
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import packs to register them
	_ "github.com/vovakirdan/starline/internal/levels/builtin"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starline",
	Short: "Starline - draw tracks, roll the ball, catch the stars",
	Long: `Starline is a terminal game. Each level draws itself, then a ball is
released from the start marker. Draw extra track with the left mouse
button and erase it with the right one so the ball rolls through every star.

Available commands:
  play      - Play a level pack
  edit      - Record a new level
  packs     - Show registered level packs
  check     - Validate packs and level files
  export    - Print a level in canonical text form
  snapshot  - Render a level to PNG
  serve     - Start SSH server for remote play
  records   - View level records
  drafts    - Manage saved editor drafts

Examples:
  starline play
  starline play ./mypack
  starline edit --out ramp.txt
  starline serve --addr :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to records database (empty = config value)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(draftsCmd)
}
