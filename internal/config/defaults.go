package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/starline.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/starline.yaml and is used when that cannot be parsed.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:        60,
			CellAspect: 2.0,
			ShowHelp:   true,
		},
		Gameplay: GameplayConfig{
			Pack: "builtin",
		},
		Playback: PlaybackConfig{
			FrameBudget: 8,
		},
		Sound: SoundConfig{
			Bell: false,
		},
		Paths: PathsConfig{
			Database:  "~/.starline/starline.db",
			ExportDir: ".",
		},
		Server: ServerConfig{
			Addr:        ":2222",
			HostKey:     ".ssh/starline_ed25519",
			IdleTimeout: 10 * time.Minute,
			MaxTimeout:  2 * time.Hour,
		},
		Snapshot: SnapshotConfig{
			Width:  1280,
			Height: 720,
			Stars:  true,
			Title:  true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
