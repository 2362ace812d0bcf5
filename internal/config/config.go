// Package config provides YAML-based configuration for starline: display
// and timing, gameplay, sound, storage paths and the SSH server.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Playback PlaybackConfig `yaml:"playback"`
	Sound    SoundConfig    `yaml:"sound"`
	Paths    PathsConfig    `yaml:"paths"`
	Server   ServerConfig   `yaml:"server"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// DisplayConfig controls the terminal frontend.
type DisplayConfig struct {
	FPS int `yaml:"fps"`
	// CellAspect is the height/width ratio of a terminal cell. Each cell
	// holds two vertical pixels, so the drawable aspect is corrected by it.
	CellAspect float64 `yaml:"cell_aspect"`
	ShowHelp   bool    `yaml:"show_help"`
}

// GameplayConfig selects what is played.
type GameplayConfig struct {
	Pack               string `yaml:"pack"`        // Registered pack ID or a path
	StartLevel         string `yaml:"start_level"` // Level ID; empty starts at the first
	PreventTransitions bool   `yaml:"prevent_transitions"`
}

// PlaybackConfig tunes the level reveal.
type PlaybackConfig struct {
	FrameBudget int `yaml:"frame_budget"` // Recorded frames per real frame
}

// SoundConfig enables audio cues. The terminal can only ring its bell.
type SoundConfig struct {
	Bell bool `yaml:"bell"`
}

// PathsConfig holds filesystem locations. A leading ~ expands to the home
// directory.
type PathsConfig struct {
	Database  string `yaml:"database"`
	ExportDir string `yaml:"export_dir"`
}

// ServerConfig configures `starline serve`.
type ServerConfig struct {
	Addr        string        `yaml:"addr"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxTimeout  time.Duration `yaml:"max_timeout"`
}

// SnapshotConfig sets the PNG export size.
type SnapshotConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Stars  bool `yaml:"stars"`   // Draw collectibles
	Title  bool `yaml:"caption"` // Draw the level name
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
