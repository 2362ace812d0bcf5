package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search path.
const FileName = "starline.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.starline/config.yaml -> ./configs/starline.yaml -> embedded default.
// Files are applied on top of the defaults, so they may set only some keys.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or invalid.
func Load(customPath string) (Config, error) {
	cfg := embedded()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() != nil {
			continue
		}
		return candidate, nil
	}

	return cfg, nil
}

// embedded parses the embedded defaults, falling back to Default.
func embedded() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func searchPaths() []string {
	var paths []string
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starline", "config.yaml")
}

// Validate checks values the program cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		errs = append(errs, fmt.Errorf("display.fps %d out of range [1, 240]", c.Display.FPS))
	}
	if c.Display.CellAspect <= 0 {
		errs = append(errs, errors.New("display.cell_aspect must be positive"))
	}
	if c.Playback.FrameBudget < 1 {
		errs = append(errs, errors.New("playback.frame_budget must be at least 1"))
	}
	if c.Snapshot.Width < 16 || c.Snapshot.Height < 16 {
		errs = append(errs, fmt.Errorf("snapshot size %dx%d too small", c.Snapshot.Width, c.Snapshot.Height))
	}
	if c.Gameplay.Pack == "" {
		errs = append(errs, errors.New("gameplay.pack must be set"))
	}
	return errors.Join(errs...)
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
