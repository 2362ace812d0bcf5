package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/starline/internal/config"
	"github.com/vovakirdan/starline/internal/levels"
	"github.com/vovakirdan/starline/internal/registry"
	"github.com/vovakirdan/starline/internal/storage"
)

// loadConfig reads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log, or to fallback when the flag
// is not set. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "starline",
	})
	if flagLog != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openPack resolves a registered pack ID or a path to a pack directory or
// level file.
func openPack(ref string) (*levels.Pack, error) {
	if registry.Exists(ref) {
		return registry.Create(ref)
	}
	pack, err := levels.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("unknown pack %q (run 'starline packs' to list them): %w", ref, err)
	}
	return pack, nil
}

// levelIndex finds a level by ID or 1-based position.
func levelIndex(pack *levels.Pack, ref string) (int, error) {
	if ref == "" {
		return 0, nil
	}
	if i := pack.Index(ref); i >= 0 {
		return i, nil
	}
	var n int
	if _, err := fmt.Sscanf(ref, "%d", &n); err == nil && n >= 1 && n <= pack.Len() {
		return n - 1, nil
	}
	return 0, fmt.Errorf("pack %s has no level %q", pack.ID, ref)
}

// openStore opens the records database. Failure is reported and play
// continues without records.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		logger.Warn("records disabled", "err", err)
		return nil
	}
	return store
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// seed returns --seed or a time-based seed.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
