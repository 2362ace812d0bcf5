package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starline/internal/game"
	"github.com/vovakirdan/starline/internal/storage"
)

// StoreRecorder saves level completions to the database.
type StoreRecorder struct {
	store  *storage.Store
	player string
	logger *log.Logger
}

// NewStoreRecorder creates a recorder for player. A nil store records
// nothing.
func NewStoreRecorder(store *storage.Store, player string, logger *log.Logger) *StoreRecorder {
	return &StoreRecorder{store: store, player: player, logger: logger}
}

// LevelCompleted implements game.Recorder. Failures are logged; the game
// continues regardless.
func (r *StoreRecorder) LevelCompleted(c game.Completion) {
	if r.store == nil {
		return
	}
	id, err := r.store.SaveCompletion(storage.Completion{
		PackID:   c.Pack,
		LevelID:  c.Level,
		Player:   r.player,
		Frames:   int64(c.Frames),
		Attempts: c.Attempts,
		Stars:    c.Stars,
	})
	if err != nil {
		if r.logger != nil {
			r.logger.Error("cannot save completion", "level", c.Level, "err", err)
		}
		return
	}
	if r.logger != nil {
		r.logger.Debug("completion saved", "id", id, "level", c.Level, "frames", c.Frames)
	}
}
