package tui

import (
	"io"
	"sync/atomic"
)

// BellAudio is the terminal stand-in for the game's sound: star pickups
// ring the terminal bell, wind and rolling are silent. The HUD reads the
// bell count to flash the star counter.
type BellAudio struct {
	out     io.Writer
	enabled bool
	bells   atomic.Int64
}

// NewBellAudio writes BEL to out when enabled. out may be nil.
func NewBellAudio(out io.Writer, enabled bool) *BellAudio {
	return &BellAudio{out: out, enabled: enabled && out != nil}
}

// Bell rings once per pickup. Pitch is not representable.
func (a *BellAudio) Bell(rate, gain float64) {
	a.bells.Add(1)
	if a.enabled {
		//nolint:errcheck // Best-effort, a lost bell is harmless
		a.out.Write([]byte{'\a'})
	}
}

// Wind is silent.
func (a *BellAudio) Wind(rate, gain float64) {}

// Roll is silent.
func (a *BellAudio) Roll(gain, rate float64) {}

// Bells returns how many pickups have rung.
func (a *BellAudio) Bells() int64 {
	return a.bells.Load()
}
