// Package playback records authored mouse actions with frame stamps and
// replays them deterministically into a line buffer and a level.
//
// Replay is driven by Step with a frame budget, so the same log and the same
// sequence of budgets always produce the same geometry.
package playback

import (
	"math"

	"github.com/vovakirdan/starline/internal/level"
	"github.com/vovakirdan/starline/internal/lines"
	"github.com/vovakirdan/starline/internal/zmath"
)

const (
	// DefaultFrameBudget is how many recorded frames are replayed per real
	// frame during the level reveal.
	DefaultFrameBudget = 8

	// GapLimit is the longest recorded pause (in frames) replayed as-is.
	// Longer pauses are skipped.
	GapLimit = 240

	// FastForwardBudget is the budget used by PlayToCompletion.
	FastForwardBudget = 100
)

// Kind is the type of a recorded action.
type Kind uint8

const (
	PenMove          Kind = iota // Pen passes through Position
	PenUp                        // Current stroke ends
	PlaceCollectible             // A collectible appears at Position
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case PenMove:
		return "move"
	case PenUp:
		return "up"
	case PlaceCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// MouseState is one recorded action.
type MouseState struct {
	Position zmath.Vector2
	Frame    uint32
	Kind     Kind
}

// Playback is the recorded action log plus its replay cursor.
type Playback struct {
	log []MouseState

	// CurrentFrame is the replay clock. Entries with Frame < CurrentFrame
	// have been applied.
	CurrentFrame uint32
	// CurrentIndex is the next unconsumed log entry.
	CurrentIndex int
	// RecordingFrame ticks once per real frame regardless of mode and stamps
	// recorded actions. It is deliberately separate from CurrentFrame.
	RecordingFrame uint32

	Playing   bool
	Recording bool
	Complete  bool
}

// New creates an empty, completed playback.
func New() *Playback {
	return &Playback{Complete: true}
}

// Load replaces the log with entries and rewinds the cursor.
func (p *Playback) Load(entries []MouseState) {
	p.Clear()
	p.log = append(p.log, entries...)
}

// Log returns the recorded entries. Callers must not modify the slice.
func (p *Playback) Log() []MouseState {
	return p.log
}

// Len returns the number of recorded entries.
func (p *Playback) Len() int {
	return len(p.log)
}

// AdvanceRecordingFrame ticks the recording clock. Call once per frame.
func (p *Playback) AdvanceRecordingFrame() {
	p.RecordingFrame++
}

// RecordMove appends a pen move at position.
func (p *Playback) RecordMove(position zmath.Vector2) {
	p.record(MouseState{Position: position, Kind: PenMove})
}

// RecordPenUp appends a pen-up.
func (p *Playback) RecordPenUp() {
	p.record(MouseState{Kind: PenUp})
}

// RecordCollectible appends a collectible placement at position.
func (p *Playback) RecordCollectible(position zmath.Vector2) {
	p.record(MouseState{Position: position, Kind: PlaceCollectible})
}

func (p *Playback) record(s MouseState) {
	if !p.Recording {
		return
	}
	s.Frame = p.RecordingFrame
	p.log = append(p.log, s)
	// The recorded action is already applied live, so the cursor sits past it.
	p.CurrentIndex = len(p.log)
	p.CurrentFrame = p.RecordingFrame
}

// Clear empties the log and rewinds the cursor.
func (p *Playback) Clear() {
	p.ResetPlayback()
	p.log = p.log[:0]
	p.Complete = false
}

// ResetPlayback rewinds the cursor without touching the log.
func (p *Playback) ResetPlayback() {
	p.CurrentFrame = 0
	p.CurrentIndex = 0
}

// EraseRewind pops the last entry and rewinds the replay clock to its frame.
// It is a no-op on an empty log.
func (p *Playback) EraseRewind() {
	if len(p.log) == 0 {
		return
	}
	last := p.log[len(p.log)-1]
	p.log = p.log[:len(p.log)-1]
	if p.CurrentIndex > len(p.log) {
		p.CurrentIndex = len(p.log)
	}
	p.CurrentFrame = last.Frame
}

// Step replays up to budget recorded frames into dst and lvl.
func (p *Playback) Step(budget uint32, dst *lines.Lines, lvl *level.Level) {
	if p.CurrentIndex >= len(p.log) {
		p.finish()
		return
	}

	if p.CurrentIndex == 0 {
		// Skip the delay before the author first touched the mouse.
		dst.EndStroke()
		p.CurrentFrame = p.log[0].Frame
	}

	next := p.log[p.CurrentIndex].Frame
	if next > p.CurrentFrame && next-p.CurrentFrame > GapLimit {
		p.CurrentFrame = next
	}

	p.advance(budget)
	for p.CurrentIndex < len(p.log) && p.reached(p.log[p.CurrentIndex].Frame) {
		apply(p.log[p.CurrentIndex], dst, lvl)
		p.CurrentIndex++
	}

	if p.CurrentIndex >= len(p.log) {
		p.finish()
	}
}

// advance moves the replay clock forward, saturating at the last frame.
func (p *Playback) advance(budget uint32) {
	if budget > math.MaxUint32-p.CurrentFrame {
		p.CurrentFrame = math.MaxUint32
		return
	}
	p.CurrentFrame += budget
}

// reached reports whether an entry stamped at frame is due. A saturated
// clock has passed every frame.
func (p *Playback) reached(frame uint32) bool {
	return frame < p.CurrentFrame || p.CurrentFrame == math.MaxUint32
}

func (p *Playback) finish() {
	p.Complete = true
	p.Playing = false
}

func apply(s MouseState, dst *lines.Lines, lvl *level.Level) {
	switch s.Kind {
	case PlaceCollectible:
		lvl.AddCollectible(level.NewCollectible(s.Position.Vec3(), 0))
	case PenUp:
		dst.EndStroke()
	default:
		dst.Stroke(s.Position.Vec3())
	}
}

// PlayToCompletion replays the whole log from the start without animation.
func (p *Playback) PlayToCompletion(dst *lines.Lines, lvl *level.Level) {
	p.ResetPlayback()
	for p.CurrentIndex < len(p.log) {
		p.Step(FastForwardBudget, dst, lvl)
	}
	p.finish()
}

// Duration returns the frame span of the log, first entry to last.
func (p *Playback) Duration() uint32 {
	if len(p.log) == 0 {
		return 0
	}
	return p.log[len(p.log)-1].Frame - p.log[0].Frame
}
