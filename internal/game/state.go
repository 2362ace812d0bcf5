// Package game runs the frame loop: it routes host events to the line
// buffers, editor and ball, drives playback and physics in a fixed order,
// and sequences level transitions.
//
// Everything runs on the caller's goroutine. A frame is one DrawTick; input
// events between ticks only record intent or mutate lines directly.
package game

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starline/internal/editor"
	"github.com/vovakirdan/starline/internal/level"
	"github.com/vovakirdan/starline/internal/levels"
	"github.com/vovakirdan/starline/internal/lines"
	"github.com/vovakirdan/starline/internal/physics"
	"github.com/vovakirdan/starline/internal/playback"
	"github.com/vovakirdan/starline/internal/zmath"
)

const (
	// EraserRadius is the reach of the right-button eraser.
	EraserRadius = 0.06

	// FadeStep is the per-frame change of the level fade.
	FadeStep = 0.02

	bellBase   = 1.2
	bellJitter = 0.2
	bellGain   = 2.0

	// rollSpeed is the ball speed at which the roll loop plays at base rate.
	rollSpeed = 0.02
	rollGain  = 3.5
	rollBase  = 0.2

	windRate = 1.0
	windGain = 5.0
)

// Options configures a State.
type Options struct {
	Width, Height int

	// FrameBudget is the number of recorded frames replayed per frame.
	// Zero means playback.DefaultFrameBudget.
	FrameBudget uint32

	// Seed seeds the pitch jitter.
	Seed int64

	// Editor enables authoring. It also prevents level transitions so work
	// is not lost when the last star is collected.
	Editor bool

	// PreventTransitions keeps completed levels on screen.
	PreventTransitions bool

	Audio    Audio
	Recorder Recorder
	Logger   *log.Logger
}

// State is the whole game: geometry, level, playback, ball and editor.
type State struct {
	LevelLines *lines.Lines
	UserLines  *lines.Lines
	Level      *level.Level
	Playback   *playback.Playback
	Ball       *physics.Ball
	Editor     *editor.Editor
	Camera     *Camera

	// LevelAlpha is the whole-scene fade used for level transitions.
	LevelAlpha float32

	pack       *levels.Pack
	index      int
	bounds     physics.Bounds
	budget     uint32
	preventTr  bool
	audio      Audio
	recorder   Recorder
	logger     *log.Logger
	rng        *rand.Rand
	fadeOut    bool
	fadeIn     bool
	closed     bool
	leftDown   bool
	rightDown  bool
	pointer    zmath.Vector2
	frame      uint64
	levelFrame uint64
	attempts   int
}

// New creates a State and loads the first level of pack.
func New(pack *levels.Pack, opts Options) (*State, error) {
	if pack == nil || pack.Len() == 0 {
		return nil, levels.ErrEmptyPack
	}

	s := &State{
		LevelLines: lines.New(),
		UserLines:  lines.New(),
		Level:      level.New(zmath.Zero, level.DefaultLineColor, level.DefaultUserColor),
		Playback:   playback.New(),
		Camera:     NewCamera(opts.Width, opts.Height),
		LevelAlpha: 1,
		pack:       pack,
		bounds:     physics.DefaultBounds,
		budget:     opts.FrameBudget,
		preventTr:  opts.Editor || opts.PreventTransitions,
		audio:      opts.Audio,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
		rng:        rand.New(rand.NewSource(opts.Seed)),
	}
	s.Ball = physics.NewBall(zmath.Zero)
	s.Editor = editor.New(s.Playback, s.Level, s.LevelLines)
	s.Editor.SetActive(opts.Editor)

	if s.budget == 0 {
		s.budget = playback.DefaultFrameBudget
	}
	if s.audio == nil {
		s.audio = NopAudio{}
	}
	if s.recorder == nil {
		s.recorder = NopRecorder{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	if err := s.LoadLevel(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Pack returns the pack being played.
func (s *State) Pack() *levels.Pack {
	return s.pack
}

// LevelIndex returns the index of the current level in the pack.
func (s *State) LevelIndex() int {
	return s.index
}

// CurrentLevel returns the current pack entry.
func (s *State) CurrentLevel() levels.Level {
	return s.pack.Levels[s.index]
}

// Frame returns the number of DrawTicks handled.
func (s *State) Frame() uint64 {
	return s.frame
}

// Attempts returns how many times the ball was launched on this level.
func (s *State) Attempts() int {
	return s.attempts
}

// Closed reports whether a CloseRequested event was handled.
func (s *State) Closed() bool {
	return s.closed
}

// Fading reports whether a level transition is in progress.
func (s *State) Fading() bool {
	return s.fadeOut || s.fadeIn
}

// LoadLevel clears all state and starts the reveal of level index. On a
// parse error the state stays cleared and the error is returned.
func (s *State) LoadLevel(index int) error {
	if index < 0 || index >= s.pack.Len() {
		return fmt.Errorf("game: level %d out of range [0, %d)", index, s.pack.Len())
	}
	s.index = index
	entry := s.pack.Levels[index]

	s.LevelLines.Clear()
	s.UserLines.Clear()
	s.Level.Clear()
	s.Level.Setup = false
	s.Playback.Clear()
	s.levelFrame = 0
	s.attempts = 0
	s.bounds = entry.Bounds
	s.Level.LineColor = entry.LineColor
	s.Level.UserLineColor = entry.UserLineColor

	start, entries, err := entry.Parse()
	if err != nil {
		s.logger.Error("level failed to parse", "level", entry.ID, "err", err)
		return err
	}

	s.Level.StartPosition = start
	s.Playback.Load(entries)
	s.Playback.Playing = true
	s.Ball.Moving = false
	s.Ball.Reset(start)

	if entry.Wind {
		s.audio.Wind(windRate, windGain)
	}
	s.logger.Info("level loaded", "pack", s.pack.ID, "level", entry.ID, "index", index, "entries", len(entries))
	return nil
}

// Reveal finishes drawing the current level at once, with stars fully
// visible. Recording resumes after the last logged frame so edits append
// in order.
func (s *State) Reveal() {
	s.Playback.PlayToCompletion(s.LevelLines, s.Level)
	for i := range s.Level.Collectibles {
		s.Level.Collectibles[i].Alpha = 1
	}
	if n := s.Playback.Len(); n > 0 {
		last := s.Playback.Log()[n-1].Frame
		if last < math.MaxUint32 {
			last++
		}
		s.Playback.RecordingFrame = max(s.Playback.RecordingFrame, last)
	}
}

// Handle applies one event. Only editor saves return errors.
func (s *State) Handle(ev Event) error {
	var err error
	if s.Editor.Active {
		err = s.handleEditor(ev)
	}

	switch e := ev.(type) {
	case PointerMoved:
		s.pointer = zmath.V2(e.X, e.Y)
		if s.leftDown && !s.Editor.Active {
			s.UserLines.Stroke(s.pointerWorld())
		}
	case PointerDown:
		s.pointer = zmath.V2(e.X, e.Y)
		switch e.Button {
		case ButtonLeft:
			s.leftDown = true
		case ButtonRight:
			s.rightDown = true
		}
	case PointerUp:
		switch e.Button {
		case ButtonLeft:
			s.leftDown = false
			s.UserLines.EndStroke()
		case ButtonRight:
			s.rightDown = false
		}
	case KeyDown:
		if e.Key == KeyLaunch && !e.Repeat {
			s.launch()
		}
	case Resized:
		s.Camera.Resize(e.Width, e.Height)
	case CloseRequested:
		s.closed = true
	case DrawTick:
		s.tick()
	}
	return err
}

func (s *State) handleEditor(ev Event) error {
	switch e := ev.(type) {
	case PointerMoved:
		s.Editor.PointerMoved(s.Camera.ScreenToWorld(e.X, e.Y))
	case PointerDown:
		if e.Button == ButtonLeft {
			s.Editor.LeftDown(s.Camera.ScreenToWorld(e.X, e.Y))
		}
	case PointerUp:
		if e.Button == ButtonLeft {
			s.Editor.LeftUp()
		}
	case KeyDown:
		if err := s.Editor.Key(e.Key, e.Repeat); err != nil {
			s.logger.Error("editor key failed", "key", e.Key, "err", err)
			return err
		}
	case DrawTick:
		s.Editor.Tick()
	}
	return nil
}

func (s *State) pointerWorld() zmath.Vector3 {
	return s.Camera.ScreenToWorld(s.pointer.X, s.pointer.Y)
}

// launch releases the ball once the reveal has placed it.
func (s *State) launch() {
	if !s.Level.Setup {
		return
	}
	s.reset()
	s.Ball.Moving = true
	s.attempts++
}

// reset puts the ball back and un-collects the level.
func (s *State) reset() {
	s.Ball.Reset(s.Level.StartPosition)
	s.Level.Reset()
}

func (s *State) tick() {
	if s.Level.Setup && s.leftDown && !s.Editor.Active {
		if zmath.Distance(s.pointerWorld(), s.Level.StartPosition) < s.Ball.Radius {
			s.launch()
		}
	}

	if s.Ball.OutOfBounds(s.bounds) {
		s.logger.Debug("ball out of bounds", "x", s.Ball.Position.X, "y", s.Ball.Position.Y)
		s.reset()
	}

	if s.Playback.Complete && !s.Level.Setup {
		s.Ball.Position = s.Level.StartPosition
		s.Ball.Velocity = zmath.Zero
		s.Level.Setup = true
	}

	if s.rightDown {
		s.UserLines.Erase(s.pointerWorld(), EraserRadius)
	}

	s.Playback.AdvanceRecordingFrame()
	if s.Playback.Playing {
		s.Playback.Step(s.budget, s.LevelLines, s.Level)
	}

	if s.Level.Setup && s.Ball.Moving {
		s.Ball.Step(s.LevelLines.Points(), s.UserLines.Points())
		if hit, height := s.Ball.CheckCollectibles(s.Level); hit {
			rate := bellBase + float64(height) + s.rng.Float64()*bellJitter
			s.audio.Bell(rate, bellGain)
		}
	}

	roll := float64(s.Ball.Speed()) / rollSpeed
	s.audio.Roll(roll*rollGain*float64(s.LevelAlpha), rollBase+roll)

	s.Ball.FadeIn()
	s.Level.FadeIn()
	s.fade()

	s.frame++
	s.levelFrame++
}

func (s *State) fade() {
	if s.fadeOut && s.LevelAlpha < 0 {
		s.Ball.Reset(s.Level.StartPosition)
		s.fadeIn = true
		s.fadeOut = false
		s.LevelAlpha = 0

		// The last level reloads itself.
		next := min(s.index+1, s.pack.Len()-1)
		if err := s.LoadLevel(next); err != nil {
			s.logger.Error("level transition failed", "index", next, "err", err)
		}
	}
	if s.fadeOut {
		s.LevelAlpha -= FadeStep
	}
	if s.fadeIn {
		s.LevelAlpha += FadeStep
		if s.LevelAlpha > 1 {
			s.fadeIn = false
			s.LevelAlpha = 1
		}
	}

	if s.Level.Complete && !s.preventTr {
		s.Level.Complete = false
		s.fadeOut = true
		s.fadeIn = false

		entry := s.CurrentLevel()
		s.logger.Info("level complete", "level", entry.ID, "frames", s.levelFrame, "attempts", s.attempts)
		s.recorder.LevelCompleted(Completion{
			Pack:     s.pack.ID,
			Level:    entry.ID,
			Index:    s.index,
			Frames:   s.levelFrame,
			Attempts: s.attempts,
			Stars:    len(s.Level.Collectibles),
		})
	}
}
