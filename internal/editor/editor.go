// Package editor turns pointer and key input into recorded level edits.
//
// While active, strokes go straight into the level's line buffer and are
// recorded into the playback log at the same time, so the log replays to the
// same drawing. Inputs are already in world coordinates.
package editor

import (
	"errors"

	"github.com/vovakirdan/starline/internal/level"
	"github.com/vovakirdan/starline/internal/lines"
	"github.com/vovakirdan/starline/internal/playback"
	"github.com/vovakirdan/starline/internal/zmath"
)

// Editor key bindings.
const (
	KeyRewind      = "r"
	KeyClearAll    = "a"
	KeyCollectible = "c"
	KeySave        = "s"
)

const (
	// StartGrabRadius is how close a press must be to the start marker to
	// drag it.
	StartGrabRadius = 0.05

	// repeatRewind is how many entries a held rewind key pops per repeat.
	repeatRewind = 4
)

// ErrNoExporter is returned by the save key when no exporter is set.
var ErrNoExporter = errors.New("editor: no exporter configured")

// ExportFunc receives the serialized level text.
type ExportFunc func(text string) error

// Editor holds the authoring input state. It edits the level lines, level
// and playback it was created with.
type Editor struct {
	Active bool
	Export ExportFunc

	pb    *playback.Playback
	lvl   *level.Level
	lines *lines.Lines

	leftDown      bool
	pointer       zmath.Vector3
	draggingStart bool
}

// New creates an inactive editor over the given targets.
func New(pb *playback.Playback, lvl *level.Level, levelLines *lines.Lines) *Editor {
	return &Editor{pb: pb, lvl: lvl, lines: levelLines}
}

// SetActive toggles the editor. Recording follows the active flag.
func (e *Editor) SetActive(active bool) {
	e.Active = active
	e.pb.Recording = active
	if !active {
		e.leftDown = false
		e.draggingStart = false
	}
}

// DraggingStart reports whether the start marker is being dragged.
func (e *Editor) DraggingStart() bool {
	return e.draggingStart
}

// Pointer returns the last known pointer position.
func (e *Editor) Pointer() zmath.Vector3 {
	return e.pointer
}

// PointerMoved records a stroke sample while the left button is held.
func (e *Editor) PointerMoved(p zmath.Vector3) {
	if !e.Active {
		return
	}
	if e.leftDown && !e.draggingStart {
		e.pb.RecordMove(p.XY())
		e.lines.Stroke(p)
	}
	e.pointer = p
}

// LeftDown presses the drawing button at p.
func (e *Editor) LeftDown(p zmath.Vector3) {
	if !e.Active {
		return
	}
	e.leftDown = true
	e.pointer = p
}

// LeftUp ends the current stroke.
func (e *Editor) LeftUp() {
	if !e.Active {
		return
	}
	e.leftDown = false
	e.lines.EndStroke()
	e.pb.RecordPenUp()
}

// Key handles an editor key. Unknown keys are ignored.
func (e *Editor) Key(key string, repeat bool) error {
	if !e.Active {
		return nil
	}
	switch key {
	case KeyRewind:
		n := 1
		if repeat {
			n = repeatRewind
		}
		e.Rewind(n)
	case KeyClearAll:
		if repeat {
			return nil
		}
		e.ClearAll()
	case KeyCollectible:
		if repeat {
			return nil
		}
		e.PlaceCollectible(e.pointer)
	case KeySave:
		if repeat {
			return nil
		}
		return e.Save()
	}
	return nil
}

// Rewind drops the last n recorded entries and rebuilds the level from the
// remaining log.
func (e *Editor) Rewind(n int) {
	e.lines.Clear()
	e.lvl.Clear()
	for i := 0; i < n; i++ {
		e.pb.EraseRewind()
	}
	e.pb.PlayToCompletion(e.lines, e.lvl)
}

// ClearAll wipes the log, the level and the level lines.
func (e *Editor) ClearAll() {
	e.pb.Clear()
	e.lvl.Clear()
	e.lines.Clear()
}

// PlaceCollectible records a star at p and shows it immediately.
func (e *Editor) PlaceCollectible(p zmath.Vector3) {
	if !e.pb.Recording {
		return
	}
	p.Z = 0
	e.pb.RecordCollectible(p.XY())
	e.lvl.AddCollectible(level.NewCollectible(p, 1))
}

// Text serializes the current start position and log.
func (e *Editor) Text() string {
	return playback.Encode(e.lvl.StartPosition, e.pb.Log())
}

// Save hands the serialized level to the exporter.
func (e *Editor) Save() error {
	if e.Export == nil {
		return ErrNoExporter
	}
	return e.Export(e.Text())
}

// Tick runs once per frame and handles start-marker dragging.
func (e *Editor) Tick() {
	if !e.Active {
		return
	}
	if e.leftDown && zmath.Distance(e.pointer, e.lvl.StartPosition) < StartGrabRadius {
		e.draggingStart = true
	}
	if e.draggingStart {
		e.lvl.StartPosition = zmath.V3(e.pointer.X, e.pointer.Y, 0)
	}
	if !e.leftDown {
		e.draggingStart = false
	}
}
