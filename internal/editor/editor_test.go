package editor

import (
	"errors"
	"testing"

	"github.com/vovakirdan/starline/internal/level"
	"github.com/vovakirdan/starline/internal/lines"
	"github.com/vovakirdan/starline/internal/playback"
	"github.com/vovakirdan/starline/internal/zmath"
)

type fixture struct {
	pb  *playback.Playback
	lvl *level.Level
	ln  *lines.Lines
	ed  *Editor
}

func newFixture() *fixture {
	f := &fixture{
		pb:  playback.New(),
		lvl: level.New(zmath.V3(1, 1, 0), level.DefaultLineColor, level.DefaultUserColor),
		ln:  lines.New(),
	}
	f.ed = New(f.pb, f.lvl, f.ln)
	f.ed.SetActive(true)
	return f
}

// draw records a horizontal stroke, advancing the recording clock per sample.
func (f *fixture) draw(y float32, xs ...float32) {
	f.ed.LeftDown(zmath.V3(xs[0], y, 0))
	for _, x := range xs {
		f.pb.AdvanceRecordingFrame()
		f.ed.PointerMoved(zmath.V3(x, y, 0))
	}
	f.pb.AdvanceRecordingFrame()
	f.ed.LeftUp()
}

func TestInactiveEditorIgnoresInput(t *testing.T) {
	f := newFixture()
	f.ed.SetActive(false)
	if f.pb.Recording {
		t.Error("Recording should follow the active flag")
	}

	f.ed.LeftDown(zmath.V3(0, 0, 0))
	f.ed.PointerMoved(zmath.V3(0.5, 0, 0))
	f.ed.LeftUp()
	if err := f.ed.Key(KeyCollectible, false); err != nil {
		t.Fatalf("Key() failed: %v", err)
	}

	if f.pb.Len() != 0 || f.ln.SegmentCount() != 0 || len(f.lvl.Collectibles) != 0 {
		t.Error("inactive editor modified state")
	}
}

func TestDrawingRecordsAndRenders(t *testing.T) {
	f := newFixture()
	f.draw(0.5, 0, 0.2, 0.4)

	if f.ln.SegmentCount() != 2 {
		t.Errorf("SegmentCount() = %d, expected 2", f.ln.SegmentCount())
	}
	log := f.pb.Log()
	if len(log) != 4 {
		t.Fatalf("Len() = %d, expected 4", len(log))
	}
	if log[3].Kind != playback.PenUp {
		t.Errorf("last entry kind = %v, expected %v", log[3].Kind, playback.PenUp)
	}
	if f.ln.Drawing() {
		t.Error("stroke should be ended")
	}
}

func TestRecordedLogReplaysToSameDrawing(t *testing.T) {
	f := newFixture()
	f.draw(0.5, 0, 0.2, 0.4)
	f.draw(0.8, 1, 1.3)

	replayed := lines.New()
	lvl := level.New(zmath.Zero, level.DefaultLineColor, level.DefaultUserColor)
	pb := playback.New()
	pb.Load(f.pb.Log())
	pb.PlayToCompletion(replayed, lvl)

	got, want := replayed.Points(), f.ln.Points()
	if len(got) != len(want) {
		t.Fatalf("replayed %d points, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestPlaceCollectible(t *testing.T) {
	f := newFixture()
	f.ed.PointerMoved(zmath.V3(0.7, 0.9, 0))
	if err := f.ed.Key(KeyCollectible, false); err != nil {
		t.Fatalf("Key() failed: %v", err)
	}

	if len(f.lvl.Collectibles) != 1 {
		t.Fatalf("collectibles = %d, expected 1", len(f.lvl.Collectibles))
	}
	c := f.lvl.Collectibles[0]
	if c.Alpha != 1 {
		t.Errorf("Alpha = %v, expected 1", c.Alpha)
	}
	if c.Position != zmath.V3(0.7, 0.9, 0) {
		t.Errorf("Position = %v, expected (0.7, 0.9, 0)", c.Position)
	}
	if f.pb.Len() != 1 || f.pb.Log()[0].Kind != playback.PlaceCollectible {
		t.Errorf("log = %v, expected one collectible entry", f.pb.Log())
	}
}

func TestRewind(t *testing.T) {
	f := newFixture()
	f.draw(0.5, 0, 0.2, 0.4, 0.6)
	before := f.pb.Len()

	if err := f.ed.Key(KeyRewind, false); err != nil {
		t.Fatalf("Key() failed: %v", err)
	}
	if f.pb.Len() != before-1 {
		t.Errorf("Len() = %d, expected %d", f.pb.Len(), before-1)
	}
	if f.ln.SegmentCount() != 3 {
		t.Errorf("SegmentCount() = %d, expected 3", f.ln.SegmentCount())
	}

	if err := f.ed.Key(KeyRewind, true); err != nil {
		t.Fatalf("Key() failed: %v", err)
	}
	if f.pb.Len() != 0 {
		t.Errorf("Len() = %d, expected 0 after repeat rewind", f.pb.Len())
	}
	if f.ln.SegmentCount() != 0 {
		t.Errorf("SegmentCount() = %d, expected 0", f.ln.SegmentCount())
	}

	// Rewinding an empty log is harmless.
	f.ed.Rewind(3)
	if f.pb.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, expected 0", f.pb.CurrentIndex)
	}
}

func TestClearAll(t *testing.T) {
	f := newFixture()
	f.draw(0.5, 0, 0.2)
	f.ed.PlaceCollectible(zmath.V3(1, 1, 0))

	if err := f.ed.Key(KeyClearAll, false); err != nil {
		t.Fatalf("Key() failed: %v", err)
	}
	if f.pb.Len() != 0 || f.ln.SegmentCount() != 0 || len(f.lvl.Collectibles) != 0 {
		t.Errorf("after clear: log=%d segments=%d collectibles=%d",
			f.pb.Len(), f.ln.SegmentCount(), len(f.lvl.Collectibles))
	}
}

func TestSave(t *testing.T) {
	f := newFixture()
	if err := f.ed.Key(KeySave, false); !errors.Is(err, ErrNoExporter) {
		t.Errorf("Key(save) = %v, expected ErrNoExporter", err)
	}

	var exported string
	f.ed.Export = func(text string) error {
		exported = text
		return nil
	}
	f.draw(0.5, 0, 0.2)
	if err := f.ed.Key(KeySave, false); err != nil {
		t.Fatalf("Key(save) failed: %v", err)
	}

	start, log, err := playback.Parse(exported)
	if err != nil {
		t.Fatalf("exported text does not parse: %v", err)
	}
	if start != f.lvl.StartPosition {
		t.Errorf("start = %v, expected %v", start, f.lvl.StartPosition)
	}
	if len(log) != f.pb.Len() {
		t.Errorf("entries = %d, expected %d", len(log), f.pb.Len())
	}

	failing := errors.New("disk full")
	f.ed.Export = func(string) error { return failing }
	if err := f.ed.Save(); !errors.Is(err, failing) {
		t.Errorf("Save() = %v, expected %v", err, failing)
	}
}

func TestDragStartMarker(t *testing.T) {
	f := newFixture()

	f.ed.LeftDown(zmath.V3(1.02, 1.01, 0))
	f.ed.Tick()
	if !f.ed.DraggingStart() {
		t.Fatal("press near start should begin dragging")
	}

	f.ed.PointerMoved(zmath.V3(1.5, 0.7, 0))
	f.ed.Tick()
	if f.lvl.StartPosition != zmath.V3(1.5, 0.7, 0) {
		t.Errorf("StartPosition = %v, expected (1.5, 0.7, 0)", f.lvl.StartPosition)
	}
	if f.pb.Len() != 0 {
		t.Errorf("dragging recorded %d entries, expected 0", f.pb.Len())
	}

	f.ed.LeftUp()
	f.ed.Tick()
	if f.ed.DraggingStart() {
		t.Error("dragging should stop when the button is released")
	}
}

func TestPressAwayFromStartDoesNotDrag(t *testing.T) {
	f := newFixture()
	f.ed.LeftDown(zmath.V3(0.5, 0.5, 0))
	f.ed.Tick()
	if f.ed.DraggingStart() {
		t.Error("press far from start should not drag")
	}
	if f.lvl.StartPosition != zmath.V3(1, 1, 0) {
		t.Errorf("StartPosition = %v, expected unchanged", f.lvl.StartPosition)
	}
}
