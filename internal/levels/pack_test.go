package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/starline/internal/level"
	"github.com/vovakirdan/starline/internal/physics"
	"github.com/vovakirdan/starline/internal/playback"
)

const manifest = `id: test
title: Test Pack
levels:
  - id: one
    name: One
    file: one.txt
    wind: true
    line_color: "#ff0000"
  - file: two.txt
    bounds:
      min_x: 0
      max_x: 2
      min_y: 0.5
  - id: three
    file: two.txt
    bounds:
      max_x: 5
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		ManifestName: {Data: []byte(manifest)},
		"one.txt":    {Data: []byte("0.5 1 0.1 0.1 0 0.5 0.1 3 a 4 b 1 1 6 \n")},
		"two.txt":    {Data: []byte("1 1.5 ")},
	}
}

func TestLoad(t *testing.T) {
	pack, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if pack.ID != "test" || pack.Title != "Test Pack" {
		t.Errorf("pack = (%q, %q), expected (test, Test Pack)", pack.ID, pack.Title)
	}
	if pack.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", pack.Len())
	}

	one := pack.Levels[0]
	if !one.Wind {
		t.Error("level one should have wind")
	}
	if one.LineColor != (level.Color{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("LineColor = %v, expected red", one.LineColor)
	}
	if one.UserLineColor != level.DefaultUserColor {
		t.Errorf("UserLineColor = %v, expected default", one.UserLineColor)
	}
	if one.Bounds != physics.DefaultBounds {
		t.Errorf("Bounds = %v, expected default", one.Bounds)
	}

	two := pack.Levels[1]
	if two.ID != "two" || two.Name != "two" {
		t.Errorf("derived ID/Name = (%q, %q), expected (two, two)", two.ID, two.Name)
	}
	if two.Bounds != (physics.Bounds{MinX: 0, MaxX: 2, MinY: 0.5}) {
		t.Errorf("Bounds = %v, expected {0 2 0.5}", two.Bounds)
	}

	// Partial bounds keep the remaining defaults.
	three := pack.Levels[2]
	expected := physics.Bounds{MinX: physics.DefaultBounds.MinX, MaxX: 5, MinY: physics.DefaultBounds.MinY}
	if three.Bounds != expected {
		t.Errorf("Bounds = %v, expected %v", three.Bounds, expected)
	}

	if pack.Index("two") != 1 || pack.Index("nope") != -1 {
		t.Error("Index() returned wrong positions")
	}
	if err := pack.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}

	_, log, err := one.Parse()
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(log) != 4 {
		t.Errorf("entries = %d, expected 4", len(log))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"no manifest", fstest.MapFS{}},
		{"bad yaml", fstest.MapFS{ManifestName: {Data: []byte("levels: [")}}},
		{"empty", fstest.MapFS{ManifestName: {Data: []byte("id: x\n")}}},
		{"missing file", fstest.MapFS{ManifestName: {Data: []byte("levels:\n  - file: gone.txt\n")}}},
		{"no file field", fstest.MapFS{ManifestName: {Data: []byte("levels:\n  - id: x\n")}}},
		{"bad color", fstest.MapFS{
			ManifestName: {Data: []byte("levels:\n  - file: a.txt\n    line_color: blue\n")},
			"a.txt":      {Data: []byte("0 0 ")},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.fsys); err == nil {
				t.Error("Load() succeeded, expected error")
			}
		})
	}
}

func TestEmptyPackSentinel(t *testing.T) {
	_, err := Load(fstest.MapFS{ManifestName: {Data: []byte("id: x\n")}})
	if !errors.Is(err, ErrEmptyPack) {
		t.Errorf("Load() = %v, expected ErrEmptyPack", err)
	}
}

func TestValidateReportsBadLevels(t *testing.T) {
	fsys := testFS()
	fsys["two.txt"] = &fstest.MapFile{Data: []byte("1 oops")}

	pack, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	err = pack.Validate()
	if !errors.Is(err, playback.ErrMalformedLevel) {
		t.Errorf("Validate() = %v, expected ErrMalformedLevel", err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for name, f := range testFS() {
		if err := os.WriteFile(filepath.Join(dir, name), f.Data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	pack, err := Open(dir)
	if err != nil {
		t.Fatalf("Open(dir) failed: %v", err)
	}
	if pack.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", pack.Len())
	}

	single, err := Open(filepath.Join(dir, "one.txt"))
	if err != nil {
		t.Fatalf("Open(file) failed: %v", err)
	}
	if single.ID != "one" || single.Len() != 1 {
		t.Errorf("single pack = (%q, %d), expected (one, 1)", single.ID, single.Len())
	}

	if _, err := Open(filepath.Join(dir, "missing")); err == nil {
		t.Error("Open(missing) succeeded, expected error")
	}
}

func TestColorRoundTrip(t *testing.T) {
	tests := []string{"#8a84aa", "#000000", "#ffffff", "#130c3d"}
	for _, hex := range tests {
		c, err := ParseColor(hex)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", hex, err)
		}
		if got := Hex(c); got != hex {
			t.Errorf("Hex(ParseColor(%q)) = %q", hex, got)
		}
	}
}

func TestFromText(t *testing.T) {
	p := FromText("draft", "1 1 ")
	if p.Len() != 1 || p.ID != "draft" {
		t.Fatalf("FromText() = %+v, expected one level pack", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil for a start-only level", err)
	}
	if p.Levels[0].Bounds != physics.DefaultBounds {
		t.Errorf("Bounds = %+v, expected defaults", p.Levels[0].Bounds)
	}
}
