package builtin

import (
	"testing"

	"github.com/vovakirdan/starline/internal/playback"
	"github.com/vovakirdan/starline/internal/registry"
)

func TestBuiltinPackLoads(t *testing.T) {
	pack, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if pack.ID != ID {
		t.Errorf("ID = %q, expected %q", pack.ID, ID)
	}
	if pack.Len() == 0 {
		t.Fatal("builtin pack is empty")
	}
	if err := pack.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestBuiltinLevelsHaveStars(t *testing.T) {
	pack, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	for _, lvl := range pack.Levels {
		_, log, err := lvl.Parse()
		if err != nil {
			t.Fatalf("level %s: %v", lvl.ID, err)
		}
		stars := 0
		for _, s := range log {
			if s.Kind == playback.PlaceCollectible {
				stars++
			}
		}
		if stars == 0 {
			t.Errorf("level %s has no collectibles and can never complete", lvl.ID)
		}
	}
}

func TestBuiltinRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("pack %q not registered", ID)
	}
	pack, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if pack.Title != "Starline" {
		t.Errorf("Title = %q, expected %q", pack.Title, "Starline")
	}
}
