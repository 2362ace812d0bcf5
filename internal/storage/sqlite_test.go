package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveCompletion(Completion{PackID: "p", LevelID: "l", Frames: 10}); err != nil {
		t.Fatalf("SaveCompletion() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestFrames("p", "l")
	if err != nil {
		t.Fatalf("BestFrames() failed: %v", err)
	}
	if best != 10 {
		t.Errorf("BestFrames() = %d, expected 10", best)
	}
}

func TestBestCompletions(t *testing.T) {
	store := openTestStore(t)

	for _, c := range []Completion{
		{PackID: "builtin", LevelID: "valley", Frames: 500, Attempts: 3, Stars: 2},
		{PackID: "builtin", LevelID: "valley", Frames: 300, Attempts: 1, Stars: 2, Player: "ana"},
		{PackID: "builtin", LevelID: "valley", Frames: 400, Attempts: 2, Stars: 2},
		{PackID: "builtin", LevelID: "fin", Frames: 100, Attempts: 1, Stars: 1},
		{PackID: "other", LevelID: "valley", Frames: 50, Attempts: 1, Stars: 1},
	} {
		if _, err := store.SaveCompletion(c); err != nil {
			t.Fatalf("SaveCompletion() failed: %v", err)
		}
	}

	best, err := store.BestCompletions("builtin", "valley", 2)
	if err != nil {
		t.Fatalf("BestCompletions() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("BestCompletions() returned %d rows, expected 2", len(best))
	}
	if best[0].Frames != 300 || best[1].Frames != 400 {
		t.Errorf("frames = (%d, %d), expected (300, 400)", best[0].Frames, best[1].Frames)
	}
	if best[0].Player != "ana" || best[1].Player != "local" {
		t.Errorf("players = (%q, %q), expected (ana, local)", best[0].Player, best[1].Player)
	}
	if best[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	recent, err := store.RecentCompletions("builtin", 0)
	if err != nil {
		t.Fatalf("RecentCompletions() failed: %v", err)
	}
	if len(recent) != 4 || recent[0].LevelID != "fin" {
		t.Errorf("RecentCompletions() = %+v, expected 4 rows newest first", recent)
	}
}

func TestBestFramesEmpty(t *testing.T) {
	store := openTestStore(t)
	best, err := store.BestFrames("builtin", "nothing")
	if err != nil {
		t.Fatalf("BestFrames() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestFrames() = %d, expected 0", best)
	}
}

func TestPackStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveCompletion(Completion{PackID: "builtin", LevelID: "valley", Frames: 500, Attempts: 3})
	store.SaveCompletion(Completion{PackID: "builtin", LevelID: "valley", Frames: 300, Attempts: 1})
	store.SaveCompletion(Completion{PackID: "builtin", LevelID: "fin", Frames: 100, Attempts: 1})

	stats, err := store.PackStats("builtin")
	if err != nil {
		t.Fatalf("PackStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("PackStats() returned %d levels, expected 2", len(stats))
	}
	v := stats["valley"]
	if v == nil {
		t.Fatal("missing valley stats")
	}
	if v.Completions != 2 || v.BestFrames != 300 || v.AvgAttempts != 2 {
		t.Errorf("valley stats = %+v", v)
	}
}

func TestClearCompletions(t *testing.T) {
	store := openTestStore(t)
	store.SaveCompletion(Completion{PackID: "a", LevelID: "x", Frames: 1})
	store.SaveCompletion(Completion{PackID: "b", LevelID: "x", Frames: 2})

	if err := store.ClearCompletions("a"); err != nil {
		t.Fatalf("ClearCompletions() failed: %v", err)
	}
	if best, _ := store.BestFrames("a", "x"); best != 0 {
		t.Errorf("pack a BestFrames() = %d, expected 0", best)
	}
	if best, _ := store.BestFrames("b", "x"); best != 2 {
		t.Errorf("pack b BestFrames() = %d, expected 2", best)
	}
}

func TestDrafts(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadDraft("missing"); !errors.Is(err, ErrNoDraft) {
		t.Errorf("LoadDraft(missing) = %v, expected ErrNoDraft", err)
	}

	if err := store.SaveDraft("ramp", "0 0 "); err != nil {
		t.Fatalf("SaveDraft() failed: %v", err)
	}
	if err := store.SaveDraft("ramp", "1 1 0.5 0.5 3 "); err != nil {
		t.Fatalf("SaveDraft() overwrite failed: %v", err)
	}
	if err := store.SaveDraft("bowl", "0 0 "); err != nil {
		t.Fatalf("SaveDraft() failed: %v", err)
	}

	d, err := store.LoadDraft("ramp")
	if err != nil {
		t.Fatalf("LoadDraft() failed: %v", err)
	}
	if d.Text != "1 1 0.5 0.5 3 " {
		t.Errorf("Text = %q, expected overwritten text", d.Text)
	}

	all, err := store.Drafts()
	if err != nil {
		t.Fatalf("Drafts() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Drafts() returned %d, expected 2", len(all))
	}

	if err := store.DeleteDraft("ramp"); err != nil {
		t.Fatalf("DeleteDraft() failed: %v", err)
	}
	if err := store.DeleteDraft("ramp"); !errors.Is(err, ErrNoDraft) {
		t.Errorf("second DeleteDraft() = %v, expected ErrNoDraft", err)
	}
}
