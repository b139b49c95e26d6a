package storage

import (
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	records := []MatchRecord{
		{Variant: "tetra", Winner: "p1", P1Cards: 6, P2Cards: 4, Seed: 42, Duration: 120},
		{Variant: "tetra", Winner: "p2", P1Cards: 3, P2Cards: 7, Seed: 43, Duration: 90},
		{Variant: "tetra_dice", Winner: "draw", P1Cards: 5, P2Cards: 5, Seed: 44, Duration: 60},
	}
	for _, rec := range records {
		if _, err := store.SaveMatch(rec); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	matches, err := store.RecentMatches("tetra", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 tetra matches, got %d", len(matches))
	}

	// newest first
	if matches[0].Seed != 43 || matches[1].Seed != 42 {
		t.Errorf("Matches not ordered newest first: %v", matches)
	}
	if matches[0].Winner != "p2" || matches[0].P1Cards != 3 || matches[0].P2Cards != 7 {
		t.Errorf("Record round-trip mismatch: %+v", matches[0])
	}

	all, err := store.RecentMatches("", 10)
	if err != nil {
		t.Fatalf("RecentMatches(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 matches across variants, got %d", len(all))
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveMatch(MatchRecord{Variant: "tetra", Winner: "p1", Seed: int64(i)})
	}

	matches, err := store.RecentMatches("tetra", 3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("Expected 3 matches with limit, got %d", len(matches))
	}
	if matches[0].Seed != 4 {
		t.Errorf("Expected newest seed 4 first, got %d", matches[0].Seed)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// no matches yet
	stats, err := store.Stats("tetra")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Matches != 0 {
		t.Errorf("Expected 0 matches for empty variant, got %d", stats.Matches)
	}

	store.SaveMatch(MatchRecord{Variant: "tetra", Winner: "p1"})
	store.SaveMatch(MatchRecord{Variant: "tetra", Winner: "p1"})
	store.SaveMatch(MatchRecord{Variant: "tetra", Winner: "p2"})
	store.SaveMatch(MatchRecord{Variant: "tetra", Winner: "draw"})
	store.SaveMatch(MatchRecord{Variant: "tetra_det", Winner: "p2"})

	stats, err = store.Stats("tetra")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Matches != 4 || stats.P1Wins != 2 || stats.P2Wins != 1 || stats.Draws != 1 {
		t.Errorf("Stats mismatch: %+v", stats)
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(MatchRecord{Variant: "tetra", Winner: "p1"})
	store.SaveMatch(MatchRecord{Variant: "tetra_dice", Winner: "p2"})
	store.SaveMatch(MatchRecord{Variant: "tetra_dice", Winner: "p2"})

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 variants, got %d", len(stats))
	}
	if stats["tetra_dice"].P2Wins != 2 {
		t.Errorf("tetra_dice P2 wins = %d, want 2", stats["tetra_dice"].P2Wins)
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(MatchRecord{Variant: "tetra", Winner: "p1"})
	store.SaveMatch(MatchRecord{Variant: "tetra_dice", Winner: "p2"})

	if err := store.ClearMatches("tetra"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	tetra, _ := store.RecentMatches("tetra", 10)
	if len(tetra) != 0 {
		t.Errorf("Expected 0 tetra matches after clear, got %d", len(tetra))
	}
	dice, _ := store.RecentMatches("tetra_dice", 10)
	if len(dice) != 1 {
		t.Error("Other variants should not be affected by clearing tetra")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
