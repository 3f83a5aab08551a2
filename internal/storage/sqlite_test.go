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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
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
	if err := store.RaiseBestScore("flappy", 17); err != nil {
		t.Fatalf("RaiseBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 17 {
		t.Errorf("BestScore() after reopen = %d, want 17", best)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() on empty store = %d, want 0", best)
	}

	for _, score := range []int{5, 12, 3} {
		if err := store.RaiseBestScore("flappy", score); err != nil {
			t.Fatalf("RaiseBestScore(%d) failed: %v", score, err)
		}
	}

	best, err = store.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("BestScore() = %d, want 12 (never lowered)", best)
	}

	// Other games are independent
	other, err := store.BestScore("dino")
	if err != nil {
		t.Fatalf("BestScore(dino) failed: %v", err)
	}
	if other != 0 {
		t.Errorf("BestScore(dino) = %d, want 0", other)
	}
}

func TestStoreCorruptBestScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", bestKey("flappy"), "not a number"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if _, err := store.BestScore("flappy"); err == nil {
		t.Error("BestScore() with corrupt value should return an error")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "flappy", Score: 4, DurationMs: 9000, Flaps: 30},
		{GameID: "flappy", Score: 11, DurationMs: 21000, Flaps: 70},
		{GameID: "flappy", Score: 0, DurationMs: 800, Flaps: 1},
		{GameID: "dino", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("flappy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopRuns() returned %d runs, want 3", len(top))
	}

	wantScores := []int{11, 4, 0}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, want %d", i, top[i].Score, want)
		}
	}
	if top[0].DurationMs != 21000 || top[0].Flaps != 70 {
		t.Errorf("top[0] = %+v, want duration 21000 and 70 flaps", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	recent, err := store.RecentRuns("flappy", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentRuns() returned %d runs, want 2", len(recent))
	}
	if recent[0].Score != 0 || recent[1].Score != 11 {
		t.Errorf("RecentRuns() scores = [%d %d], want [0 11]", recent[0].Score, recent[1].Score)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(Run{GameID: "flappy", Score: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("flappy", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("TopRuns(5) returned %d runs", len(top))
	}
	if top[0].Score != 19 {
		t.Errorf("top[0].Score = %d, want 19", top[0].Score)
	}

	// Non-positive limit falls back to 10
	top, err = store.TopRuns("flappy", 0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("TopRuns(0) returned %d runs, want 10", len(top))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", stats)
	}

	store.SaveRun(Run{GameID: "flappy", Score: 2, DurationMs: 1000, Flaps: 5})
	store.SaveRun(Run{GameID: "flappy", Score: 6, DurationMs: 3000, Flaps: 15})

	stats, err = store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, want 2", stats.Runs)
	}
	if stats.HighScore != 6 {
		t.Errorf("HighScore = %d, want 6", stats.HighScore)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %v, want 4", stats.AvgScore)
	}
	if stats.TotalFlaps != 20 || stats.TotalMs != 4000 {
		t.Errorf("totals = %d flaps / %d ms, want 20 / 4000", stats.TotalFlaps, stats.TotalMs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "flappy", Score: 8})
	store.SaveRun(Run{GameID: "dino", Score: 9})
	store.RaiseBestScore("flappy", 8)

	if err := store.ClearRuns("flappy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns("flappy", 10)
	if len(top) != 0 {
		t.Errorf("flappy runs after clear = %d, want 0", len(top))
	}
	best, _ := store.BestScore("flappy")
	if best != 0 {
		t.Errorf("flappy best after clear = %d, want 0", best)
	}

	other, _ := store.TopRuns("dino", 10)
	if len(other) != 1 {
		t.Errorf("dino runs after clearing flappy = %d, want 1", len(other))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "test.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}
