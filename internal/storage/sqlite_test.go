package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "local", Score: 100, Speed: 2, Duration: 42 * time.Second},
		{Player: "local", Score: 50, Speed: 1, Duration: 20 * time.Second},
		{Player: "alice", Score: 200, Speed: 5, Duration: 61500 * time.Millisecond},
		{Player: "bob", Score: 100, Speed: 3, Duration: time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}

	if top[0].Score != 200 || top[0].Player != "alice" {
		t.Errorf("Expected alice's 200 first, got %+v", top[0])
	}
	if top[0].Speed != 5 || top[0].Duration != 61500*time.Millisecond {
		t.Errorf("Speed/duration not round-tripped: %+v", top[0])
	}
	// Equal scores keep insertion order.
	if top[1].Player != "local" || top[2].Player != "bob" {
		t.Errorf("Tie order wrong: %s then %s", top[1].Player, top[2].Player)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{Player: "local", Score: i})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 4 || recent[1].Score != 3 {
		t.Errorf("Expected newest two runs, got %+v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	store.SaveRun(Run{Player: "local", Score: 100})
	store.SaveRun(Run{Player: "local", Score: 300})
	store.SaveRun(Run{Player: "local", Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{Player: "local", Score: 10, Duration: 10 * time.Second})
	store.SaveRun(Run{Player: "local", Score: 30, Duration: 20 * time.Second})
	store.SaveRun(Run{Player: "alice", Score: 50, Duration: 5 * time.Second})

	all, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if all.Runs != 3 || all.HighScore != 50 || all.TotalScore != 90 || all.AvgScore != 30 {
		t.Errorf("Unexpected totals: %+v", all)
	}
	if all.TotalDuration != 35*time.Second {
		t.Errorf("Expected 35s played, got %v", all.TotalDuration)
	}
	if all.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}

	local, err := store.Stats("local")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if local.Runs != 2 || local.HighScore != 30 {
		t.Errorf("Unexpected local stats: %+v", local)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "local", Score: 100})
	store.SaveRun(Run{Player: "local", Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestParseTime(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", ts, ts},
		{"sqlite text", "2026-03-04 05:06:07", ts},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTime(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
