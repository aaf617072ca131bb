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

	want := RunRecord{
		Frontend:        FrontendWindow,
		Score:           230,
		Level:           3,
		SpeedUpgrades:   1,
		BulletUpgrades:  0,
		ExtraDirections: 1,
		Duration:        74500 * time.Millisecond,
		Seed:            99,
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	want.ID = id
	want.CreatedAt = got.CreatedAt
	if got != want {
		t.Errorf("TopRuns()[0] = %+v, want %+v", got, want)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at was not parsed")
	}
}

func TestStoreTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{Score: 100, Level: 1},
		{Score: 500, Level: 4},
		{Score: 300, Level: 2},
		{Score: 300, Level: 3},
		{Score: 50, Level: 1},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Level != 3 || runs[2].Level != 2 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
}

func TestStoreTopRunsByFrontend(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 10})
	store.SaveRun(RunRecord{Frontend: FrontendWindow, Score: 20})
	store.SaveRun(RunRecord{Frontend: FrontendWindow, Score: 30})

	tests := []struct {
		frontend string
		want     int
	}{
		{"", 3},
		{FrontendTerminal, 1},
		{FrontendWindow, 2},
		{"web", 0},
	}
	for _, tt := range tests {
		runs, err := store.TopRuns(tt.frontend, 10)
		if err != nil {
			t.Fatalf("TopRuns(%q) failed: %v", tt.frontend, err)
		}
		if len(runs) != tt.want {
			t.Errorf("TopRuns(%q) returned %d runs, want %d", tt.frontend, len(runs), tt.want)
		}
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

	store.SaveRun(RunRecord{Score: 100})
	store.SaveRun(RunRecord{Score: 300})
	store.SaveRun(RunRecord{Score: 200})

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

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", empty)
	}

	store.SaveRun(RunRecord{Score: 100, Level: 2, Duration: 40 * time.Second})
	store.SaveRun(RunRecord{Score: 300, Level: 5, Duration: 150 * time.Second})

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.HighScore != 300 || st.BestLevel != 5 || st.AvgScore != 200 {
		t.Errorf("Stats() = %+v", st)
	}
	if st.TotalTime != 190*time.Second {
		t.Errorf("TotalTime = %v, want 3m10s", st.TotalTime)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 100})
	store.SaveRun(RunRecord{Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.TopRuns("", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
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

func TestParseTime(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", ts, ts},
		{"sqlite text", "2024-05-01 12:30:00", ts},
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
