package db

import (
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestRecordRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.RecordRun("words.txt", "ignore-case,stable", 100, 98, 12*time.Millisecond)
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}
	if runID == 0 {
		t.Error("RecordRun() returned 0 run ID")
	}

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if run.Inputs != "words.txt" {
		t.Errorf("run.Inputs = %q, want %q", run.Inputs, "words.txt")
	}
	if run.Flags != "ignore-case,stable" {
		t.Errorf("run.Flags = %q, want %q", run.Flags, "ignore-case,stable")
	}
	if run.LineCount != 100 {
		t.Errorf("run.LineCount = %d, want 100", run.LineCount)
	}
	if run.OutputCount != 98 {
		t.Errorf("run.OutputCount = %d, want 98", run.OutputCount)
	}
	if run.DurationMS != 12 {
		t.Errorf("run.DurationMS = %d, want 12", run.DurationMS)
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 3; i++ {
		if _, err := db.RecordRun("-", "", 10+i, 10+i, time.Millisecond); err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
	}

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns() returned %d runs, want 3", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i-1].RunID < runs[i].RunID {
			t.Errorf("runs not newest first: %d before %d", runs[i-1].RunID, runs[i].RunID)
		}
	}
}

func TestListRuns_Limit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		if _, err := db.RecordRun("-", "", 1, 1, time.Millisecond); err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
	}

	runs, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("ListRuns(2) returned %d runs, want 2", len(runs))
	}
}

func TestLatestRunID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.LatestRunID(); err == nil {
		t.Error("LatestRunID() on empty database should error")
	}

	var last int64
	for i := 0; i < 3; i++ {
		id, err := db.RecordRun("-", "", 1, 1, time.Millisecond)
		if err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
		last = id
	}

	got, err := db.LatestRunID()
	if err != nil {
		t.Fatalf("LatestRunID() error = %v", err)
	}
	if got != last {
		t.Errorf("LatestRunID() = %d, want %d", got, last)
	}
}

func TestGetRunByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(42); err == nil {
		t.Error("GetRunByID() for missing run should error")
	}
}
