package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run represents one tracked sort invocation
type Run struct {
	RunID       int64
	CreatedAt   time.Time
	Inputs      string
	Flags       string
	LineCount   int
	OutputCount int
	DurationMS  int64
}

// RecordRun inserts one run and returns its ID.
func (db *DB) RecordRun(inputs, flags string, lineCount, outputCount int, duration time.Duration) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO runs (inputs, flags, line_count, output_count, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		inputs, flags, lineCount, outputCount, duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means no
// limit.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `SELECT run_id, created_at, inputs, flags, line_count, output_count, duration_ms
	          FROM runs ORDER BY run_id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.Inputs, &r.Flags, &r.LineCount, &r.OutputCount, &r.DurationMS); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunByID returns a single run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(
		`SELECT run_id, created_at, inputs, flags, line_count, output_count, duration_ms
		 FROM runs WHERE run_id = ?`, runID,
	).Scan(&r.RunID, &r.CreatedAt, &r.Inputs, &r.Flags, &r.LineCount, &r.OutputCount, &r.DurationMS)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// LatestRunID returns the highest run ID, or an error when no runs exist.
func (db *DB) LatestRunID() (int64, error) {
	var id int64
	err := db.QueryRow(`SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return id, nil
}
