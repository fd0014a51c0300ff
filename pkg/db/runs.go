package db

import (
	"fmt"
	"time"
)

// Run is one report generation.
type Run struct {
	RunID         int64
	CreatedAt     time.Time
	Title         string
	Layout        string
	NotebookCount int
	SuccessCount  int
	FailedCount   int
	ReportPath    string
}

// NotebookResult is the outcome for one notebook within a run.
type NotebookResult struct {
	NotebookPath string
	FragmentPath string
	Status       string
	ErrorMessage string
	WordCount    int
	Language     string
}

// InsertRun records a completed run and its per-notebook outcomes in one
// transaction, returning the new run ID.
func (db *DB) InsertRun(run Run, notebooks []NotebookResult) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO runs (title, layout, notebook_count, success_count, failed_count, report_path)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.Title, run.Layout, run.NotebookCount, run.SuccessCount, run.FailedCount, run.ReportPath)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	for _, nb := range notebooks {
		_, err := tx.Exec(`
			INSERT INTO run_notebooks (run_id, notebook_path, fragment_path, status, error_message, word_count, language)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, runID, nb.NotebookPath, nb.FragmentPath, nb.Status, nb.ErrorMessage, nb.WordCount, nb.Language)
		if err != nil {
			return 0, fmt.Errorf("failed to insert notebook result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.Query(`
		SELECT run_id, created_at, title, layout, notebook_count, success_count, failed_count, COALESCE(report_path, '')
		FROM runs ORDER BY run_id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.Title, &r.Layout, &r.NotebookCount, &r.SuccessCount, &r.FailedCount, &r.ReportPath); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunNotebooks returns the per-notebook outcomes for a run.
func (db *DB) GetRunNotebooks(runID int64) ([]NotebookResult, error) {
	rows, err := db.Query(`
		SELECT notebook_path, COALESCE(fragment_path, ''), status, COALESCE(error_message, ''), word_count, COALESCE(language, '')
		FROM run_notebooks WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run notebooks: %w", err)
	}
	defer rows.Close()

	var results []NotebookResult
	for rows.Next() {
		var nb NotebookResult
		if err := rows.Scan(&nb.NotebookPath, &nb.FragmentPath, &nb.Status, &nb.ErrorMessage, &nb.WordCount, &nb.Language); err != nil {
			return nil, fmt.Errorf("failed to scan notebook result: %w", err)
		}
		results = append(results, nb)
	}
	return results, rows.Err()
}
