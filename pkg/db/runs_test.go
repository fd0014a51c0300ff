package db

import (
	"testing"
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

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	run := Run{
		Title:         "Quarterly Report",
		Layout:        "flat",
		NotebookCount: 2,
		SuccessCount:  1,
		FailedCount:   1,
		ReportPath:    "output/Quarterly_Report_ts.html",
	}
	notebooks := []NotebookResult{
		{NotebookPath: "a.ipynb", FragmentPath: "output/a_ts.html", Status: "success", WordCount: 120, Language: "english"},
		{NotebookPath: "b.ipynb", Status: "failed", ErrorMessage: "nbconvert exited with status 1"},
	}

	runID, err := db.InsertRun(run, notebooks)
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if runID == 0 {
		t.Error("InsertRun() returned 0 ID")
	}

	got, err := db.GetRunNotebooks(runID)
	if err != nil {
		t.Fatalf("GetRunNotebooks() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("notebook result count = %d, want 2", len(got))
	}
	if got[0].Status != "success" || got[0].WordCount != 120 {
		t.Errorf("first result = %+v, want success with word count 120", got[0])
	}
	if got[1].Status != "failed" || got[1].ErrorMessage == "" {
		t.Errorf("second result = %+v, want failed with error message", got[1])
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := db.InsertRun(Run{Title: title, Layout: "single", NotebookCount: 1, SuccessCount: 1}, nil); err != nil {
			t.Fatalf("InsertRun(%q) error = %v", title, err)
		}
	}

	runs, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("run count = %d, want 2", len(runs))
	}
	if runs[0].Title != "third" || runs[1].Title != "second" {
		t.Errorf("order = [%s, %s], want [third, second]", runs[0].Title, runs[1].Title)
	}
}

func TestListRuns_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("run count = %d, want 0", len(runs))
	}
}
