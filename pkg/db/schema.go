package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs: one row per generated report
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    title TEXT NOT NULL,
    layout TEXT NOT NULL,              -- single, flat, nested
    notebook_count INTEGER DEFAULT 0,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    report_path TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

-- Per-notebook outcomes within a run
CREATE TABLE IF NOT EXISTS run_notebooks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    notebook_path TEXT NOT NULL,
    fragment_path TEXT,
    status TEXT NOT NULL,              -- success, failed
    error_message TEXT,
    word_count INTEGER DEFAULT 0,
    language TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_notebooks_run ON run_notebooks(run_id);
`
