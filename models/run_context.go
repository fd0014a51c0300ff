package models

import "time"

// TimestampLayout is the uniqueness suffix format shared by per-notebook
// fragment names and the final report name.
const TimestampLayout = "2006_01_02_15_04_05"

// RunContext carries the per-run values that used to be read from ambient
// process state. Passing it explicitly keeps output names deterministic in
// tests.
type RunContext struct {
	Timestamp string
	OutputDir string
}

// NewRunContext builds a run context for the given output root.
func NewRunContext(outputDir string, now time.Time) RunContext {
	return RunContext{
		Timestamp: now.Format(TimestampLayout),
		OutputDir: outputDir,
	}
}
