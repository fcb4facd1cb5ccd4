// Package store records evaluation runs and their per-file results in a
// SQLite database, so past runs stay inspectable after the report directory
// is archived away.
package store

import "styleval/pkg/confusion"

// Run statuses.
const (
	StatusRunning  = "running"
	StatusDone     = "done"
	StatusFailed   = "failed"
	StatusCanceled = "canceled"
)

// Run is one recorded evaluation run.
type Run struct {
	ID         int64
	StartedAt  string // RFC 3339, UTC
	FinishedAt string // empty while running
	Status     string
	Dataset    string // dataset root or "demo:<scenario>"
	Renderer   string
	ReportPath string
}

// Result is the per-file confusion outcome of one run.
type Result struct {
	RunID  int64
	Repo   string
	Path   string
	Style  string
	Global confusion.Counts
	Local  confusion.Counts
}
