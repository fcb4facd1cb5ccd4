// Package wiring runs a full evaluation flow against an embedded scenario:
// scenario → renderer → parallel evaluation → report.csv + dumps → run store.
package wiring

import (
	"context"
	"fmt"
	"path/filepath"

	"styleval/internal/dataset"
	"styleval/internal/evaluate"
	"styleval/internal/render"
	"styleval/internal/report"
	"styleval/internal/store"
)

// Result is what a wired run leaves behind.
type Result struct {
	Rows       []report.Row
	RunID      int64
	ReportPath string
	DBPath     string
}

// Run evaluates the named embedded scenario with the given renderer and
// persists everything under outDir, exactly as an evaluate --demo run does.
func Run(ctx context.Context, scenarioName string, renderer render.Renderer, parallel int, outDir string) (*Result, error) {
	scenario, err := dataset.LoadScenario(scenarioName)
	if err != nil {
		return nil, err
	}

	dbPath := filepath.Join(outDir, "runs.db")
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	writer, err := report.NewWriter(outDir)
	if err != nil {
		return nil, err
	}
	defer writer.Close()

	runID, err := st.CreateRun("demo:"+scenario.Name, fmt.Sprintf("%T", renderer), writer.Path())
	if err != nil {
		return nil, err
	}

	rows, err := evaluate.Runner{Renderer: renderer, Parallel: parallel}.Run(ctx, scenario.EvalCases())
	if err != nil {
		_ = st.FinishRun(runID, store.StatusFailed)
		return nil, err
	}
	if err := writer.Append(rows...); err != nil {
		_ = st.FinishRun(runID, store.StatusFailed)
		return nil, err
	}
	for _, row := range rows {
		if err := st.AddResult(runID, row); err != nil {
			_ = st.FinishRun(runID, store.StatusFailed)
			return nil, err
		}
	}
	if err := st.FinishRun(runID, store.StatusDone); err != nil {
		return nil, err
	}

	return &Result{
		Rows:       rows,
		RunID:      runID,
		ReportPath: writer.Path(),
		DBPath:     dbPath,
	}, nil
}
