// Package evaluate runs the per-file evaluation pipeline: render both
// predicted variants, align each against init and correct, classify every
// aligned position and assemble a report row.
package evaluate

import (
	"context"
	"fmt"

	"styleval/internal/render"
	"styleval/internal/report"
	"styleval/pkg/confusion"
	"styleval/pkg/textalign"
)

// Case is one file of one dataset entry, ready to evaluate.
type Case struct {
	Repo         string
	Style        string
	Path         string
	Init         string
	Correct      string
	ChangedLines []int
}

// Evaluate renders both predicted variants for the case and scores each one.
// The aligned texts are kept in the row so the writer can dump them next to
// the counts.
func Evaluate(ctx context.Context, r render.Renderer, c Case) (report.Row, error) {
	rendering, err := r.Render(ctx, render.Request{
		Repo:         c.Repo,
		Style:        c.Style,
		Path:         c.Path,
		Init:         c.Init,
		Correct:      c.Correct,
		ChangedLines: c.ChangedLines,
	})
	if err != nil {
		return report.Row{}, fmt.Errorf("render %s: %w", c.Path, err)
	}

	row := report.Row{Repo: c.Repo, Path: c.Path, Style: c.Style}

	row.Global, row.GlobalInit, row.GlobalCorrect, row.GlobalPredicted, err =
		scoreVariant(c.Init, c.Correct, rendering.Global)
	if err != nil {
		return report.Row{}, fmt.Errorf("score global variant of %s: %w", c.Path, err)
	}

	row.Local, row.LocalInit, row.LocalCorrect, row.LocalPredicted, err =
		scoreVariant(c.Init, c.Correct, rendering.Local)
	if err != nil {
		return report.Row{}, fmt.Errorf("score local variant of %s: %w", c.Path, err)
	}

	return row, nil
}

// scoreVariant aligns one predicted variant against init and correct and
// classifies the result. The returned texts are the gap-rendered aligned
// forms.
func scoreVariant(init, correct, predicted string) (confusion.Counts, string, string, string, error) {
	ai, ac, ap := textalign.Triple(init, correct, predicted)
	counts, err := confusion.Classify(ai, ac, ap)
	if err != nil {
		return confusion.Counts{}, "", "", "", err
	}
	return counts, ai.String(), ac.String(), ap.String(), nil
}
