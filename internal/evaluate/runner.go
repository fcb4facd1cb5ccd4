package evaluate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"styleval/internal/logging"
	"styleval/internal/render"
	"styleval/internal/report"
)

// Runner evaluates a batch of cases with bounded parallelism.
type Runner struct {
	Renderer render.Renderer
	Parallel int // concurrent evaluations; values < 1 mean serial
}

// Run evaluates all cases and returns one row per case, in case order
// regardless of completion order. The first failure cancels the remaining
// work.
func (r Runner) Run(ctx context.Context, cases []Case) ([]report.Row, error) {
	if r.Renderer == nil {
		return nil, fmt.Errorf("runner has no renderer")
	}
	limit := r.Parallel
	if limit < 1 {
		limit = 1
	}

	logger := logging.New("evaluate")
	logger.Info("evaluating cases", "cases", len(cases), "parallel", limit)

	rows := make([]report.Row, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, c := range cases {
		g.Go(func() error {
			row, err := Evaluate(gctx, r.Renderer, c)
			if err != nil {
				return err
			}
			rows[i] = row
			logger.Debug("case done", "repo", c.Repo, "filepath", c.Path,
				"misdetection", row.Global.Misdetection,
				"undetected", row.Global.Undetected,
				"detected_bad_change", row.Global.DetectedBadChange,
				"detected_good_change", row.Global.DetectedGoodChange)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
