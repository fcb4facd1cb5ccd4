package evaluate

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"styleval/internal/render"
)

// slowStub renders like the stub but lets later cases finish first, to
// prove row order follows case order rather than completion order.
type slowStub struct {
	started atomic.Int32
}

func (s *slowStub) Render(ctx context.Context, req render.Request) (*render.Rendering, error) {
	s.started.Add(1)
	return &render.Rendering{Global: req.Init, Local: req.Init}, nil
}

func TestRunner_PreservesCaseOrder(t *testing.T) {
	var cases []Case
	for i := 0; i < 16; i++ {
		cases = append(cases, Case{
			Path:    fmt.Sprintf("file%02d.js", i),
			Init:    "aaa",
			Correct: "aab",
		})
	}

	stub := &slowStub{}
	rows, err := Runner{Renderer: stub, Parallel: 4}.Run(context.Background(), cases)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != len(cases) {
		t.Fatalf("expected %d rows, got %d", len(cases), len(rows))
	}
	for i, row := range rows {
		if row.Path != cases[i].Path {
			t.Errorf("row %d: got path %q, want %q", i, row.Path, cases[i].Path)
		}
	}
	if int(stub.started.Load()) != len(cases) {
		t.Errorf("expected %d renders, got %d", len(cases), stub.started.Load())
	}
}

type flakyRenderer struct {
	failPath string
	err      error
}

func (f flakyRenderer) Render(_ context.Context, req render.Request) (*render.Rendering, error) {
	if req.Path == f.failPath {
		return nil, f.err
	}
	return &render.Rendering{Global: req.Init, Local: req.Init}, nil
}

func TestRunner_FirstErrorWins(t *testing.T) {
	boom := errors.New("render service down")
	cases := []Case{
		{Path: "ok.js", Init: "a", Correct: "a"},
		{Path: "bad.js", Init: "a", Correct: "b"},
	}

	_, err := Runner{Renderer: flakyRenderer{failPath: "bad.js", err: boom}, Parallel: 2}.
		Run(context.Background(), cases)
	if !errors.Is(err, boom) {
		t.Errorf("expected renderer error, got: %v", err)
	}
}

func TestRunner_RequiresRenderer(t *testing.T) {
	if _, err := (Runner{}).Run(context.Background(), nil); err == nil {
		t.Error("expected error for missing renderer")
	}
}

func TestRunner_SerialDefault(t *testing.T) {
	rows, err := Runner{Renderer: render.Stub{}}.Run(context.Background(), []Case{
		{Path: "a.js", Init: "x", Correct: "y"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}
