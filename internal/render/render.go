// Package render obtains the model-predicted correction of a file. The model
// itself is an external collaborator; this package defines the boundary and
// ships a stub, an oracle and an HTTP client for a real rendering service.
package render

import "context"

// Request identifies one file to render and carries everything the model may
// see. Correct is included for the oracle only; real renderers must not use
// it.
type Request struct {
	Repo         string `json:"repo"`
	Style        string `json:"style"`
	Path         string `json:"filepath"`
	Init         string `json:"init"`
	Correct      string `json:"correct,omitempty"`
	ChangedLines []int  `json:"changed_lines,omitempty"`
}

// Rendering is the model output in both variants: Global lets the model edit
// anywhere, Local constrains edits to the changed lines.
type Rendering struct {
	Global string `json:"global"`
	Local  string `json:"local"`
}

// Renderer produces the predicted correction of a file.
type Renderer interface {
	Render(ctx context.Context, req Request) (*Rendering, error)
}

// Stub is a renderer that never edits: both variants return Init unchanged.
// Every position that truly changed between init and correct classifies as
// undetected, which makes the stub a fixture with exactly predictable counts.
type Stub struct{}

func (Stub) Render(_ context.Context, req Request) (*Rendering, error) {
	return &Rendering{Global: req.Init, Local: req.Init}, nil
}

// Oracle is a perfect renderer: both variants return Correct. Every changed
// position classifies as detected_good_change. It exists to verify the
// harness, not to evaluate anything.
type Oracle struct{}

func (Oracle) Render(_ context.Context, req Request) (*Rendering, error) {
	return &Rendering{Global: req.Correct, Local: req.Correct}, nil
}
