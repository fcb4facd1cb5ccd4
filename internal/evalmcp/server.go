// Package evalmcp exposes the alignment and classification engine over MCP
// stdio, so editor agents can score a correction without shelling out to the
// CLI. All tools are stateless: texts in, counts and aligned texts out.
package evalmcp

import (
	"context"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"styleval/internal/evaluate"
	"styleval/internal/render"
	"styleval/pkg/confusion"
	"styleval/pkg/textalign"
)

// Server wraps the MCP SDK server with the evaluation tools registered.
type Server struct {
	MCPServer *sdkmcp.Server
	log       *slog.Logger
}

// NewServer creates the evaluation MCP server.
func NewServer(version string) *Server {
	s := &Server{
		MCPServer: sdkmcp.NewServer(
			&sdkmcp.Implementation{Name: "styleval", Version: version},
			nil,
		),
		log: slog.Default().With("component", "evalmcp"),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "align_pair",
		Description: "Align two texts character by character. Returns both gap-padded forms with gaps rendered as ␣.",
	}, s.handleAlignPair)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "align_triple",
		Description: "Align three texts (init, correct, predicted) into one common length. Returns the three gap-padded forms.",
	}, s.handleAlignTriple)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "classify",
		Description: "Align init, correct and predicted, then bucket every disagreeing position into the four confusion classes.",
	}, s.handleClassify)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "evaluate_case",
		Description: "Score both predicted variants (global and local) of one file against init and correct.",
	}, s.handleEvaluateCase)
}

// --- Tool input/output types ---

type alignPairInput struct {
	A string `json:"a" jsonschema:"first text"`
	B string `json:"b" jsonschema:"second text"`
}

type alignPairOutput struct {
	AlignedA string `json:"aligned_a"`
	AlignedB string `json:"aligned_b"`
	Length   int    `json:"length"`
}

type alignTripleInput struct {
	Init      string `json:"init" jsonschema:"text with style mistakes"`
	Correct   string `json:"correct" jsonschema:"ground-truth corrected text"`
	Predicted string `json:"predicted" jsonschema:"model-corrected text"`
}

type alignTripleOutput struct {
	AlignedInit      string `json:"aligned_init"`
	AlignedCorrect   string `json:"aligned_correct"`
	AlignedPredicted string `json:"aligned_predicted"`
	Length           int    `json:"length"`
}

type classifyInput struct {
	Init      string `json:"init" jsonschema:"text with style mistakes"`
	Correct   string `json:"correct" jsonschema:"ground-truth corrected text"`
	Predicted string `json:"predicted" jsonschema:"model-corrected text"`
}

type classifyOutput struct {
	Counts           confusion.Counts `json:"counts"`
	AlignedInit      string           `json:"aligned_init"`
	AlignedCorrect   string           `json:"aligned_correct"`
	AlignedPredicted string           `json:"aligned_predicted"`
}

type evaluateCaseInput struct {
	Init            string `json:"init" jsonschema:"text with style mistakes"`
	Correct         string `json:"correct" jsonschema:"ground-truth corrected text"`
	PredictedGlobal string `json:"predicted_global" jsonschema:"model output, edits allowed anywhere"`
	PredictedLocal  string `json:"predicted_local" jsonschema:"model output, edits constrained to changed lines"`
}

type evaluateCaseOutput struct {
	Global confusion.Counts `json:"global"`
	Local  confusion.Counts `json:"local"`
}

// --- Handlers ---

func (s *Server) handleAlignPair(_ context.Context, _ *sdkmcp.CallToolRequest, input alignPairInput) (*sdkmcp.CallToolResult, alignPairOutput, error) {
	a, b := textalign.Pair(input.A, input.B)
	return nil, alignPairOutput{
		AlignedA: a.String(),
		AlignedB: b.String(),
		Length:   len(a),
	}, nil
}

func (s *Server) handleAlignTriple(_ context.Context, _ *sdkmcp.CallToolRequest, input alignTripleInput) (*sdkmcp.CallToolResult, alignTripleOutput, error) {
	ai, ac, ap := textalign.Triple(input.Init, input.Correct, input.Predicted)
	return nil, alignTripleOutput{
		AlignedInit:      ai.String(),
		AlignedCorrect:   ac.String(),
		AlignedPredicted: ap.String(),
		Length:           len(ai),
	}, nil
}

func (s *Server) handleClassify(_ context.Context, _ *sdkmcp.CallToolRequest, input classifyInput) (*sdkmcp.CallToolResult, classifyOutput, error) {
	ai, ac, ap := textalign.Triple(input.Init, input.Correct, input.Predicted)
	counts, err := confusion.Classify(ai, ac, ap)
	if err != nil {
		return nil, classifyOutput{}, fmt.Errorf("classify: %w", err)
	}
	return nil, classifyOutput{
		Counts:           counts,
		AlignedInit:      ai.String(),
		AlignedCorrect:   ac.String(),
		AlignedPredicted: ap.String(),
	}, nil
}

func (s *Server) handleEvaluateCase(ctx context.Context, _ *sdkmcp.CallToolRequest, input evaluateCaseInput) (*sdkmcp.CallToolResult, evaluateCaseOutput, error) {
	row, err := evaluate.Evaluate(ctx, fixedRenderer{
		global: input.PredictedGlobal,
		local:  input.PredictedLocal,
	}, evaluate.Case{
		Path:    "mcp-case",
		Init:    input.Init,
		Correct: input.Correct,
	})
	if err != nil {
		return nil, evaluateCaseOutput{}, fmt.Errorf("evaluate case: %w", err)
	}
	s.log.Debug("evaluated case over MCP",
		"global_total", row.Global.Total(), "local_total", row.Local.Total())
	return nil, evaluateCaseOutput{Global: row.Global, Local: row.Local}, nil
}

// fixedRenderer feeds pre-rendered variants through the pipeline.
type fixedRenderer struct {
	global, local string
}

func (f fixedRenderer) Render(context.Context, render.Request) (*render.Rendering, error) {
	return &render.Rendering{Global: f.global, Local: f.local}, nil
}
