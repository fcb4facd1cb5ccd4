package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"styleval/internal/config"
	"styleval/internal/dataset"
	"styleval/internal/evaluate"
	"styleval/internal/format"
	"styleval/internal/logging"
	"styleval/internal/render"
	"styleval/internal/report"
	"styleval/internal/store"
)

var evaluateFlags struct {
	configPath  string
	input       string
	out         string
	renderer    string
	rendererURL string
	tokenFile   string
	parallel    int
	db          string
	demo        string
	maxLineLen  int
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the evaluation harness over a dataset or a demo scenario",
	Long: `Evaluate renders both predicted variants for every file of the dataset,
aligns each against the init and ground-truth texts, classifies every position
and writes report.csv plus per-file text dumps. The run is recorded in the
run store and a numeric summary is printed at the end.`,
	RunE: runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVar(&evaluateFlags.configPath, "config", "", "Run config file (YAML or JSON); flags override it")
	f.StringVar(&evaluateFlags.input, "input", ".", "Dataset root holding index.csv and the revision trees")
	f.StringVar(&evaluateFlags.out, "out", "styleval-report", "Report directory (report.csv, files/, runs.db)")
	f.StringVar(&evaluateFlags.renderer, "renderer", "stub", "Predicted-variant source (stub, oracle, http)")
	f.StringVar(&evaluateFlags.rendererURL, "renderer-url", "", "Base URL of the rendering service (http renderer)")
	f.StringVar(&evaluateFlags.tokenFile, "token-file", "", "File holding the rendering service bearer token")
	f.IntVar(&evaluateFlags.parallel, "parallel", 1, "Concurrent file evaluations")
	f.StringVar(&evaluateFlags.db, "db", "", "Run store path (default <out>/runs.db)")
	f.StringVar(&evaluateFlags.demo, "demo", "", "Evaluate an embedded demo scenario instead of a dataset")
	f.IntVar(&evaluateFlags.maxLineLen, "max-line-len", 0, "Skip files with lines longer than this (0 = default 500)")
}

// resolveConfig merges the optional config file with explicitly set flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if evaluateFlags.configPath != "" {
		loaded, err := config.Load(evaluateFlags.configPath, cfg)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = evaluateFlags.input
	}
	if flags.Changed("out") {
		cfg.Out = evaluateFlags.out
	}
	if flags.Changed("renderer") {
		cfg.Renderer = evaluateFlags.renderer
	}
	if flags.Changed("renderer-url") {
		cfg.RendererURL = evaluateFlags.rendererURL
	}
	if flags.Changed("token-file") {
		cfg.TokenFile = evaluateFlags.tokenFile
	}
	if flags.Changed("parallel") {
		cfg.Parallel = evaluateFlags.parallel
	}
	if flags.Changed("db") {
		cfg.DB = evaluateFlags.db
	}
	if flags.Changed("demo") {
		cfg.Demo = evaluateFlags.demo
	}
	if flags.Changed("max-line-len") {
		cfg.MaxLineLen = evaluateFlags.maxLineLen
	}

	if err := cfg.Normalize(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func buildRenderer(cfg config.Config) (render.Renderer, error) {
	switch cfg.Renderer {
	case "stub":
		return render.Stub{}, nil
	case "oracle":
		return render.Oracle{}, nil
	case "http":
		token := ""
		if cfg.TokenFile != "" {
			t, err := render.ReadToken(cfg.TokenFile)
			if err != nil {
				return nil, fmt.Errorf("read renderer token: %w", err)
			}
			token = t
		}
		return render.New(cfg.RendererURL, token,
			render.WithTimeout(2*time.Minute),
			render.WithLogger(logging.New("render")))
	}
	return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
}

// caseBatch is one index entry's worth of cases, evaluated and persisted
// together.
type caseBatch struct {
	label string
	cases []evaluate.Case
}

func collectBatches(cfg config.Config) (label string, batches []caseBatch, err error) {
	if cfg.Demo != "" {
		scenario, err := dataset.LoadScenario(cfg.Demo)
		if err != nil {
			return "", nil, err
		}
		return "demo:" + cfg.Demo, []caseBatch{{label: scenario.Name, cases: scenario.EvalCases()}}, nil
	}

	entries, err := dataset.ReadIndex(filepath.Join(cfg.Input, "index.csv"))
	if err != nil {
		return "", nil, err
	}
	source := dataset.TreeSource{Root: cfg.Input, MaxLineLen: cfg.MaxLineLen}
	for _, entry := range entries {
		cases, err := source.Cases(entry)
		if err != nil {
			return "", nil, fmt.Errorf("collect cases of %s: %w", entry.Repo, err)
		}
		batches = append(batches, caseBatch{
			label: fmt.Sprintf("%s (%s)", entry.Repo, entry.Style),
			cases: cases,
		})
	}
	return cfg.Input, batches, nil
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	start := time.Now()
	logger := logging.New("cli")

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	renderer, err := buildRenderer(cfg)
	if err != nil {
		return err
	}

	datasetLabel, batches, err := collectBatches(cfg)
	if err != nil {
		return err
	}

	dbPath := cfg.DB
	if dbPath == "" {
		dbPath = filepath.Join(cfg.Out, "runs.db")
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	writer, err := report.NewWriter(cfg.Out)
	if err != nil {
		return err
	}
	defer writer.Close()

	runID, err := st.CreateRun(datasetLabel, cfg.Renderer, writer.Path())
	if err != nil {
		return err
	}

	collector := report.NewCollector()
	runner := evaluate.Runner{Renderer: renderer, Parallel: cfg.Parallel}
	for _, batch := range batches {
		logger.Info("evaluating batch", "batch", batch.label, "cases", len(batch.cases))
		rows, err := runner.Run(cmd.Context(), batch.cases)
		if err != nil {
			_ = st.FinishRun(runID, store.StatusFailed)
			return fmt.Errorf("evaluate %s: %w", batch.label, err)
		}
		if err := writer.Append(rows...); err != nil {
			_ = st.FinishRun(runID, store.StatusFailed)
			return err
		}
		for _, row := range rows {
			if err := st.AddResult(runID, row); err != nil {
				_ = st.FinishRun(runID, store.StatusFailed)
				return err
			}
		}
		collector.Add(rows...)
	}

	if err := st.FinishRun(runID, store.StatusDone); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.RenderDescribe(report.Describe(collector.Rows()), format.ASCII))
	fmt.Fprintf(out, "evaluated %d files in %s, report at %s\n",
		collector.Len(), format.FmtDuration(time.Since(start)), writer.Path())
	return nil
}
