package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"styleval/internal/format"
	"styleval/internal/report"
)

var reportFlags struct {
	format string
	output string
}

var reportCmd = &cobra.Command{
	Use:   "report <report.csv>",
	Short: "Summarize an existing report.csv",
	Long: `Report re-reads a report.csv written by evaluate and prints the numeric
summary of every count column. HTML output is a standalone page.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportFlags.format, "format", "ascii", "Output format (ascii, markdown, html)")
	f.StringVarP(&reportFlags.output, "output", "o", "", "Write to file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
	mode, ok := format.ParseMode(reportFlags.format)
	if !ok {
		return fmt.Errorf("unknown format %q (want ascii, markdown or html)", reportFlags.format)
	}

	rows, err := report.ReadReport(args[0])
	if err != nil {
		return err
	}

	rendered := report.RenderDescribe(report.Describe(rows), mode)
	if mode == format.HTML {
		rendered = htmlPage(fmt.Sprintf("styleval report — %d files", len(rows)), rendered)
	}

	if reportFlags.output != "" {
		if err := os.WriteFile(reportFlags.output, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}

// htmlPage wraps a rendered table into a minimal standalone page.
func htmlPage(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 4px 10px; }
</style>
</head>
<body>
<h1>%s</h1>
%s
</body>
</html>
`, title, title, body)
}
