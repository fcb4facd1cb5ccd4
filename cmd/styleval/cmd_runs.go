package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"styleval/internal/store"
)

var runsFlags struct {
	db string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded evaluation runs",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsFlags.db, "db", "styleval-report/runs.db", "Run store path")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(runsFlags.db)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet. Run 'styleval evaluate' first.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tStarted\tFinished\tStatus\tDataset\tRenderer\tReport\n")
	fmt.Fprintf(w, "--\t-------\t--------\t------\t-------\t--------\t------\n")
	for _, r := range runs {
		finished := r.FinishedAt
		if finished == "" {
			finished = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.StartedAt, finished, r.Status, r.Dataset, r.Renderer, r.ReportPath)
	}
	return w.Flush()
}
