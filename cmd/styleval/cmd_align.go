package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"styleval/pkg/textalign"
)

var alignCmd = &cobra.Command{
	Use:   "align <file1> <file2> [file3]",
	Short: "Align two or three files and print the gap-padded forms",
	Long: `Align is a debugging view into the engine: it aligns the given files
character by character and prints each gap-padded form, gaps rendered as ␣.
With three files the heuristic triple alignment is used.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runAlign,
}

func runAlign(cmd *cobra.Command, args []string) error {
	texts := make([]string, len(args))
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		texts[i] = string(data)
	}

	out := cmd.OutOrStdout()
	if len(texts) == 2 {
		a, b := textalign.Pair(texts[0], texts[1])
		fmt.Fprintln(out, a.String())
		fmt.Fprintln(out, b.String())
		return nil
	}

	a, b, c := textalign.Triple(texts[0], texts[1], texts[2])
	fmt.Fprintln(out, a.String())
	fmt.Fprintln(out, b.String())
	fmt.Fprintln(out, c.String())
	return nil
}
