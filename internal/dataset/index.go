// Package dataset supplies evaluation cases: from an index.csv plus a
// revision tree on disk, or from embedded demo scenarios.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Entry is one row of index.csv: a (repository, style) pair with the base
// revision holding the correct style and the head revision holding the
// injected mistakes.
type Entry struct {
	Repo  string
	Style string
	From  string // base revision: ground truth
	To    string // head revision: style mistakes present
}

var indexHeader = []string{"repo", "style", "from", "to"}

// ReadIndex parses an index.csv. The header must be exactly
// "repo,style,from,to".
func ReadIndex(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse index %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("index %s is empty", path)
	}
	if len(records[0]) != len(indexHeader) {
		return nil, fmt.Errorf("index %s has %d columns, want %d", path, len(records[0]), len(indexHeader))
	}
	for i, col := range indexHeader {
		if records[0][i] != col {
			return nil, fmt.Errorf("index %s: column %d is %q, want %q", path, i+1, records[0][i], col)
		}
	}

	entries := make([]Entry, 0, len(records)-1)
	for _, rec := range records[1:] {
		entries = append(entries, Entry{Repo: rec[0], Style: rec[1], From: rec[2], To: rec[3]})
	}
	return entries, nil
}
