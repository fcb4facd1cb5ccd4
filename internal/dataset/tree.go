package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"styleval/internal/changes"
	"styleval/internal/evaluate"
	"styleval/internal/logging"
)

// DefaultMaxLineLen is the line-length limit above which a file is skipped.
// Minified bundles and generated blobs produce alignments nobody reads.
const DefaultMaxLineLen = 500

// TreeSource reads evaluation cases from a gitless revision tree laid out as
// <root>/<repo>/<rev>/<path...>.
type TreeSource struct {
	Root       string
	MaxLineLen int // 0 means DefaultMaxLineLen
}

// Cases pairs every file of the entry's head (To) tree with its counterpart
// in the base (From) tree and returns one case per evaluable file, sorted by
// path. Skipped are: byte-identical pairs, files with empty head content,
// and files with a line longer than the limit on either side. A file absent
// from the base tree gets an empty correct text.
func (s TreeSource) Cases(entry Entry) ([]evaluate.Case, error) {
	maxLine := s.MaxLineLen
	if maxLine <= 0 {
		maxLine = DefaultMaxLineLen
	}
	logger := logging.New("dataset")

	headRoot := filepath.Join(s.Root, entry.Repo, entry.To)
	baseRoot := filepath.Join(s.Root, entry.Repo, entry.From)
	if _, err := os.Stat(headRoot); err != nil {
		return nil, fmt.Errorf("head revision tree %s: %w", headRoot, err)
	}

	var paths []string
	err := filepath.WalkDir(headRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(headRoot, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk head revision tree: %w", err)
	}
	sort.Strings(paths)

	var cases []evaluate.Case
	for _, rel := range paths {
		init, err := readText(filepath.Join(headRoot, rel))
		if err != nil {
			return nil, fmt.Errorf("read head file %s: %w", rel, err)
		}
		correct, err := readText(filepath.Join(baseRoot, rel))
		if os.IsNotExist(err) {
			correct = ""
		} else if err != nil {
			return nil, fmt.Errorf("read base file %s: %w", rel, err)
		}

		switch {
		case init == "":
			logger.Debug("skipping empty file", "repo", entry.Repo, "filepath", rel)
			continue
		case init == correct:
			logger.Debug("skipping identical file", "repo", entry.Repo, "filepath", rel)
			continue
		case longestLine(init) > maxLine || longestLine(correct) > maxLine:
			logger.Debug("skipping long-line file", "repo", entry.Repo, "filepath", rel)
			continue
		}

		cases = append(cases, evaluate.Case{
			Repo:         entry.Repo,
			Style:        entry.Style,
			Path:         rel,
			Init:         init,
			Correct:      correct,
			ChangedLines: changes.Changed(correct, init),
		})
	}
	return cases, nil
}

// readText reads a file as UTF-8, replacing invalid bytes with U+FFFD so
// the alignment always works over well-formed runes.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
}

func longestLine(s string) int {
	max := 0
	for _, line := range strings.Split(s, "\n") {
		if n := utf8.RuneCountInString(line); n > max {
			max = n
		}
	}
	return max
}
