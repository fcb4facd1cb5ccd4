// Package changes locates the lines of a head revision that differ from its
// base revision. The evaluation harness feeds these line numbers to the
// renderer so the local variant can constrain its edits to them.
package changes

import (
	"sort"
	"strings"

	"styleval/pkg/textalign"
)

// NewLines returns the 1-based head line numbers of lines that were added or
// modified relative to base.
func NewLines(base, head string) []int {
	var lines []int
	for _, op := range textalign.Opcodes(splitLines(base), splitLines(head)) {
		if op.Kind != textalign.OpInsert && op.Kind != textalign.OpReplace {
			continue
		}
		for j := op.J1; j < op.J2; j++ {
			lines = append(lines, j+1)
		}
	}
	return lines
}

// DeletedLines returns the 1-based head line numbers adjacent to a deletion:
// the line before the deletion point and the line after it, where those
// exist. The deleted content itself has no head line number, so its
// neighbours stand in for it.
func DeletedLines(base, head string) []int {
	headLen := len(splitLines(head))
	seen := make(map[int]bool)
	var lines []int
	mark := func(n int) {
		if n < 1 || n > headLen || seen[n] {
			return
		}
		seen[n] = true
		lines = append(lines, n)
	}
	for _, op := range textalign.Opcodes(splitLines(base), splitLines(head)) {
		if op.Kind != textalign.OpDelete {
			continue
		}
		mark(op.J1)     // line before the deletion point
		mark(op.J1 + 1) // line after it
	}
	sort.Ints(lines)
	return lines
}

// Changed returns the sorted union of NewLines and DeletedLines.
func Changed(base, head string) []int {
	seen := make(map[int]bool)
	var lines []int
	for _, n := range NewLines(base, head) {
		if !seen[n] {
			seen[n] = true
			lines = append(lines, n)
		}
	}
	for _, n := range DeletedLines(base, head) {
		if !seen[n] {
			seen[n] = true
			lines = append(lines, n)
		}
	}
	sort.Ints(lines)
	return lines
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
