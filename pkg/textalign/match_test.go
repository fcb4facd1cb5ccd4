package textalign_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"styleval/pkg/textalign"
)

func TestBlocks(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []textalign.Block
	}{
		{
			name: "classic",
			a:    "abxcd",
			b:    "abcd",
			want: []textalign.Block{{A: 0, B: 0, Size: 2}, {A: 3, B: 2, Size: 2}, {A: 5, B: 4, Size: 0}},
		},
		{
			name: "identical",
			a:    "abc",
			b:    "abc",
			want: []textalign.Block{{A: 0, B: 0, Size: 3}, {A: 3, B: 3, Size: 0}},
		},
		{
			name: "disjoint",
			a:    "abc",
			b:    "xyz",
			want: []textalign.Block{{A: 3, B: 3, Size: 0}},
		},
		{
			name: "empty a",
			a:    "",
			b:    "abc",
			want: []textalign.Block{{A: 0, B: 3, Size: 0}},
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: []textalign.Block{{A: 0, B: 0, Size: 0}},
		},
		{
			// Two equally long candidates in b; the earlier one wins.
			name: "tie goes to leftmost in b",
			a:    "ab",
			b:    "abab",
			want: []textalign.Block{{A: 0, B: 0, Size: 2}, {A: 2, B: 4, Size: 0}},
		},
		{
			// Two equally long candidates in a; the earlier one wins.
			name: "tie goes to leftmost in a",
			a:    "abab",
			b:    "ab",
			want: []textalign.Block{{A: 0, B: 0, Size: 2}, {A: 4, B: 2, Size: 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textalign.Blocks([]rune(tt.a), []rune(tt.b))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Blocks(%q, %q) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
		})
	}
}

func TestBlocksRepetitiveInput(t *testing.T) {
	// 250 identical characters on each side. A popularity heuristic would
	// refuse to match them; exact matching must find the full common run.
	a := "x" + strings.Repeat(" ", 250) + "y"
	b := strings.Repeat(" ", 250)

	got := textalign.Blocks([]rune(a), []rune(b))
	want := []textalign.Block{{A: 1, B: 0, Size: 250}, {A: 252, B: 250, Size: 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestOpcodes(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []textalign.Opcode
	}{
		{
			name: "mixed script",
			a:    "aabc",
			b:    "abbcc",
			want: []textalign.Opcode{
				{Kind: textalign.OpDelete, I1: 0, I2: 1, J1: 0, J2: 0},
				{Kind: textalign.OpEqual, I1: 1, I2: 3, J1: 0, J2: 2},
				{Kind: textalign.OpInsert, I1: 3, I2: 3, J1: 2, J2: 3},
				{Kind: textalign.OpEqual, I1: 3, I2: 4, J1: 3, J2: 4},
				{Kind: textalign.OpInsert, I1: 4, I2: 4, J1: 4, J2: 5},
			},
		},
		{
			name: "pure replace",
			a:    "abc",
			b:    "xyz",
			want: []textalign.Opcode{
				{Kind: textalign.OpReplace, I1: 0, I2: 3, J1: 0, J2: 3},
			},
		},
		{
			name: "insert only",
			a:    "",
			b:    "ab",
			want: []textalign.Opcode{
				{Kind: textalign.OpInsert, I1: 0, I2: 0, J1: 0, J2: 2},
			},
		},
		{
			name: "delete only",
			a:    "ab",
			b:    "",
			want: []textalign.Opcode{
				{Kind: textalign.OpDelete, I1: 0, I2: 2, J1: 0, J2: 0},
			},
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textalign.Opcodes([]rune(tt.a), []rune(tt.b))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Opcodes(%q, %q) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
		})
	}
}

func TestOpcodesCoverBothSequences(t *testing.T) {
	pairs := [][2]string{
		{"aabc", "abbcc"},
		{"the quick brown fox", "the quick red fox jumps"},
		{"", "abc"},
		{"same", "same"},
		{"mississippi", "mispsispi"},
	}
	for _, p := range pairs {
		a, b := []rune(p[0]), []rune(p[1])
		ops := textalign.Opcodes(a, b)
		i, j := 0, 0
		for _, op := range ops {
			if op.I1 != i || op.J1 != j {
				t.Fatalf("Opcodes(%q, %q): opcode %+v does not continue at (%d, %d)", p[0], p[1], op, i, j)
			}
			if op.I2 < op.I1 || op.J2 < op.J1 || (op.I2 == op.I1 && op.J2 == op.J1) {
				t.Fatalf("Opcodes(%q, %q): empty or inverted opcode %+v", p[0], p[1], op)
			}
			i, j = op.I2, op.J2
		}
		if i != len(a) || j != len(b) {
			t.Fatalf("Opcodes(%q, %q): script ends at (%d, %d), want (%d, %d)", p[0], p[1], i, j, len(a), len(b))
		}
	}
}

func TestOpcodesOverLines(t *testing.T) {
	// The matcher is generic; line slices work the same way as runes.
	a := []string{"package main", "", "func main() {}"}
	b := []string{"package main", "", "import \"fmt\"", "", "func main() {}"}

	got := textalign.Opcodes(a, b)
	want := []textalign.Opcode{
		{Kind: textalign.OpEqual, I1: 0, I2: 2, J1: 0, J2: 2},
		{Kind: textalign.OpInsert, I1: 2, I2: 2, J1: 2, J2: 4},
		{Kind: textalign.OpEqual, I1: 2, I2: 3, J1: 4, J2: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Opcodes mismatch (-want +got):\n%s", diff)
	}
}
