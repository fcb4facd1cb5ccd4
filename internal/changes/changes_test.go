package changes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewLines(t *testing.T) {
	cases := []struct {
		name       string
		base, head string
		want       []int
	}{
		{
			name: "identical",
			base: "a\nb\nc",
			head: "a\nb\nc",
			want: nil,
		},
		{
			name: "modified line",
			base: "a\nb\nc",
			head: "a\nx\nc",
			want: []int{2},
		},
		{
			name: "inserted line",
			base: "a\nc",
			head: "a\nb\nc",
			want: []int{2},
		},
		{
			name: "appended lines",
			base: "a",
			head: "a\nb\nc",
			want: []int{2, 3},
		},
		{
			name: "deletion only",
			base: "a\nb\nc",
			head: "a\nc",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewLines(tc.base, tc.head)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("NewLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeletedLines(t *testing.T) {
	cases := []struct {
		name       string
		base, head string
		want       []int
	}{
		{
			name: "identical",
			base: "a\nb\nc",
			head: "a\nb\nc",
			want: nil,
		},
		{
			name: "middle deletion marks neighbours",
			base: "a\nb\nc",
			head: "a\nc",
			want: []int{1, 2},
		},
		{
			name: "leading deletion marks first line",
			base: "x\na\nb",
			head: "a\nb",
			want: []int{1},
		},
		{
			name: "trailing deletion marks last line",
			base: "a\nb\nx",
			head: "a\nb",
			want: []int{2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeletedLines(tc.base, tc.head)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("DeletedLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChanged_UnionSortedDeduped(t *testing.T) {
	base := "a\nb\nc\nd\ne"
	head := "a\nx\nc\ne" // line 2 modified ("b"→"x"), "d" deleted between "c" and "e"

	got := Changed(base, head)
	want := []int{2, 3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Changed mismatch (-want +got):\n%s", diff)
	}
}
