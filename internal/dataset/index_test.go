package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeIndex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadIndex(t *testing.T) {
	path := writeIndex(t, "repo,style,from,to\nocto/hello,indent-2,abc123,def456\nocto/cli,quotes,111,222\n")

	got, err := ReadIndex(path)
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	want := []Entry{
		{Repo: "octo/hello", Style: "indent-2", From: "abc123", To: "def456"},
		{Repo: "octo/cli", Style: "quotes", From: "111", To: "222"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestReadIndex_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"wrong header", "repository,style,from,to\na,b,c,d\n"},
		{"wrong column count", "repo,style,from\na,b,c\n"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadIndex(writeIndex(t, tc.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := ReadIndex(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
