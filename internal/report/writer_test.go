package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"styleval/pkg/confusion"
)

func sampleRow() Row {
	return Row{
		Repo:   "octocat/hello",
		Path:   "src/app.js",
		Style:  "indent-2",
		Global: confusion.Counts{Misdetection: 1, Undetected: 2, DetectedBadChange: 3, DetectedGoodChange: 4},
		Local:  confusion.Counts{Misdetection: 5, Undetected: 6, DetectedBadChange: 7, DetectedGoodChange: 8},

		GlobalPredicted: "predicted global",
		GlobalInit:      "init text",
		GlobalCorrect:   "correct text",
		LocalPredicted:  "predicted local",
		LocalInit:       "init text",
		LocalCorrect:    "correct text",
	}
}

func TestWriter_HeaderAndRow(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Append(sampleRow()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ReportName))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	content := string(data)

	wantHeader := strings.Join(Columns, ",")
	if !strings.HasPrefix(content, wantHeader+"\r\n") {
		t.Errorf("header mismatch, got:\n%s", content)
	}
	// CRLF dialect
	if !strings.Contains(content, "\r\n") {
		t.Error("expected CRLF line endings")
	}
	if !strings.Contains(content, "octocat/hello,src/app.js,indent-2,1,2,3,4,5,6,7,8,") {
		t.Errorf("row cells missing, got:\n%s", content)
	}
}

func TestWriter_DumpsPayloads(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Append(sampleRow()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Path separators flattened: everything lands directly under files/.
	name := "octocat_hello_indent-2_predicted_file_src_app.js"
	data, err := os.ReadFile(filepath.Join(dir, FilesDir, name))
	if err != nil {
		t.Fatalf("read dump %s: %v", name, err)
	}
	if string(data) != "predicted global" {
		t.Errorf("dump content = %q, want %q", data, "predicted global")
	}

	entries, err := os.ReadDir(filepath.Join(dir, FilesDir))
	if err != nil {
		t.Fatalf("read files dir: %v", err)
	}
	if len(entries) != 6 {
		t.Errorf("expected 6 dumps, got %d", len(entries))
	}
}

func TestReadReport_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	row := sampleRow()
	if err := w.Append(row); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rows, err := ReadReport(filepath.Join(dir, ReportName))
	if err != nil {
		t.Fatalf("ReadReport: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	got := rows[0]
	if got.Repo != row.Repo || got.Path != row.Path || got.Style != row.Style {
		t.Errorf("id fields mismatch: %+v", got)
	}
	if diff := cmp.Diff(row.Global, got.Global); diff != "" {
		t.Errorf("global counts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(row.Local, got.Local); diff != "" {
		t.Errorf("local counts (-want +got):\n%s", diff)
	}
	// After reading back, payload fields hold the dump file names.
	if !strings.HasSuffix(got.GlobalInit, "_init_file_src_app.js") {
		t.Errorf("GlobalInit should be a dump name, got %q", got.GlobalInit)
	}
}

func TestReadReport_Errors(t *testing.T) {
	if _, err := ReadReport(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "report.csv")
	if err := os.WriteFile(bad, []byte("a,b,c\r\n1,2,3\r\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadReport(bad); err == nil {
		t.Error("expected error for wrong column count")
	}
}

func TestCollector_CallerOwned(t *testing.T) {
	c := NewCollector()
	if c.Len() != 0 {
		t.Fatalf("new collector not empty: %d", c.Len())
	}
	c.Add(sampleRow())
	c.Add(sampleRow(), sampleRow())
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}

	other := NewCollector()
	if other.Len() != 0 {
		t.Error("collectors must not share state")
	}
}
