package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"styleval/pkg/confusion"
)

// FilesDir is the subdirectory of the report directory holding text dumps.
const FilesDir = "files"

// ReportName is the CSV file name inside the report directory.
const ReportName = "report.csv"

// payloadColumns are the six text-payload column names in record order.
var payloadColumns = Columns[11:]

// Writer appends rows to <dir>/report.csv and dumps each row's text
// payloads under <dir>/files/. The CSV uses CRLF line endings, matching the
// dialect of the reports the dashboards already consume.
type Writer struct {
	dir  string
	file *os.File
	csv  *csv.Writer
}

// NewWriter truncates <dir>/report.csv, writes the header and prepares the
// files/ directory. The caller must Close the writer to flush.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Join(dir, FilesDir), 0755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, ReportName))
	if err != nil {
		return nil, fmt.Errorf("create report.csv: %w", err)
	}
	w := csv.NewWriter(f)
	w.UseCRLF = true
	if err := w.Write(Columns); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write report header: %w", err)
	}
	return &Writer{dir: dir, file: f, csv: w}, nil
}

// Append dumps each row's payloads to files/ and writes the CSV records.
func (w *Writer) Append(rows ...Row) error {
	for _, r := range rows {
		names := make([]string, len(payloadColumns))
		for i, col := range payloadColumns {
			name := dumpName(r, col)
			path := filepath.Join(w.dir, FilesDir, name)
			if err := os.WriteFile(path, []byte(r.payloads()[i]), 0644); err != nil {
				return fmt.Errorf("dump %s: %w", name, err)
			}
			names[i] = name
		}
		if err := w.csv.Write(r.record(names)); err != nil {
			return fmt.Errorf("write report row for %s: %w", r.Path, err)
		}
	}
	w.csv.Flush()
	return w.csv.Error()
}

// Close flushes and closes the report file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// Path returns the location of the report.csv being written.
func (w *Writer) Path() string {
	return filepath.Join(w.dir, ReportName)
}

// dumpName builds the dump file name for one payload column of one row.
// Path separators are flattened so every dump lands directly in files/.
func dumpName(r Row, column string) string {
	name := fmt.Sprintf("%s_%s_%s_%s", r.Repo, r.Style, column, r.Path)
	return strings.ReplaceAll(name, "/", "_")
}

// ReadReport parses a report.csv back into rows. The six payload fields
// hold the dump file names, not file contents.
func ReadReport(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("report %s is empty", path)
	}
	if len(records[0]) != len(Columns) {
		return nil, fmt.Errorf("report %s has %d columns, want %d", path, len(records[0]), len(Columns))
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		counts := make([]int, 8)
		for j := range counts {
			n, err := strconv.Atoi(rec[3+j])
			if err != nil {
				return nil, fmt.Errorf("report row %d, column %s: %w", i+1, Columns[3+j], err)
			}
			counts[j] = n
		}
		rows = append(rows, Row{
			Repo:  rec[0],
			Path:  rec[1],
			Style: rec[2],
			Global: confusion.Counts{
				Misdetection:       counts[0],
				Undetected:         counts[1],
				DetectedBadChange:  counts[2],
				DetectedGoodChange: counts[3],
			},
			Local: confusion.Counts{
				Misdetection:       counts[4],
				Undetected:         counts[5],
				DetectedBadChange:  counts[6],
				DetectedGoodChange: counts[7],
			},
			GlobalPredicted: rec[11],
			GlobalInit:      rec[12],
			GlobalCorrect:   rec[13],
			LocalPredicted:  rec[14],
			LocalInit:       rec[15],
			LocalCorrect:    rec[16],
		})
	}
	return rows, nil
}
