// Package report persists evaluation results as a report.csv plus per-file
// text dumps, and summarizes an existing report. The column layout is parsed
// by external dashboards and must never change.
package report

import (
	"strconv"

	"styleval/pkg/confusion"
)

// Columns is the exact report.csv header, in order. External consumers parse
// the file positionally; do not reorder or rename.
var Columns = []string{
	"repo", "filepath", "style",
	"misdetection", "undetected", "detected_bad_change", "detected_good_change",
	"local_misdetection", "local_undetected", "local_detected_bad_change",
	"local_detected_good_change",
	"predicted_file", "init_file", "correct_file",
	"local_predicted_file", "local_init_file", "local_correct_file",
}

// CountColumns are the numeric columns of the report, in header order.
var CountColumns = Columns[3:11]

// Row is one evaluated file. The six text fields hold file contents until
// the writer dumps them to disk; after ReadReport they hold dump file names.
type Row struct {
	Repo  string
	Path  string
	Style string

	Global confusion.Counts
	Local  confusion.Counts

	GlobalPredicted string
	GlobalInit      string
	GlobalCorrect   string
	LocalPredicted  string
	LocalInit       string
	LocalCorrect    string
}

// counts returns the eight numeric cells in column order.
func (r Row) counts() []int {
	return []int{
		r.Global.Misdetection, r.Global.Undetected,
		r.Global.DetectedBadChange, r.Global.DetectedGoodChange,
		r.Local.Misdetection, r.Local.Undetected,
		r.Local.DetectedBadChange, r.Local.DetectedGoodChange,
	}
}

// record renders the row as CSV cells, with the text payloads replaced by
// the given dump file names (same order as the payload columns).
func (r Row) record(dumpNames []string) []string {
	rec := make([]string, 0, len(Columns))
	rec = append(rec, r.Repo, r.Path, r.Style)
	for _, n := range r.counts() {
		rec = append(rec, strconv.Itoa(n))
	}
	return append(rec, dumpNames...)
}

// payloads returns the six text payloads in payload-column order:
// predicted, init, correct for the global variant, then the local variant.
func (r Row) payloads() []string {
	return []string{
		r.GlobalPredicted, r.GlobalInit, r.GlobalCorrect,
		r.LocalPredicted, r.LocalInit, r.LocalCorrect,
	}
}

// Collector accumulates rows for one run. It is created by the caller and
// passed down explicitly; two concurrent runs never share one.
type Collector struct {
	rows []Row
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends rows in the given order.
func (c *Collector) Add(rows ...Row) {
	c.rows = append(c.rows, rows...)
}

// Rows returns the accumulated rows in insertion order.
func (c *Collector) Rows() []Row {
	return c.rows
}

// Len returns the number of accumulated rows.
func (c *Collector) Len() int {
	return len(c.rows)
}
