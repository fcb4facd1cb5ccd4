package report

import (
	"math"
	"sort"

	"styleval/internal/format"
)

// Stats is the numeric summary of one count column.
type Stats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation; 0 for fewer than 2 rows
	Min    float64
	P25    float64
	P50    float64
	P75    float64
	Max    float64
}

// Describe summarizes every count column of the given rows, in column
// order. Quantiles use linear interpolation between closest ranks.
func Describe(rows []Row) []Stats {
	out := make([]Stats, len(CountColumns))
	for i, col := range CountColumns {
		vals := make([]float64, len(rows))
		for j, r := range rows {
			vals[j] = float64(r.counts()[i])
		}
		out[i] = describeColumn(col, vals)
	}
	return out
}

func describeColumn(name string, vals []float64) Stats {
	s := Stats{Column: name, Count: len(vals)}
	if len(vals) == 0 {
		return s
	}

	var sum float64
	for _, v := range vals {
		sum += v
	}
	s.Mean = sum / float64(len(vals))

	if len(vals) > 1 {
		var sq float64
		for _, v := range vals {
			d := v - s.Mean
			sq += d * d
		}
		s.Std = math.Sqrt(sq / float64(len(vals)-1))
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.P25 = quantile(sorted, 0.25)
	s.P50 = quantile(sorted, 0.50)
	s.P75 = quantile(sorted, 0.75)
	return s
}

// quantile interpolates linearly between the closest ranks of a sorted
// sample.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// RenderDescribe renders the summary as a table in the given mode.
func RenderDescribe(stats []Stats, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("column", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, s := range stats {
		tb.Row(s.Column, s.Count,
			format.FmtStat(s.Mean), format.FmtStat(s.Std),
			format.FmtStat(s.Min), format.FmtStat(s.P25),
			format.FmtStat(s.P50), format.FmtStat(s.P75),
			format.FmtStat(s.Max))
	}
	cfgs := make([]format.ColumnConfig, 0, 8)
	for i := 2; i <= 9; i++ {
		cfgs = append(cfgs, format.ColumnConfig{Number: i, Align: format.AlignRight})
	}
	tb.Columns(cfgs...)
	return tb.String()
}
