package report

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Evgeny0103/AlgoritmLesson3/bench"
)

// Summary holds the statistics of one case. Times are in ns/op.
type Summary struct {
	Name        string
	Description string
	Baseline    bool

	Mean   float64
	StdErr float64
	StdDev float64
	Max    float64
	Median float64
	Ratio  float64 // Mean / baseline Mean

	AllocsPerOp int64
	BytesPerOp  int64
	Samples     int
}

// Summarize computes one Summary per measurement. The ratio column is
// relative to the first baseline case, or to the first case if none is
// marked. A zero baseline mean yields a zero ratio.
func Summarize(ms []bench.Measurement) []Summary {
	out := make([]Summary, len(ms))
	for i, m := range ms {
		out[i] = summarize(m)
	}
	if len(out) == 0 {
		return out
	}

	base := out[0].Mean
	for _, s := range out {
		if s.Baseline {
			base = s.Mean
			break
		}
	}
	for i := range out {
		if base != 0 {
			out[i].Ratio = out[i].Mean / base
		}
	}
	return out
}

func summarize(m bench.Measurement) Summary {
	s := Summary{
		Name:        m.Case.Name,
		Description: m.Case.Description,
		Baseline:    m.Case.Baseline,
		AllocsPerOp: m.AllocsPerOp,
		BytesPerOp:  m.BytesPerOp,
		Samples:     len(m.NsPerOp),
	}
	if s.Samples == 0 {
		return s
	}

	sorted := append([]float64(nil), m.NsPerOp...)
	sort.Float64s(sorted)

	s.Mean = stat.Mean(sorted, nil)
	s.Max = floats.Max(sorted)
	s.Median = median(sorted)
	if s.Samples > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
		s.StdErr = stat.StdErr(s.StdDev, float64(s.Samples))
	}
	return s
}

// median of an already sorted slice; even lengths average the middle pair
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
