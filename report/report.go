// Package report turns benchmark measurements into summary statistics and
// renders them to the console, AsciiDoc, GitHub Markdown and HTML.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Evgeny0103/AlgoritmLesson3/bench"
)

type Report struct {
	Title       string
	GeneratedAt time.Time
	Environment Environment
	Summaries   []Summary
}

func New(title string, env Environment, ms []bench.Measurement) *Report {
	return &Report{
		Title:       title,
		GeneratedAt: time.Now(),
		Environment: env,
		Summaries:   Summarize(ms),
	}
}

var columns = []string{"Method", "Mean", "Error", "StdDev", "Max", "Median", "Ratio", "Allocs/op", "B/op"}

// rows returns the formatted table cells, one slice per summary.
func (r *Report) rows() [][]string {
	out := make([][]string, 0, len(r.Summaries))
	for _, s := range r.Summaries {
		out = append(out, []string{
			s.Name,
			formatNs(s.Mean),
			formatNs(s.StdErr),
			formatNs(s.StdDev),
			formatNs(s.Max),
			formatNs(s.Median),
			fmt.Sprintf("%.2f", finite(s.Ratio)),
			fmt.Sprint(s.AllocsPerOp),
			fmt.Sprint(s.BytesPerOp),
		})
	}
	return out
}

// environmentLines is the header block shared by all formats.
func (r *Report) environmentLines() []string {
	e := r.Environment
	lines := []string{
		fmt.Sprintf("Go=%s, %s/%s, GOMAXPROCS=%d, NumCPU=%d", e.GoVersion, e.GOOS, e.GOARCH, e.GOMAXPROCS, e.NumCPU),
	}
	if e.CPUBrand != "" {
		lines = append(lines, fmt.Sprintf("CPU=%s, %d physical / %d logical cores", e.CPUBrand, e.PhysicalCores, e.LogicalCores))
	}
	if len(e.CPUFeatures) > 0 {
		lines = append(lines, "Features="+strings.Join(e.CPUFeatures, " "))
	}
	if e.Platform != "" || e.KernelVersion != "" {
		lines = append(lines, fmt.Sprintf("OS=%s, kernel %s", e.Platform, e.KernelVersion))
	}
	if e.TotalMemory > 0 {
		lines = append(lines, fmt.Sprintf("Memory=%d MB", e.TotalMemory/1024/1024))
	}
	return lines
}

func formatNs(v float64) string {
	return fmt.Sprintf("%.3f ns", finite(v))
}
