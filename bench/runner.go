package bench

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"testing"
)

// RunConfig holds the run parameters. The defaults mirror a short run:
// three discarded warmup samples and three measured ones.
type RunConfig struct {
	WarmupCount    int
	IterationCount int
	GC             GCMode
	Logger         *log.Logger
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		WarmupCount:    3,
		IterationCount: 3,
		GC:             GCDefault,
	}
}

// Measurement is the raw outcome of one case.
type Measurement struct {
	Case        Case
	NsPerOp     []float64 // one entry per measured iteration
	AllocsPerOp int64
	BytesPerOp  int64
	Ops         int // b.N of the last measured iteration
}

// Runner drives cases through testing.Benchmark.
type Runner struct {
	suite     *Suite
	cfg       RunConfig
	benchmark func(func(*testing.B)) testing.BenchmarkResult
}

func NewRunner(suite *Suite, cfg RunConfig) (*Runner, error) {
	if suite == nil {
		return nil, errors.New("bench: nil suite")
	}
	if cfg.IterationCount < 1 {
		return nil, fmt.Errorf("bench: iteration count %d, need at least 1", cfg.IterationCount)
	}
	if cfg.WarmupCount < 0 {
		return nil, fmt.Errorf("bench: negative warmup count %d", cfg.WarmupCount)
	}
	mode, err := ParseGCMode(string(cfg.GC))
	if err != nil {
		return nil, err
	}
	cfg.GC = mode
	return &Runner{suite: suite, cfg: cfg, benchmark: testing.Benchmark}, nil
}

// Run measures each case in turn. It stops between samples once ctx is done
// and returns what was measured so far together with ctx.Err().
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Measurement, error) {
	restore := r.cfg.GC.apply()
	defer restore()

	r.logf("Running %d cases: warmup=%d iterations=%d gc=%s GOMAXPROCS=%d",
		len(cases), r.cfg.WarmupCount, r.cfg.IterationCount, r.cfg.GC, runtime.GOMAXPROCS(0))

	results := make([]Measurement, 0, len(cases))
	for _, c := range cases {
		m, err := r.runCase(ctx, c)
		if err != nil {
			return results, err
		}
		results = append(results, m)
	}
	return results, nil
}

func (r *Runner) runCase(ctx context.Context, c Case) (Measurement, error) {
	fn := func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			c.Run(r.suite)
		}
	}

	for i := 0; i < r.cfg.WarmupCount; i++ {
		if err := ctx.Err(); err != nil {
			return Measurement{}, err
		}
		r.benchmark(fn)
	}

	m := Measurement{Case: c, NsPerOp: make([]float64, 0, r.cfg.IterationCount)}
	for i := 0; i < r.cfg.IterationCount; i++ {
		if err := ctx.Err(); err != nil {
			return Measurement{}, err
		}
		res := r.benchmark(fn)
		if res.N == 0 {
			return Measurement{}, fmt.Errorf("bench: %s produced no iterations", c.Name)
		}
		ns := float64(res.T.Nanoseconds()) / float64(res.N)
		m.NsPerOp = append(m.NsPerOp, ns)
		m.AllocsPerOp = res.AllocsPerOp()
		m.BytesPerOp = res.AllocedBytesPerOp()
		m.Ops = res.N
		r.logf("%s: iteration %d/%d %.3f ns/op (%d ops)", c.Name, i+1, r.cfg.IterationCount, ns, res.N)
	}
	return m, nil
}

func (r *Runner) logf(format string, args ...any) {
	if r.cfg.Logger != nil {
		r.cfg.Logger.Printf(format, args...)
	}
}
