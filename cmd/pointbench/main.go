package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"testing"

	"github.com/Evgeny0103/AlgoritmLesson3/bench"
	"github.com/Evgeny0103/AlgoritmLesson3/coords"
	"github.com/Evgeny0103/AlgoritmLesson3/report"
)

var (
	sizeFlag       = flag.Int("size", coords.DefaultSize, "Number of coordinates per sequence")
	minFlag        = flag.Int("min", coords.DefaultMin, "Smallest coordinate value")
	maxFlag        = flag.Int("max", coords.DefaultMax, "Largest coordinate value")
	seedFlag       = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	warmupFlag     = flag.Int("warmup", 3, "Discarded samples per case")
	iterationsFlag = flag.Int("iterations", 3, "Measured samples per case")
	benchtimeFlag  = flag.String("benchtime", "1s", "Run time per sample, as accepted by go test -benchtime")
	gcFlag         = flag.String("gc", "default", "GC mode: default, tuned, disabled")
	casesFlag      = flag.String("cases", "", "Comma separated case names, empty runs all")
	outFlag        = flag.String("out", "BenchmarkResults", "Report directory, empty skips export")
	quietFlag      = flag.Bool("quiet", false, "Only print the result table")
)

func main() {
	// testing.Benchmark reads its run time from the test flags.
	testing.Init()
	flag.Parse()

	if err := flag.Set("test.benchtime", *benchtimeFlag); err != nil {
		log.Fatalf("Invalid -benchtime %q: %v", *benchtimeFlag, err)
	}

	var progress io.Writer = os.Stdout
	if *quietFlag {
		progress = io.Discard
	}
	logger := log.New(progress, "[pointbench] ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, logger *log.Logger) error {
	logger.Println("Step 1: Generating coordinates...")
	opts := []coords.Option{coords.WithLogger(logger)}
	if *seedFlag != 0 {
		opts = append(opts, coords.WithSeed(*seedFlag))
	}
	store, err := coords.New(*sizeFlag, *minFlag, *maxFlag, opts...)
	if err != nil {
		return fmt.Errorf("failed to build coordinate store: %w", err)
	}

	cases, err := bench.Lookup(splitNames(*casesFlag)...)
	if err != nil {
		return err
	}
	gc, err := bench.ParseGCMode(*gcFlag)
	if err != nil {
		return err
	}

	logger.Println("Step 2: Collecting environment...")
	env := report.CollectEnvironment(logger)

	logger.Println("Step 3: Running benchmarks...")
	runner, err := bench.NewRunner(bench.NewSuiteWithStore(store), bench.RunConfig{
		WarmupCount:    *warmupFlag,
		IterationCount: *iterationsFlag,
		GC:             gc,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	measurements, err := runner.Run(ctx, cases)
	if err != nil {
		if len(measurements) == 0 {
			return fmt.Errorf("benchmark run failed: %w", err)
		}
		logger.Printf("Run interrupted after %d of %d cases: %v", len(measurements), len(cases), err)
	}

	rep := report.New("Point distance", env, measurements)
	if err := rep.WriteText(os.Stdout); err != nil {
		return err
	}

	if *outFlag == "" {
		return nil
	}
	logger.Println("Step 4: Exporting reports...")
	paths, err := rep.Export(*outFlag, "pointbench")
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Printf("Saved report: %s", p)
	}
	return nil
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
