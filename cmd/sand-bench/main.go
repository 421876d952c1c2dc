package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"sandca/internal/bench"
	"sandca/internal/config"
	"sandca/internal/logging"
	"sandca/internal/sims/sand"
)

func main() {
	runs := flag.Int("runs", 8, "number of seeds to simulate")
	steps := flag.Int("steps", 600, "ticks to simulate per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	sample := flag.Int("sample", 10, "record statistics every n ticks")
	chart := flag.String("chart", "", "write an HTML chart of the runs to this file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	var overrides config.KVList
	flag.Var(&overrides, "set", "sand option in key=value form (repeatable)")
	flag.Parse()

	logger, err := logging.New(logging.Options{Level: *logLevel})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()
	log := logger.Sugar()

	settings := config.Default()
	if err := settings.Merge(overrides); err != nil {
		log.Fatal(err)
	}
	cfg := sand.FromMap(settings.Options)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := bench.Run(ctx, bench.Options{
		Config:      cfg,
		Runs:        *runs,
		Steps:       *steps,
		Workers:     *workers,
		SampleEvery: *sample,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%-6s %-8s %-10s %-8s %-10s %s\n", "run", "seed", "peak", "settled", "elapsed", "census")
	for _, r := range results {
		fmt.Printf("%-6d %-8d %-10d %-8d %-10s %s\n",
			r.Run, r.Seed, r.PeakActive, r.SettledAt, r.Elapsed.Round(time.Millisecond), census(r))
	}
	summary := bench.Summarize(results)
	fmt.Printf("\n%d runs, %d settled, mean peak %.1f active, %.0f ticks/s (wall %s)\n",
		summary.Runs, summary.Settled, summary.MeanPeakActive, summary.TicksPerSecond,
		time.Since(start).Round(time.Millisecond))

	if *chart == "" {
		return
	}
	f, err := os.Create(*chart)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	title := fmt.Sprintf("sand %dx%d %s", cfg.Width, cfg.Height, cfg.Scene)
	if err := bench.WriteChart(f, title, results); err != nil {
		log.Fatal(err)
	}
	log.Infow("chart written", "path", *chart)
}

func census(r bench.Result) string {
	out := ""
	for _, t := range sand.Types() {
		if t == sand.Empty || r.Census[t] == 0 {
			continue
		}
		out += fmt.Sprintf("%s=%d ", t, r.Census[t])
	}
	return out
}
