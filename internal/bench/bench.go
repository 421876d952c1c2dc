// Package bench runs many seeded sand simulations in parallel and collects
// per-tick activity statistics.
package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"sandca/internal/sims/sand"
)

// ErrInvalidOptions is returned when a run cannot be scheduled.
var ErrInvalidOptions = errors.New("bench: invalid options")

// Options describes a batch of runs. Run i uses seed Config.Seed+i.
type Options struct {
	Config      sand.Config
	Runs        int
	Steps       int
	Workers     int
	SampleEvery int
}

// Sample is the engine activity after one tick.
type Sample struct {
	Tick      int
	Evaluated int
	Changed   int
	Active    int
}

// Result summarises one run.
type Result struct {
	Run        int
	Seed       int64
	Samples    []Sample
	Census     [sand.NumTypes]int
	PeakActive int
	// SettledAt is the first tick after which nothing was scheduled, or -1.
	SettledAt int
	Elapsed   time.Duration
}

func (o *Options) normalize() error {
	if o.Runs <= 0 || o.Steps <= 0 {
		return fmt.Errorf("%w: runs=%d steps=%d", ErrInvalidOptions, o.Runs, o.Steps)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers > o.Runs {
		o.Workers = o.Runs
	}
	if o.SampleEvery <= 0 {
		o.SampleEvery = 1
	}
	return nil
}

// Run executes the batch on a pool of workers and returns the results
// ordered by run index.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	log := zap.S().Named("bench")
	log.Infow("starting", "runs", opts.Runs, "steps", opts.Steps, "workers", opts.Workers,
		"w", opts.Config.Width, "h", opts.Config.Height, "scene", opts.Config.Scene)

	jobs := make(chan int)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for run := range jobs {
				res, ok := runOne(ctx, opts, run)
				if !ok {
					continue
				}
				log.Debugw("run finished", "run", res.Run, "seed", res.Seed,
					"peak_active", res.PeakActive, "settled_at", res.SettledAt, "elapsed", res.Elapsed)
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for run := 0; run < opts.Runs; run++ {
			select {
			case jobs <- run:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, opts.Runs)
	for res := range results {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Run < all[j].Run })
	return all, nil
}

func runOne(ctx context.Context, opts Options, run int) (Result, bool) {
	cfg := opts.Config
	cfg.Seed += int64(run)
	sim := sand.NewWithConfig(cfg)
	sim.Reset(cfg.Seed)

	res := Result{Run: run, Seed: cfg.Seed, SettledAt: -1}
	start := time.Now()
	for tick := 1; tick <= opts.Steps; tick++ {
		if (tick == 1 || tick%64 == 0) && ctx.Err() != nil {
			return Result{}, false
		}
		sim.Step()
		stats := sim.Stats()
		if stats.Active > res.PeakActive {
			res.PeakActive = stats.Active
		}
		if stats.Active == 0 && res.SettledAt < 0 {
			res.SettledAt = tick
		}
		if tick%opts.SampleEvery == 0 || tick == opts.Steps {
			res.Samples = append(res.Samples, Sample{
				Tick:      tick,
				Evaluated: stats.Evaluated,
				Changed:   stats.Changed,
				Active:    stats.Active,
			})
		}
	}
	res.Elapsed = time.Since(start)
	res.Census = sim.Grid().Census()
	return res, true
}

// Summary aggregates a batch.
type Summary struct {
	Runs           int
	Settled        int
	MeanPeakActive float64
	TotalTicks     int
	Elapsed        time.Duration
	TicksPerSecond float64
}

// Summarize folds results into a Summary.
func Summarize(results []Result) Summary {
	var s Summary
	s.Runs = len(results)
	if s.Runs == 0 {
		return s
	}
	peak := 0
	for _, r := range results {
		peak += r.PeakActive
		if r.SettledAt >= 0 {
			s.Settled++
		}
		if n := len(r.Samples); n > 0 {
			s.TotalTicks += r.Samples[n-1].Tick
		}
		s.Elapsed += r.Elapsed
	}
	s.MeanPeakActive = float64(peak) / float64(s.Runs)
	if s.Elapsed > 0 {
		s.TicksPerSecond = float64(s.TotalTicks) / s.Elapsed.Seconds()
	}
	return s
}
