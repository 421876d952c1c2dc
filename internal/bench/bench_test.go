package bench

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandca/internal/sims/sand"
)

func smallOptions() Options {
	cfg := sand.DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 100
	return Options{Config: cfg, Runs: 4, Steps: 30, Workers: 2, SampleEvery: 10}
}

func TestRunOrdersAndSeedsResults(t *testing.T) {
	results, err := Run(context.Background(), smallOptions())
	require.NoError(t, err)
	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, i, r.Run)
		assert.Equal(t, int64(100+i), r.Seed)
		require.Len(t, r.Samples, 3)
		assert.Equal(t, []int{10, 20, 30}, []int{r.Samples[0].Tick, r.Samples[1].Tick, r.Samples[2].Tick})

		total := 0
		for _, n := range r.Census {
			total += n
		}
		assert.Equal(t, 32*24, total, "census covers every cell")
		assert.Positive(t, r.PeakActive)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := smallOptions()
	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)
	for i := range a {
		assert.Equal(t, a[i].Census, b[i].Census)
		assert.Equal(t, a[i].Samples, b[i].Samples)
	}
}

func TestEmptySceneSettlesImmediately(t *testing.T) {
	opts := smallOptions()
	opts.Config.Scene = sand.SceneEmpty
	opts.Runs = 1
	results, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, results[0].SettledAt)
	assert.Zero(t, results[0].PeakActive)

	s := Summarize(results)
	assert.Equal(t, 1, s.Settled)
	assert.Equal(t, 30, s.TotalTicks)
}

func TestRunRejectsInvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{Runs: 0, Steps: 10})
	assert.ErrorIs(t, err, ErrInvalidOptions)
	_, err = Run(context.Background(), Options{Runs: 1, Steps: 0})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, smallOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
	s := Summarize([]Result{
		{PeakActive: 10, SettledAt: -1, Samples: []Sample{{Tick: 50}}},
		{PeakActive: 20, SettledAt: 7, Samples: []Sample{{Tick: 50}}},
	})
	assert.Equal(t, 2, s.Runs)
	assert.Equal(t, 1, s.Settled)
	assert.Equal(t, 15.0, s.MeanPeakActive)
	assert.Equal(t, 100, s.TotalTicks)
}

func TestWriteChart(t *testing.T) {
	results, err := Run(context.Background(), smallOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, "demo", results))
	html := buf.String()
	assert.Contains(t, html, "demo: active cells")
	assert.Contains(t, html, "seed 100")
	assert.Contains(t, html, "echarts")

	assert.ErrorIs(t, WriteChart(&buf, "none", nil), ErrInvalidOptions)
}
