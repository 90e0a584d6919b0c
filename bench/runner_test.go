package bench

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azargarov/bucketsort"
)

func smallConfig() Config {
	return Config{
		Sizes:          []int{0, 1, 100, 1000},
		WorstCaseSizes: []int{50},
		Seed:           42,
		Workers:        2,
	}
}

type recorder struct {
	info    Info
	cases   []Result
	stats   Stats
	done    bool
	failAt  int
	failErr error
}

func (r *recorder) Start(info Info) error { r.info = info; return nil }

func (r *recorder) Case(res Result) error {
	r.cases = append(r.cases, res)
	if r.failErr != nil && len(r.cases) == r.failAt {
		return r.failErr
	}
	return nil
}

func (r *recorder) Finish(s Stats) error { r.stats = s; r.done = true; return nil }

func TestRunnerSweep(t *testing.T) {
	rec := &recorder{}
	r, err := NewRunner(smallConfig(), rec)
	require.NoError(t, err)

	results, err := r.Run(context.Background())
	require.NoError(t, err)

	// 4 random, 4 uniform, 1 worst case
	require.Len(t, results, 9)
	assert.Equal(t, results, rec.cases)
	assert.True(t, rec.done)
	assert.Equal(t, 2, rec.info.Workers)
	assert.Equal(t, uint64(42), rec.info.Seed)

	for _, res := range results {
		assert.True(t, res.Equal, "%s/%d", res.Distribution, res.Size)
		assert.Empty(t, res.Error)
		assert.NoError(t, res.Err())
	}

	last := results[len(results)-1]
	assert.Equal(t, "worst-case", last.Distribution)
	assert.Equal(t, 50, last.Size)
	assert.Equal(t, 49, last.Occupancy.Empty)

	assert.NotZero(t, rec.stats.Tasks)
	assert.Zero(t, rec.stats.Failed)
	assert.Equal(t, r.Stats(), rec.stats)
}

func TestRunnerDeterministic(t *testing.T) {
	cfg := smallConfig()
	cfg.Distributions = []string{"random"}

	a, err := NewRunner(cfg, &recorder{})
	require.NoError(t, err)
	b, err := NewRunner(cfg, &recorder{})
	require.NoError(t, err)

	ra, err := a.Run(context.Background())
	require.NoError(t, err)
	rb, err := b.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, rb, len(ra))
	for i := range ra {
		assert.Equal(t, ra[i].Occupancy, rb[i].Occupancy)
	}
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	r, err := NewRunner(smallConfig(), rec)
	require.NoError(t, err)

	results, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.False(t, rec.done)
}

func TestRunnerReporterError(t *testing.T) {
	boom := errors.New("disk full")
	rec := &recorder{failAt: 2, failErr: boom}
	r, err := NewRunner(smallConfig(), rec)
	require.NoError(t, err)

	results, err := r.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, results, 2)
	assert.False(t, rec.done)
}

func TestNewRunnerInvalid(t *testing.T) {
	cfg := smallConfig()
	cfg.Distributions = []string{"bimodal"}
	_, err := NewRunner(cfg, &recorder{})
	assert.Error(t, err)
}

func TestResultSpeedup(t *testing.T) {
	assert.InDelta(t, 2.0, Result{Sequential: 2 * time.Millisecond, Parallel: time.Millisecond}.Speedup(), 1e-9)
	assert.Zero(t, Result{Sequential: time.Millisecond}.Speedup())
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "parallel was faster by 50.0%", verdict(200, 100))
	assert.Equal(t, "sequential was faster; parallel was 100.0% slower", verdict(100, 200))
	assert.Equal(t, "sequential was faster", verdict(0, 10))
	assert.Equal(t, "both engines took the same time", verdict(5, 5))
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTextReporter(&buf)

	require.NoError(t, rep.Start(Info{CPUs: 8, Workers: 4, Seed: 9}))
	require.NoError(t, rep.Case(Result{
		Distribution: "uniform",
		Size:         12345,
		Occupancy:    Occupancy{Buckets: 12345, Min: 1, Max: 1, Mean: 1},
		Sequential:   3 * time.Millisecond,
		Parallel:     time.Millisecond,
		Equal:        true,
	}))
	require.NoError(t, rep.Case(Result{
		Distribution: bucketsort.WorstCaseDist.String(),
		Size:         100,
		Error:        "bucketsort: ordering task failed",
	}))
	require.NoError(t, rep.Finish(Stats{Tasks: 1500, Failed: 1}))

	out := buf.String()
	assert.Contains(t, out, "CPUs: 8, pool workers: 4, seed: 9")
	assert.Contains(t, out, "uniform - 12,345 samples")
	assert.Contains(t, out, "sequential: 3000.00 µs")
	assert.Contains(t, out, "results equal: true")
	assert.Contains(t, out, "speedup: 3.00x")
	assert.Contains(t, out, "parallel was faster by 66.7%")
	assert.Contains(t, out, "worst case: every sample lands in the last bucket")
	assert.Contains(t, out, "FAILED: bucketsort: ordering task failed")
	assert.Contains(t, out, "ordering tasks: 1,500, failed: 1")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRunner(Config{Sizes: []int{100}, Distributions: []string{"uniform"}, Seed: 5}, NewJSONReporter(&buf))
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	require.NoError(t, err)

	var doc struct {
		Info    Info
		Results []struct {
			Distribution string    `json:"distribution"`
			Size         int       `json:"size"`
			Occupancy    Occupancy `json:"occupancy"`
			Equal        bool      `json:"equal"`
		}
		Stats Stats
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, uint64(5), doc.Info.Seed)
	require.Len(t, doc.Results, 1)
	assert.Equal(t, "uniform", doc.Results[0].Distribution)
	assert.Equal(t, 100, doc.Results[0].Size)
	assert.True(t, doc.Results[0].Equal)
	assert.Equal(t, 0, doc.Results[0].Occupancy.Empty)
	// uniform input holds one sample per bucket, so no bucket needs ordering
	assert.Zero(t, doc.Stats.Tasks)
}
