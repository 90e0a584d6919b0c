package bench

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	lg "github.com/Andrej220/go-utils/zlog"
	"go.uber.org/multierr"

	"github.com/azargarov/bucketsort"
	wp "github.com/azargarov/bucketsort/workerpool"
)

// Result is the outcome of sorting one generated dataset with both engines.
type Result struct {
	Distribution string        `json:"distribution"`
	Size         int           `json:"size"`
	Occupancy    Occupancy     `json:"occupancy"`
	Sequential   time.Duration `json:"sequential_ns"`
	Parallel     time.Duration `json:"parallel_ns"`
	Equal        bool          `json:"equal"`
	Error        string        `json:"error,omitempty"`

	err error
}

// Err is the engine failure of this case, if any.
func (r Result) Err() error { return r.err }

// Speedup is sequential time over parallel time.
func (r Result) Speedup() float64 {
	if r.Parallel <= 0 {
		return 0
	}
	return float64(r.Sequential) / float64(r.Parallel)
}

// Info describes the host and the engine configuration of a sweep.
type Info struct {
	CPUs    int    `json:"cpus"`
	Workers int    `json:"workers"`
	Seed    uint64 `json:"seed"`
}

// Stats are the worker pool counters accumulated over a sweep.
type Stats struct {
	Tasks  uint64 `json:"tasks"`
	Failed uint64 `json:"failed_tasks"`
}

// Reporter renders a sweep as it runs.
type Reporter interface {
	Start(Info) error
	Case(Result) error
	Finish(Stats) error
}

// Runner drives the engines over a Config and hands results to a Reporter.
type Runner struct {
	cfg     Config
	dists   []bucketsort.Distribution
	gen     *bucketsort.Generator
	sorter  *bucketsort.ParallelSorter[bucketsort.Sample]
	metrics *wp.AtomicMetrics
	rep     Reporter
}

func NewRunner(cfg Config, rep Reporter) (*Runner, error) {
	cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dists, _ := cfg.distributions()
	metrics := &wp.AtomicMetrics{}
	return &Runner{
		cfg:   cfg,
		dists: dists,
		gen:   bucketsort.NewGenerator(cfg.Seed),
		sorter: bucketsort.NewParallelSorter[bucketsort.Sample](bucketsort.Options{
			Workers:    cfg.Workers,
			PinWorkers: cfg.PinWorkers,
			Metrics:    metrics,
		}),
		metrics: metrics,
		rep:     rep,
	}, nil
}

// Run measures every distribution and size of the sweep in order.
// Failed cases are reported and the sweep continues; their errors are
// combined in the returned error. Run stops early when ctx is done.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	logger := lg.FromContext(ctx)
	if err := r.rep.Start(Info{CPUs: runtime.NumCPU(), Workers: r.sorter.Workers(), Seed: r.cfg.Seed}); err != nil {
		return nil, err
	}

	var (
		results []Result
		errs    error
	)
	for _, dist := range r.dists {
		for _, n := range r.cfg.sizesFor(dist) {
			if err := ctx.Err(); err != nil {
				return results, multierr.Append(errs, err)
			}
			res := r.RunCase(ctx, dist, n)
			if res.err != nil {
				logger.Error("benchmark case failed",
					lg.String("distribution", res.Distribution),
					lg.Int("size", n),
					lg.Any("error", res.err),
				)
				errs = multierr.Append(errs, fmt.Errorf("bench: %s/%d: %w", res.Distribution, n, res.err))
			}
			results = append(results, res)
			if err := r.rep.Case(res); err != nil {
				return results, multierr.Append(errs, err)
			}
		}
	}

	if err := r.rep.Finish(r.Stats()); err != nil {
		errs = multierr.Append(errs, err)
	}
	return results, errs
}

// RunCase generates one dataset and sorts private copies of it with both
// engines.
func (r *Runner) RunCase(ctx context.Context, dist bucketsort.Distribution, n int) Result {
	data := r.gen.Generate(dist, n)
	res := Result{
		Distribution: dist.String(),
		Size:         n,
		Occupancy:    Analyze(data),
	}
	seq, par := slices.Clone(data), slices.Clone(data)

	start := time.Now()
	seqErr := bucketsort.SortSequential(seq)
	res.Sequential = time.Since(start)

	start = time.Now()
	parErr := r.sorter.Sort(ctx, par)
	res.Parallel = time.Since(start)

	if err := multierr.Append(seqErr, parErr); err != nil {
		res.err = err
		res.Error = err.Error()
		return res
	}
	res.Equal = slices.Equal(seq, par)
	if !res.Equal {
		res.err = fmt.Errorf("bench: sequential and parallel results differ")
		res.Error = res.err.Error()
	}
	return res
}

// Stats returns the pool counters accumulated so far.
func (r *Runner) Stats() Stats {
	return Stats{Tasks: r.metrics.Executed(), Failed: r.metrics.Failed()}
}
