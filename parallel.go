package bucketsort

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	lg "github.com/Andrej220/go-utils/zlog"
	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"

	wp "github.com/azargarov/bucketsort/workerpool"
)

// ErrTaskFailed is wrapped by every bucket ordering failure.
var ErrTaskFailed = errors.New("bucketsort: bucket ordering task failed")

// TaskError reports the bucket whose ordering task failed.
// The contents of that bucket are unordered.
type TaskError struct {
	Bucket int
	Err    error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("bucketsort: ordering bucket %d: %v", e.Bucket, e.Err)
}

func (e *TaskError) Unwrap() error { return e.Err }

func (e *TaskError) Is(target error) bool { return target == ErrTaskFailed }

// Options configure a ParallelSorter.
type Options struct {
	// Workers is the size of the pool created for every Sort call.
	// Defaults to the number of logical CPUs.
	Workers int

	// PinWorkers pins pool workers to CPUs (Linux only).
	PinWorkers bool

	// Metrics accumulates pool counters across Sort calls.
	Metrics wp.MetricsPolicy
}

func (o *Options) FillDefaults() {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Metrics == nil {
		o.Metrics = &wp.NoopMetrics{}
	}
}

// ParallelSorter is the bucket sort whose ordering phase runs on a worker
// pool. Assignment and concatenation stay on the calling goroutine.
//
// A ParallelSorter holds no per-sort state and may be used concurrently.
type ParallelSorter[F constraints.Float] struct {
	opts  Options
	order func([]F) error
}

// NewParallelSorter fixes the pool size once, at construction.
func NewParallelSorter[F constraints.Float](opts Options) *ParallelSorter[F] {
	opts.FillDefaults()
	return &ParallelSorter[F]{
		opts: opts,
		order: func(b []F) error {
			InsertionSort(b)
			return nil
		},
	}
}

// Workers returns the pool size used by Sort.
func (s *ParallelSorter[F]) Workers() int { return s.opts.Workers }

// Sort sorts data in place. The result is element-for-element identical to
// SortSequential on the same input.
//
// Every ordering task is awaited before Sort returns. If any of them
// failed, the returned error combines one *TaskError per failed bucket
// and data is left as it was.
func (s *ParallelSorter[F]) Sort(ctx context.Context, data []F) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(data) <= 1 {
		return clampAll(data)
	}
	buckets, err := Assign(data)
	if err != nil {
		return err
	}
	if err := s.orderBuckets(ctx, buckets); err != nil {
		lg.FromContext(ctx).Error("parallel bucket sort failed",
			lg.Int("size", len(data)),
			lg.Int("failed_buckets", len(multierr.Errors(err))),
			lg.Any("error", err),
		)
		return err
	}
	concat(data, buckets)
	return nil
}

// orderBuckets runs one job per bucket holding more than one sample on a
// pool scoped to this call, then waits for all of them.
func (s *ParallelSorter[F]) orderBuckets(ctx context.Context, buckets [][]F) error {
	var (
		mu       sync.Mutex
		failures error
	)
	collect := func(err error) {
		var jerr *wp.JobError[int]
		if errors.As(err, &jerr) {
			err = &TaskError{Bucket: jerr.Payload, Err: jerr.Err}
		}
		mu.Lock()
		failures = multierr.Append(failures, err)
		mu.Unlock()
	}

	pool := wp.NewPool[int](wp.Options{
		Workers:    s.opts.Workers,
		Retry:      wp.RetryPolicy{Attempts: 1},
		PinWorkers: s.opts.PinWorkers,
		Metrics:    s.opts.Metrics,
		OnJobError: collect,
	})
	defer pool.Stop()

	order := func(i int) error { return s.order(buckets[i]) }

	var submitErr error
	for i, b := range buckets {
		if len(b) < 2 {
			continue
		}
		if err := pool.Submit(wp.Job[int]{Payload: i, Fn: order, Ctx: ctx}); err != nil {
			submitErr = &TaskError{Bucket: i, Err: err}
			break
		}
	}

	// barrier: drains the queue and joins every worker
	if err := pool.Shutdown(context.Background()); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	return multierr.Append(submitErr, failures)
}

// SortParallel sorts data in place with a ParallelSorter built from opts.
func SortParallel[F constraints.Float](ctx context.Context, data []F, opts Options) error {
	return NewParallelSorter[F](opts).Sort(ctx, data)
}
