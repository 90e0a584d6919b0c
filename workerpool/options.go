package workerpool

import (
	"runtime"
	"time"
)

const (
	defaultAttempts     = 3
	defaultInitialRetry = 200 * time.Millisecond
	defaultMaxRetry     = 5 * time.Second

	// submitBufRatio is how many queued jobs are buffered per worker.
	submitBufRatio = 2
)

// Options configure a worker Pool.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Workers is the fixed number of worker goroutines.
	// Defaults to the number of logical CPUs.
	Workers int

	// Retry is the pool-wide retry policy. Jobs may override it.
	Retry RetryPolicy

	// PinWorkers locks every worker to an OS thread pinned to one CPU.
	// Only supported on Linux; elsewhere pinning failures are logged
	// and workers run unpinned.
	PinWorkers bool

	// Metrics receives submission and execution counters.
	// Defaults to NoopMetrics.
	Metrics MetricsPolicy

	// OnJobError is called with the final error of every failed job,
	// including recovered panics. It is called from worker goroutines
	// and must be safe for concurrent use.
	OnJobError func(error)
}

func (o *Options) FillDefaults() {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	o.Retry = o.Retry.or(DefaultRetryPolicy())
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
