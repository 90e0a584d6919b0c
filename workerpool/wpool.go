package workerpool

import (
	"context"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	lg "github.com/Andrej220/go-utils/zlog"
)

// JobFunc is the function executed by a worker for a given job payload.
type JobFunc[T any] func(T) error

// Job represents a single unit of work submitted to the pool.
//
// Payload is passed to Fn when executed.
// Ctx carries the logger and cancels pending retries.
// CleanupFunc, if set, is executed after job completion, even if Fn panics.
// Retry overrides the non-zero fields of the pool retry policy.
type Job[T any] struct {
	Payload     T
	Fn          JobFunc[T]
	Ctx         context.Context
	CleanupFunc func()
	Retry       *RetryPolicy
}

// Pool is a fixed-size pool of workers consuming jobs from a buffered channel.
type Pool[T any] struct {
	jobs          chan Job[T]
	wg            sync.WaitGroup
	workers       int
	activeWorkers atomic.Int32

	// mu orders sends on jobs against close(jobs).
	mu       sync.RWMutex
	stopOnce sync.Once
	closed   chan struct{} // signals no more submissions

	defaultRetry RetryPolicy
	metrics      MetricsPolicy
	onJobError   func(error)
	pin          bool
}

// NewPool starts opts.Workers workers and returns the running pool.
func NewPool[T any](opts Options) *Pool[T] {
	opts.FillDefaults()

	p := &Pool[T]{
		jobs:         make(chan Job[T], opts.Workers*submitBufRatio),
		workers:      opts.Workers,
		closed:       make(chan struct{}),
		defaultRetry: opts.Retry,
		metrics:      opts.Metrics,
		onJobError:   opts.OnJobError,
		pin:          opts.PinWorkers,
	}
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

// Shutdown rejects new jobs, lets workers drain everything already queued
// and waits for them to exit. It returns ctx.Err() if ctx ends first;
// the workers keep draining in that case and a later call waits again.
func (p *Pool[T]) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.closed) // reject new jobs
		p.mu.Lock()
		close(p.jobs) // drain
		p.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.wg.Wait()
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// blocking stop
func (p *Pool[T]) Stop() { _ = p.Shutdown(context.Background()) }

// Submit enqueues job, blocking while the queue is full.
func (p *Pool[T]) Submit(job Job[T]) error {
	if job.Fn == nil {
		return ErrNilFunc
	}
	if job.Ctx == nil {
		job.Ctx = context.Background()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	select {
	case <-p.closed:
		return ErrPoolClosed
	default:
	}
	select {
	case p.jobs <- job:
		p.metrics.IncSubmitted()
		return nil
	case <-p.closed:
		return ErrPoolClosed
	}
}

// Non-blocking submit.
func (p *Pool[T]) TrySubmit(job Job[T]) bool {
	if job.Fn == nil {
		return false
	}
	if job.Ctx == nil {
		job.Ctx = context.Background()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	select {
	case <-p.closed:
		return false
	default:
	}
	select {
	case p.jobs <- job:
		p.metrics.IncSubmitted()
		return true
	default:
		return false
	}
}

func (p *Pool[T]) worker(id int) {
	defer p.wg.Done()
	if p.pin {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		cpu := id % runtime.NumCPU()
		if err := PinToCPU(cpu); err != nil {
			lg.FromContext(context.Background()).Warn("worker pinning failed",
				lg.Int("worker", id),
				lg.Int("cpu", cpu),
				lg.Any("error", err),
			)
		}
	}
	for job := range p.jobs {
		p.runJob(job)
	}
}

func (p *Pool[T]) runJob(job Job[T]) {
	p.activeWorkers.Add(1)
	defer p.activeWorkers.Add(-1)

	attempt := 0
	defer func() {
		if r := recover(); r != nil {
			lg.FromContext(job.Ctx).Error("job panicked",
				lg.Any("job", job.Payload),
				lg.Any("panic", r),
			)
			p.reportJobError(&JobError[T]{
				Payload:  job.Payload,
				Attempts: attempt,
				Err:      &PanicError{Value: r, Stack: debug.Stack()},
			})
		}
		p.metrics.IncExecuted()
		if job.CleanupFunc != nil {
			job.CleanupFunc()
		}
	}()

	if err := p.processJob(job, &attempt); err != nil {
		p.reportJobError(&JobError[T]{Payload: job.Payload, Attempts: attempt, Err: err})
	}
}

// processJob runs job.Fn until it succeeds, the attempts are exhausted or
// job.Ctx is canceled during a backoff pause. attempt tracks the current try.
func (p *Pool[T]) processJob(job Job[T], attempt *int) error {
	pol := p.defaultRetry.merge(job.Retry)

	var next func() time.Duration
	for *attempt = 1; ; *attempt++ {
		err := job.Fn(job.Payload)
		if err == nil {
			return nil
		}
		logger := lg.FromContext(job.Ctx)
		if *attempt >= pol.Attempts {
			logger.Error("job failed",
				lg.Any("job", job.Payload),
				lg.Int("attempt", *attempt),
				lg.Any("error", err),
			)
			return err
		}

		if next == nil {
			next = pol.pauses(time.Now().UnixNano())
		}
		delay := next()
		logger.Warn("job attempt failed; backing off",
			lg.Any("job", job.Payload),
			lg.Int("attempt", *attempt),
			lg.String("sleep", delay.String()),
			lg.Any("error", err),
		)
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-job.Ctx.Done():
			timer.Stop()
			logger.Info("job canceled", lg.Any("reason", job.Ctx.Err()))
			return job.Ctx.Err()
		}
	}
}

func (p *Pool[T]) ActiveWorkers() int32 { return p.activeWorkers.Load() }
func (p *Pool[T]) QueueLength() int     { return len(p.jobs) }
func (p *Pool[T]) Workers() int         { return p.workers }
