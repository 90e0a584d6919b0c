// Package workerpool provides a fixed-size generic worker pool used to fan
// independent CPU-bound jobs out over the available cores and join them.
//
// Lifecycle
//
// A Pool is created with NewPool, which starts all workers immediately.
// Jobs are handed over with Submit (blocking) or TrySubmit (non-blocking).
// Shutdown closes the pool for submissions, lets the workers drain every
// job already queued and waits for them to exit, which makes it usable as
// a join-all barrier:
//
//	p := workerpool.NewPool[int](workerpool.Options{})
//	defer p.Stop()
//
//	for i := range items {
//	    _ = p.Submit(workerpool.Job[int]{Payload: i, Fn: work})
//	}
//	_ = p.Shutdown(ctx) // every submitted job has finished here
//
// Shutdown and Stop are idempotent, so a deferred Stop releases the
// workers on every exit path.
//
// Error handling
//
// The pool distinguishes between two classes of failures:
//
//   - Job errors: returned by Fn after the last retry attempt
//   - Panics: recovered inside the worker and reported as *PanicError
//
// Both are wrapped in a *JobError and passed to Options.OnJobError.
// They never stop worker execution. CleanupFunc runs after every job,
// including the ones that panicked.
//
// Retries
//
// A failing job is retried according to its RetryPolicy, sleeping a
// jittered exponential backoff between attempts. Canceling the job's
// context aborts the pause.
//
// CPU pinning
//
// On Linux, workers may optionally be pinned to specific CPUs.
// When enabled, workers are locked to OS threads and restricted
// to run on a single CPU core. This can improve cache locality for
// CPU-bound workloads, but is not universally beneficial.
package workerpool
