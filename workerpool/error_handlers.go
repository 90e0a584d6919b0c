package workerpool

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolClosed is returned when submitting to a pool that is
	// shutting down or already stopped.
	ErrPoolClosed = errors.New("workerpool: pool closed")

	// ErrNilFunc is returned when a submitted Job has a nil Fn.
	ErrNilFunc = errors.New("workerpool: job func is nil")
)

// JobError is the final error of a job after all retry attempts.
type JobError[T any] struct {
	Payload  T
	Attempts int
	Err      error
}

func (e *JobError[T]) Error() string {
	return fmt.Sprintf("workerpool: job %v failed after %d attempt(s): %v", e.Payload, e.Attempts, e.Err)
}

func (e *JobError[T]) Unwrap() error { return e.Err }

// PanicError wraps a value recovered from a panicking job.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("workerpool: job panicked: %v", e.Value)
}

// reportJobError reports an error returned by a job or
// produced by panic recovery.
//
// Job errors do not stop pool execution. If no handler is
// registered, the error is only logged.
func (p *Pool[T]) reportJobError(err error) {
	p.metrics.IncFailed()
	if p.onJobError != nil {
		p.onJobError(err)
	}
}
