package workerpool

import (
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
)

// RetryPolicy bounds the attempts of a job and the pauses between them.
// A zero field inherits the pool value.
type RetryPolicy struct {
	Attempts int           // total tries, the first one included
	Initial  time.Duration // first pause
	Max      time.Duration // pause cap
}

// DefaultRetryPolicy is what a pool uses for fields left zero in Options.Retry.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: defaultAttempts,
		Initial:  defaultInitialRetry,
		Max:      defaultMaxRetry,
	}
}

// or fills the zero fields of p from base.
func (p RetryPolicy) or(base RetryPolicy) RetryPolicy {
	if p.Attempts <= 0 {
		p.Attempts = base.Attempts
	}
	if p.Initial <= 0 {
		p.Initial = base.Initial
	}
	if p.Max <= 0 {
		p.Max = base.Max
	}
	return p
}

// merge returns the policy for one job: the job override on top of p.
func (p RetryPolicy) merge(job *RetryPolicy) RetryPolicy {
	if job == nil {
		return p
	}
	return job.or(p)
}

// pauses returns the jittered exponential sequence of backoff delays.
func (p RetryPolicy) pauses(seed int64) func() time.Duration {
	bo := boff.New(p.Initial, p.Max, seed)
	return bo.Next
}
