package bucketsort

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Sample is a single-precision value in [0, 1).
type Sample = float32

// ErrInvalidSampleRange reports a value outside [0, 1) that clamping
// cannot repair: negative, NaN or infinite.
var ErrInvalidSampleRange = errors.New("bucketsort: sample out of range [0, 1)")

// SampleRangeError identifies the offending sample.
type SampleRangeError struct {
	Index int
	Value float64
}

func (e *SampleRangeError) Error() string {
	return fmt.Sprintf("bucketsort: sample %d = %v out of range [0, 1)", e.Index, e.Value)
}

func (e *SampleRangeError) Unwrap() error { return ErrInvalidSampleRange }

// belowOne returns the largest value of F strictly below 1.
func belowOne[F constraints.Float]() F {
	if b := F(math.Nextafter(1, 0)); b < 1 {
		return b
	}
	return F(math.Nextafter32(1, 0))
}

// Clamp maps finite values >= 1 to the largest value below 1 and reports
// whether the result is a valid sample.
func Clamp[F constraints.Float](v F) (F, bool) {
	f := float64(v)
	switch {
	case math.IsNaN(f), math.IsInf(f, 0), f < 0:
		return v, false
	case f >= 1:
		return belowOne[F](), true
	}
	return v, true
}

// clampAll validates and clamps data in place. It only touches data once
// every sample is known to be valid.
func clampAll[F constraints.Float](data []F) error {
	for k, v := range data {
		if _, ok := Clamp(v); !ok {
			return &SampleRangeError{Index: k, Value: float64(v)}
		}
	}
	for k, v := range data {
		data[k], _ = Clamp(v)
	}
	return nil
}
