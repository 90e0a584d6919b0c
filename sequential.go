package bucketsort

import (
	"golang.org/x/exp/constraints"
)

// SortSequential sorts data in place on the calling goroutine: assign to
// len(data) buckets, insertion-sort every bucket, concatenate.
//
// A single sample is only validated and clamped. If a sample is out of
// range the error wraps ErrInvalidSampleRange and data is not modified.
func SortSequential[F constraints.Float](data []F) error {
	if len(data) <= 1 {
		return clampAll(data)
	}
	buckets, err := Assign(data)
	if err != nil {
		return err
	}
	for _, b := range buckets {
		if len(b) > 1 {
			InsertionSort(b)
		}
	}
	concat(data, buckets)
	return nil
}
