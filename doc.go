// Package bucketsort implements a single-pass bucket sort for samples in
// [0, 1), in a sequential and a worker-pool-parallel variant.
//
// A dataset of n samples is spread over n buckets, bucket i holding the
// values in [i/n, (i+1)/n). Each bucket is ordered with an insertion sort
// and the buckets are concatenated in index order. Expected occupancy is
// O(1) for uniform input; when every sample falls in one bucket the sort
// degrades to O(n^2).
//
// SortSequential does all the work on the calling goroutine.
// ParallelSorter runs the per-bucket ordering on a workerpool.Pool sized to
// the number of CPUs and joins it before concatenating, so both variants
// produce identical output:
//
//	data := bucketsort.NewGenerator(42).Generate(bucketsort.RandomDist, 1_000_000)
//	seq, par := slices.Clone(data), slices.Clone(data)
//
//	_ = bucketsort.SortSequential(seq)
//	_ = bucketsort.SortParallel(ctx, par, bucketsort.Options{})
//
// Both engines sort in place. Finite values >= 1 are clamped just below 1;
// negative, NaN and infinite values are rejected with ErrInvalidSampleRange.
package bucketsort
