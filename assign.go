package bucketsort

import (
	"golang.org/x/exp/constraints"
)

// BucketIndex returns floor(n*v) clamped into [0, n-1].
func BucketIndex[F constraints.Float](v F, n int) int {
	i := int(float64(n) * float64(v))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Assign distributes data over len(data) buckets, bucket i covering
// [i/n, (i+1)/n). Samples keep their input order inside a bucket.
// Values >= 1 are clamped; any other out-of-range value aborts with a
// *SampleRangeError before a single bucket is built.
//
// The buckets are carved out of one backing array in index order with
// their capacity capped, so appending to one never spills into another.
func Assign[F constraints.Float](data []F) ([][]F, error) {
	n := len(data)
	idx := make([]int, n)
	counts := make([]int, n)
	for k, v := range data {
		c, ok := Clamp(v)
		if !ok {
			return nil, &SampleRangeError{Index: k, Value: float64(v)}
		}
		i := BucketIndex(c, n)
		idx[k] = i
		counts[i]++
	}

	arena := make([]F, n)
	buckets := make([][]F, n)
	off := 0
	for i, c := range counts {
		buckets[i] = arena[off : off : off+c]
		off += c
	}
	for k, v := range data {
		c, _ := Clamp(v)
		b := &buckets[idx[k]]
		*b = append(*b, c)
	}
	return buckets, nil
}

// concat writes the buckets back into dst in bucket-index order.
func concat[F constraints.Float](dst []F, buckets [][]F) {
	k := 0
	for _, b := range buckets {
		k += copy(dst[k:], b)
	}
}
