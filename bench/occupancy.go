package bench

import (
	"math"

	"github.com/samber/lo"

	"github.com/azargarov/bucketsort"
)

// Occupancy summarizes how a dataset of n samples spreads over n buckets.
type Occupancy struct {
	Buckets int     `json:"buckets"`
	Empty   int     `json:"empty"`
	Min     int     `json:"min"` // over non-empty buckets
	Max     int     `json:"max"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"stddev"`
}

// EmptyPercent is the share of empty buckets.
func (o Occupancy) EmptyPercent() float64 {
	if o.Buckets == 0 {
		return 0
	}
	return float64(o.Empty) * 100 / float64(o.Buckets)
}

// Variation is the coefficient of variation, in percent.
func (o Occupancy) Variation() float64 {
	if o.Mean == 0 {
		return 0
	}
	return o.StdDev / o.Mean * 100
}

// Analyze counts the samples per bucket using the same index function as
// the sort engines.
func Analyze(data []bucketsort.Sample) Occupancy {
	n := len(data)
	if n == 0 {
		return Occupancy{}
	}
	counts := make([]int, n)
	for _, v := range data {
		counts[bucketsort.BucketIndex(v, n)]++
	}

	nonEmpty := lo.Filter(counts, func(c int, _ int) bool { return c > 0 })
	mean := float64(lo.Sum(counts)) / float64(n)
	variance := lo.SumBy(counts, func(c int) float64 {
		d := float64(c) - mean
		return d * d
	}) / float64(n)

	return Occupancy{
		Buckets: n,
		Empty:   n - len(nonEmpty),
		Min:     lo.Min(nonEmpty),
		Max:     lo.Max(nonEmpty),
		Mean:    mean,
		StdDev:  math.Sqrt(variance),
	}
}
