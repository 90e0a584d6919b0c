package bucketsort

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Distribution selects how Generate spreads samples over the buckets.
type Distribution int

const (
	// RandomDist draws every sample independently from [0, 1).
	RandomDist Distribution = iota

	// UniformDist puts exactly one sample in each of the n buckets.
	UniformDist

	// WorstCaseDist puts every sample in the last bucket.
	WorstCaseDist
)

// Distributions lists every Distribution in declaration order.
var Distributions = []Distribution{RandomDist, UniformDist, WorstCaseDist}

func (d Distribution) String() string {
	switch d {
	case RandomDist:
		return "random"
	case UniformDist:
		return "uniform"
	case WorstCaseDist:
		return "worst-case"
	default:
		return "unknown"
	}
}

// ParseDistribution is the inverse of Distribution.String.
func ParseDistribution(s string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return RandomDist, nil
	case "uniform":
		return UniformDist, nil
	case "worst-case", "worstcase", "worst":
		return WorstCaseDist, nil
	}
	return 0, fmt.Errorf("bucketsort: unknown distribution %q", s)
}

// Generator produces test datasets from a seeded source.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator whose output is fully determined by seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns n samples following dist.
func (g *Generator) Generate(dist Distribution, n int) []Sample {
	switch dist {
	case UniformDist:
		return g.Uniform(n)
	case WorstCaseDist:
		return g.WorstCase(n)
	default:
		return g.Random(n)
	}
}

// Random draws n independent samples from [0, 1).
func (g *Generator) Random(n int) []Sample {
	out := make([]Sample, max(n, 0))
	for i := range out {
		out[i] = g.rng.Float32()
	}
	return out
}

// Uniform draws sample i from bucket i's range [i/n, (i+1)/n), so that
// assigning the result to n buckets fills every bucket exactly once.
func (g *Generator) Uniform(n int) []Sample {
	out := make([]Sample, max(n, 0))
	for i := range out {
		out[i] = g.inBucket(i, n)
	}
	return out
}

// WorstCase draws every sample from the last bucket's range [(n-1)/n, 1).
func (g *Generator) WorstCase(n int) []Sample {
	out := make([]Sample, max(n, 0))
	for i := range out {
		out[i] = g.inBucket(n-1, n)
	}
	return out
}

func (g *Generator) inBucket(b, n int) Sample {
	lo := float64(b) / float64(n)
	hi := float64(b+1) / float64(n)
	return fitBucket(Sample(lo+g.rng.Float64()*(hi-lo)), b, n)
}

// fitBucket nudges v by single ulps until BucketIndex(v, n) == b.
// Rounding to float32 may push a draw onto the upper bound of its range.
func fitBucket(v Sample, b, n int) Sample {
	top := belowOne[Sample]()
	if v > top {
		v = top
	}
	for v > 0 && BucketIndex(v, n) > b {
		v = math.Nextafter32(v, 0)
	}
	for v < top && BucketIndex(v, n) < b {
		v = math.Nextafter32(v, 1)
	}
	return v
}
