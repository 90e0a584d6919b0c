package bench

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/azargarov/bucketsort"
)

// Config describes one benchmark sweep.
//
// Random and uniform inputs are measured for every entry of Sizes; the
// worst case is quadratic and gets its own, shorter list.
type Config struct {
	Sizes          []int    `yaml:"sizes"`
	WorstCaseSizes []int    `yaml:"worst_case_sizes"`
	Distributions  []string `yaml:"distributions"`

	// Seed fixes the generated inputs. Zero picks a time-based seed.
	Seed uint64 `yaml:"seed"`

	// Workers is the parallel engine pool size. Zero means one per CPU.
	Workers    int  `yaml:"workers"`
	PinWorkers bool `yaml:"pin_workers"`
}

var (
	defaultSizes          = []int{100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000}
	defaultWorstCaseSizes = []int{100, 1_000, 10_000, 100_000}
)

// DefaultConfig returns the full sweep over every distribution.
func DefaultConfig() Config {
	c := Config{}
	c.FillDefaults()
	return c
}

func (c *Config) FillDefaults() {
	if len(c.Sizes) == 0 {
		c.Sizes = append([]int(nil), defaultSizes...)
	}
	if len(c.WorstCaseSizes) == 0 {
		c.WorstCaseSizes = append([]int(nil), defaultWorstCaseSizes...)
	}
	if len(c.Distributions) == 0 {
		for _, d := range bucketsort.Distributions {
			c.Distributions = append(c.Distributions, d.String())
		}
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
}

// LoadConfig reads a YAML sweep description. Missing fields get defaults.
func LoadConfig(path string) (Config, error) {
	var c Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("bench: read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(raw, &c); err != nil {
		return c, fmt.Errorf("bench: parse config %s: %w", path, err)
	}
	c.FillDefaults()
	return c, c.Validate()
}

// Validate checks sizes and distribution names.
func (c Config) Validate() error {
	if _, err := c.distributions(); err != nil {
		return err
	}
	for _, sizes := range [][]int{c.Sizes, c.WorstCaseSizes} {
		for _, n := range sizes {
			if n < 0 {
				return fmt.Errorf("bench: negative size %d", n)
			}
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("bench: negative worker count %d", c.Workers)
	}
	return nil
}

func (c Config) distributions() ([]bucketsort.Distribution, error) {
	out := make([]bucketsort.Distribution, 0, len(c.Distributions))
	for _, name := range c.Distributions {
		d, err := bucketsort.ParseDistribution(name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// sizesFor returns the sweep for dist.
func (c Config) sizesFor(dist bucketsort.Distribution) []int {
	if dist == bucketsort.WorstCaseDist {
		return c.WorstCaseSizes
	}
	return c.Sizes
}
