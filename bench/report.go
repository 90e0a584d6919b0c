package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/azargarov/bucketsort"
)

const rule = "================================================================================"

// TextReporter prints a human readable report, one section per case.
type TextReporter struct {
	w        io.Writer
	lastDist string
}

func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (t *TextReporter) Start(info Info) error {
	_, err := fmt.Fprintf(t.w, "BUCKET SORT: SEQUENTIAL VS PARALLEL\nCPUs: %d, pool workers: %d, seed: %d\n",
		info.CPUs, info.Workers, info.Seed)
	return err
}

func (t *TextReporter) Case(r Result) error {
	var b strings.Builder
	if r.Distribution != t.lastDist {
		t.lastDist = r.Distribution
		if r.Distribution == bucketsort.WorstCaseDist.String() {
			b.WriteString("\nworst case: every sample lands in the last bucket, ordering is O(n^2)\n")
		}
	}

	fmt.Fprintf(&b, "\n%s\n%s - %s samples\n%s\n", rule, r.Distribution, humanize.Comma(int64(r.Size)), rule)
	o := r.Occupancy
	fmt.Fprintf(&b, "buckets: %s, empty: %s (%.1f%%), per bucket min %d max %d, stddev %.2f, cv %.2f%%\n",
		humanize.Comma(int64(o.Buckets)), humanize.Comma(int64(o.Empty)), o.EmptyPercent(),
		o.Min, o.Max, o.StdDev, o.Variation())
	fmt.Fprintf(&b, "sequential: %s\nparallel:   %s\n", micros(r.Sequential), micros(r.Parallel))

	if r.Error != "" {
		fmt.Fprintf(&b, "FAILED: %s\n", r.Error)
		_, err := io.WriteString(t.w, b.String())
		return err
	}

	fmt.Fprintf(&b, "results equal: %t\nspeedup: %.2fx\n", r.Equal, r.Speedup())
	b.WriteString(verdict(r.Sequential, r.Parallel))
	b.WriteByte('\n')
	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *TextReporter) Finish(s Stats) error {
	_, err := fmt.Fprintf(t.w, "\n%s\nordering tasks: %s, failed: %s\n",
		rule, humanize.Comma(int64(s.Tasks)), humanize.Comma(int64(s.Failed)))
	return err
}

func micros(d time.Duration) string {
	return fmt.Sprintf("%.2f µs", float64(d.Nanoseconds())/1e3)
}

// verdict names the faster engine and by how much.
func verdict(seq, par time.Duration) string {
	switch {
	case par < seq:
		return fmt.Sprintf("parallel was faster by %.1f%%", float64(seq-par)*100/float64(seq))
	case seq < par:
		if seq == 0 {
			return "sequential was faster"
		}
		return fmt.Sprintf("sequential was faster; parallel was %.1f%% slower", float64(par-seq)*100/float64(seq))
	default:
		return "both engines took the same time"
	}
}

// JSONReporter buffers the sweep and writes it as one JSON document.
type JSONReporter struct {
	w   io.Writer
	doc struct {
		Info    Info     `json:"info"`
		Results []Result `json:"results"`
		Stats   Stats    `json:"stats"`
	}
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

func (j *JSONReporter) Start(info Info) error {
	j.doc.Info = info
	return nil
}

func (j *JSONReporter) Case(r Result) error {
	j.doc.Results = append(j.doc.Results, r)
	return nil
}

func (j *JSONReporter) Finish(s Stats) error {
	j.doc.Stats = s
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(&j.doc)
}
