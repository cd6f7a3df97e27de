package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/exascience/parslice"
	"github.com/exascience/parslice/parallel"
)

type operation struct {
	name string
	run  func(cfg parslice.Config, xs []int)
}

// The predicates never decide early, so All and Any scan the whole input.
var operations = []operation{
	{"map", func(cfg parslice.Config, xs []int) {
		parallel.Map(cfg, xs, func() func(int) int {
			return func(x int) int { return x * x }
		})
	}},
	{"map_indexed", func(cfg parslice.Config, xs []int) {
		parallel.MapIndexed(cfg, xs, func() func(int, int) int {
			return func(i, x int) int { return i ^ x }
		})
	}},
	{"all", func(cfg parslice.Config, xs []int) {
		parallel.All(cfg, xs, func() func(int, int) bool {
			return func(_, x int) bool { return x >= 0 }
		})
	}},
	{"any", func(cfg parslice.Config, xs []int) {
		parallel.Any(cfg, xs, func() func(int, int) bool {
			return func(_, x int) bool { return x < 0 }
		})
	}},
}

type result struct {
	name         string
	mean, stddev time.Duration
}

func makeInput(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}

func benchmark(cfg parslice.Config, xs []int, iterations int) []result {
	results := make([]result, 0, len(operations))
	for _, op := range operations {
		samples := make([]float64, iterations)
		for i := range samples {
			start := time.Now()
			op.run(cfg, xs)
			samples[i] = time.Since(start).Seconds()
		}
		mean, stddev := stat.MeanStdDev(samples, nil)
		if math.IsNaN(stddev) {
			stddev = 0
		}
		results = append(results, result{
			name:   op.name,
			mean:   seconds(mean),
			stddev: seconds(stddev),
		})
	}
	return results
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func report(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "operation\tmean\tstddev")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%v\t%v\n", r.name, r.mean, r.stddev)
	}
	return tw.Flush()
}
