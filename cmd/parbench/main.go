// Command parbench runs the parallel slice operations over a generated input
// and reports the mean and standard deviation of their running times.
//
// Usage:
//
//	parbench [-config parslice.toml] [-n 1048576] [-iterations 10] [-listen :9090]
//
// With -listen, parbench keeps serving /metrics and /healthz after the run
// until it is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/exascience/parslice/config"
	"github.com/exascience/parslice/metrics"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "parbench: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("parbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML config file")
	n := fs.Int("n", 1<<20, "number of input elements")
	iterations := fs.Int("iterations", 10, "number of runs per operation")
	listen := fs.String("listen", "", "address to serve /metrics and /healthz on after the run")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 0 {
		return fmt.Errorf("invalid number of elements: %d", *n)
	}
	if *iterations < 1 {
		return fmt.Errorf("invalid number of iterations: %d", *iterations)
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger := settings.Log.NewLogger(stderr).With("run", ulid.Make().String())

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector("parbench")
	if err := collector.Register(reg); err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	cfg := settings.Engine(logger, collector)

	eff := cfg.Effective()
	logger.Info("starting",
		"n", *n,
		"iterations", *iterations,
		"max_workers", eff.MaxWorkers,
		"min_chunk", eff.MinChunk,
		"chunks", len(cfg.Partition(*n)),
	)
	results := benchmark(cfg, makeInput(*n), *iterations)
	if err := report(stdout, results); err != nil {
		return err
	}

	if *listen == "" {
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, *listen, newRouter(reg), logger)
}
