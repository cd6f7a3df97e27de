// Package parslice provides the chunk partitioning that underlies a small set
// of data-parallel slice operations. A slice is split into contiguous chunks,
// each chunk is processed in its own goroutine by a freshly created worker, and
// the per-chunk results are reassembled in the original order.
//
// Parslice provides the following subpackages:
//
// parslice/parallel provides Map, MapIndexed, All, and Any over slices, as well
// as MapChunks, the split, dispatch, and join primitive they are built on.
//
// parslice/speculative provides implementations of All and Any that stop
// evaluating the remaining chunks as soon as the final result is known.
//
// parslice/sequential provides sequential implementations of all functions
// from parslice/parallel, for testing and debugging purposes.
//
// parslice/config loads a Config from a TOML file and the environment.
//
// parslice/metrics provides a Prometheus implementation of Observer.
//
// Workers are never shared between chunks. Each operation receives a factory
// that is invoked once per chunk, so a worker may keep private mutable state
// without any synchronization.
package parslice
