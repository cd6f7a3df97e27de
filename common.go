package parslice

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Default values for the fields of a Config.
const (
	// DefaultMaxWorkers is the maximum number of goroutines spawned for a
	// single operation.
	DefaultMaxWorkers = 32

	// DefaultMinChunk is the minimum number of elements each goroutine
	// processes.
	DefaultMinChunk = 1024
)

type (
	// A ChunkFunc receives the absolute offset of a chunk in the input slice
	// and a view of the chunk, and returns a per-chunk result and an error
	// value or nil.
	ChunkFunc[A, B any] func(base int, chunk []A) (B, error)

	// A Chunk is a contiguous range of a slice, starting at Base and
	// containing Len elements.
	Chunk struct {
		Base, Len int
	}

	// An Observer is notified about the partitioning of each call and about
	// the completion of each chunk. Observers are invoked from several
	// goroutines at once and must be safe for concurrent use. A panic in
	// ChunkDone is propagated to the caller like a panic of the chunk's
	// worker.
	Observer interface {
		Partitioned(length, chunks int)
		ChunkDone(chunk Chunk, elapsed time.Duration, err error)
	}
)

// End returns the index one past the last element of the chunk.
func (c Chunk) End() int {
	return c.Base + c.Len
}

// View returns the part of xs covered by c. The capacity of the returned slice
// is limited to the chunk, so appending to it never writes into the range of a
// neighbouring chunk.
func View[A any](xs []A, c Chunk) []A {
	return xs[c.Base:c.End():c.End()]
}

// A Config determines how a slice is divided into chunks.
//
// The zero Config is valid: fields that are zero are replaced by their
// defaults.
type Config struct {
	// MaxWorkers bounds the number of chunks, and thus the number of
	// goroutines, of a single operation.
	MaxWorkers int

	// MinChunk is the minimum number of elements per chunk. Slices shorter
	// than MinChunk are processed on the calling goroutine.
	MinChunk int

	// Logger receives debug output about partitioning and dispatch. A nil
	// Logger disables logging.
	Logger *log.Logger

	// Observer, if not nil, is notified about every call and every chunk.
	Observer Observer
}

// DefaultConfig returns a Config with DefaultMaxWorkers and DefaultMinChunk.
func DefaultConfig() Config {
	return Config{
		MaxWorkers: DefaultMaxWorkers,
		MinChunk:   DefaultMinChunk,
	}
}

// Effective returns cfg with zero fields replaced by their defaults.
//
// Effective panics if MaxWorkers or MinChunk is negative.
func (cfg Config) Effective() Config {
	switch {
	case cfg.MaxWorkers == 0:
		cfg.MaxWorkers = DefaultMaxWorkers
	case cfg.MaxWorkers < 0:
		panic(fmt.Sprintf("invalid max workers: %v", cfg.MaxWorkers))
	}
	switch {
	case cfg.MinChunk == 0:
		cfg.MinChunk = DefaultMinChunk
	case cfg.MinChunk < 0:
		panic(fmt.Sprintf("invalid min chunk: %v", cfg.MinChunk))
	}
	return cfg
}

/*
Partition divides a slice of the given length into chunks.

If length is 0, the result is empty. If length is smaller than MinChunk, the
result is a single chunk covering the whole slice. Otherwise, the number of
chunks is the minimum of MaxWorkers and length / MinChunk, all chunks have
length / number-of-chunks elements, and the last chunk additionally absorbs the
remainder.

The returned chunks are disjoint, sorted by Base, and together cover exactly
the half-open interval from 0 to length.

Partition panics if length is negative, or if cfg is invalid.
*/
func (cfg Config) Partition(length int) []Chunk {
	cfg = cfg.Effective()
	switch {
	case length < 0:
		panic(fmt.Sprintf("invalid length: %v", length))
	case length == 0:
		return nil
	case length < cfg.MinChunk:
		return []Chunk{{Base: 0, Len: length}}
	}
	n := min(cfg.MaxWorkers, length/cfg.MinChunk)
	size := length / n
	chunks := make([]Chunk, n)
	for i := range chunks {
		chunks[i] = Chunk{Base: i * size, Len: size}
	}
	chunks[n-1].Len = length - chunks[n-1].Base
	return chunks
}
