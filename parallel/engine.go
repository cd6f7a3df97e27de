package parallel

import (
	"time"

	"github.com/exascience/parslice"
	"github.com/exascience/parslice/internal"
)

// A future holds the eventual result of one chunk worker. It is written once
// by the goroutine running the worker, and read once by the joiner after done
// is closed.
type future[B any] struct {
	done  chan struct{}
	value B
	err   error
	p     interface{}
}

func execute[A, B any](
	f *future[B],
	cfg parslice.Config,
	c parslice.Chunk,
	view []A,
	worker parslice.ChunkFunc[A, B],
) {
	var start time.Time
	if cfg.Observer != nil {
		start = time.Now()
	}
	defer func() {
		if p := recover(); p != nil {
			f.p = internal.WrapPanic(p)
		}
		if cfg.Observer != nil {
			err := f.err
			if f.p != nil {
				err = internal.PanicError(f.p)
			}
			notify(f, cfg.Observer, c, time.Since(start), err)
		}
	}()
	f.value, f.err = worker(c.Base, view)
}

// notify reports a finished chunk to the observer. A panic in the observer is
// recorded in f like a worker panic, unless the worker already panicked.
func notify[B any](f *future[B], obs parslice.Observer, c parslice.Chunk, elapsed time.Duration, err error) {
	defer func() {
		if p := recover(); p != nil && f.p == nil {
			f.p = internal.WrapPanic(p)
		}
	}()
	obs.ChunkDone(c, elapsed, err)
}

func spawn[A, B any](
	cfg parslice.Config,
	c parslice.Chunk,
	view []A,
	worker parslice.ChunkFunc[A, B],
) *future[B] {
	f := &future[B]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		execute(f, cfg, c, view, worker)
	}()
	return f
}

// join waits for the futures in chunk order, regardless of the order in which
// they complete.
func join[B any](cfg parslice.Config, chunks []parslice.Chunk, futures []*future[B]) ([]B, error) {
	results := make([]B, len(futures))
	var err error
	var p interface{}
	for i, f := range futures {
		if f.done != nil {
			<-f.done
		}
		switch {
		case f.p != nil:
			if p == nil {
				p = f.p
			}
			if cfg.Logger != nil {
				cfg.Logger.Debug("chunk panicked", "base", chunks[i].Base, "len", chunks[i].Len)
			}
		case f.err != nil:
			if err == nil {
				err = f.err
			}
			if cfg.Logger != nil {
				cfg.Logger.Debug("chunk failed", "base", chunks[i].Base, "len", chunks[i].Len, "err", f.err)
			}
		}
		results[i] = f.value
	}
	if p != nil {
		panic(p)
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}

/*
MapChunks receives a slice and a factory of chunk workers, divides the slice
into chunks as determined by cfg.Partition, and invokes a fresh worker for each
of these chunks in parallel. The results of the workers are returned in chunk
order.

The factory is invoked once per chunk on the calling goroutine, for all chunks
before any worker starts, so a panic in the factory propagates before any
goroutine is spawned. Each worker receives the absolute offset of its chunk and
a view of the chunk, and is invoked in its own goroutine. A slice shorter than
2*cfg.MinChunk (or any slice when cfg.MaxWorkers is 1) is divided into a single
chunk, and therefore processed on the calling goroutine without spawning any
goroutine. If the slice is empty, neither the factory nor any worker is
invoked, and the result is empty.

MapChunks returns only when all workers have terminated. If any worker returns
an error value different from nil, MapChunks returns the left-most of these
errors and no results.

If one or more workers panic, the corresponding goroutines recover the panics,
and MapChunks eventually panics with the left-most recovered panic value. A
panic in cfg.Observer.ChunkDone is treated like a panic of the chunk's worker.
*/
func MapChunks[A, B any](
	cfg parslice.Config,
	xs []A,
	factory func() parslice.ChunkFunc[A, B],
) ([]B, error) {
	cfg = cfg.Effective()
	chunks := cfg.Partition(len(xs))
	if cfg.Observer != nil {
		cfg.Observer.Partitioned(len(xs), len(chunks))
	}
	switch len(chunks) {
	case 0:
		return []B{}, nil
	case 1:
		if cfg.Logger != nil {
			cfg.Logger.Debug("small slice", "len", len(xs))
		}
		var f future[B]
		execute(&f, cfg, chunks[0], parslice.View(xs, chunks[0]), factory())
		return join(cfg, chunks, []*future[B]{&f})
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug("spawning tasks", "len", len(xs), "chunks", len(chunks), "size", chunks[0].Len)
	}
	// All workers exist before the first goroutine starts, so a panicking
	// factory leaves nothing running.
	workers := make([]parslice.ChunkFunc[A, B], len(chunks))
	for i := range workers {
		workers[i] = factory()
	}
	futures := make([]*future[B], len(chunks))
	for i, c := range chunks {
		futures[i] = spawn(cfg, c, parslice.View(xs, c), workers[i])
	}
	results, err := join(cfg, chunks, futures)
	if cfg.Logger != nil {
		cfg.Logger.Debug("tasks joined", "chunks", len(futures), "failed", err != nil)
	}
	return results, err
}
