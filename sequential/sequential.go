// Package sequential provides sequential implementations of the functions
// provided by the parallel package. This is useful for testing and debugging.
//
// The slice is divided into the same chunks as in package parallel, and the
// factory is invoked once per chunk, but all chunks are processed one after
// the other on the calling goroutine. The Logger and Observer of the
// parslice.Config are ignored.
//
// It is not recommended to use the implementations of this package for any
// other purpose, because they are almost certainly too inefficient for regular
// sequential programs.
package sequential

import (
	"github.com/exascience/parslice"
	"github.com/exascience/parslice/internal"
)

// MapChunks receives a slice and a factory of chunk workers, divides the slice
// into chunks as determined by cfg.Partition, and invokes a fresh worker for
// each of these chunks sequentially, returning the results in chunk order.
//
// MapChunks returns the left-most error value that is different from nil, and
// no results in that case.
func MapChunks[A, B any](
	cfg parslice.Config,
	xs []A,
	factory func() parslice.ChunkFunc[A, B],
) ([]B, error) {
	chunks := cfg.Partition(len(xs))
	results := make([]B, len(chunks))
	var err error
	for i, c := range chunks {
		var nerr error
		results[i], nerr = factory()(c.Base, parslice.View(xs, c))
		if err == nil {
			err = nerr
		}
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ErrMap applies the element functions to all elements of the slice
// sequentially, returning the results in the original order, and the
// left-most error value that is different from nil.
func ErrMap[A, R any](
	cfg parslice.Config,
	xs []A,
	factory func() func(A) (R, error),
) ([]R, error) {
	parts, err := MapChunks(cfg, xs, internal.MapWorkers(factory))
	if err != nil {
		return nil, err
	}
	return internal.Concat(parts, len(xs)), nil
}

// Map applies the element functions to all elements of the slice
// sequentially, returning the results in the original order.
func Map[A, R any](cfg parslice.Config, xs []A, factory func() func(A) R) []R {
	result, _ := ErrMap(cfg, xs, internal.Lift(factory))
	return result
}

// ErrMapIndexed is like ErrMap, except that the element functions also
// receive the index of each element in xs.
func ErrMapIndexed[A, R any](
	cfg parslice.Config,
	xs []A,
	factory func() func(int, A) (R, error),
) ([]R, error) {
	parts, err := MapChunks(cfg, xs, internal.MapIndexedWorkers(factory))
	if err != nil {
		return nil, err
	}
	return internal.Concat(parts, len(xs)), nil
}

// MapIndexed is like Map, except that the element functions also receive the
// index of each element in xs.
func MapIndexed[A, R any](cfg parslice.Config, xs []A, factory func() func(int, A) R) []R {
	result, _ := ErrMapIndexed(cfg, xs, internal.LiftIndexed(factory))
	return result
}

// ErrAll evaluates the predicates chunk by chunk, combining the results with
// the && operator, with true as the default return value. ErrAll also returns
// the left-most error value that is different from nil.
func ErrAll[A any](
	cfg parslice.Config,
	xs []A,
	factory func() func(int, A) (bool, error),
) (bool, error) {
	results, err := MapChunks(cfg, xs, internal.AllWorkers(factory))
	if err != nil {
		return false, err
	}
	return internal.And(results), nil
}

// All is like ErrAll for predicates that do not return errors.
func All[A any](cfg parslice.Config, xs []A, factory func() func(int, A) bool) bool {
	result, _ := ErrAll(cfg, xs, internal.LiftIndexed(factory))
	return result
}

// ErrAny evaluates the predicates chunk by chunk, combining the results with
// the || operator, with false as the default return value. ErrAny also returns
// the left-most error value that is different from nil.
func ErrAny[A any](
	cfg parslice.Config,
	xs []A,
	factory func() func(int, A) (bool, error),
) (bool, error) {
	results, err := MapChunks(cfg, xs, internal.AnyWorkers(factory))
	if err != nil {
		return false, err
	}
	return internal.Or(results), nil
}

// Any is like ErrAny for predicates that do not return errors.
func Any[A any](cfg parslice.Config, xs []A, factory func() func(int, A) bool) bool {
	result, _ := ErrAny(cfg, xs, internal.LiftIndexed(factory))
	return result
}
