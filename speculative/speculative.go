/*
Package speculative provides versions of All and Any, similar to the functions
in package parallel, except that the implementations here stop evaluating
early when they can.

All stops all chunks as soon as any predicate returns false, and Any stops all
chunks as soon as any predicate returns true. ErrAll and ErrAny additionally
stop all chunks as soon as any predicate returns an error value different from
nil.

Chunks are stopped cooperatively: each chunk checks a shared flag before
evaluating its next element, so a predicate invocation that is already running
is never interrupted. The functions still wait for all goroutines to terminate
before returning, which ensures that panics propagate to the invoking
goroutine, and that no predicate is still running after the function returns.

Which elements are evaluated depends on the scheduling of the goroutines. The
predicates should therefore not have side effects on which the result of the
program depends.
*/
package speculative

import (
	"sync/atomic"

	"github.com/exascience/parslice"
	"github.com/exascience/parslice/internal"
	"github.com/exascience/parslice/parallel"
)

/*
ErrAll receives a slice and a factory of predicates, and reports whether the
predicates hold for all elements of the slice, evaluating the chunks of the
slice in parallel. ErrAll returns true for an empty slice.

As soon as one predicate returns false, or an error value different from nil,
the remaining chunks stop evaluating. In the latter case, ErrAll returns false
and the left-most error value among the chunks that reported one.

If one or more predicates panic, the corresponding goroutines recover the
panics, and ErrAll eventually panics with the left-most recovered panic value.
*/
func ErrAll[A any](
	cfg parslice.Config,
	xs []A,
	factory func() func(int, A) (bool, error),
) (bool, error) {
	var decided atomic.Bool
	results, err := parallel.MapChunks(cfg, xs, func() parslice.ChunkFunc[A, bool] {
		f := factory()
		return func(base int, chunk []A) (bool, error) {
			for j, x := range chunk {
				if decided.Load() {
					// another chunk returns false or fails
					return true, nil
				}
				if ok, err := f(base+j, x); err != nil || !ok {
					decided.Store(true)
					return false, err
				}
			}
			return true, nil
		}
	})
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

/*
ErrAny receives a slice and a factory of predicates, and reports whether the
predicates hold for at least one element of the slice, evaluating the chunks of
the slice in parallel. ErrAny returns false for an empty slice.

As soon as one predicate returns true, or an error value different from nil,
the remaining chunks stop evaluating. In the latter case, ErrAny returns false
and the left-most error value among the chunks that reported one.

If one or more predicates panic, the corresponding goroutines recover the
panics, and ErrAny eventually panics with the left-most recovered panic value.
*/
func ErrAny[A any](
	cfg parslice.Config,
	xs []A,
	factory func() func(int, A) (bool, error),
) (bool, error) {
	var decided atomic.Bool
	results, err := parallel.MapChunks(cfg, xs, func() parslice.ChunkFunc[A, bool] {
		f := factory()
		return func(base int, chunk []A) (bool, error) {
			for j, x := range chunk {
				if decided.Load() {
					// another chunk returns true or fails
					return false, nil
				}
				ok, err := f(base+j, x)
				if err != nil {
					decided.Store(true)
					return false, err
				}
				if ok {
					decided.Store(true)
					return true, nil
				}
			}
			return false, nil
		}
	})
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
