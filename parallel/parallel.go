// Package parallel provides parallel versions of map, indexed map, for-all,
// and exists over slices.
//
// Each function receives a parslice.Config that determines how the slice is
// divided into chunks (the zero Config uses the defaults), and a factory that
// is invoked once per chunk to create the function applied to the elements of
// that chunk. Functions created by the factory are never shared between
// goroutines, so they may keep private state without synchronization.
//
// All functions wait for every chunk before returning. In particular, All and
// Any evaluate all chunks even if an early chunk already determines the
// result; see package speculative for versions that stop early.
package parallel

import (
	"github.com/exascience/parslice"
	"github.com/exascience/parslice/internal"
)

// ErrMap receives a slice and a factory of element functions, and applies the
// element functions to all elements of the slice in parallel, returning the
// results in the original order.
//
// Each chunk of the slice is processed by its own element function in its own
// goroutine, and ErrMap returns only when all chunks have been processed. If
// any element function returns an error value different from nil, processing
// of its chunk stops, and ErrMap returns the left-most of these errors and no
// results.
//
// If one or more element functions panic, the corresponding goroutines recover
// the panics, and ErrMap eventually panics with the left-most recovered panic
// value.
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

// Map receives a slice and a factory of element functions, and applies the
// element functions to all elements of the slice in parallel, returning the
// results in the original order.
//
// Each chunk of the slice is processed by its own element function in its own
// goroutine, and Map returns only when all chunks have been processed.
//
// If one or more element functions panic, the corresponding goroutines recover
// the panics, and Map eventually panics with the left-most recovered panic
// value.
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

// ErrAll receives a slice and a factory of predicates, and reports whether the
// predicates hold for all elements of the slice, evaluating the chunks of the
// slice in parallel. The predicates receive the index of each element in xs,
// and the element itself. ErrAll returns true for an empty slice.
//
// Each chunk is evaluated by its own predicate in its own goroutine, and stops
// at the first element for which the predicate returns false. ErrAll returns
// only when all chunks have been evaluated, combining the results with the &&
// operator. If any predicate returns an error value different from nil,
// ErrAll returns false and the left-most of these errors.
//
// If one or more predicates panic, the corresponding goroutines recover the
// panics, and ErrAll eventually panics with the left-most recovered panic
// value.
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

// ErrAny receives a slice and a factory of predicates, and reports whether the
// predicates hold for at least one element of the slice, evaluating the
// chunks of the slice in parallel. The predicates receive the index of each
// element in xs, and the element itself. ErrAny returns false for an empty
// slice.
//
// Each chunk is evaluated by its own predicate in its own goroutine, and stops
// at the first element for which the predicate returns true. ErrAny returns
// only when all chunks have been evaluated, combining the results with the ||
// operator. If any predicate returns an error value different from nil,
// ErrAny returns false and the left-most of these errors.
//
// If one or more predicates panic, the corresponding goroutines recover the
// panics, and ErrAny eventually panics with the left-most recovered panic
// value.
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
