package internal

import "github.com/exascience/parslice"

// Lift turns a factory of element functions into a factory of element
// functions that never fail.
func Lift[A, R any](factory func() func(A) R) func() func(A) (R, error) {
	return func() func(A) (R, error) {
		f := factory()
		return func(x A) (R, error) {
			return f(x), nil
		}
	}
}

// LiftIndexed is like Lift for element functions that receive an index.
func LiftIndexed[A, R any](factory func() func(int, A) R) func() func(int, A) (R, error) {
	return func() func(int, A) (R, error) {
		f := factory()
		return func(i int, x A) (R, error) {
			return f(i, x), nil
		}
	}
}

// MapWorkers returns a factory of chunk workers that apply a fresh element
// function to every element of their chunk.
func MapWorkers[A, R any](factory func() func(A) (R, error)) func() parslice.ChunkFunc[A, []R] {
	return func() parslice.ChunkFunc[A, []R] {
		f := factory()
		return func(_ int, chunk []A) (result []R, err error) {
			result = make([]R, len(chunk))
			for j, x := range chunk {
				if result[j], err = f(x); err != nil {
					return nil, err
				}
			}
			return result, nil
		}
	}
}

// MapIndexedWorkers is like MapWorkers, but the element function also
// receives the absolute index of each element.
func MapIndexedWorkers[A, R any](factory func() func(int, A) (R, error)) func() parslice.ChunkFunc[A, []R] {
	return func() parslice.ChunkFunc[A, []R] {
		f := factory()
		return func(base int, chunk []A) (result []R, err error) {
			result = make([]R, len(chunk))
			for j, x := range chunk {
				if result[j], err = f(base+j, x); err != nil {
					return nil, err
				}
			}
			return result, nil
		}
	}
}

// AllWorkers returns a factory of chunk workers that report whether a fresh
// predicate holds for every element of their chunk. A worker stops at the
// first element for which the predicate fails.
func AllWorkers[A any](factory func() func(int, A) (bool, error)) func() parslice.ChunkFunc[A, bool] {
	return func() parslice.ChunkFunc[A, bool] {
		f := factory()
		return func(base int, chunk []A) (bool, error) {
			for j, x := range chunk {
				if ok, err := f(base+j, x); err != nil || !ok {
					return false, err
				}
			}
			return true, nil
		}
	}
}

// AnyWorkers returns a factory of chunk workers that report whether a fresh
// predicate holds for at least one element of their chunk. A worker stops at
// the first element for which the predicate holds.
func AnyWorkers[A any](factory func() func(int, A) (bool, error)) func() parslice.ChunkFunc[A, bool] {
	return func() parslice.ChunkFunc[A, bool] {
		f := factory()
		return func(base int, chunk []A) (bool, error) {
			for j, x := range chunk {
				if ok, err := f(base+j, x); err != nil || ok {
					return ok && err == nil, err
				}
			}
			return false, nil
		}
	}
}
