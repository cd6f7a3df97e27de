package sequential_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/exascience/parslice"
	"github.com/exascience/parslice/sequential"
)

func TestMapIndexed(t *testing.T) {
	cfg := parslice.Config{MaxWorkers: 3, MinChunk: 4}
	xs := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
	got := sequential.MapIndexed(cfg, xs, func() func(int, string) string {
		return func(i int, s string) string { return s + string(rune('0'+i%10)) }
	})
	want := []string{"a0", "b1", "c2", "d3", "e4", "f5", "g6", "h7", "i8", "j9", "k0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MapIndexed = %v, want %v", got, want)
	}
}

func TestWorkerPerChunk(t *testing.T) {
	cfg := parslice.Config{MaxWorkers: 3, MinChunk: 4}
	var sizes []int
	sequential.Map(cfg, make([]int, 13), func() func(int) int {
		sizes = append(sizes, 0)
		k := len(sizes) - 1
		return func(x int) int {
			sizes[k]++
			return x
		}
	})
	if want := []int{4, 4, 5}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("chunk sizes = %v, want %v", sizes, want)
	}
}

func TestLeftMostError(t *testing.T) {
	cfg := parslice.Config{MaxWorkers: 4, MinChunk: 1}
	first, second := errors.New("first"), errors.New("second")
	_, err := sequential.ErrMap(cfg, []int{0, 1, 2, 3}, func() func(int) (int, error) {
		return func(x int) (int, error) {
			switch x {
			case 1:
				return 0, first
			case 3:
				return 0, second
			}
			return x, nil
		}
	})
	if err != first {
		t.Errorf("ErrMap error = %v, want %v", err, first)
	}
}

func TestPredicates(t *testing.T) {
	positive := func() func(int, int) bool {
		return func(_, x int) bool { return x > 0 }
	}
	tests := []struct {
		xs       []int
		all, any bool
	}{
		{nil, true, false},
		{[]int{1, 2, 3}, true, true},
		{[]int{1, 0, 3}, false, true},
		{[]int{0, 0}, false, false},
	}
	for _, tt := range tests {
		if got := sequential.All(parslice.Config{}, tt.xs, positive); got != tt.all {
			t.Errorf("All(%v) = %v, want %v", tt.xs, got, tt.all)
		}
		if got := sequential.Any(parslice.Config{}, tt.xs, positive); got != tt.any {
			t.Errorf("Any(%v) = %v, want %v", tt.xs, got, tt.any)
		}
	}
}
