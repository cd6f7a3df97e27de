package parslice_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/exascience/parslice"
)

func checkPartition(t *testing.T, cfg parslice.Config, length int) {
	t.Helper()
	chunks := cfg.Partition(length)
	eff := cfg.Effective()

	var want int
	switch {
	case length == 0:
		want = 0
	case length < eff.MinChunk:
		want = 1
	default:
		want = min(eff.MaxWorkers, length/eff.MinChunk)
	}
	if len(chunks) != want {
		t.Fatalf("Partition(%v) with %+v: %v chunks, want %v", length, eff, len(chunks), want)
	}

	next := 0
	for i, c := range chunks {
		if c.Base != next {
			t.Fatalf("Partition(%v): chunk %v starts at %v, want %v", length, i, c.Base, next)
		}
		if c.Len <= 0 {
			t.Fatalf("Partition(%v): chunk %v has length %v", length, i, c.Len)
		}
		next = c.End()
	}
	if next != length {
		t.Fatalf("Partition(%v): chunks cover [0, %v)", length, next)
	}
}

func TestPartitionSweep(t *testing.T) {
	configs := []parslice.Config{
		{},
		{MaxWorkers: 4, MinChunk: 16},
		{MaxWorkers: 1, MinChunk: 1},
		{MaxWorkers: 7, MinChunk: 3},
	}
	for _, cfg := range configs {
		eff := cfg.Effective()
		limit := (eff.MaxWorkers + 2) * eff.MinChunk
		for length := 0; length <= limit; length++ {
			checkPartition(t, cfg, length)
		}
	}
}

func TestPartitionRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		cfg := parslice.Config{
			MaxWorkers: r.Intn(64) + 1,
			MinChunk:   r.Intn(2048) + 1,
		}
		checkPartition(t, cfg, r.Intn(1<<22))
	}
}

func TestPartitionSmall(t *testing.T) {
	for _, length := range []int{1, 2, 1000, parslice.DefaultMinChunk - 1} {
		got := parslice.DefaultConfig().Partition(length)
		want := []parslice.Chunk{{Base: 0, Len: length}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Partition(%v) = %v, want %v", length, got, want)
		}
	}
}

func TestPartitionEmpty(t *testing.T) {
	if chunks := parslice.DefaultConfig().Partition(0); len(chunks) != 0 {
		t.Errorf("Partition(0) = %v, want no chunks", chunks)
	}
}

func TestPartitionTwoChunks(t *testing.T) {
	got := parslice.DefaultConfig().Partition(2048)
	want := []parslice.Chunk{{Base: 0, Len: 1024}, {Base: 1024, Len: 1024}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Partition(2048) = %v, want %v", got, want)
	}
}

func TestPartitionRemainder(t *testing.T) {
	cfg := parslice.Config{MaxWorkers: 3, MinChunk: 10}
	got := cfg.Partition(50)
	want := []parslice.Chunk{{Base: 0, Len: 16}, {Base: 16, Len: 16}, {Base: 32, Len: 18}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Partition(50) = %v, want %v", got, want)
	}
}

func TestPartitionMaxWorkers(t *testing.T) {
	length := 100 * parslice.DefaultMaxWorkers * parslice.DefaultMinChunk
	if n := len(parslice.DefaultConfig().Partition(length)); n != parslice.DefaultMaxWorkers {
		t.Errorf("Partition(%v) yields %v chunks, want %v", length, n, parslice.DefaultMaxWorkers)
	}
}

func TestEffective(t *testing.T) {
	if got := (parslice.Config{}).Effective(); got.MaxWorkers != parslice.DefaultMaxWorkers || got.MinChunk != parslice.DefaultMinChunk {
		t.Errorf("zero Config.Effective() = %+v", got)
	}
	if got := (parslice.Config{MaxWorkers: 3, MinChunk: 5}).Effective(); got.MaxWorkers != 3 || got.MinChunk != 5 {
		t.Errorf("Config.Effective() overrode explicit fields: %+v", got)
	}
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"NegativeLength", func() { parslice.DefaultConfig().Partition(-1) }},
		{"NegativeMaxWorkers", func() { parslice.Config{MaxWorkers: -1}.Effective() }},
		{"NegativeMinChunk", func() { parslice.Config{MinChunk: -1}.Partition(10) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			tt.f()
		})
	}
}

func TestViewCapacity(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4, 5}
	view := parslice.View(xs, parslice.Chunk{Base: 2, Len: 2})
	if cap(view) != 2 {
		t.Fatalf("cap(view) = %v, want 2", cap(view))
	}
	_ = append(view, 42)
	if xs[4] != 4 {
		t.Errorf("append on a view wrote into the next chunk: %v", xs)
	}
}

func ExampleConfig_Partition() {
	fmt.Println(parslice.DefaultConfig().Partition(2048))
	fmt.Println(parslice.Config{MaxWorkers: 2, MinChunk: 4}.Partition(11))

	// Output:
	// [{0 1024} {1024 1024}]
	// [{0 5} {5 6}]
}
