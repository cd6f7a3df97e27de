package parallel_test

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/exascience/parslice"
	"github.com/exascience/parslice/parallel"
)

func ExampleMap() {
	xs := makeInts(2048)
	doubled := parallel.Map(parslice.Config{}, xs, func() func(int) int {
		return func(x int) int { return x * 2 }
	})
	fmt.Println(len(doubled), doubled[:4], doubled[2047])

	// Output:
	// 2048 [0 2 4 6] 4094
}

func ExampleMapIndexed() {
	words := []string{"zero", "one", "two"}
	labels := parallel.MapIndexed(parslice.Config{}, words, func() func(int, string) string {
		return func(i int, w string) string { return fmt.Sprintf("%d:%s", i, w) }
	})
	fmt.Println(labels)

	// Output:
	// [0:zero 1:one 2:two]
}

func ExampleAll() {
	even := func() func(int, int) bool {
		return func(_, x int) bool { return x%2 == 0 }
	}
	xs := makeInts(2048)
	fmt.Println(parallel.All(parslice.Config{}, xs, even))
	fmt.Println(parallel.Any(parslice.Config{}, xs, even))
	fmt.Println(parallel.All(parslice.Config{}, []int{}, even))
	fmt.Println(parallel.Any(parslice.Config{}, []int{}, even))

	// Output:
	// false
	// true
	// true
	// false
}

// A worker may keep private state, because every chunk gets its own worker.
func ExampleMap_scratchBuffer() {
	lines := make([]string, 3000)
	for i := range lines {
		lines[i] = fmt.Sprint(i)
	}
	lengths := parallel.Map(parslice.Config{}, lines, func() func(string) int {
		var buf []byte
		return func(s string) int {
			buf = append(buf[:0], s...)
			buf = append(buf, '!')
			return len(buf)
		}
	})
	fmt.Println(lengths[0], lengths[10], lengths[2999])

	// Output:
	// 2 3 5
}

func Example_rowNorms() {
	const rows, cols = 3000, 4
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i / cols)
	}
	m := mat.NewDense(rows, cols, data)

	views := make([][]float64, rows)
	for i := range views {
		views[i] = m.RawRowView(i)
	}
	norms := parallel.Map(parslice.Config{MinChunk: 256}, views, func() func([]float64) float64 {
		return func(row []float64) float64 { return floats.Norm(row, 2) }
	})
	fmt.Println(norms[0], norms[1], norms[rows-1])

	// Output:
	// 0 2 5998
}
