package wasmframe

import "math"

// Periodic is a function with the period of a full sine cycle, taking radians
// and returning a value in [-1, 1]. WebAssembly hosts import it from the
// embedder.
type Periodic func(x float32) float32

// Sine is the Go implementation of the periodic function.
func Sine(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Table holds a Periodic sampled at the integers 0..len-1.
type Table []float32

// NewTable samples p at 0..n-1.
func NewTable(p Periodic, n int) Table {
	t := make(Table, n)
	for i := range t {
		t[i] = p(float32(i))
	}
	return t
}
