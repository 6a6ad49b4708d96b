package minima_test

import (
	"math/rand"
	"testing"

	"github.com/morphlab/watergrid/minima"
	"github.com/morphlab/watergrid/ndgrid"
)

// BenchmarkLabel measures plateau scanning over a 1000×1000 grid with
// random elevations in [0,255].
// Complexity: O(N·k)
func BenchmarkLabel(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	data := make([]int, n*n)
	for i := range data {
		data[i] = rng.Intn(256)
	}
	elev, err := ndgrid.FromSlice(data, n, n)
	if err != nil {
		b.Fatalf("setup FromSlice failed: %v", err)
	}
	conn, err := ndgrid.NewConnectivity(2, ndgrid.Face)
	if err != nil {
		b.Fatalf("setup NewConnectivity failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = minima.Label[int, int32](elev, conn); err != nil {
			b.Fatalf("Label failed: %v", err)
		}
	}
}
