package watershed_test

import (
	"math/rand"
	"testing"

	"github.com/morphlab/watergrid/ndgrid"
	"github.com/morphlab/watergrid/watershed"
)

// BenchmarkFromMarkers measures a full flood over a 1000×1000 grid with
// random elevations in [0,255] and 16 scattered seeds.
// Complexity: O(N·k·log N)
func BenchmarkFromMarkers(b *testing.B) {
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
	markers, err := ndgrid.New[int32](n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := 1; i <= 16; i++ {
		markers.Set(rng.Intn(n*n), int32(i))
	}
	conn, err := ndgrid.NewConnectivity(2, ndgrid.Face)
	if err != nil {
		b.Fatalf("setup NewConnectivity failed: %v", err)
	}
	opts := watershed.DefaultOptions[int32]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = watershed.FromMarkers(elev, markers, conn, opts); err != nil {
			b.Fatalf("FromMarkers failed: %v", err)
		}
	}
}

// BenchmarkFromMarkers_NoLine measures the cheaper first-arrival policy on
// the same scene.
func BenchmarkFromMarkers_NoLine(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	data := make([]int, n*n)
	for i := range data {
		data[i] = rng.Intn(256)
	}
	elev, _ := ndgrid.FromSlice(data, n, n)
	markers, _ := ndgrid.New[int32](n, n)
	for i := 1; i <= 16; i++ {
		markers.Set(rng.Intn(n*n), int32(i))
	}
	conn, _ := ndgrid.NewConnectivity(2, ndgrid.Face)
	opts := watershed.DefaultOptions[int32]()
	opts.MarkWatershedLine = false

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := watershed.FromMarkers(elev, markers, conn, opts); err != nil {
			b.Fatalf("FromMarkers failed: %v", err)
		}
	}
}
