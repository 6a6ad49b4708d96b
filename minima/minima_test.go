package minima_test

import (
	"errors"
	"testing"

	"github.com/morphlab/watergrid/minima"
	"github.com/morphlab/watergrid/ndgrid"
)

// conn returns a fresh descriptor or fails the test.
func conn(t *testing.T, dim int, mode ndgrid.Mode) *ndgrid.Connectivity {
	t.Helper()
	c, err := ndgrid.NewConnectivity(dim, mode)
	if err != nil {
		t.Fatalf("NewConnectivity error: %v", err)
	}
	return c
}

// TestLabel_Validation covers nil inputs and dimensionality mismatch.
func TestLabel_Validation(t *testing.T) {
	elev, _ := ndgrid.New[int](3, 3)

	if _, _, err := minima.Label[int, int32](nil, conn(t, 2, ndgrid.Face)); !errors.Is(err, minima.ErrNilGrid) {
		t.Errorf("nil grid error = %v; want ErrNilGrid", err)
	}
	if _, _, err := minima.Label[int, int32](elev, nil); !errors.Is(err, minima.ErrNilConnectivity) {
		t.Errorf("nil connectivity error = %v; want ErrNilConnectivity", err)
	}
	if _, _, err := minima.Label[int, int32](elev, conn(t, 3, ndgrid.Face)); !errors.Is(err, ndgrid.ErrDimensionMismatch) {
		t.Errorf("dim mismatch error = %v; want ndgrid.ErrDimensionMismatch", err)
	}
}

// TestLabel_1D verifies detection and raster-order labeling on signals.
func TestLabel_1D(t *testing.T) {
	cases := []struct {
		name  string
		elev  []int
		want  []int32
		count int
	}{
		{"SingleDip", []int{5, 4, 3, 2, 1, 2, 3, 4, 5}, []int32{0, 0, 0, 0, 1, 0, 0, 0, 0}, 1},
		{"TwoDips", []int{3, 1, 3, 0, 3}, []int32{0, 1, 0, 2, 0}, 2},
		{"PlateauMinimum", []int{2, 1, 1, 2}, []int32{0, 1, 1, 0}, 1},
		{"BorderPlateau", []int{1, 1, 2}, []int32{1, 1, 0}, 1},
		{"NonMinimumPlateau", []int{2, 1, 1, 0}, []int32{0, 0, 0, 1}, 1},
		{"Monotone", []int{1, 2, 3, 4}, []int32{1, 0, 0, 0}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			elev, err := ndgrid.FromSlice(tc.elev, len(tc.elev))
			if err != nil {
				t.Fatalf("FromSlice error: %v", err)
			}
			out, count, err := minima.Label[int, int32](elev, conn(t, 1, ndgrid.Face))
			if err != nil {
				t.Fatalf("Label error: %v", err)
			}
			if count != tc.count {
				t.Errorf("count = %d; want %d", count, tc.count)
			}
			for i, want := range tc.want {
				if out.At(i) != want {
					t.Errorf("label[%d] = %d; want %d (full: %v)", i, out.At(i), want, out.Data())
					break
				}
			}
		})
	}
}

// TestLabel_ConstantImage: a flat surface is one big minimum spanning the
// whole domain.
func TestLabel_ConstantImage(t *testing.T) {
	elev, _ := ndgrid.New[uint8](3, 4)
	out, count, err := minima.Label[uint8, int32](elev, conn(t, 2, ndgrid.Full))
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d; want 1", count)
	}
	for i, lab := range out.Data() {
		if lab != 1 {
			t.Fatalf("label[%d] = %d; want 1", i, lab)
		}
	}
}

// TestLabel_ConnectivitySensitive: two zero cells touching only diagonally
// are two minima under Face but a single plateau under Full.
func TestLabel_ConnectivitySensitive(t *testing.T) {
	elev, err := ndgrid.From2D([][]int{
		{0, 9},
		{9, 0},
	})
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}

	_, count, err := minima.Label[int, int32](elev, conn(t, 2, ndgrid.Face))
	if err != nil || count != 2 {
		t.Errorf("Face count = %d, err=%v; want 2", count, err)
	}
	_, count, err = minima.Label[int, int32](elev, conn(t, 2, ndgrid.Full))
	if err != nil || count != 1 {
		t.Errorf("Full count = %d, err=%v; want 1", count, err)
	}
}

// TestLabel_Deterministic: repeated runs label identically.
func TestLabel_Deterministic(t *testing.T) {
	elev, err := ndgrid.From2D([][]int{
		{3, 3, 5, 2, 2},
		{3, 9, 5, 9, 2},
		{4, 9, 1, 9, 4},
		{4, 4, 6, 4, 4},
	})
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	a, na, err := minima.Label[int, int32](elev, conn(t, 2, ndgrid.Face))
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	b, nb, err := minima.Label[int, int32](elev, conn(t, 2, ndgrid.Face))
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	if na != nb {
		t.Fatalf("counts differ: %d vs %d", na, nb)
	}
	for i := range a.Data() {
		if a.At(i) != b.At(i) {
			t.Fatalf("label[%d] differs: %d vs %d", i, a.At(i), b.At(i))
		}
	}
	if na != 3 {
		t.Errorf("count = %d; want 3 (two border plateaus and the center dip)", na)
	}
}
