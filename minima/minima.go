package minima

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/morphlab/watergrid/ndgrid"
)

// Sentinel errors for minima detection.
var (
	// ErrNilGrid indicates a nil elevation grid.
	ErrNilGrid = errors.New("minima: elevation grid is nil")
	// ErrNilConnectivity indicates a nil connectivity descriptor.
	ErrNilConnectivity = errors.New("minima: connectivity is nil")
)

// Label finds the regional minima of elev under conn and returns a marker
// grid of the same shape: cells of the i-th minimum (in raster order of
// first discovery) carry label i (1-based), all other cells carry 0. The
// second result is the number of minima.
//
// A plateau — a maximal connected set of equal-elevation cells — is a
// regional minimum iff none of its members has a strictly lower neighbor.
// Choose a label type wide enough for the expected minima count; labels are
// assigned by plain increment.
//
// Complexity: O(N·k) time, O(N) memory.
func Label[T constraints.Ordered, L constraints.Integer](
	elev *ndgrid.Grid[T],
	conn *ndgrid.Connectivity,
) (*ndgrid.Grid[L], int, error) {
	if elev == nil {
		return nil, 0, ErrNilGrid
	}
	if conn == nil {
		return nil, 0, ErrNilConnectivity
	}
	if conn.Dim() != elev.Dim() {
		return nil, 0, ndgrid.ErrDimensionMismatch
	}

	n := elev.Len()
	out, err := ndgrid.New[L](elev.Shape()...)
	if err != nil {
		return nil, 0, err
	}

	seen := make([]bool, n)
	var (
		plateau []int // members of the plateau under scan
		queue   []int // BFS frontier, reused across plateaus
		nbrs    []int
		cbuf    = make([]int, elev.Dim())
		next    L
		count   int
	)

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		// BFS over the equal-elevation plateau containing start, checking
		// for any strictly lower neighbor along the way.
		level := elev.At(start)
		isMin := true
		plateau = plateau[:0]
		queue = append(queue[:0], start)
		seen[start] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			plateau = append(plateau, u)
			cbuf = elev.Coordinate(u, cbuf)
			nbrs, _ = elev.AppendNeighbors(conn, cbuf, nbrs[:0])
			for _, v := range nbrs {
				switch {
				case elev.At(v) < level:
					isMin = false
				case elev.At(v) == level && !seen[v]:
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}

		if !isMin {
			continue
		}
		next++
		count++
		for _, u := range plateau {
			out.Set(u, next)
		}
	}

	return out, count, nil
}
