package watershed

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/morphlab/watergrid/minima"
	"github.com/morphlab/watergrid/ndgrid"
)

// Watershed computes the unmarked watershed transform of elev: the regional
// minima of the surface are labeled 1, 2, 3, … in raster order of discovery
// (see minima.Label) and flooding proceeds from them exactly as in
// FromMarkers with the same connectivity and options.
//
// The elevation values should be drawn from a discrete scale (an integer
// type or quantized floats); with arbitrary real values nearly every cell
// is its own plateau and the minima seeding degenerates to one label per
// local dip.
//
// Minima labeling reserves the zero label for background, so the options
// must keep the default zero Background; anything else returns
// ErrBadBackground. Labels carry no particular meaning beyond identity;
// relabeling by region size or any other order is the caller's business.
func Watershed[T constraints.Ordered, L constraints.Integer](
	elev *ndgrid.Grid[T],
	conn *ndgrid.Connectivity,
	opts Options[L],
) (*ndgrid.Grid[L], error) {
	if elev == nil {
		return nil, ErrNilGrid
	}
	if conn == nil {
		return nil, ErrNilConnectivity
	}
	if opts.Background != 0 {
		return nil, ErrBadBackground
	}

	markers, _, err := minima.Label[T, L](elev, conn)
	if err != nil {
		return nil, fmt.Errorf("watershed: seeding from minima: %w", err)
	}

	// A finite grid always has at least one regional minimum, so the
	// NoMarkers ladder step cannot trip here.
	return FromMarkers(elev, markers, conn, opts)
}
