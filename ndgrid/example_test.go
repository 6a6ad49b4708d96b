// File: ndgrid/example_test.go
package ndgrid_test

import (
	"fmt"

	"github.com/morphlab/watergrid/ndgrid"
)

// ExampleNewConnectivity shows the neighborhood sizes the two modes produce
// in three dimensions.
func ExampleNewConnectivity() {
	face, _ := ndgrid.NewConnectivity(3, ndgrid.Face)
	full, _ := ndgrid.NewConnectivity(3, ndgrid.Full)

	fmt.Println("face degree:", face.Degree())
	fmt.Println("full degree:", full.Degree())

	// Output:
	// face degree: 6
	// full degree: 26
}

// ExampleGrid_Index converts between coordinates and the flat row-major
// offset used by the flood internals.
func ExampleGrid_Index() {
	g, _ := ndgrid.New[uint8](2, 3, 4)

	idx := g.Index([]int{1, 2, 3})
	fmt.Println("index:     ", idx)
	fmt.Println("coordinate:", g.Coordinate(idx, nil))

	// Output:
	// index:      23
	// coordinate: [1 2 3]
}
