package watershed

import (
	"container/heap"

	"golang.org/x/exp/constraints"

	"github.com/morphlab/watergrid/ndgrid"
)

// Per-pixel flood states. A pixel moves Unvisited → Queued → Labeled, or
// Unvisited → Queued → Background when line marking applies. Both final
// states are terminal: a label, once assigned, is never replaced, and the
// background value is never overwritten by a region label.
const (
	stateUnvisited uint8 = iota
	stateQueued
	stateLabeled
	stateBackground
)

// FromMarkers computes the watershed transform of elev seeded by markers.
//
// Every pixel whose marker label differs from opts.Background starts a
// flood carrying that label. Floods advance in non-decreasing level order
// with FIFO tie-breaking among equal levels, where a pixel's level is its
// elevation clamped up to the level of the flood step that discovered it:
// a basin is drained at the level the water entered through, never
// undercutting a frontier parked higher. Where two differently labeled
// floods meet, the contact pixel becomes opts.Background (watershed line)
// or is claimed by the earliest-arriving flood, per opts.MarkWatershedLine.
//
// The elevation grid is read-only and may be shared across invocations.
// The marker grid is not modified: the result is a fresh grid initialized
// from markers and extended over the reachable domain. Basins untouched by
// any marker keep the background value — an expected outcome, not an error.
//
// Validation (all before any work):
//  1. elev and markers non-nil (ErrNilGrid).
//  2. conn non-nil (ErrNilConnectivity).
//  3. identical shapes (ErrShapeMismatch).
//  4. conn.Dim() matches the grids (ErrDimensionMismatch).
//  5. at least one non-background marker pixel (ErrNoMarkers).
//
// Complexity: O(N·k·log N) time, O(N) memory, N = cell count, k = conn.Degree().
func FromMarkers[T constraints.Ordered, L constraints.Integer](
	elev *ndgrid.Grid[T],
	markers *ndgrid.Grid[L],
	conn *ndgrid.Connectivity,
	opts Options[L],
) (*ndgrid.Grid[L], error) {
	if elev == nil || markers == nil {
		return nil, ErrNilGrid
	}
	if conn == nil {
		return nil, ErrNilConnectivity
	}
	if !ndgrid.SameShape(elev, markers) {
		return nil, ErrShapeMismatch
	}
	if conn.Dim() != elev.Dim() {
		return nil, ErrDimensionMismatch
	}
	seeded := false
	for _, lab := range markers.Data() {
		if lab != opts.Background {
			seeded = true
			break
		}
	}
	if !seeded {
		return nil, ErrNoMarkers
	}

	r := newRunner(elev, markers, conn, opts)
	r.seed()
	r.drain()

	return r.out, nil
}

// runner holds the mutable state of a single flood invocation. All of it is
// transient: allocated here, discarded when FromMarkers returns.
type runner[T constraints.Ordered, L constraints.Integer] struct {
	elev *ndgrid.Grid[T]
	out  *ndgrid.Grid[L]
	conn *ndgrid.Connectivity
	opts Options[L]

	shape   []int
	strides []int
	offsets [][]int

	state []uint8   // per-pixel flood state; doubles as the in-queue marker
	stamp []uint64  // label-assignment order; tracked only when lines are off
	dist  []float64 // accumulated flood distance; only under UseSpacing

	pq        floodQueue[T]
	seq       uint64 // global insertion counter for FIFO tie-breaks
	nextStamp uint64

	cbuf   []int // coordinate scratch
	nbr    []int // in-bounds neighbor indices of the current pixel
	noff   []int // offset index per entry of nbr
	labels []L   // distinct labeled-neighbor labels of the current pixel
}

func newRunner[T constraints.Ordered, L constraints.Integer](
	elev *ndgrid.Grid[T],
	markers *ndgrid.Grid[L],
	conn *ndgrid.Connectivity,
	opts Options[L],
) *runner[T, L] {
	n := elev.Len()
	k := conn.Degree()
	r := &runner[T, L]{
		elev:    elev,
		out:     markers.Clone(),
		conn:    conn,
		opts:    opts,
		shape:   elev.Shape(),
		strides: elev.Strides(),
		offsets: conn.Offsets(),
		state:   make([]uint8, n),
		pq:      make(floodQueue[T], 0, n/4),
		cbuf:    make([]int, elev.Dim()),
		nbr:     make([]int, 0, k),
		noff:    make([]int, 0, k),
		labels:  make([]L, 0, k),
	}
	if !opts.MarkWatershedLine {
		r.stamp = make([]uint64, n)
	}
	if opts.UseSpacing {
		r.dist = make([]float64, n)
	}

	return r
}

// gather enumerates the in-bounds neighbors of idx into r.nbr/r.noff.
// Coordinates outside the domain are omitted; no wraparound. Inlined rather
// than routed through Grid.AppendNeighbors: the flood also needs each
// neighbor's offset index (for EffectiveDistance) and the incremental index
// arithmetic, neither of which that API exposes.
func (r *runner[T, L]) gather(idx int) {
	r.nbr = r.nbr[:0]
	r.noff = r.noff[:0]
	r.cbuf = r.elev.Coordinate(idx, r.cbuf)
	for oi, off := range r.offsets {
		n, ok := idx, true
		for a, o := range off {
			nc := r.cbuf[a] + o
			if nc < 0 || nc >= r.shape[a] {
				ok = false
				break
			}
			n += o * r.strides[a]
		}
		if ok {
			r.nbr = append(r.nbr, n)
			r.noff = append(r.noff, oi)
		}
	}
}

// enqueue transitions pixel n to Queued. The queue key is n's own elevation
// clamped up to level, the effective level of the flood step that discovered
// it: a flood that descends into a basin keeps draining it at the level it
// entered through, instead of undercutting frontiers parked higher. Under
// UseSpacing the pixel inherits the path distance of its discoverer plus one
// step; this is first-discovery path length, not a shortest geodesic distance.
func (r *runner[T, L]) enqueue(n, from, off int, level T) {
	r.state[n] = stateQueued
	key := r.elev.At(n)
	if key < level {
		key = level
	}
	item := &floodItem[T]{elev: key, seq: r.seq, idx: n}
	r.seq++
	if r.dist != nil {
		d := r.dist[from] + r.conn.EffectiveDistance(off)
		r.dist[n] = d
		item.dist = d
	}
	heap.Push(&r.pq, item)
}

// assign transitions idx to Labeled with lab, recording assignment order
// when the first-arrival policy needs it.
func (r *runner[T, L]) assign(idx int, lab L) {
	r.out.Set(idx, lab)
	r.state[idx] = stateLabeled
	if r.stamp != nil {
		r.nextStamp++
		r.stamp[idx] = r.nextStamp
	}
}

// seed marks every non-background marker pixel Labeled (stamped in raster
// order, which fixes the deterministic seeding the FIFO tie-break builds
// on), then enqueues the unvisited neighbors of each seed, again in raster
// order.
func (r *runner[T, L]) seed() {
	bg := r.opts.Background
	out := r.out.Data()
	for idx, lab := range out {
		if lab != bg {
			r.state[idx] = stateLabeled
			if r.stamp != nil {
				r.nextStamp++
				r.stamp[idx] = r.nextStamp
			}
		}
	}
	for idx := range out {
		if r.state[idx] != stateLabeled {
			continue
		}
		r.gather(idx)
		for i, n := range r.nbr {
			if r.state[n] == stateUnvisited {
				r.enqueue(n, idx, r.noff[i], r.elev.At(n))
			}
		}
	}
}

// drain is the flood loop: extract the smallest (level, distance, insertion)
// entry, resolve its label from already-labeled neighbors, then schedule its
// unvisited neighbors at the extracted level. The popped key never
// decreases, so the front floods one level at a time. Each pixel is
// extracted exactly once.
func (r *runner[T, L]) drain() {
	bg := r.opts.Background
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*floodItem[T])
		idx := item.idx
		r.gather(idx)

		// Collect the distinct labels among already-labeled neighbors,
		// remembering the earliest-assigned one for the first-arrival policy.
		r.labels = r.labels[:0]
		var first L
		var firstStamp uint64
		for _, n := range r.nbr {
			if r.state[n] != stateLabeled {
				continue
			}
			lab := r.out.At(n)
			known := false
			for _, l := range r.labels {
				if l == lab {
					known = true
					break
				}
			}
			if !known {
				r.labels = append(r.labels, lab)
			}
			if r.stamp != nil && (firstStamp == 0 || r.stamp[n] < firstStamp) {
				firstStamp = r.stamp[n]
				first = lab
			}
		}

		switch {
		case len(r.labels) == 1:
			// Reached by exactly one flood: claim it.
			r.assign(idx, r.labels[0])
		case len(r.labels) > 1 && !r.opts.MarkWatershedLine:
			// Collision without line marking: the earliest flood wins.
			r.assign(idx, first)
		default:
			// Collision with line marking, or every labeled path was cut off
			// by watershed pixels: this pixel is background.
			r.out.Set(idx, bg)
			r.state[idx] = stateBackground
		}

		for i, n := range r.nbr {
			if r.state[n] == stateUnvisited {
				r.enqueue(n, idx, r.noff[i], item.elev)
			}
		}
	}
}
