package watershed

import (
	"golang.org/x/exp/constraints"
)

// floodItem is one scheduled pixel: its effective flood level (primary key:
// the pixel's elevation clamped up to the level of the flood step that
// discovered it), the flood path distance (secondary key, meaningful only
// under UseSpacing), a global insertion sequence number (final key, FIFO
// among equals) and the pixel's linear index.
type floodItem[T constraints.Ordered] struct {
	elev T
	dist float64
	seq  uint64
	idx  int
}

// floodQueue is a min-heap of *floodItem ordered by (elev, dist, seq)
// ascending. Unlike a lazy Dijkstra queue there are no stale entries: every
// pixel is pushed at most once, guarded by its Queued state.
type floodQueue[T constraints.Ordered] []*floodItem[T]

// Len returns the number of queued pixels.
func (q floodQueue[T]) Len() int { return len(q) }

// Less orders by flood level, then path distance, then insertion order.
func (q floodQueue[T]) Less(i, j int) bool {
	if q[i].elev != q[j].elev {
		return q[i].elev < q[j].elev
	}
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].seq < q[j].seq
}

// Swap swaps two entries.
func (q floodQueue[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *floodItem[T].
func (q *floodQueue[T]) Push(x interface{}) { *q = append(*q, x.(*floodItem[T])) }

// Pop removes and returns the smallest entry. Called by heap.Pop.
func (q *floodQueue[T]) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
