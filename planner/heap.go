package planner

// openItem is a single entry in the open-set priority queue: a
// candidate GridIndex keyed by f = g + h.
type openItem struct {
	id    GridIndex
	f     float64
	index int // heap index, maintained by container/heap
}

// openHeap is a min-heap of openItem ordered by f. Because the open
// set's cost for a GridIndex can improve after an item for it was
// already pushed, openHeap tolerates stale duplicate entries: the
// caller re-validates an entry's f against the current OpenSet cost
// when it pops and discards anything stale.
type openHeap []*openItem

func (h openHeap) Len() int           { return len(h) }
func (h openHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x any) {
	item := x.(*openItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}
