package dpplanner

import "github.com/pthm-cable/corridor/geometry"

// memoKey identifies a cached center-to-center sub-path by the pair of
// cell ids it connects, in the order it was queried.
type memoKey struct {
	from, to int
}

// memoTable caches A* sub-paths between decomposition cell centers.
// Entries are stored symmetrically: a computed from->to path is
// recorded both forward and reversed, so a later query in either
// direction hits the cache. Unbounded by design — see the
// open-question note in this repo's design ledger for why no LRU
// eviction was added.
type memoTable struct {
	entries map[memoKey][]geometry.Point
}

func newMemoTable() *memoTable {
	return &memoTable{entries: make(map[memoKey][]geometry.Point)}
}

// lookup returns a deep copy of the cached sub-path, so callers are
// free to mutate or reverse it without corrupting the memo table.
func (m *memoTable) lookup(from, to int) ([]geometry.Point, bool) {
	path, ok := m.entries[memoKey{from, to}]
	if !ok {
		return nil, false
	}
	out := make([]geometry.Point, len(path))
	copy(out, path)
	return out, true
}

func (m *memoTable) store(from, to int, path []geometry.Point) {
	m.entries[memoKey{from, to}] = path

	reversed := make([]geometry.Point, len(path))
	for i, p := range path {
		reversed[len(path)-1-i] = p
	}
	m.entries[memoKey{to, from}] = reversed
}
