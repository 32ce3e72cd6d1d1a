package planner

import "github.com/pthm-cable/corridor/geometry"

// Prune greedily shortcuts path using line-of-sight checks against w:
// from each retained point i, it looks for the farthest later point j
// such that the straight segment i->j is collision free AND every
// point strictly between them is still a valid node, falling back to
// i+1 when no farther point qualifies. Idempotent: pruning an already
// pruned path returns it unchanged.
func Prune(path []geometry.Point, w worldView) []geometry.Point {
	if len(path) < 3 {
		out := make([]geometry.Point, len(path))
		copy(out, path)
		return out
	}

	pruned := []geometry.Point{path[0]}
	i := 0
	for i < len(path)-1 {
		bestNext := i + 1
		for j := len(path) - 1; j > i+1; j-- {
			if !w.IsCollisionFree(path[i], path[j]) {
				continue
			}
			if !intermediatesVerified(path, i, j, w) {
				continue
			}
			bestNext = j
			break
		}
		pruned = append(pruned, path[bestNext])
		i = bestNext
	}
	return pruned
}

// intermediatesVerified reports whether every path point strictly
// between indices i and j satisfies VerifyNode. Segment-level
// collision-freedom does not preclude a midpoint lying inside the
// safety margin of an obstacle, so this check runs alongside
// IsCollisionFree rather than in place of it.
func intermediatesVerified(path []geometry.Point, i, j int, w worldView) bool {
	for k := i + 1; k < j; k++ {
		if !w.VerifyNode(path[k]) {
			return false
		}
	}
	return true
}

// worldView is the subset of *world.World the pruner needs, kept as
// an interface so dpplanner's sub-path stitching can reuse Prune
// against the same world without an import cycle.
type worldView interface {
	VerifyNode(p geometry.Point) bool
	IsCollisionFree(a, b geometry.Point) bool
}
