// Package dpplanner implements the decomposition-assisted planner: it
// decomposes the world into Boustrophedon cells once, then answers
// each planning query by locating the start and goal cells, reusing
// (or computing and memoizing) the A* path between their centers, and
// stitching a start->center-path->goal route together. The per-query
// A* sub-legs are delegated to the planner package so the motion
// model, line-of-sight pruning, and diagnostics stay identical to the
// standalone planner.
package dpplanner

import (
	"log/slog"

	"github.com/pthm-cable/corridor/config"
	"github.com/pthm-cable/corridor/decomposition"
	"github.com/pthm-cable/corridor/geometry"
	"github.com/pthm-cable/corridor/planner"
	"github.com/pthm-cable/corridor/world"
)

// Planner decomposes its world once at construction and reuses that
// decomposition (and its growing memo table) across queries.
type Planner struct {
	world         *world.World
	astar         *planner.Planner
	decomposition *decomposition.Result
	memo          *memoTable
}

// New decomposes w and returns a Planner ready for repeated Plan calls.
func New(w *world.World, cfg *config.Config) *Planner {
	return &Planner{
		world:         w,
		astar:         planner.New(w, cfg),
		decomposition: decomposition.Decompose(w),
		memo:          newMemoTable(),
	}
}

// Plan finds a route from start to goal. When both points fall in the
// same decomposition cell it degenerates to a direct A* call; otherwise
// it stitches start->cell-center-path->goal, reusing a memoized
// center-to-center path when one already exists for this cell pair.
func (p *Planner) Plan(start, goal geometry.Point) ([]geometry.Point, []geometry.Point, planner.Diagnostic) {
	startCell, _ := p.decomposition.CellAt(start)
	goalCell, _ := p.decomposition.CellAt(goal)

	if startCell == 0 {
		return nil, nil, planner.DiagStartInObstacle
	}
	if goalCell == 0 {
		return nil, nil, planner.DiagGoalInObstacle
	}

	if startCell == goalCell {
		return p.astar.Plan(start, goal)
	}

	startCenter := p.decomposition.WorldCenter(startCell)
	goalCenter := p.decomposition.WorldCenter(goalCell)

	centerPath, ok := p.memo.lookup(startCell, goalCell)
	if ok {
		slog.Debug("dpplanner center path cache hit", "from_cell", startCell, "to_cell", goalCell)
	} else {
		slog.Debug("dpplanner center path cache miss, computing", "from_cell", startCell, "to_cell", goalCell)
		raw, _, diag := p.astar.Plan(startCenter, goalCenter)
		if diag != planner.DiagNone {
			return nil, nil, planner.DiagSubPathFailure
		}
		centerPath = raw
		p.memo.store(startCell, goalCell, centerPath)
	}

	startSegment, _, diag := p.astar.Plan(start, centerPath[0])
	if diag != planner.DiagNone {
		return nil, nil, planner.DiagSubPathFailure
	}
	goalSegment, _, diag := p.astar.Plan(centerPath[len(centerPath)-1], goal)
	if diag != planner.DiagNone {
		return nil, nil, planner.DiagSubPathFailure
	}

	full := make([]geometry.Point, 0, len(startSegment)-1+len(centerPath)+len(goalSegment)-1)
	full = append(full, startSegment[:len(startSegment)-1]...)
	full = append(full, centerPath...)
	full = append(full, goalSegment[1:]...)

	pruned := planner.Prune(full, p.world)
	return full, pruned, planner.DiagNone
}
