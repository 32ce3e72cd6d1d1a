package planner

import (
	"container/heap"
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/corridor/config"
	"github.com/pthm-cable/corridor/geometry"
	"github.com/pthm-cable/corridor/world"
)

// Diagnostic reports why a planning call returned an empty path, when
// it did, as a typed value a host layer can serialize however it likes.
type Diagnostic int

const (
	DiagNone Diagnostic = iota
	DiagNoPath
	DiagStartInObstacle
	DiagGoalInObstacle
	DiagSubPathFailure
)

func (d Diagnostic) String() string {
	switch d {
	case DiagNone:
		return "none"
	case DiagNoPath:
		return "no_path"
	case DiagStartInObstacle:
		return "start_in_obstacle"
	case DiagGoalInObstacle:
		return "goal_in_obstacle"
	case DiagSubPathFailure:
		return "sub_path_failure"
	default:
		return "unknown"
	}
}

// motion is one of the 8 motion primitives: (dx, dy, cost-multiplier).
type motion struct {
	dx, dy, cost float64
}

// motionModel returns the 8-connected motion set: cardinal moves first,
// then diagonals.
func motionModel(cardinalCost, diagonalCost float64) [8]motion {
	return [8]motion{
		{1, 0, cardinalCost}, {0, 1, cardinalCost}, {-1, 0, cardinalCost}, {0, -1, cardinalCost},
		{-1, -1, diagonalCost}, {-1, 1, diagonalCost}, {1, -1, diagonalCost}, {1, 1, diagonalCost},
	}
}

// Planner runs A* grid searches over a fixed world.World.
type Planner struct {
	World  *world.World
	motion [8]motion

	goalToleranceFactor float64
	maxIterationsFactor float64
}

// New builds a Planner over w, using cfg for the motion costs, goal
// tolerance, and iteration cap.
func New(w *world.World, cfg *config.Config) *Planner {
	return &Planner{
		World:               w,
		motion:              motionModel(cfg.Motion.CardinalCost, cfg.Motion.DiagonalCost),
		goalToleranceFactor: cfg.Grid.GoalToleranceFactor,
		maxIterationsFactor: cfg.DP.MaxIterationsFactor,
	}
}

// gridIndex computes the GridIndex a point snaps to, relative to w's
// boundary and resolution.
func gridIndex(w *world.World, p geometry.Point) GridIndex {
	res := w.Resolution
	ix := int64(math.Round((p.X - w.Boundary.MinX) / res))
	iy := int64(math.Round((p.Y - w.Boundary.MinY) / res))
	xWidth := int64(math.Round(w.Boundary.Width() / res))
	return GridIndex(iy*xWidth + ix)
}

// heuristic is the admissible Euclidean-distance estimate to the goal.
func heuristic(a, b geometry.Point) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// Plan runs A* from start to goal and returns both the raw grid-derived
// path and its line-of-sight-pruned smoothing. Both are empty when no
// path is found.
func (pl *Planner) Plan(start, goal geometry.Point) ([]geometry.Point, []geometry.Point, Diagnostic) {
	t0 := time.Now()
	path, diag := pl.planRaw(start, goal)
	if diag != DiagNone {
		slog.Info("plan", "diagnostic", diag.String(), "elapsed_us", time.Since(t0).Microseconds())
		return nil, nil, diag
	}
	pruned := Prune(path, pl.World)
	slog.Info("plan",
		"diagnostic", DiagNone.String(),
		"raw_len", len(path),
		"pruned_len", len(pruned),
		"elapsed_us", time.Since(t0).Microseconds(),
	)
	return path, pruned, DiagNone
}

// planRaw performs the A* search itself: best-first search keyed by
// f=g+h, 8-connected continuous-coordinate expansion, goal reached
// when within Resolution of the target. The start node is seeded into
// Open unconditionally, even if it fails VerifyNode; the search simply
// finds no viable expansion from it and reports DiagNoPath once Open
// empties.
func (pl *Planner) planRaw(start, goal geometry.Point) ([]geometry.Point, Diagnostic) {
	w := pl.World
	res := w.Resolution
	goalTolerance := pl.goalToleranceFactor * res

	open := make(map[GridIndex]*SearchNode)
	closed := make(map[GridIndex]*SearchNode)

	startNode := &SearchNode{X: start.X, Y: start.Y, Cost: 0, ParentIndex: noParent}
	startID := gridIndex(w, start)
	open[startID] = startNode

	pq := &openHeap{}
	heap.Init(pq)
	heap.Push(pq, &openItem{id: startID, f: heuristic(start, goal)})

	xWidth := math.Round(w.Boundary.Width() / res)
	yWidth := math.Round(w.Boundary.Height() / res)
	maxIterations := int(pl.maxIterationsFactor*xWidth*yWidth) + 1

	var goalNode *SearchNode

	iterations := 0
	for pq.Len() > 0 {
		iterations++
		if iterations > maxIterations {
			break
		}

		item := heap.Pop(pq).(*openItem)
		current, stillOpen := open[item.id]
		if !stillOpen {
			continue // superseded by a cheaper candidate, or already closed
		}
		currentF := current.Cost + heuristic(current.Point(), goal)
		if currentF > item.f {
			continue // stale entry from before a cost improvement
		}

		distToGoal := heuristic(current.Point(), goal)
		if distToGoal <= goalTolerance {
			goalNode = &SearchNode{X: goal.X, Y: goal.Y, Cost: current.Cost, ParentIndex: item.id}
			// The boundary node must be transferred into Closed so
			// reconstruction can resolve the parent chain through it.
			closed[item.id] = current
			break
		}

		delete(open, item.id)
		closed[item.id] = current

		for _, m := range pl.motion {
			nx := current.X + m.dx*res
			ny := current.Y + m.dy*res
			node := &SearchNode{X: nx, Y: ny, Cost: current.Cost + m.cost*res, ParentIndex: item.id}
			p := node.Point()

			if !w.VerifyNode(p) {
				continue
			}
			nID := gridIndex(w, p)
			if _, inClosed := closed[nID]; inClosed {
				continue
			}

			existing, inOpen := open[nID]
			if !inOpen {
				open[nID] = node
				heap.Push(pq, &openItem{id: nID, f: node.Cost + heuristic(p, goal)})
			} else if existing.Cost > node.Cost {
				open[nID] = node
				heap.Push(pq, &openItem{id: nID, f: node.Cost + heuristic(p, goal)})
			}
		}
	}

	if goalNode == nil {
		return nil, DiagNoPath
	}

	return reconstructPath(goalNode, closed), DiagNone
}

// reconstructPath walks ParentIndex from goalNode through closed until
// -1, then reverses, yielding a continuous-coordinate polyline from
// start to goal.
func reconstructPath(goalNode *SearchNode, closed map[GridIndex]*SearchNode) []geometry.Point {
	path := []geometry.Point{goalNode.Point()}
	parentIndex := goalNode.ParentIndex
	for parentIndex != noParent {
		n, ok := closed[parentIndex]
		if !ok {
			break
		}
		path = append(path, n.Point())
		parentIndex = n.ParentIndex
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
