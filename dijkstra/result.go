package dijkstra

import (
	"slices"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/stategraph"
)

// Result is the outcome of Search.
type Result struct {
	Status   Status
	Distance int64            // exact when Status == FinalizedGoal, Unbounded otherwise
	Goal     stategraph.State // first goal state finalized; zero value when unreachable
	Settled  int              // states finalized, goal states included
	Pushed   int              // frontier pushes, stale entries included
	Walls    WallApproach     // nil unless WithWallRecording

	g     stategraph.Graph
	start int
	prev  []int
	preds [][]int
	goals []int
}

// Reachable reports whether the goal was finalized under the bound.
func (r *Result) Reachable() bool { return r.Status == FinalizedGoal }

// Path returns one shortest route from the start state to Goal, both ends
// included. Turns appear as consecutive states on the same cell.
// Requires WithReturnPath (or WithAllOptimal).
func (r *Result) Path() ([]stategraph.State, error) {
	if r.prev == nil {
		return nil, ErrNoPathRecorded
	}
	if !r.Reachable() {
		return nil, ErrUnreachable
	}

	var path []stategraph.State
	for at := r.goals[0]; at != -1; at = r.prev[at] {
		path = append(path, r.g.State(at))
		if at == r.start {
			break
		}
	}
	slices.Reverse(path)

	return path, nil
}

// OptimalCells returns every cell that lies on at least one shortest route,
// in row-major order. Requires WithAllOptimal.
func (r *Result) OptimalCells() ([]gridgraph.Point, error) {
	if r.preds == nil {
		return nil, ErrNoPathRecorded
	}
	if !r.Reachable() {
		return nil, ErrUnreachable
	}

	seen := make([]bool, len(r.preds))
	cells := make(map[gridgraph.Point]struct{})
	stack := append([]int(nil), r.goals...)
	for _, idx := range stack {
		seen[idx] = true
	}
	var at int
	for len(stack) > 0 {
		at = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells[r.g.State(at).Pos] = struct{}{}
		for _, p := range r.preds[at] {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}

	out := make([]gridgraph.Point, 0, len(cells))
	for p := range cells {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b gridgraph.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}

		return a.X - b.X
	})

	return out, nil
}
