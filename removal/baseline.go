package removal

import (
	"fmt"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/stategraph"
)

// BaselineResult is the unmodified maze's distance and wall approach costs.
type BaselineResult struct {
	Distance int64
	Walls    dijkstra.WallApproach
	Settled  int
}

// Baseline runs one wall-recording search on m under model.
// Returns ErrNilMaze, ErrUnreachableBaseline, or any construction or
// search error.
func Baseline(m *gridgraph.Maze, model stategraph.Model) (*BaselineResult, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrNilMaze
	}
	g, err := model.Build(m.Grid)
	if err != nil {
		return nil, err
	}
	res, err := dijkstra.Search(g, model.Start(m.Start), m.End, dijkstra.WithWallRecording())
	if err != nil {
		return nil, err
	}
	if !res.Reachable() {
		return nil, fmt.Errorf("%w: %s → %s", ErrUnreachableBaseline, m.Start, m.End)
	}

	return &BaselineResult{Distance: res.Distance, Walls: res.Walls, Settled: res.Settled}, nil
}

// Candidates returns the interior walls of g whose approach cost is strictly
// below bound, in row-major order. Walls the search never tried to enter are
// absent from walls and therefore pruned.
// Complexity: O(W×H).
func Candidates(g *gridgraph.Grid, walls dijkstra.WallApproach, bound int64) []gridgraph.Point {
	var out []gridgraph.Point
	for _, p := range g.Walls() {
		if !g.Interior(p) {
			continue
		}
		if cost, ok := walls[p]; ok && cost < bound {
			out = append(out, p)
		}
	}

	return out
}
