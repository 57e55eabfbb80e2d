package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/stategraph"
)

// Search runs a single-source search on g from start until a state whose
// position equals goal is popped from the frontier. The heading of the goal
// state is irrelevant.
//
// Termination:
//
//   - FinalizedGoal: a goal state was popped with cost < Bound. Distance is exact.
//   - Exhausted:     the cheapest frontier entry reached Bound, or the frontier emptied.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadBound).
//  2. g must be non-nil (ErrNilGraph).
//  3. start and goal must be in range (ErrStartOutOfRange, ErrGoalOutOfRange).
//  4. start must be representable by g (ErrBadStart).
//  5. start must be passable (ErrStartBlocked).
//  6. RecordWalls requires g to implement stategraph.WallProber (ErrWallsUnsupported).
//
// Complexity:
//
//   - Time:  O((V + E) log V) with V = g.Size().
//   - Space: O(V + E) for distances, flags and lazy heap entries.
func Search(g stategraph.Graph, start stategraph.State, goal gridgraph.Point, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and endpoints
	if g == nil {
		return nil, ErrNilGraph
	}
	v := g.View()
	if !v.InBounds(start.Pos) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfRange, start.Pos)
	}
	if !v.InBounds(goal) {
		return nil, fmt.Errorf("%w: %s", ErrGoalOutOfRange, goal)
	}
	if g.State(g.Index(start)) != start {
		return nil, fmt.Errorf("%w: %s", ErrBadStart, start)
	}
	if open, err := v.Passable(start.Pos); err != nil || !open {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, start.Pos)
	}

	// 3) Wall recording needs a prober
	var prober stategraph.WallProber
	if cfg.RecordWalls {
		p, ok := g.(stategraph.WallProber)
		if !ok {
			return nil, ErrWallsUnsupported
		}
		prober = p
	}

	// 4) Run
	r := newRunner(g, cfg, prober)
	r.init(start)
	r.process(goal)

	return r.result(), nil
}

// ShortestDistance is a convenience wrapper around Search. It reports the
// exact distance to goal and whether the goal was reached under the bound.
func ShortestDistance(g stategraph.Graph, start stategraph.State, goal gridgraph.Point, opts ...Option) (int64, bool, error) {
	res, err := Search(g, start, goal, opts...)
	if err != nil {
		return 0, false, err
	}

	return res.Distance, res.Reachable(), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       stategraph.Graph
	options Options
	prober  stategraph.WallProber // nil unless RecordWalls

	dist    []int64 // best-known distance per state index
	visited []bool  // finalized flags
	prev    []int   // one predecessor per state; nil unless ReturnPath
	preds   [][]int // every equal-cost predecessor; nil unless AllOptimal

	pq  frontier
	seq uint64

	edges   []stategraph.Edge
	blocked []gridgraph.Point
	walls   WallApproach

	start   int
	goals   []int // finalized goal states in pop order
	best    int64
	settled int
	pushed  int
}

func newRunner(g stategraph.Graph, cfg Options, prober stategraph.WallProber) *runner {
	n := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		prober:  prober,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(frontier, 0, 64),
		best:    Unbounded,
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	if cfg.AllOptimal {
		r.preds = make([][]int, n)
	}
	if prober != nil {
		r.walls = make(WallApproach)
	}

	return r
}

// init resets distances and pushes the start state at cost 0.
func (r *runner) init(start stategraph.State) {
	for i := range r.dist {
		r.dist[i] = Unbounded
	}
	if r.prev != nil {
		for i := range r.prev {
			r.prev[i] = -1
		}
	}

	r.start = r.g.Index(start)
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)
}

// push adds idx to the frontier with the next sequence number.
func (r *runner) push(idx int, cost int64) {
	heap.Push(&r.pq, entry{cost: cost, seq: r.seq, idx: idx})
	r.seq++
	r.pushed++
}

// process is the main loop: pop, discard stale, check bound, check goal,
// finalize, record walls, relax.
func (r *runner) process(goal gridgraph.Point) {
	cfg := r.options
	var (
		item entry
		u    int
		d    int64
		s    stategraph.State
	)
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(entry)
		u, d = item.idx, item.cost

		// 1) Stale entry: u was finalized through a cheaper push.
		if r.visited[u] {
			continue
		}

		// 2) Bound reached: nothing cheaper remains.
		if d >= cfg.Bound {
			return
		}

		// 3) In all-optimal mode every optimal goal has been collected once the
		//    frontier moves past the best distance.
		if len(r.goals) > 0 && d > r.best {
			return
		}

		s = r.g.State(u)
		r.visited[u] = true
		r.settled++
		cfg.OnSettle(s, d)

		// 4) Goal test on position only. Goal states are never expanded.
		if s.Pos == goal {
			r.goals = append(r.goals, u)
			if len(r.goals) == 1 {
				r.best = d
			}
			if !cfg.AllOptimal {
				return
			}
			continue
		}

		if r.prober != nil {
			r.recordWalls(s, d)
		}
		r.relax(u, s, d)
	}
}

// recordWalls keeps the cheapest approach cost for every wall s faces.
func (r *runner) recordWalls(s stategraph.State, d int64) {
	cost := d + r.prober.MoveCost()
	r.blocked = r.prober.BlockedMoves(s, r.blocked)
	for _, p := range r.blocked {
		if old, ok := r.walls[p]; !ok || cost < old {
			r.walls[p] = cost
		}
	}
}

// relax examines each outgoing edge of u and improves neighbor distances.
// Candidates at or above Bound are never pushed: they could only end the run.
func (r *runner) relax(u int, s stategraph.State, d int64) {
	r.edges = r.g.Edges(s, r.edges)
	var (
		v       int
		newDist int64
	)
	for _, e := range r.edges {
		if e.Cost > math.MaxInt64-d {
			continue
		}
		v = r.g.Index(e.To)
		newDist = d + e.Cost

		// Equal-cost arrivals are alternative optimal predecessors, even when
		// v is already final.
		if newDist == r.dist[v] {
			if r.preds != nil {
				r.preds[v] = append(r.preds[v], u)
			}
			continue
		}
		if r.visited[v] || newDist > r.dist[v] || newDist >= r.options.Bound {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		if r.preds != nil {
			r.preds[v] = append(r.preds[v][:0], u)
		}
		r.push(v, newDist)
	}
}

// result snapshots the runner into a Result.
func (r *runner) result() *Result {
	res := &Result{
		Status:   Exhausted,
		Distance: Unbounded,
		Settled:  r.settled,
		Pushed:   r.pushed,
		Walls:    r.walls,
		g:        r.g,
		start:    r.start,
		prev:     r.prev,
		preds:    r.preds,
	}
	if len(r.goals) > 0 {
		res.Status = FinalizedGoal
		res.Distance = r.best
		res.Goal = r.g.State(r.goals[0])
		res.goals = r.goals
	}

	return res
}
