// Package dijkstra defines core types and configuration options
// for the shortest-path engine over stategraph graphs.
//
// Options:
//
//	– Bound:         exclusive ceiling on accepted distances; a popped cost ≥ Bound ends the run.
//	– RecordWalls:   record the cheapest attempt to step into every wall cell.
//	– ReturnPath:    keep one predecessor per state so Result.Path can rebuild a route.
//	– AllOptimal:    keep every equal-cost predecessor so Result.OptimalCells can list
//	                 every cell lying on some shortest route.
//	– OnSettle:      hook called each time a state is finalized.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph is nil.
//	– ErrStartOutOfRange   if the start cell is outside the grid.
//	– ErrGoalOutOfRange    if the goal cell is outside the grid.
//	– ErrBadStart          if the start heading does not fit the graph model.
//	– ErrStartBlocked      if the start cell is a wall.
//	– ErrBadBound          if Bound < 0.
//	– ErrWallsUnsupported  if RecordWalls is set on a graph without stategraph.WallProber.
//	– ErrNoPathRecorded    if Path/OptimalCells is called without the matching option.
//	– ErrUnreachable       if Path/OptimalCells is called on an unreachable result.
//
// Example usage:
//
//	res, err := dijkstra.Search(g, start, goal, dijkstra.WithBound(limit))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Reachable() {
//	    fmt.Println(res.Distance)
//	}
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/stategraph"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartOutOfRange indicates the start cell lies outside the grid.
	ErrStartOutOfRange = errors.New("dijkstra: start out of range")

	// ErrGoalOutOfRange indicates the goal cell lies outside the grid.
	ErrGoalOutOfRange = errors.New("dijkstra: goal out of range")

	// ErrBadStart indicates a start state the graph cannot represent, such as
	// NoHeading on an oriented graph.
	ErrBadStart = errors.New("dijkstra: start state not valid for graph")

	// ErrStartBlocked indicates the start cell is a wall.
	ErrStartBlocked = errors.New("dijkstra: start cell is not passable")

	// ErrBadBound indicates that Bound was set to a negative value.
	ErrBadBound = errors.New("dijkstra: bound must be non-negative")

	// ErrWallsUnsupported indicates wall recording was requested on a graph
	// that cannot report blocked moves.
	ErrWallsUnsupported = errors.New("dijkstra: graph does not support wall recording")

	// ErrNoPathRecorded indicates path reconstruction without the option that enables it.
	ErrNoPathRecorded = errors.New("dijkstra: search did not record predecessors")

	// ErrUnreachable indicates path reconstruction on a result that never reached the goal.
	ErrUnreachable = errors.New("dijkstra: goal unreachable")
)

// Unbounded is the default Bound: no early termination on cost.
const Unbounded int64 = math.MaxInt64

// Status is the terminal state of a search.
type Status uint8

const (
	// Exhausted means the frontier emptied or the bound was hit before the goal.
	Exhausted Status = iota
	// FinalizedGoal means a goal state was popped; Distance is exact.
	FinalizedGoal
)

// String returns "exhausted" or "finalized-goal".
func (s Status) String() string {
	if s == FinalizedGoal {
		return "finalized-goal"
	}

	return "exhausted"
}

// WallApproach maps a wall cell to the minimum cost at which a finalized
// state tried to step into it.
type WallApproach map[gridgraph.Point]int64

// Options configures the behavior of Search.
//
// Bound       – exclusive ceiling; must be ≥ 0. Default is Unbounded.
// RecordWalls – fill Result.Walls.
// ReturnPath  – keep a single predecessor per state.
// AllOptimal  – keep every equal-cost predecessor (implies ReturnPath).
// OnSettle    – called for every finalized state with its exact distance.
type Options struct {
	Bound       int64
	RecordWalls bool
	ReturnPath  bool
	AllOptimal  bool
	OnSettle    func(s stategraph.State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
// Unbounded, no recording, no hook.
func DefaultOptions() Options {
	return Options{
		Bound:    Unbounded,
		OnSettle: func(stategraph.State, int64) {},
	}
}

// WithBound stops the search as soon as the cheapest frontier entry costs at
// least b. A goal reached at exactly b is therefore reported as Exhausted.
// Negative values are recorded and surfaced as ErrBadBound.
func WithBound(b int64) Option {
	return func(o *Options) {
		if b < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadBound, b)
			return
		}
		o.Bound = b
	}
}

// WithWallRecording fills Result.Walls with the approach cost of every wall
// cell a finalized state tried to move into.
func WithWallRecording() Option {
	return func(o *Options) {
		o.RecordWalls = true
	}
}

// WithReturnPath keeps one predecessor per state so Result.Path works.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithAllOptimal keeps every equal-cost predecessor and keeps popping until
// the frontier cost exceeds the goal distance, so that every optimal goal
// state is collected. Enables Result.OptimalCells (and Result.Path).
func WithAllOptimal() Option {
	return func(o *Options) {
		o.AllOptimal = true
		o.ReturnPath = true
	}
}

// WithOnSettle registers a callback run each time a state is finalized.
// Nil is ignored.
func WithOnSettle(fn func(s stategraph.State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
