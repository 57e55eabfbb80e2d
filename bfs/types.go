// Package bfs provides tunable options and error definitions
// for breadth-first flood fill over a gridgraph.View.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilView is returned if a nil view is passed.
	ErrNilView = errors.New("bfs: view is nil")

	// ErrStartOutOfRange is returned when the start cell lies outside the view.
	ErrStartOutOfRange = errors.New("bfs: start out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a cell is dequeued. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(p gridgraph.Point, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip steps by returning false.
	// Called for each open in-range step curr→next.
	FilterNeighbor func(curr, next gridgraph.Point) bool

	// Target, when set, ends the walk as soon as it is dequeued.
	Target    gridgraph.Point
	HasTarget bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit, no filtering, no target
//   - no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(gridgraph.Point, int) error { return nil },
		FilterNeighbor: func(_, _ gridgraph.Point) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(p gridgraph.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips steps when fn returns false.
func WithFilterNeighbor(fn func(curr, next gridgraph.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithTarget stops the walk once p is dequeued.
func WithTarget(p gridgraph.Point) Option {
	return func(o *Options) {
		o.Target = p
		o.HasTarget = true
	}
}

// Result holds the outcome of a walk:
//   - Order: cells visited, in visit sequence.
//   - depth and parent: per row-major cell index, -1 when unreached.
type Result struct {
	Order []gridgraph.Point

	width  int
	depth  []int
	parent []int
}

// Reached reports whether p was enqueued by the walk.
func (r *Result) Reached(p gridgraph.Point) bool {
	_, ok := r.Depth(p)
	return ok
}

// Depth returns the number of steps from the start to p.
func (r *Result) Depth(p gridgraph.Point) (int, bool) {
	idx, ok := r.index(p)
	if !ok || r.depth[idx] < 0 {
		return 0, false
	}

	return r.depth[idx], true
}

// PathTo reconstructs the path from the start cell to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Point) ([]gridgraph.Point, error) {
	idx, ok := r.index(dest)
	if !ok || r.depth[idx] < 0 {
		return nil, fmt.Errorf("bfs: no path to %s", dest)
	}
	path := make([]gridgraph.Point, 0, r.depth[idx]+1)
	for cur := idx; cur >= 0; cur = r.parent[cur] {
		path = append(path, gridgraph.Point{X: cur % r.width, Y: cur / r.width})
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func (r *Result) index(p gridgraph.Point) (int, bool) {
	if p.X < 0 || p.X >= r.width || p.Y < 0 || p.Y*r.width+p.X >= len(r.depth) {
		return 0, false
	}

	return p.Y*r.width + p.X, true
}
