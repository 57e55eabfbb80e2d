package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// steps are the four orthogonal moves in N, E, S, W order.
var steps = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// queueItem pairs a cell index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	view  gridgraph.View
	opts  Options
	queue []queueItem
	head  int
	res   *Result
}

// Walk floods v from start through open cells, four-connected, applying any
// number of functional Options. A start cell that is a wall yields an empty
// result.
// Returns ErrNilView, ErrStartOutOfRange or ErrOptionViolation for invalid
// input, ctx.Err() on cancellation, or any OnVisit error.
// Complexity: O(W×H) time and memory.
func Walk(v gridgraph.View, start gridgraph.Point, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrNilView
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !v.InBounds(start) {
		return nil, fmt.Errorf("%w: %w: %s", ErrStartOutOfRange, gridgraph.ErrOutOfRange, start)
	}

	n := v.Width() * v.Height()
	w := &walker{
		view:  v,
		opts:  o,
		queue: make([]queueItem, 0, 64),
		res: &Result{
			width:  v.Width(),
			depth:  make([]int, n),
			parent: make([]int, n),
		},
	}
	for i := range w.res.depth {
		w.res.depth[i] = -1
		w.res.parent[i] = -1
	}

	if open, _ := v.Passable(start); !open {
		return w.res, nil
	}
	w.enqueue(w.cellIndex(start), 0, -1)

	return w.res, w.loop()
}

// Reachable reports whether goal can be reached from start through open
// cells. Either endpoint being a wall means false.
func Reachable(v gridgraph.View, start, goal gridgraph.Point, opts ...Option) (bool, error) {
	if v != nil && !v.InBounds(goal) {
		return false, fmt.Errorf("%w: goal %s", gridgraph.ErrOutOfRange, goal)
	}
	res, err := Walk(v, start, append(opts[:len(opts):len(opts)], WithTarget(goal))...)
	if err != nil {
		return false, err
	}

	return res.Reached(goal), nil
}

// enqueue records depth and parent of idx and adds it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.res.depth[idx] = d
	w.res.parent[idx] = parent
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, target, error, or cancellation.
func (w *walker) loop() error {
	width := w.res.width
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		cur := gridgraph.Point{X: item.idx % width, Y: item.idx / width}
		w.res.Order = append(w.res.Order, cur)
		if err := w.opts.OnVisit(cur, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", cur, err)
		}
		if w.opts.HasTarget && cur == w.opts.Target {
			return nil
		}
		w.enqueueNeighbors(cur, item)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen, open, in-range neighbor that passes
// the filter and the depth limit.
func (w *walker) enqueueNeighbors(cur gridgraph.Point, item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, s := range steps {
		next := cur.Add(s[0], s[1])
		if !w.view.InBounds(next) {
			continue
		}
		idx := w.cellIndex(next)
		if w.res.depth[idx] >= 0 {
			continue
		}
		if open, _ := w.view.Passable(next); !open {
			continue
		}
		if !w.opts.FilterNeighbor(cur, next) {
			continue
		}
		w.enqueue(idx, nextDepth, item.idx)
	}
}

// cellIndex is the row-major index of an in-range p.
func (w *walker) cellIndex(p gridgraph.Point) int { return p.Y*w.res.width + p.X }
