package gridgraph

import (
	"fmt"
	"math"
)

// never marks a cell no obstacle ever lands on.
const never = math.MaxInt

// Timeline records when each cell of an initially empty grid becomes a wall.
// arrival[idx] is the position of the first obstacle landing on idx in the
// input order, or never.
type Timeline struct {
	width, height int
	arrival       []int
	obstacles     []Point
}

// NewTimeline builds a Timeline for a w×h grid from obstacles in arrival order.
// Repeated obstacles keep their first arrival.
// Returns ErrEmptyGrid for a non-positive size and ErrOutOfRange for any
// obstacle outside the grid.
// Complexity: O(W×H + n).
func NewTimeline(w, h int, obstacles []Point) (*Timeline, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, ErrEmptyGrid)
	}
	arrival := make([]int, w*h)
	for i := range arrival {
		arrival[i] = never
	}
	for i, p := range obstacles {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			return nil, fmt.Errorf("%w: obstacle %d at %s not in %dx%d", ErrOutOfRange, i, p, w, h)
		}
		idx := p.Y*w + p.X
		if arrival[idx] == never {
			arrival[idx] = i
		}
	}
	obs := make([]Point, len(obstacles))
	copy(obs, obstacles)

	return &Timeline{width: w, height: h, arrival: arrival, obstacles: obs}, nil
}

// Len returns the number of obstacles in the timeline.
func (t *Timeline) Len() int { return len(t.obstacles) }

// Obstacle returns the i-th obstacle in arrival order.
func (t *Timeline) Obstacle(i int) Point { return t.obstacles[i] }

// Until returns the grid after the first k obstacles have landed.
// k is clamped to [0, Len()].
// Complexity: O(1).
func (t *Timeline) Until(k int) TimelineView {
	if k < 0 {
		k = 0
	}
	if k > len(t.obstacles) {
		k = len(t.obstacles)
	}

	return TimelineView{t: t, k: k}
}

// TimelineView is the state of a Timeline after a fixed number of obstacles.
type TimelineView struct {
	t *Timeline
	k int
}

// Landed returns how many obstacles this view includes.
func (v TimelineView) Landed() int { return v.k }

// Width returns the number of columns.
func (v TimelineView) Width() int { return v.t.width }

// Height returns the number of rows.
func (v TimelineView) Height() int { return v.t.height }

// InBounds reports whether p lies within the grid.
func (v TimelineView) InBounds(p Point) bool {
	return p.X >= 0 && p.X < v.t.width && p.Y >= 0 && p.Y < v.t.height
}

// Passable reports whether no obstacle among the first k has landed on p.
func (v TimelineView) Passable(p Point) (bool, error) {
	if !v.InBounds(p) {
		return false, fmt.Errorf("%w: %s not in %dx%d", ErrOutOfRange, p, v.t.width, v.t.height)
	}

	return v.t.arrival[p.Y*v.t.width+p.X] >= v.k, nil
}

// String renders the view with '#' for walls and '.' for open cells.
func (v TimelineView) String() string {
	return render(v, nil)
}
