package removal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// DistanceAfter returns the shortest distance from start to goal once the
// first k obstacles of tl have landed. ok is false when the goal cannot be
// reached, including when start or goal is itself covered.
func DistanceAfter(tl *gridgraph.Timeline, k int, start, goal gridgraph.Point, opts ...Option) (int64, bool, error) {
	cfg, err := apply(opts)
	if err != nil {
		return 0, false, err
	}
	if tl == nil {
		return 0, false, ErrNilMaze
	}

	return distanceAfter(tl.Until(k), start, goal, cfg)
}

// FirstDisconnecting reports the first obstacle of tl whose arrival leaves no
// route from start to goal. found is false when start and goal stay
// connected after every obstacle.
//
// Reachability can only be lost as obstacles land, so the answer is found by
// binary search over prefix lengths: O(log n) flood fills instead of n.
// Connectivity does not depend on move costs, so the probes ignore Model and
// no distance is ever computed here; use DistanceAfter for that.
//
// Errors: ErrNilMaze, ErrOptionViolation, gridgraph.ErrOutOfRange for an
// endpoint outside the grid, ErrUnreachableBaseline when the empty grid
// already has no route, and ctx.Err() during a probe.
func FirstDisconnecting(ctx context.Context, tl *gridgraph.Timeline, start, goal gridgraph.Point, opts ...Option) (Disconnect, bool, error) {
	cfg, err := apply(opts)
	if err != nil {
		return Disconnect{}, false, err
	}
	if tl == nil {
		return Disconnect{}, false, ErrNilMaze
	}

	ctx, span := startSpan(ctx, "removal.FirstDisconnecting",
		attribute.Int("removal.obstacles", tl.Len()),
		attribute.String("removal.start", start.String()),
		attribute.String("removal.goal", goal.String()),
	)
	began := time.Now()
	d, found, probes, err := firstDisconnecting(ctx, tl, start, goal, cfg)
	span.SetAttributes(
		attribute.Int("removal.probes", probes),
		attribute.Bool("removal.found", found),
	)
	if found {
		span.SetAttributes(attribute.Int("removal.index", d.Index))
	}
	endSpan(span, err)
	recordRun(ctx, "first_disconnecting", time.Since(began), probes, -1)

	return d, found, err
}

func firstDisconnecting(ctx context.Context, tl *gridgraph.Timeline, start, goal gridgraph.Point, cfg Options) (Disconnect, bool, int, error) {
	probes := 0
	reachable := func(k int) (bool, error) {
		probes++
		return bfs.Reachable(tl.Until(k), start, goal, bfs.WithContext(ctx))
	}

	n := tl.Len()
	ok, err := reachable(0)
	if err != nil {
		return Disconnect{}, false, probes, err
	}
	if !ok {
		return Disconnect{}, false, probes, fmt.Errorf("%w: %s → %s", ErrUnreachableBaseline, start, goal)
	}
	if ok, err = reachable(n); err != nil || ok {
		return Disconnect{}, false, probes, err
	}

	// Invariant: prefix lo is connected, prefix hi is not.
	lo, hi := 0, n
	for hi-lo > 1 {
		if err := ctx.Err(); err != nil {
			return Disconnect{}, false, probes, err
		}
		mid := lo + (hi-lo)/2
		ok, err := reachable(mid)
		if err != nil {
			return Disconnect{}, false, probes, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid
		}
	}

	d := Disconnect{Obstacle: tl.Obstacle(hi - 1), Index: hi - 1}
	cfg.Logger.Debug("removal disconnect",
		slog.String("obstacle", d.Obstacle.String()),
		slog.Int("index", d.Index),
		slog.Int("probes", probes),
	)

	return d, true, probes, nil
}

// distanceAfter searches one timeline view. A covered start or goal counts
// as unreachable rather than an error.
func distanceAfter(v gridgraph.TimelineView, start, goal gridgraph.Point, cfg Options) (int64, bool, error) {
	for _, p := range [...]gridgraph.Point{start, goal} {
		open, err := v.Passable(p)
		if err != nil {
			return 0, false, err
		}
		if !open {
			return dijkstra.Unbounded, false, nil
		}
	}
	g, err := cfg.Model.Build(v)
	if err != nil {
		return 0, false, err
	}

	return dijkstra.ShortestDistance(g, cfg.Model.Start(start), goal)
}
