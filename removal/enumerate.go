package removal

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// job is one variant: candidate indices i and j, with j < 0 in single mode.
type job struct{ i, j int }

// Improvements returns every variant of m whose shortest route is more than
// MinSaving cheaper than the baseline, sorted by saving (largest first) and
// then by opened cells in row-major order.
//
// Errors: ErrNilMaze, ErrOptionViolation, ErrUnreachableBaseline, model
// construction errors, and ctx.Err() when cancelled between variants.
func Improvements(ctx context.Context, m *gridgraph.Maze, opts ...Option) ([]Removal, error) {
	cfg, err := apply(opts)
	if err != nil {
		return nil, err
	}
	if m == nil || m.Grid == nil {
		return nil, ErrNilMaze
	}

	ctx, span := startSpan(ctx, "removal.Improvements",
		attribute.String("removal.mode", cfg.Mode.String()),
		attribute.Int64("removal.min_saving", cfg.MinSaving),
		attribute.Int("removal.workers", cfg.Workers),
	)
	began := time.Now()
	out, searches, candidates, err := improvements(ctx, m, cfg)
	span.SetAttributes(
		attribute.Int("removal.candidates", candidates),
		attribute.Int("removal.searches", searches),
		attribute.Int("removal.improvements", len(out)),
	)
	endSpan(span, err)
	recordRun(ctx, "improvements", time.Since(began), searches, candidates)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CountImprovingRemovals returns len(Improvements(ctx, m, opts...)).
func CountImprovingRemovals(ctx context.Context, m *gridgraph.Maze, opts ...Option) (int, error) {
	out, err := Improvements(ctx, m, opts...)
	if err != nil {
		return 0, err
	}

	return len(out), nil
}

func improvements(ctx context.Context, m *gridgraph.Maze, cfg Options) ([]Removal, int, int, error) {
	log := cfg.Logger

	base, err := Baseline(m, cfg.Model)
	if err != nil {
		return nil, 1, 0, err
	}
	cands := Candidates(m.Grid, base.Walls, base.Distance)
	jobs := makeJobs(len(cands), cfg.Mode)
	log.Debug("removal baseline",
		slog.Int64("distance", base.Distance),
		slog.Int("walls_seen", len(base.Walls)),
		slog.Int("candidates", len(cands)),
		slog.Int("variants", len(jobs)),
		slog.String("mode", cfg.Mode.String()),
	)

	workers := min(cfg.Workers, max(len(jobs), 1))
	found := make([][]Removal, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for k := w; k < len(jobs); k += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				r, ok, err := evaluate(m, cfg, base.Distance, cands, jobs[k])
				if err != nil {
					return err
				}
				if ok {
					found[w] = append(found[w], r)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 1 + len(jobs), len(cands), err
	}

	var out []Removal
	for _, part := range found {
		out = append(out, part...)
	}
	slices.SortFunc(out, compareRemovals)
	log.Debug("removal done",
		slog.Int("improvements", len(out)),
		slog.Int64("min_saving", cfg.MinSaving),
	)

	return out, 1 + len(jobs), len(cands), nil
}

// makeJobs lists every variant over n candidates.
func makeJobs(n int, mode Mode) []job {
	if mode == ModeSingle {
		jobs := make([]job, n)
		for i := range jobs {
			jobs[i] = job{i: i, j: -1}
		}

		return jobs
	}

	jobs := make([]job, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			jobs = append(jobs, job{i: i, j: j})
		}
	}

	return jobs
}

// evaluate opens the cells of jb and searches again under bound d.
func evaluate(m *gridgraph.Maze, cfg Options, d int64, cands []gridgraph.Point, jb job) (Removal, bool, error) {
	cells := []gridgraph.Point{cands[jb.i]}
	if jb.j >= 0 {
		cells = append(cells, cands[jb.j])
	}
	ov, err := m.Grid.WithOpen(cells...)
	if err != nil {
		return Removal{}, false, err
	}
	g, err := cfg.Model.Build(ov)
	if err != nil {
		return Removal{}, false, err
	}
	res, err := dijkstra.Search(g, cfg.Model.Start(m.Start), m.End, dijkstra.WithBound(d))
	if err != nil {
		return Removal{}, false, err
	}
	if !res.Reachable() {
		return Removal{}, false, nil
	}
	saving := d - res.Distance
	if saving <= cfg.MinSaving {
		return Removal{}, false, nil
	}

	return Removal{Cells: cells, Saving: saving}, true, nil
}

// compareRemovals orders by saving descending, then cells row-major.
func compareRemovals(a, b Removal) int {
	if a.Saving != b.Saving {
		if a.Saving > b.Saving {
			return -1
		}
		return 1
	}
	for k := 0; k < len(a.Cells) && k < len(b.Cells); k++ {
		if c := comparePoints(a.Cells[k], b.Cells[k]); c != 0 {
			return c
		}
	}

	return len(a.Cells) - len(b.Cells)
}

func comparePoints(a, b gridgraph.Point) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}

	return a.X - b.X
}
