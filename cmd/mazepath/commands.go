package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/removal"
)

func newScoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score <maze>",
		Short: "Print the cheapest cost from S to E",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMaze(cmd, args[0])
			if err != nil {
				return err
			}
			model, err := a.cfg.Model.StateModel()
			if err != nil {
				return err
			}
			g, err := model.Build(m.Grid)
			if err != nil {
				return err
			}
			res, err := dijkstra.Search(g, model.Start(m.Start), m.End)
			if err != nil {
				return err
			}
			a.log.Debug("score",
				slog.String("status", res.Status.String()),
				slog.Int("settled", res.Settled),
				slog.Int("pushed", res.Pushed),
			)
			if !res.Reachable() {
				fmt.Fprintln(cmd.OutOrStdout(), "unreachable")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Distance)

			return nil
		},
	}
}

func newTilesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tiles <maze>",
		Short: "Print how many cells lie on at least one cheapest route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMaze(cmd, args[0])
			if err != nil {
				return err
			}
			model, err := a.cfg.Model.StateModel()
			if err != nil {
				return err
			}
			g, err := model.Build(m.Grid)
			if err != nil {
				return err
			}
			res, err := dijkstra.Search(g, model.Start(m.Start), m.End, dijkstra.WithAllOptimal())
			if err != nil {
				return err
			}
			if !res.Reachable() {
				fmt.Fprintln(cmd.OutOrStdout(), "unreachable")
				return nil
			}
			cells, err := res.OptimalCells()
			if err != nil {
				return err
			}
			a.log.Debug("tiles", slog.Int64("distance", res.Distance), slog.Int("cells", len(cells)))
			fmt.Fprintln(cmd.OutOrStdout(), len(cells))

			return nil
		},
	}
}

func newCheatsCmd(a *app) *cobra.Command {
	var (
		minSaving int64
		pairs     bool
		workers   int
		list      bool
	)
	cmd := &cobra.Command{
		Use:   "cheats <maze>",
		Short: "Count wall removals that shorten the route by more than --min-saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMaze(cmd, args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("min-saving") {
				a.cfg.Removal.MinSaving = minSaving
			}
			if flags.Changed("pairs") {
				a.cfg.Removal.Mode = removal.ModeSingle.String()
				if pairs {
					a.cfg.Removal.Mode = removal.ModePairs.String()
				}
			}
			if flags.Changed("workers") {
				a.cfg.Removal.Workers = workers
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			opts, err := a.cfg.RemovalOptions(a.log)
			if err != nil {
				return err
			}

			out, err := removal.Improvements(cmd.Context(), m, opts...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if list {
				for _, r := range out {
					fmt.Fprintf(w, "%v %d\n", r.Cells, r.Saving)
				}
			}
			fmt.Fprintln(w, len(out))

			return nil
		},
	}
	f := cmd.Flags()
	f.Int64Var(&minSaving, "min-saving", 99, "count removals saving more than this")
	f.BoolVar(&pairs, "pairs", false, "open unordered pairs of walls instead of single walls")
	f.IntVar(&workers, "workers", 0, "parallel searches (0 = one per CPU)")
	f.BoolVar(&list, "list", false, "print every counted removal before the total")

	return cmd
}

func newBytesCmd(a *app) *cobra.Command {
	var (
		size   int
		prefix int
	)
	cmd := &cobra.Command{
		Use:   "bytes <obstacles>",
		Short: "Distance across a square grid after --prefix obstacles, and the first obstacle that cuts it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("size") {
				a.cfg.Obstacles.Size = size
			}
			if flags.Changed("prefix") {
				a.cfg.Obstacles.Prefix = prefix
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			r, err := open(cmd, args[0])
			if err != nil {
				return err
			}
			obs, err := gridgraph.ParseObstacles(r)
			r.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			n := a.cfg.Obstacles.Size
			tl, err := gridgraph.NewTimeline(n, n, obs)
			if err != nil {
				return err
			}

			start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: n - 1, Y: n - 1}
			ropts := []removal.Option{removal.WithLogger(a.log)}
			w := cmd.OutOrStdout()

			d, ok, err := removal.DistanceAfter(tl, a.cfg.Obstacles.Prefix, start, goal, ropts...)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(w, "after %d: %d\n", a.cfg.Obstacles.Prefix, d)
			} else {
				fmt.Fprintf(w, "after %d: unreachable\n", a.cfg.Obstacles.Prefix)
			}

			cut, found, err := removal.FirstDisconnecting(cmd.Context(), tl, start, goal, ropts...)
			if err != nil {
				return err
			}
			if found {
				fmt.Fprintf(w, "blocked by %s (obstacle %d)\n", cut.Obstacle, cut.Index)
			} else {
				fmt.Fprintln(w, "never blocked")
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&size, "size", 71, "grid width and height")
	f.IntVar(&prefix, "prefix", 1024, "number of obstacles landed before measuring")

	return cmd
}
