package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	profile    string
	profileDir string

	cfg     config.Config
	log     *slog.Logger
	stopper interface{ Stop() }
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "mazepath",
		Short: "Shortest paths and wall-removal analysis for character-grid mazes",
		Long: `mazepath reads mazes drawn with '#' walls, '.' floor, 'S' start and 'E' end,
and obstacle lists of "x,y" lines.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&a.profile, "profile", "", "write a profile: cpu or mem")
	pf.StringVar(&a.profileDir, "profile-dir", ".", "directory for profile output")

	root.AddCommand(
		newScoreCmd(a),
		newTilesCmd(a),
		newCheatsCmd(a),
		newBytesCmd(a),
	)

	return root, a
}

// setup loads configuration, installs the logger and starts profiling.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cfg.Log.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(a.log)

	switch a.profile {
	case "":
	case "cpu":
		a.stopper = profile.Start(profile.CPUProfile, profile.ProfilePath(a.profileDir), profile.Quiet, profile.NoShutdownHook)
	case "mem":
		a.stopper = profile.Start(profile.MemProfile, profile.ProfilePath(a.profileDir), profile.Quiet, profile.NoShutdownHook)
	default:
		return fmt.Errorf("unknown profile %q (want cpu or mem)", a.profile)
	}
	a.log.Debug("config loaded",
		slog.String("path", a.configPath),
		slog.String("model", cfg.Model.Kind),
		slog.String("profile", a.profile),
	)

	return nil
}

// stopProfile flushes a running profile. It runs after Execute so that a
// failing command still writes its profile.
func (a *app) stopProfile() {
	if a.stopper != nil {
		a.stopper.Stop()
		a.stopper = nil
	}
}

// open returns the named file, or stdin for "-".
func open(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	return os.Open(path)
}

func readMaze(cmd *cobra.Command, path string) (*gridgraph.Maze, error) {
	r, err := open(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	m, err := gridgraph.ParseMaze(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
