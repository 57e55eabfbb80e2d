package removal

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/stategraph"
)

// Sentinel errors.
var (
	// ErrNilMaze indicates a nil maze or timeline argument.
	ErrNilMaze = errors.New("removal: maze is nil")

	// ErrUnreachableBaseline indicates the unmodified maze has no route, so
	// there is no distance to improve on.
	ErrUnreachableBaseline = errors.New("removal: goal unreachable in unmodified maze")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("removal: invalid option")
)

// Mode selects how many walls are opened per variant.
type Mode uint8

const (
	// ModeSingle opens one candidate at a time.
	ModeSingle Mode = iota
	// ModePairs opens every unordered pair of distinct candidates.
	ModePairs
)

// String returns "single" or "pairs".
func (m Mode) String() string {
	if m == ModePairs {
		return "pairs"
	}

	return "single"
}

// ParseMode accepts "single" and "pairs", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return ModeSingle, nil
	case "pairs":
		return ModePairs, nil
	}

	return 0, fmt.Errorf("%w: mode %q", ErrOptionViolation, s)
}

// Removal is one improving variant: the opened cells (row-major order) and
// how much shorter the route became.
type Removal struct {
	Cells  []gridgraph.Point
	Saving int64
}

// Disconnect identifies the obstacle whose arrival first separates start
// from goal. Index is its 0-based position in the obstacle list.
type Disconnect struct {
	Obstacle gridgraph.Point
	Index    int
}

// Options configures the enumerator and the disconnection query.
//
// Mode      – ModeSingle (default) or ModePairs.
// MinSaving – keep variants saving strictly more; must be ≥ 0.
// Workers   – parallel re-searches; must be ≥ 1. Default GOMAXPROCS.
// Model     – graph model for searches. Default stategraph.FreeModel().
// Logger    – debug output. Default slog.Default().
type Options struct {
	Mode      Mode
	MinSaving int64
	Workers   int
	Model     stategraph.Model
	Logger    *slog.Logger

	err error
}

// Option represents a functional option.
type Option func(*Options)

// DefaultOptions returns single mode, MinSaving 0, one worker per CPU,
// the headingless unit-cost model and the default logger.
func DefaultOptions() Options {
	return Options{
		Mode:      ModeSingle,
		MinSaving: 0,
		Workers:   runtime.GOMAXPROCS(0),
		Model:     stategraph.FreeModel(),
		Logger:    slog.Default(),
	}
}

// WithMode selects single or pair removal.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeSingle && m != ModePairs {
			o.err = fmt.Errorf("%w: mode %d", ErrOptionViolation, m)
			return
		}
		o.Mode = m
	}
}

// WithMinSaving keeps only variants whose saving exceeds s.
// Zero keeps every strict improvement.
func WithMinSaving(s int64) Option {
	return func(o *Options) {
		if s < 0 {
			o.err = fmt.Errorf("%w: min saving %d", ErrOptionViolation, s)
			return
		}
		o.MinSaving = s
	}
}

// WithWorkers bounds the number of concurrent re-searches.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithModel selects the state graph. The model is validated when the first
// graph is built.
func WithModel(m stategraph.Model) Option {
	return func(o *Options) {
		o.Model = m
	}
}

// WithLogger sets the debug logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// apply builds Options from defaults and opts and returns any recorded error.
func apply(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
