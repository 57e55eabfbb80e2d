// Package config loads the mazepath CLI configuration from YAML, applies
// environment overrides and validates the result.
//
// Precedence, lowest first: Default(), the YAML file, MAZEPATH_* environment
// variables, command-line flags (applied by the caller).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/removal"
	"github.com/katalvlaran/mazepath/stategraph"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the top-level configuration.
type Config struct {
	// Model is the cost model used by score and tiles.
	Model ModelConfig `yaml:"model"`

	// Removal configures the cheats command.
	Removal RemovalConfig `yaml:"removal"`

	// Obstacles configures the bytes command.
	Obstacles ObstaclesConfig `yaml:"obstacles"`

	// Log configures the process-wide slog handler.
	Log LogConfig `yaml:"log"`
}

// ModelConfig describes a state graph model.
type ModelConfig struct {
	Kind         string `yaml:"kind" validate:"oneof=oriented free"`
	MoveCost     int64  `yaml:"move_cost" validate:"gte=0"`
	TurnCost     int64  `yaml:"turn_cost" validate:"gte=0"`
	StartHeading string `yaml:"start_heading" validate:"oneof=N E S W"`
}

// RemovalConfig holds enumerator settings.
type RemovalConfig struct {
	Kind      string `yaml:"kind" validate:"oneof=oriented free"`
	Mode      string `yaml:"mode" validate:"oneof=single pairs"`
	MinSaving int64  `yaml:"min_saving" validate:"gte=0"`
	Workers   int    `yaml:"workers" validate:"gte=0,lte=1024"` // 0 means one per CPU
}

// ObstaclesConfig holds the falling-obstacle grid settings.
type ObstaclesConfig struct {
	Size   int `yaml:"size" validate:"gte=1,lte=4096"`
	Prefix int `yaml:"prefix" validate:"gte=0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration: oriented model with Move 1,
// Turn 1000, start facing east; single removals on the headingless model
// saving more than 99; a 71×71 obstacle grid after 1024 obstacles.
func Default() Config {
	return Config{
		Model: ModelConfig{
			Kind:         "oriented",
			MoveCost:     1,
			TurnCost:     1000,
			StartHeading: "E",
		},
		Removal: RemovalConfig{
			Kind:      "free",
			Mode:      "single",
			MinSaving: 99,
		},
		Obstacles: ObstaclesConfig{
			Size:   71,
			Prefix: 1024,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load returns Default() overlaid with the YAML file at path (skipped when
// path is empty) and with MAZEPATH_* environment variables, then validated.
// Unknown YAML keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(bytes.NewReader(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnv overrides fields from the environment.
func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("MAZEPATH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := getenv("MAZEPATH_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := getenv("MAZEPATH_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: MAZEPATH_WORKERS=%q", ErrInvalid, v)
		}
		cfg.Removal.Workers = n
	}

	return nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// StateModel converts the model section.
func (m ModelConfig) StateModel() (stategraph.Model, error) {
	return buildModel(m.Kind, m.MoveCost, m.TurnCost, m.StartHeading)
}

// StateModel returns the removal model, sharing costs and heading with base.
func (r RemovalConfig) StateModel(base ModelConfig) (stategraph.Model, error) {
	return buildModel(r.Kind, base.MoveCost, base.TurnCost, base.StartHeading)
}

func buildModel(kind string, move, turn int64, heading string) (stategraph.Model, error) {
	k, err := stategraph.ParseKind(kind)
	if err != nil {
		return stategraph.Model{}, err
	}
	h, err := stategraph.ParseHeading(heading)
	if err != nil {
		return stategraph.Model{}, err
	}
	m := stategraph.Model{
		Kind:         k,
		Costs:        stategraph.CostModel{Move: move, Turn: turn},
		StartHeading: h,
	}
	if k == stategraph.KindFree {
		m.Costs.Turn = 0
		m.StartHeading = stategraph.NoHeading
	}

	return m, nil
}

// RemovalOptions converts the removal section into enumerator options.
func (c Config) RemovalOptions(logger *slog.Logger) ([]removal.Option, error) {
	model, err := c.Removal.StateModel(c.Model)
	if err != nil {
		return nil, err
	}
	mode, err := removal.ParseMode(c.Removal.Mode)
	if err != nil {
		return nil, err
	}
	opts := []removal.Option{
		removal.WithModel(model),
		removal.WithMode(mode),
		removal.WithMinSaving(c.Removal.MinSaving),
		removal.WithLogger(logger),
	}
	if c.Removal.Workers > 0 {
		opts = append(opts, removal.WithWorkers(c.Removal.Workers))
	}

	return opts, nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}

// NewLogger builds a text or JSON logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
