package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/removal"
	"github.com/katalvlaran/mazepath/stategraph"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	m, err := cfg.Model.StateModel()
	require.NoError(t, err)
	assert.Equal(t, stategraph.DefaultModel(), m)

	rm, err := cfg.Removal.StateModel(cfg.Model)
	require.NoError(t, err)
	assert.Equal(t, stategraph.FreeModel(), rm)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("MAZEPATH_LOG_LEVEL", "")
	t.Setenv("MAZEPATH_LOG_FORMAT", "")
	t.Setenv("MAZEPATH_WORKERS", "")

	cfg, err := Load(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)
	assert.Equal(t, int64(500), cfg.Model.TurnCost)
	assert.Equal(t, "N", cfg.Model.StartHeading)
	assert.Equal(t, "pairs", cfg.Removal.Mode)
	assert.Equal(t, 4, cfg.Removal.Workers)
	assert.Equal(t, ObstaclesConfig{Size: 7, Prefix: 12}, cfg.Obstacles)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)

	m, err := cfg.Model.StateModel()
	require.NoError(t, err)
	assert.Equal(t, stategraph.North, m.StartHeading)
	assert.Equal(t, stategraph.CostModel{Move: 1, Turn: 500}, m.Costs)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv("MAZEPATH_LOG_LEVEL", "")
	t.Setenv("MAZEPATH_LOG_FORMAT", "")
	t.Setenv("MAZEPATH_WORKERS", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("MAZEPATH_WORKERS", "")

	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join("testdata", "unknown.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "turn_costs")

	_, err = Load(filepath.Join("testdata", "invalid.yaml"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "MinSaving")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"MAZEPATH_LOG_LEVEL":  "WARN",
		"MAZEPATH_LOG_FORMAT": "json",
		"MAZEPATH_WORKERS":    "3",
	}
	cfg := Default()
	require.NoError(t, applyEnv(&cfg, func(k string) string { return env[k] }))
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Removal.Workers)

	env["MAZEPATH_WORKERS"] = "many"
	assert.ErrorIs(t, applyEnv(&cfg, func(k string) string { return env[k] }), ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"kind":     func(c *Config) { c.Model.Kind = "diagonal" },
		"cost":     func(c *Config) { c.Model.TurnCost = -1 },
		"heading":  func(c *Config) { c.Model.StartHeading = "up" },
		"mode":     func(c *Config) { c.Removal.Mode = "triples" },
		"workers":  func(c *Config) { c.Removal.Workers = -2 },
		"saving":   func(c *Config) { c.Removal.MinSaving = -1 },
		"size":     func(c *Config) { c.Obstacles.Size = 0 },
		"prefix":   func(c *Config) { c.Obstacles.Prefix = -1 },
		"level":    func(c *Config) { c.Log.Level = "trace" },
		"format":   func(c *Config) { c.Log.Format = "xml" },
		"removalk": func(c *Config) { c.Removal.Kind = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestRemovalOptions(t *testing.T) {
	cfg := Default()
	cfg.Removal.Mode = "pairs"
	cfg.Removal.Workers = 2
	opts, err := cfg.RemovalOptions(nil)
	require.NoError(t, err)

	applied := removal.DefaultOptions()
	for _, o := range opts {
		o(&applied)
	}
	assert.Equal(t, removal.ModePairs, applied.Mode)
	assert.Equal(t, int64(99), applied.MinSaving)
	assert.Equal(t, 2, applied.Workers)
	assert.Equal(t, stategraph.KindFree, applied.Model.Kind)
	assert.NotNil(t, applied.Logger, "nil logger keeps the default")
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf).Info("hidden")
	assert.Empty(t, buf.String())

	LogConfig{Level: "debug", Format: "json"}.NewLogger(&buf).Debug("shown", "k", 1)
	assert.True(t, strings.HasPrefix(buf.String(), "{"), buf.String())
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	LogConfig{Level: "info", Format: "text"}.NewLogger(&buf).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
