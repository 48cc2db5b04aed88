package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 24, cfg.Solve.WeightedHorizon)
	assert.Equal(t, 32, cfg.Solve.ProductHorizon)
	assert.Equal(t, 3, cfg.Solve.ProductBlueprints)
	assert.Equal(t, "midpoint", cfg.Solve.Pruning)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{
			name:   "valid default config",
			modify: func(_ *Config) {},
		},
		{
			name:      "zero weighted horizon",
			modify:    func(c *Config) { c.Solve.WeightedHorizon = 0 },
			wantError: true,
		},
		{
			name:      "zero product horizon",
			modify:    func(c *Config) { c.Solve.ProductHorizon = 0 },
			wantError: true,
		},
		{
			name:      "negative frontier limit",
			modify:    func(c *Config) { c.Solve.FrontierLimit = -1 },
			wantError: true,
		},
		{
			name:      "unknown pruning policy",
			modify:    func(c *Config) { c.Solve.Pruning = "aggressive" },
			wantError: true,
		},
		{
			name: "cache enabled without dir",
			modify: func(c *Config) {
				c.Cache.Enabled = true
				c.Cache.Dir = ""
			},
			wantError: true,
		},
		{
			name:      "unknown log level",
			modify:    func(c *Config) { c.Observability.LogLevel = "chatty" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geodes.yaml")
	content := `
solve:
  weighted_horizon: 10
  pruning: none
observability:
  log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Solve.WeightedHorizon)
	assert.Equal(t, 32, cfg.Solve.ProductHorizon, "unset fields keep defaults")
	assert.Equal(t, "none", cfg.Solve.Pruning)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geodes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"solve": {"product_blueprints": 2}}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Solve.ProductBlueprints)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geodes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solve:\n  weighted_horizon: 10\n"), 0o600))

	t.Setenv("GEODES_WEIGHTED_HORIZON", "12")
	t.Setenv("GEODES_CACHE_DIR", t.TempDir())
	t.Setenv("GEODES_LOG_JSON", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Solve.WeightedHorizon)
	assert.True(t, cfg.Cache.Enabled)
	assert.NotEmpty(t, cfg.Cache.Dir)
	assert.True(t, cfg.Observability.LogJSON)
}

func TestLoad_InvalidValueFromEnv(t *testing.T) {
	t.Setenv("GEODES_PRUNING", "bogus")

	_, err := Load("")
	assert.Error(t, err)
}
