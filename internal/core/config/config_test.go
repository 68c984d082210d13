package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridsheet/internal/core/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridsheet.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultConfig(), *cfg)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, 10, cfg.Viewport.RowBlocks)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "theme: gruvbox\nviewport:\n  row_blocks: 6\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, 6, cfg.Viewport.RowBlocks)
	assert.Equal(t, 4, cfg.Viewport.ColBlocks, "unset values keep defaults")
	assert.InDelta(t, 100, cfg.Sizes.ColumnWidth, 1e-9)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "theme: [unclosed\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *config.Config) {},
		},
		{
			name:    "unknown theme",
			mutate:  func(c *config.Config) { c.Theme = "solarized-disco" },
			wantErr: "unknown theme",
		},
		{
			name:    "row blocks too small",
			mutate:  func(c *config.Config) { c.Viewport.RowBlocks = 1 },
			wantErr: "viewport.row_blocks",
		},
		{
			name:    "col blocks too large",
			mutate:  func(c *config.Config) { c.Viewport.ColBlocks = 200 },
			wantErr: "viewport.col_blocks",
		},
		{
			name:    "row height below clamp floor",
			mutate:  func(c *config.Config) { c.Sizes.RowHeight = 10 },
			wantErr: "sizes.row_height",
		},
		{
			name:    "column width above clamp ceiling",
			mutate:  func(c *config.Config) { c.Sizes.ColumnWidth = 900 },
			wantErr: "sizes.column_width",
		},
		{
			name:    "bad log level",
			mutate:  func(c *config.Config) { c.Log.Level = "loud" },
			wantErr: "unknown log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := writeConfig(t, "theme: solarized-disco\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
