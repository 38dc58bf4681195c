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

	assert.Equal(t, "markdown", cfg.Report.Format)
	assert.Equal(t, "Palmer Penguins Survey Report", cfg.Report.Title)
	assert.Equal(t, "png", cfg.Charts.Format)
	assert.Equal(t, 6.0, cfg.Charts.WidthInches)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "none", cfg.Tracing.Exporter)
	assert.Equal(t, "output", cfg.Paths.OutputDir)
	assert.Empty(t, cfg.Dataset.File)

	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "html report format",
			mutate:  func(c *Config) { c.Report.Format = "html" },
			wantErr: false,
		},
		{
			name:    "xlsx report format",
			mutate:  func(c *Config) { c.Report.Format = "xlsx" },
			wantErr: false,
		},
		{
			name:    "unknown report format",
			mutate:  func(c *Config) { c.Report.Format = "pdf" },
			wantErr: true,
		},
		{
			name:    "empty report title",
			mutate:  func(c *Config) { c.Report.Title = "" },
			wantErr: true,
		},
		{
			name:    "unknown chart format",
			mutate:  func(c *Config) { c.Charts.Format = "jpeg" },
			wantErr: true,
		},
		{
			name:    "zero chart width",
			mutate:  func(c *Config) { c.Charts.WidthInches = 0 },
			wantErr: true,
		},
		{
			name:    "oversized chart height",
			mutate:  func(c *Config) { c.Charts.HeightInches = 100 },
			wantErr: true,
		},
		{
			name:    "unknown tracing exporter",
			mutate:  func(c *Config) { c.Tracing.Exporter = "otlp" },
			wantErr: true,
		},
		{
			name:    "sample ratio above one",
			mutate:  func(c *Config) { c.Tracing.SampleRatio = 1.5 },
			wantErr: true,
		},
		{
			name:    "empty output dir",
			mutate:  func(c *Config) { c.Paths.OutputDir = "" },
			wantErr: true,
		},
		{
			name:    "missing dataset override file",
			mutate:  func(c *Config) { c.Dataset.File = "does-not-exist.csv" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "text"
	cfg.Logging.Output = "syslog"
	cfg.Logging.FilePath = ""

	cfg.normalize()

	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "file", cfg.Logging.Output)
	assert.Equal(t, "logs/penguin-report.log", cfg.Logging.FilePath)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "penguin-report.yaml")

	content := `report:
  format: html
  title: Field Season Summary
charts:
  format: svg
  width_inches: 8
  height_inches: 5
paths:
  output_dir: season-output
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := LoadFile(configFile)
	require.NoError(t, err)

	assert.Equal(t, "html", cfg.Report.Format)
	assert.Equal(t, "Field Season Summary", cfg.Report.Title)
	assert.Equal(t, "svg", cfg.Charts.Format)
	assert.Equal(t, 8.0, cfg.Charts.WidthInches)
	assert.Equal(t, "season-output", cfg.Paths.OutputDir)

	// Values missing from the file keep their defaults
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "none", cfg.Tracing.Exporter)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileInvalidValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")

	content := `report:
  format: pdf
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	_, err := LoadFile(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")

	content := `report:
  format: markdown
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	t.Setenv("PENGUIN_REPORT_FORMAT", "xlsx")

	cfg, err := LoadFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", cfg.Report.Format)
}
