package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penguincli/internal/analysis"
	"penguincli/internal/config"
	"penguincli/internal/dataset"
	"penguincli/internal/infrastructure"
	"penguincli/internal/shared/testutil"
	"penguincli/pkg/contracts/domain"
)

func TestApplyFlagOverrides(t *testing.T) {
	tests := []struct {
		name         string
		outputDir    string
		reportFormat string
		chartFormat  string
		dataFile     string
		check        func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "no flags keeps configured defaults",
			check: func(t *testing.T, cfg *config.Config) {
				def := config.Default()
				assert.Equal(t, def.Paths.OutputDir, cfg.Paths.OutputDir)
				assert.Equal(t, def.Report.Format, cfg.Report.Format)
				assert.Equal(t, def.Charts.Format, cfg.Charts.Format)
				assert.Equal(t, def.Dataset.File, cfg.Dataset.File)
			},
		},
		{
			name:      "out flag overrides output directory",
			outputDir: "runs/today",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "runs/today", cfg.Paths.OutputDir)
			},
		},
		{
			name:         "format flag overrides report format",
			reportFormat: "xlsx",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "xlsx", cfg.Report.Format)
			},
		},
		{
			name:        "charts flag overrides chart format",
			chartFormat: "svg",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "svg", cfg.Charts.Format)
			},
		},
		{
			name:     "data flag overrides dataset file",
			dataFile: "surveys/2009.csv",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "surveys/2009.csv", cfg.Dataset.File)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			applyFlagOverrides(cfg, tt.outputDir, tt.reportFormat, tt.chartFormat, tt.dataFile)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "penguin-report.yaml")
		require.NoError(t, os.WriteFile(path, []byte("report:\n  format: html\n"), 0644))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "html", cfg.Report.Format)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoadObservations(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	ctx := context.Background()

	t.Run("bundled snapshot", func(t *testing.T) {
		rows, err := loadObservations(ctx, logger, "")
		require.NoError(t, err)
		assert.Len(t, rows, 344)
	})

	t.Run("external file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "survey.csv")
		data := "species,island,bill_length_mm,bill_depth_mm,flipper_length_mm,body_mass_g,sex,year\n" +
			"Adelie,Biscoe,39.1,18.7,181,3750,male,2007\n" +
			"Gentoo,Biscoe,46.1,13.2,211,4500,female,2007\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		rows, err := loadObservations(ctx, logger, path)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadObservations(ctx, logger, filepath.Join(t.TempDir(), "missing.csv"))
		assert.Error(t, err)
	})
}

func TestRunGeneratesReportBundle(t *testing.T) {
	outDir := t.TempDir()

	cfg := config.Default()
	cfg.Paths.OutputDir = outDir

	paths, err := config.NewPaths(outDir)
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())

	logger, _ := testutil.NewTestLogger(t)
	providers, err := infrastructure.InitializeTracing(cfg.Tracing, logger)
	require.NoError(t, err)

	result, err := run(context.Background(), cfg, paths, logger, providers.Tracer)
	require.NoError(t, err)

	assert.Equal(t, 344, result.Cleaning.Total)
	assert.Equal(t, 333, result.Cleaning.Kept)
	assert.Equal(t, 11, result.Cleaning.Dropped)

	assert.Len(t, result.Charts, 10)
	for _, chart := range result.Charts {
		assert.FileExists(t, chart.Path)
	}

	assert.Len(t, result.Tables, 4)
	for _, table := range result.Tables {
		assert.FileExists(t, table)
	}

	assert.Equal(t, paths.GetReportPath("penguin_report.md"), result.ReportPath)
	assert.FileExists(t, result.ReportPath)

	require.NotNil(t, result.Summary)
	assert.Len(t, result.Summary.Means, 3)

	gentoo, ok := result.Summary.MeansFor(domain.SpeciesGentoo)
	require.True(t, ok)
	assert.InDelta(t, 5092.44, gentoo.BodyMassG, 0.01)
}

// captureStdout redirects os.Stdout while fn runs and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestConsoleSummaryFormatting(t *testing.T) {
	cleaning := dataset.CleanReport{
		Total:   344,
		Kept:    333,
		Dropped: 11,
		DroppedBySpecies: map[domain.Species]int{
			domain.SpeciesAdelie: 6,
			domain.SpeciesGentoo: 5,
		},
	}

	out := captureStdout(t, func() { printCleaningSummary(cleaning) })
	assert.Contains(t, out, "=== SURVEY CLEANING SUMMARY ===")
	assert.Contains(t, out, "Rows loaded:   344")
	assert.Contains(t, out, "Rows dropped:   11")
	assert.Contains(t, out, "Adelie")
	assert.NotContains(t, out, "Chinstrap")

	means := []analysis.SpeciesMeans{
		{Species: domain.SpeciesAdelie, Count: 146, BillLengthMM: 38.82, BillDepthMM: 18.35, FlipperLengthMM: 190.10, BodyMassG: 3706.16},
	}
	out = captureStdout(t, func() { printSpeciesMeans(means) })
	assert.Contains(t, out, "=== SPECIES MEANS (COMPLETE ROWS ONLY) ===")
	assert.Contains(t, out, "Adelie")
	assert.Contains(t, out, "3706.16")

	correlations := []analysis.Correlation{
		{Field: domain.FieldFlipperLength, Pairs: 342, Coefficient: 0.8712},
	}
	out = captureStdout(t, func() { printCorrelations(correlations) })
	assert.Contains(t, out, "=== CORRELATION WITH BODY MASS ===")
	assert.Contains(t, out, "Flipper Length (mm)")
	assert.Contains(t, out, "0.8712")
	assert.Contains(t, out, "strong")
	assert.Contains(t, out, "positive")

	summary := &analysis.Summary{
		Means:        means,
		Correlations: correlations,
		Trends: []analysis.TrendLine{
			{X: domain.FieldFlipperLength, Y: domain.FieldBodyMass, Pairs: 342, Intercept: -5780.83, Slope: 49.69, R2: 0.76},
		},
	}
	out = captureStdout(t, func() { printHighlights(summary) })
	assert.Contains(t, out, "=== HIGHLIGHTS ===")
	assert.Contains(t, out, "Heaviest species:      Adelie")
	assert.Contains(t, out, "Flipper Length (mm) vs body mass")
	assert.Contains(t, out, "49.7 g")
}
