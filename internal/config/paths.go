package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the run output paths.
// This is the single source of truth for file locations in the application.
//
// Layout under the output directory:
//
//	output/
//	  ├── penguin_report.md      (or .html / .xlsx)
//	  ├── charts/                (rendered figures)
//	  ├── tables/                (exported CSV tables)
//	  └── logs/                  (application logs)
type Paths struct {
	BaseDir   string
	ChartsDir string
	TablesDir string
	LogsDir   string
}

// NewPaths resolves the output layout rooted at outputDir.
// Relative directories are resolved against the current working directory.
func NewPaths(outputDir string) (*Paths, error) {
	if outputDir == "" {
		return nil, fmt.Errorf("output directory must not be empty")
	}

	base, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}

	return &Paths{
		BaseDir:   base,
		ChartsDir: filepath.Join(base, "charts"),
		TablesDir: filepath.Join(base, "tables"),
		LogsDir:   filepath.Join(base, "logs"),
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.BaseDir,
		p.ChartsDir,
		p.TablesDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}

		if logger != nil {
			logger.Debug("Ensured directory exists",
				slog.String("directory", dir))
		}
	}

	return nil
}

// GetChartPath returns the full path for a chart file name
func (p *Paths) GetChartPath(name string) string {
	return filepath.Join(p.ChartsDir, name)
}

// GetTablePath returns the full path for an exported table file name
func (p *Paths) GetTablePath(name string) string {
	return filepath.Join(p.TablesDir, name)
}

// GetReportPath returns the full path for the report document file name
func (p *Paths) GetReportPath(name string) string {
	return filepath.Join(p.BaseDir, name)
}

// GetLogPath returns the full path for a log file name
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
