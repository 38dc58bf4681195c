package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" envconfig:"DATASET"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Charts  ChartsConfig  `yaml:"charts" envconfig:"CHARTS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Tracing TracingConfig `yaml:"tracing" envconfig:"TRACING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// DatasetConfig controls which penguin data is analyzed
type DatasetConfig struct {
	// File optionally points at an external CSV with the survey schema.
	// When empty the bundled Palmer penguins snapshot is used.
	File string `yaml:"file" envconfig:"FILE"`
}

// ReportConfig contains report document configuration
type ReportConfig struct {
	Format string `yaml:"format" envconfig:"FORMAT" validate:"required,oneof=markdown html xlsx"`
	Title  string `yaml:"title" envconfig:"TITLE" validate:"required"`
}

// ChartsConfig contains chart rendering configuration
type ChartsConfig struct {
	Format       string  `yaml:"format" envconfig:"FORMAT" validate:"required,oneof=png svg"`
	WidthInches  float64 `yaml:"width_inches" envconfig:"WIDTH_INCHES" validate:"gt=0,lte=20"`
	HeightInches float64 `yaml:"height_inches" envconfig:"HEIGHT_INCHES" validate:"gt=0,lte=20"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// TracingConfig contains OpenTelemetry tracing configuration
type TracingConfig struct {
	Exporter    string  `yaml:"exporter" envconfig:"EXPORTER" validate:"oneof=stdout none"`
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" validate:"gte=0,lte=1"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
}

// validate is the shared validator instance for configuration structs.
// Error messages use the yaml key names rather than Go field names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load loads configuration from defaults, an optional YAML file, and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	return loadWithFile(getConfigFilePath())
}

// LoadFile is like Load but reads the given YAML file, which must exist.
func LoadFile(configFile string) (*Config, error) {
	if _, err := os.Stat(configFile); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configFile, err)
	}
	return loadWithFile(configFile)
}

func loadWithFile(configFile string) (*Config, error) {
	cfg := Default()

	// Layer the config file over the defaults
	if configFile != "" {
		if err := mergeFromFile(cfg, configFile); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Environment variables take precedence over the file
	if err := envconfig.Process("PENGUIN", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.normalize()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// mergeFromFile overlays values from a YAML file onto cfg
func mergeFromFile(cfg *Config, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}

	return nil
}

// normalize fixes up values the rest of the application assumes.
// Logging is always JSON; the console is reserved for the summary tables,
// so log output defaults to file when an unknown mode is configured.
func (c *Config) normalize() {
	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}

	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
		c.Logging.Output = strings.ToLower(c.Logging.Output)
	default:
		c.Logging.Output = "file"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/penguin-report.log"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("invalid %s: failed %q check", first.Field(), first.Tag())
		}
		return err
	}

	if c.Dataset.File != "" {
		if _, err := os.Stat(c.Dataset.File); err != nil {
			return fmt.Errorf("dataset file %s: %w", c.Dataset.File, err)
		}
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"penguin-report.yaml",
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			File: "",
		},
		Report: ReportConfig{
			Format: "markdown",
			Title:  "Palmer Penguins Survey Report",
		},
		Charts: ChartsConfig{
			Format:       "png",
			WidthInches:  6,
			HeightInches: 4,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: "logs/penguin-report.log",
		},
		Tracing: TracingConfig{
			Exporter:    "none",
			SampleRatio: 1.0,
		},
		Paths: PathsConfig{
			OutputDir: "output",
		},
	}
}
