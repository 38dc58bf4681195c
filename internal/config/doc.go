// Package config handles application configuration from defaults, an
// optional YAML file, and PENGUIN_-prefixed environment variables, in
// increasing order of precedence.
//
// It also owns the output path layout: every file the run produces
// (report document, charts, tables, logs) lives under a single output
// directory resolved through the Paths type.
package config
