// Package exporter writes the survey's CSV tables.
//
// This package contains two main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// streaming, and UTF-8 BOM for Excel compatibility.
//
// TableExporter: Writes the analysis tables, group means per species,
// the body mass correlation table, descriptive statistics per
// measurement and the cleaned dataset itself.
//
// Example usage:
//
//	tables := exporter.NewTableExporter(paths)
//	written, err := tables.ExportAll(ctx, clean, summary)
package exporter
