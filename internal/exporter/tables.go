package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"penguincli/internal/analysis"
	"penguincli/internal/config"
	"penguincli/pkg/contracts/domain"
)

// TableExporter writes the analysis tables as CSV files.
type TableExporter struct {
	csvWriter *CSVWriter
	paths     *config.Paths
}

// NewTableExporter creates a table exporter rooted at the given paths.
func NewTableExporter(paths *config.Paths) *TableExporter {
	return &TableExporter{
		csvWriter: NewCSVWriter(paths),
		paths:     paths,
	}
}

// ExportAll writes every analysis table to the tables directory and
// returns the written paths.
func (e *TableExporter) ExportAll(ctx context.Context, clean []domain.Observation, summary *analysis.Summary) ([]string, error) {
	exports := []struct {
		name  string
		write func() error
	}{
		{"species_means.csv", func() error { return e.ExportSpeciesMeans(summary.Means) }},
		{"correlations.csv", func() error { return e.ExportCorrelations(summary.Correlations) }},
		{"field_summaries.csv", func() error { return e.ExportFieldSummaries(summary.FieldSummaries) }},
		{"penguins_clean.csv", func() error { return e.ExportObservations("penguins_clean.csv", clean) }},
	}

	paths := make([]string, 0, len(exports))
	for _, export := range exports {
		if err := export.write(); err != nil {
			return nil, fmt.Errorf("export %s: %w", export.name, err)
		}
		paths = append(paths, e.paths.GetTablePath(export.name))
	}

	slog.InfoContext(ctx, "tables exported", "count", len(paths))
	return paths, nil
}

// ExportSpeciesMeans writes the per-species group means.
func (e *TableExporter) ExportSpeciesMeans(means []analysis.SpeciesMeans) error {
	headers := []string{"species", "count", "bill_length_mm", "bill_depth_mm", "flipper_length_mm", "body_mass_g"}

	records := make([][]string, 0, len(means))
	for _, m := range means {
		records = append(records, []string{
			string(m.Species),
			formatInt(int64(m.Count)),
			formatFloat(m.BillLengthMM),
			formatFloat(m.BillDepthMM),
			formatFloat(m.FlipperLengthMM),
			formatFloat(m.BodyMassG),
		})
	}

	return e.csvWriter.WriteSimpleCSV("species_means.csv", headers, records)
}

// ExportCorrelations writes the body mass correlation table.
func (e *TableExporter) ExportCorrelations(correlations []analysis.Correlation) error {
	headers := []string{"field", "pairs", "coefficient", "strength", "direction"}

	records := make([][]string, 0, len(correlations))
	for _, c := range correlations {
		records = append(records, []string{
			string(c.Field),
			formatInt(int64(c.Pairs)),
			formatCoefficient(c.Coefficient),
			c.Strength(),
			c.Direction(),
		})
	}

	return e.csvWriter.WriteSimpleCSV("correlations.csv", headers, records)
}

// ExportFieldSummaries writes descriptive statistics per measurement.
func (e *TableExporter) ExportFieldSummaries(summaries []analysis.FieldSummary) error {
	headers := []string{"field", "count", "mean", "std_dev", "min", "q1", "median", "q3", "max"}

	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, []string{
			string(s.Field),
			formatInt(int64(s.Count)),
			formatFloat(s.Mean),
			formatFloat(s.StdDev),
			formatMeasurement(s.Min),
			formatMeasurement(s.Q1),
			formatMeasurement(s.Median),
			formatMeasurement(s.Q3),
			formatMeasurement(s.Max),
		})
	}

	return e.csvWriter.WriteSimpleCSV("field_summaries.csv", headers, records)
}

// ExportObservations streams observations to a CSV file, one row per
// penguin, with NA marking missing values.
func (e *TableExporter) ExportObservations(filename string, observations []domain.Observation) error {
	headers := []string{"species", "island", "bill_length_mm", "bill_depth_mm", "flipper_length_mm", "body_mass_g", "sex", "year"}

	stream, err := e.csvWriter.CreateStreamWriter(filename, headers)
	if err != nil {
		return err
	}

	for _, obs := range observations {
		record := []string{
			string(obs.Species),
			string(obs.Island),
			formatOptionalFloat(obs.BillLengthMM),
			formatOptionalFloat(obs.BillDepthMM),
			formatOptionalFloat(obs.FlipperLengthMM),
			formatOptionalFloat(obs.BodyMassG),
			formatSex(obs.Sex),
			formatInt(int64(obs.Year)),
		}
		if err := stream.WriteRecord(record); err != nil {
			stream.Close()
			return err
		}
	}

	return stream.Close()
}
