package analysis

import (
	"context"
	"log/slog"

	apperrors "penguincli/internal/errors"
	"penguincli/pkg/contracts/domain"
)

// Analyzer computes the survey statistics that feed the report, the
// exported tables and the charts.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer. A nil logger falls back to slog.Default.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Analyze runs every computation over one survey snapshot. The raw slice
// holds all loaded rows, the clean slice the fully observed subset.
func (a *Analyzer) Analyze(ctx context.Context, raw, clean []domain.Observation) (*Summary, error) {
	if len(raw) == 0 {
		return nil, apperrors.NewValidationError("no observations to analyze")
	}
	if len(clean) == 0 {
		return nil, apperrors.NewValidationError("no fully observed rows to analyze")
	}

	a.logger.InfoContext(ctx, "starting analysis",
		"raw_rows", len(raw),
		"clean_rows", len(clean),
	)

	summary := &Summary{
		RawCount:       len(raw),
		CleanCount:     len(clean),
		SpeciesCounts:  make(map[domain.Species]int),
		IslandCounts:   make(map[domain.Island]int),
		YearCounts:     make(map[int]int),
		Means:          GroupMeansBySpecies(clean),
		Correlations:   MassCorrelations(raw),
		FieldSummaries: DescribeFields(raw),
		Trends:         FitTrends(raw),
	}

	for _, obs := range raw {
		summary.SpeciesCounts[obs.Species]++
		summary.IslandCounts[obs.Island]++
		summary.YearCounts[obs.Year]++
	}

	a.logger.InfoContext(ctx, "analysis completed",
		"species", len(summary.Means),
		"correlations", len(summary.Correlations),
		"field_summaries", len(summary.FieldSummaries),
		"trends", len(summary.Trends),
	)

	return summary, nil
}
