package charts

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"penguincli/internal/analysis"
	"penguincli/internal/config"
	apperrors "penguincli/internal/errors"
	"penguincli/pkg/contracts/domain"
)

// Chart describes one rendered figure.
type Chart struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Renderer draws the survey figures.
type Renderer struct {
	cfg    config.ChartsConfig
	logger *slog.Logger
}

// NewRenderer creates a renderer. A nil logger falls back to slog.Default.
func NewRenderer(cfg config.ChartsConfig, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{cfg: cfg, logger: logger}
}

// RenderAll draws every survey figure into dir and returns them in
// presentation order. Counts and scatter charts use all loaded rows,
// histograms and boxes that compare species use the fully observed rows.
func (r *Renderer) RenderAll(ctx context.Context, raw, clean []domain.Observation, summary *analysis.Summary, dir string) ([]Chart, error) {
	if len(raw) == 0 || len(clean) == 0 {
		return nil, apperrors.NewValidationError("no observations to chart")
	}

	builders := []struct {
		name  string
		title string
		build func() (*plot.Plot, error)
	}{
		{"species_counts", "Penguins per Species", func() (*plot.Plot, error) {
			return r.speciesCountsChart(summary)
		}},
		{"island_counts", "Penguins per Island", func() (*plot.Plot, error) {
			return r.islandCountsChart(summary)
		}},
		{"sex_species_counts", "Sex Balance per Species", func() (*plot.Plot, error) {
			return r.sexSpeciesChart(clean)
		}},
		{"body_mass_hist", "Body Mass Distribution", func() (*plot.Plot, error) {
			return r.fieldHistogram(raw, domain.FieldBodyMass)
		}},
		{"flipper_length_hist", "Flipper Length by Species", func() (*plot.Plot, error) {
			return r.speciesHistogram(clean, domain.FieldFlipperLength)
		}},
		{"body_mass_box", "Body Mass per Species", func() (*plot.Plot, error) {
			return r.speciesBoxChart(clean, domain.FieldBodyMass)
		}},
		{"flipper_length_box", "Flipper Length per Species", func() (*plot.Plot, error) {
			return r.speciesBoxChart(clean, domain.FieldFlipperLength)
		}},
		{"mass_vs_flipper", "Body Mass vs Flipper Length", func() (*plot.Plot, error) {
			return r.scatterWithTrend(raw, summary, domain.FieldFlipperLength)
		}},
		{"mass_vs_bill_length", "Body Mass vs Bill Length", func() (*plot.Plot, error) {
			return r.scatterWithTrend(raw, summary, domain.FieldBillLength)
		}},
		{"bill_length_vs_depth", "Bill Length vs Bill Depth", func() (*plot.Plot, error) {
			return r.billScatterChart(raw)
		}},
	}

	charts := make([]Chart, 0, len(builders))
	for _, b := range builders {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		p, err := b.build()
		if err != nil {
			return nil, apperrors.NewRenderError(fmt.Sprintf("build chart %s", b.name), err)
		}
		p.Title.Text = b.title

		chart, err := r.save(p, dir, b.name, b.title)
		if err != nil {
			return nil, err
		}
		charts = append(charts, chart)

		r.logger.DebugContext(ctx, "rendered chart", "name", b.name, "path", chart.Path)
	}

	r.logger.InfoContext(ctx, "charts rendered",
		"count", len(charts),
		"format", r.cfg.Format,
		"dir", dir,
	)
	return charts, nil
}

func (r *Renderer) save(p *plot.Plot, dir, name, title string) (Chart, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s.%s", name, r.cfg.Format))
	width := vg.Length(r.cfg.WidthInches) * vg.Inch
	height := vg.Length(r.cfg.HeightInches) * vg.Inch

	if err := p.Save(width, height, path); err != nil {
		return Chart{}, apperrors.NewRenderError(fmt.Sprintf("save chart %s", name), err)
	}
	return Chart{Name: name, Title: title, Path: path}, nil
}
