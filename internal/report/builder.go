package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"penguincli/internal/analysis"
	"penguincli/internal/charts"
	"penguincli/internal/config"
	"penguincli/internal/dataset"
	apperrors "penguincli/internal/errors"
)

// Document is the assembled report before rendering. The same document
// feeds every output format.
type Document struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	GeneratedAt time.Time           `json:"generated_at"`
	Cleaning    dataset.CleanReport `json:"cleaning"`
	Summary     *analysis.Summary   `json:"summary"`
	Charts      []charts.Chart      `json:"charts"`
	Findings    []string            `json:"findings"`
}

// Builder assembles report documents and renders them in the
// configured format.
type Builder struct {
	cfg    config.ReportConfig
	logger *slog.Logger
}

// NewBuilder creates a report builder. A nil logger falls back to the
// default logger.
func NewBuilder(cfg config.ReportConfig, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{cfg: cfg, logger: logger}
}

// Build assembles the report document from the cleaning report, the
// analysis summary and the rendered charts.
func (b *Builder) Build(ctx context.Context, cleaning dataset.CleanReport, summary *analysis.Summary, figures []charts.Chart) (*Document, error) {
	if summary == nil {
		return nil, apperrors.NewValidationError("summary is required to build a report")
	}

	doc := &Document{
		ID:          uuid.New().String(),
		Title:       b.cfg.Title,
		GeneratedAt: time.Now().UTC(),
		Cleaning:    cleaning,
		Summary:     summary,
		Charts:      figures,
		Findings:    deriveFindings(cleaning, summary),
	}

	b.logger.InfoContext(ctx, "report document assembled",
		"report_id", doc.ID,
		"findings", len(doc.Findings),
		"charts", len(doc.Charts),
	)

	return doc, nil
}

// Write renders the document in the configured format under the report
// directory and returns the written path.
func (b *Builder) Write(ctx context.Context, doc *Document, paths *config.Paths) (string, error) {
	format := Format(b.cfg.Format)
	if !format.IsValid() {
		return "", apperrors.NewConfigError(fmt.Sprintf("unsupported report format: %s", b.cfg.Format), nil)
	}

	path := paths.GetReportPath("penguin_report" + format.Ext())

	var err error
	switch format {
	case FormatMarkdown:
		err = os.WriteFile(path, renderMarkdown(doc, paths.BaseDir), 0o644)
	case FormatHTML:
		var buf bytes.Buffer
		if err = renderHTML(&buf, doc, paths.BaseDir); err == nil {
			err = os.WriteFile(path, buf.Bytes(), 0o644)
		}
	case FormatXLSX:
		err = b.writeExcel(doc, path)
	}
	if err != nil {
		return "", apperrors.NewRenderError(fmt.Sprintf("write %s report", format), err)
	}

	b.logger.InfoContext(ctx, "report written",
		"path", path,
		"format", string(format),
	)

	return path, nil
}
