package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"penguincli/internal/analysis"
	"penguincli/internal/charts"
	"penguincli/internal/config"
	"penguincli/internal/dataset"
	"penguincli/internal/exporter"
	"penguincli/internal/infrastructure"
	"penguincli/internal/report"
	"penguincli/internal/validation"
	"penguincli/pkg/contracts"
	"penguincli/pkg/contracts/domain"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file (default: penguin-report.yaml if present)")
	outputDir := flag.String("out", "", "output directory for the report bundle (defaults to ./output)")
	reportFormat := flag.String("format", "", "report document format: markdown, html or xlsx")
	chartFormat := flag.String("charts", "", "chart image format: png or svg")
	dataFile := flag.String("data", "", "survey CSV to analyze (defaults to the bundled Palmer penguins snapshot)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	applyFlagOverrides(cfg, *outputDir, *reportFormat, *chartFormat, *dataFile)
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize paths
	paths, err := config.NewPaths(cfg.Paths.OutputDir)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	// The run log ships with the report bundle
	cfg.Logging.FilePath = paths.GetLogPath("penguin-report.log")

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	logger.InfoContext(ctx, "Penguin survey report starting",
		slog.String("version", contracts.Version),
		slog.String("output_dir", paths.BaseDir),
		slog.String("report_format", cfg.Report.Format),
		slog.String("chart_format", cfg.Charts.Format))

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateOutputDirectory(paths.BaseDir); err != nil {
		logger.ErrorContext(ctx, "Output directory validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.Dataset.File != "" {
		if err := validator.ValidateDatasetFile(cfg.Dataset.File); err != nil {
			logger.ErrorContext(ctx, "Dataset file validation failed", "error", err)
			os.Exit(1)
		}
	}

	providers, err := infrastructure.InitializeTracing(cfg.Tracing, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	result, err := run(ctx, cfg, paths, logger, providers.Tracer)
	if err != nil {
		logger.ErrorContext(ctx, "Report generation failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Report generated successfully",
		slog.String("report", result.ReportPath),
		slog.Int("charts", len(result.Charts)),
		slog.Int("tables", len(result.Tables)))

	// Print summary tables
	printCleaningSummary(result.Cleaning)
	printSpeciesMeans(result.Summary.Means)
	printCorrelations(result.Summary.Correlations)
	printHighlights(result.Summary)
	printOutputs(result, paths)
}

// pipelineResult carries everything the console summary prints.
type pipelineResult struct {
	Cleaning   dataset.CleanReport
	Summary    *analysis.Summary
	Charts     []charts.Chart
	Tables     []string
	ReportPath string
}

// run executes the report pipeline: load the survey rows, drop incomplete
// ones, compute the summary statistics, render the figures, export the
// CSV tables and write the report document.
func run(ctx context.Context, cfg *config.Config, paths *config.Paths, logger *slog.Logger, tracer trace.Tracer) (*pipelineResult, error) {
	start := time.Now()

	ctx, span := tracer.Start(ctx, "report.generate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("report.format", cfg.Report.Format),
			attribute.String("charts.format", cfg.Charts.Format),
		))
	defer span.End()

	result := &pipelineResult{}

	loadCtx, loadSpan := traceStage(ctx, tracer, "load")
	raw, err := loadObservations(loadCtx, logger, cfg.Dataset.File)
	endStage(loadSpan, err, attribute.Int("rows.loaded", len(raw)))
	if err != nil {
		span.SetStatus(codes.Error, "load failed")
		return nil, err
	}

	cleanCtx, cleanSpan := traceStage(ctx, tracer, "clean")
	clean, cleaning := dataset.Clean(raw)
	logger.InfoContext(cleanCtx, "Survey rows cleaned",
		slog.Int("total", cleaning.Total),
		slog.Int("kept", cleaning.Kept),
		slog.Int("dropped", cleaning.Dropped))
	endStage(cleanSpan, nil,
		attribute.Int("rows.kept", cleaning.Kept),
		attribute.Int("rows.dropped", cleaning.Dropped))
	result.Cleaning = cleaning

	analyzeCtx, analyzeSpan := traceStage(ctx, tracer, "analyze")
	summary, err := analysis.NewAnalyzer(logger).Analyze(analyzeCtx, raw, clean)
	endStage(analyzeSpan, err)
	if err != nil {
		span.SetStatus(codes.Error, "analysis failed")
		return nil, err
	}
	result.Summary = summary

	chartCtx, chartSpan := traceStage(ctx, tracer, "render_charts")
	figures, err := charts.NewRenderer(cfg.Charts, logger).RenderAll(chartCtx, raw, clean, summary, paths.ChartsDir)
	endStage(chartSpan, err, attribute.Int("charts.rendered", len(figures)))
	if err != nil {
		span.SetStatus(codes.Error, "chart rendering failed")
		return nil, err
	}
	result.Charts = figures

	tableCtx, tableSpan := traceStage(ctx, tracer, "export_tables")
	tables, err := exporter.NewTableExporter(paths).ExportAll(tableCtx, clean, summary)
	endStage(tableSpan, err, attribute.Int("tables.exported", len(tables)))
	if err != nil {
		span.SetStatus(codes.Error, "table export failed")
		return nil, err
	}
	result.Tables = tables

	reportCtx, reportSpan := traceStage(ctx, tracer, "write_report")
	builder := report.NewBuilder(cfg.Report, logger)
	doc, err := builder.Build(reportCtx, cleaning, summary, figures)
	if err == nil {
		result.ReportPath, err = builder.Write(reportCtx, doc, paths)
	}
	endStage(reportSpan, err, attribute.String("report.path", result.ReportPath))
	if err != nil {
		span.SetStatus(codes.Error, "report writing failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int64("duration_ms", time.Since(start).Milliseconds()))
	span.SetStatus(codes.Ok, "report generated")

	logger.InfoContext(ctx, "Pipeline complete",
		slog.Duration("elapsed", time.Since(start)))

	return result, nil
}

// loadConfig loads configuration from an explicit file when given,
// otherwise from the default locations and environment.
func loadConfig(configFile string) (*config.Config, error) {
	if configFile != "" {
		return config.LoadFile(configFile)
	}
	return config.Load()
}

// applyFlagOverrides layers explicit command line flags over the loaded
// configuration. Empty flag values keep the configured defaults.
func applyFlagOverrides(cfg *config.Config, outputDir, reportFormat, chartFormat, dataFile string) {
	if outputDir != "" {
		cfg.Paths.OutputDir = outputDir
	}
	if reportFormat != "" {
		cfg.Report.Format = reportFormat
	}
	if chartFormat != "" {
		cfg.Charts.Format = chartFormat
	}
	if dataFile != "" {
		cfg.Dataset.File = dataFile
	}
}

// loadObservations reads the survey rows from the configured source:
// an external CSV when one was given, otherwise the bundled snapshot.
func loadObservations(ctx context.Context, logger *slog.Logger, file string) ([]domain.Observation, error) {
	if file == "" {
		logger.InfoContext(ctx, "Loading bundled survey snapshot")
		return dataset.LoadEmbedded()
	}

	logger.InfoContext(ctx, "Loading survey data", slog.String("path", file))
	return dataset.LoadFile(file)
}

// traceStage starts a child span for one pipeline stage.
func traceStage(ctx context.Context, tracer trace.Tracer, stage string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "pipeline."+stage,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("pipeline.stage", stage)))
}

// endStage finishes a stage span, recording err when the stage failed.
// The extra attributes are only attached on success.
func endStage(span trace.Span, err error, attrs ...attribute.KeyValue) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attrs...)
		span.SetStatus(codes.Ok, "stage completed")
	}
	span.End()
}

func printCleaningSummary(cleaning dataset.CleanReport) {
	fmt.Println("\n=== SURVEY CLEANING SUMMARY ===")
	fmt.Printf("Rows loaded:  %4d\n", cleaning.Total)
	fmt.Printf("Rows kept:    %4d\n", cleaning.Kept)
	fmt.Printf("Rows dropped: %4d\n", cleaning.Dropped)

	for _, species := range domain.AllSpecies() {
		if n := cleaning.DroppedBySpecies[species]; n > 0 {
			fmt.Printf("  %-10s %d row(s) with missing values\n", species, n)
		}
	}
}

func printSpeciesMeans(means []analysis.SpeciesMeans) {
	fmt.Println("\n=== SPECIES MEANS (COMPLETE ROWS ONLY) ===")
	fmt.Println("Species   | Rows | Bill Len (mm) | Bill Depth (mm) | Flipper (mm) | Mass (g)")
	fmt.Println("----------|------|---------------|-----------------|--------------|---------")

	for _, m := range means {
		fmt.Printf("%-9s | %4d | %13.2f | %15.2f | %12.2f | %8.2f\n",
			m.Species, m.Count, m.BillLengthMM, m.BillDepthMM, m.FlipperLengthMM, m.BodyMassG)
	}
}

func printCorrelations(correlations []analysis.Correlation) {
	fmt.Println("\n=== CORRELATION WITH BODY MASS ===")
	fmt.Println("Measurement         | Pairs | Pearson r | Direction | Strength")
	fmt.Println("--------------------|-------|-----------|-----------|---------")

	for _, c := range correlations {
		fmt.Printf("%-19s | %5d | %9.4f | %-9s | %s\n",
			c.Field.Label(), c.Pairs, c.Coefficient, c.Direction(), c.Strength())
	}
}

func printHighlights(summary *analysis.Summary) {
	fmt.Println("\n=== HIGHLIGHTS ===")

	if heaviest, ok := summary.HeaviestSpecies(); ok {
		fmt.Printf("Heaviest species:      %s (mean body mass %.0f g over %d rows)\n",
			heaviest.Species, heaviest.BodyMassG, heaviest.Count)
	}
	if strongest, ok := summary.StrongestCorrelation(); ok {
		fmt.Printf("Strongest association: %s vs body mass (r = %.4f, %s %s)\n",
			strongest.Field.Label(), strongest.Coefficient, strongest.Strength(), strongest.Direction())
	}
	if trend, ok := summary.TrendFor(domain.FieldFlipperLength); ok {
		fmt.Printf("Flipper-mass trend:    each extra mm of flipper adds about %.1f g of body mass (R²=%.2f)\n",
			trend.Slope, trend.R2)
	}
}

func printOutputs(result *pipelineResult, paths *config.Paths) {
	fmt.Println("\n=== OUTPUT ===")
	fmt.Printf("Report: %s\n", result.ReportPath)
	fmt.Printf("Charts: %d figure(s) under %s\n", len(result.Charts), paths.ChartsDir)
	fmt.Printf("Tables: %d file(s) under %s\n", len(result.Tables), paths.TablesDir)
}
