package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cnjsaude/internal/config"
	"cnjsaude/internal/dataprocessing"
	"cnjsaude/internal/exporter"
	"cnjsaude/internal/files"
	"cnjsaude/internal/infrastructure"
	"cnjsaude/pkg/contracts/domain"
)

// consolidatedLabel names the national analysis context in report
// sections and workbook sheets.
const consolidatedLabel = "Consolidado"

func main() {
	inPath := flag.String("in", "", "consolidated extract to analyze (defaults to the filter stage output)")
	reportsDir := flag.String("reports", "", "output directory for report files (defaults to configured reports dir)")
	topN := flag.Int("top", 0, "distinct values listed per table before aggregation (defaults to configured value)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	if *reportsDir != "" {
		cfg.Paths.ReportsDir = *reportsDir
	}
	if *topN > 0 {
		cfg.Analysis.TopN = *topN
	}

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureOutputDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = paths.GetLogPath("report.log")
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())

	consolidatedPath := *inPath
	if consolidatedPath == "" {
		consolidatedPath = paths.ConsolidatedCSV
	}

	logger.InfoContext(ctx, "starting health litigation analysis",
		slog.String("consolidated_csv", consolidatedPath),
		slog.String("reports_dir", paths.ReportsDir),
		slog.Int("top_n", cfg.Analysis.TopN))

	consolidated, err := readExtract(consolidatedPath)
	if err != nil {
		logger.ErrorContext(ctx, "cannot read consolidated extract",
			slog.String("path", consolidatedPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Printf("Analyzing %d consolidated rows\n", consolidated.Len())

	analyzer := dataprocessing.NewAnalyzer(logger, dataprocessing.AnalyzerConfig{
		Columns:           config.AnalysisColumns,
		EntityColumn:      config.ColumnPassiveNature,
		EntityKeywords:    config.PublicEntityKeywords,
		ConfidentialValue: config.ConfidentialValue,
	})

	tables := analyzer.Analyze(ctx, consolidated, consolidatedLabel, domain.SubsetAll)
	tables = append(tables, analyzer.Analyze(ctx, consolidated, consolidatedLabel, domain.SubsetPublicEntity)...)

	if cfg.Analysis.IncludeRegions {
		tables = append(tables, analyzeRegionalExtracts(ctx, logger, analyzer, paths)...)
	}

	writer := exporter.NewCSVWriter(logger)
	sink := exporter.NewReportSink(logger, writer, cfg.Analysis.TopN)

	csvPath := paths.GetReportPath(config.ReportBaseName + ".csv")
	if err := sink.WriteCombinedCSV(ctx, csvPath, tables); err != nil {
		logger.ErrorContext(ctx, "failed to write combined report CSV", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tablePaths, err := sink.WriteTableCSVs(ctx, paths.ReportsDir, config.ReportBaseName, tables)
	if err != nil {
		logger.ErrorContext(ctx, "failed to write per-table CSVs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	workbookPath := paths.GetReportPath(config.ReportBaseName + ".xlsx")
	if err := sink.WriteWorkbook(ctx, workbookPath, tables); err != nil {
		logger.ErrorContext(ctx, "failed to write report workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "analysis complete",
		slog.Int("tables", len(tables)),
		slog.Int("table_csvs", len(tablePaths)),
		slog.String("csv", csvPath),
		slog.String("workbook", workbookPath))

	fmt.Printf("Wrote %d frequency tables\n", len(tables))
	fmt.Printf("Report CSV: %s\n", csvPath)
	fmt.Printf("Report workbook: %s\n", workbookPath)
}

// analyzeRegionalExtracts runs both analysis tiers over each per-source
// extract in the filtered directory. Unreadable extracts are logged and
// skipped; the regional tier is supplementary to the national one.
func analyzeRegionalExtracts(ctx context.Context, logger *slog.Logger, analyzer *dataprocessing.Analyzer, paths *config.Paths) []*domain.FrequencyTable {
	extractPaths, err := files.FindCSVFiles(paths.FilteredDir)
	if err != nil {
		logger.WarnContext(ctx, "cannot list regional extracts",
			slog.String("dir", paths.FilteredDir),
			slog.String("error", err.Error()))
		return nil
	}

	var tables []*domain.FrequencyTable
	for _, path := range extractPaths {
		table, err := readExtract(path)
		if err != nil {
			logger.WarnContext(ctx, "skipping unreadable regional extract",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		label := extractLabel(path)
		tables = append(tables, analyzer.Analyze(ctx, table, label, domain.SubsetAll)...)
		tables = append(tables, analyzer.Analyze(ctx, table, label, domain.SubsetPublicEntity)...)
	}
	return tables
}

// extractLabel derives the analysis context label from an extract file
// name, dropping the shared prefix and extension.
func extractLabel(path string) string {
	label := strings.TrimSuffix(filepath.Base(path), ".csv")
	return strings.TrimPrefix(label, "dados_saude_")
}

func readExtract(path string) (*domain.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dataprocessing.ParseCSV(data)
}
