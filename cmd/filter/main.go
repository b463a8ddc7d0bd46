package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cnjsaude/internal/config"
	"cnjsaude/internal/dataprocessing"
	"cnjsaude/internal/exporter"
	"cnjsaude/internal/files"
	"cnjsaude/internal/infrastructure"
)

func main() {
	dataDir := flag.String("data", "", "root directory holding one subdirectory per source group (defaults to configured data dir)")
	outDir := flag.String("out", "", "output directory for filtered extracts (defaults to configured filtered dir)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *outDir != "" {
		cfg.Paths.FilteredDir = *outDir
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
		cfg.Logging.FilePath = paths.GetLogPath("filter.log")
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())

	logger.InfoContext(ctx, "starting health litigation filter",
		slog.String("data_dir", paths.DataDir),
		slog.String("filtered_dir", paths.FilteredDir),
		slog.String("consolidated_csv", paths.ConsolidatedCSV))

	discovery := files.NewDiscovery(paths.DataDir, config.SourceGroups)
	groups, err := discovery.ListSourceGroups()
	if err != nil {
		logger.ErrorContext(ctx, "source discovery failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	totalArchives := 0
	for _, group := range groups {
		totalArchives += len(group.Archives)
	}
	fmt.Printf("Found %d archives across %d source groups\n", totalArchives, len(groups))

	filter := dataprocessing.NewSubjectFilter(logger, config.ColumnSubjectCodes, config.HealthSubjectCodes)
	projector := dataprocessing.NewColumnProjector(logger, config.ProjectedColumns)
	processor := dataprocessing.NewProcessor(logger, filter, projector)

	writer := exporter.NewCSVWriter(logger)
	regional := exporter.NewRegionalExporter(logger, writer, paths)
	consolidator := exporter.NewConsolidator(logger, writer)

	var stats dataprocessing.ProcessStats
	var written []string

	for _, group := range groups {
		fmt.Printf("Processing group %s: %d archives\n", group.Name, len(group.Archives))

		datasets := processor.ProcessGroup(ctx, group, &stats)
		groupPaths, err := regional.Export(ctx, datasets)
		if err != nil {
			logger.ErrorContext(ctx, "failed to write filtered extracts",
				slog.String("group", group.Name),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		written = append(written, groupPaths...)
	}

	merged, err := consolidator.Consolidate(ctx, written, paths.ConsolidatedCSV)
	if err != nil {
		logger.ErrorContext(ctx, "consolidation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "filter run complete",
		slog.Int("archives_read", stats.ArchivesRead),
		slog.Int("archives_skipped", stats.ArchivesSkipped),
		slog.Int("tables_read", stats.TablesRead),
		slog.Int("rows_read", stats.RowsRead),
		slog.Int("rows_retained", stats.RowsRetained),
		slog.Int("rows_skipped", stats.RowsSkipped),
		slog.Int("extracts_written", len(written)),
		slog.Int("consolidated_rows", merged.Len()))

	fmt.Printf("Retained %d of %d rows into %d extracts\n", stats.RowsRetained, stats.RowsRead, len(written))
	if stats.ArchivesSkipped > 0 {
		fmt.Printf("Skipped %d unreadable archives, see log for details\n", stats.ArchivesSkipped)
	}
	fmt.Printf("Consolidated extract: %s (%d rows)\n", paths.ConsolidatedCSV, merged.Len())
}
