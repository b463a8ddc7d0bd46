package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"cnjsaude/internal/errors"
	"cnjsaude/pkg/contracts/domain"
)

// Report table column headers, matching the published analysis layout.
var reportHeader = []string{"Item", "Contagem", "Percentual"}

// Subset display titles used in section headings and sheet content.
var subsetTitles = map[domain.Subset]string{
	domain.SubsetAll:          "Todos os processos",
	domain.SubsetPublicEntity: "Polo passivo ente publico",
}

// ReportSink renders frequency tables into the report outputs: a
// combined sectioned CSV and a workbook with one sheet per analysis
// context.
type ReportSink struct {
	logger *slog.Logger
	writer *CSVWriter
	topN   int
}

// NewReportSink creates a report sink. topN bounds how many distinct
// values are listed per table before the remainder is aggregated.
func NewReportSink(logger *slog.Logger, writer *CSVWriter, topN int) *ReportSink {
	if logger == nil {
		logger = slog.Default()
	}
	if topN <= 0 {
		topN = 10
	}
	return &ReportSink{logger: logger, writer: writer, topN: topN}
}

// FormatTable renders a frequency table as report rows: the top-N
// values, an aggregate row for the remainder, a confidential row when
// sealed cases were counted, and a grand total.
func (s *ReportSink) FormatTable(table *domain.FrequencyTable) [][]string {
	rows := make([][]string, 0, s.topN+3)

	shown := table.Entries
	var rest []domain.FrequencyEntry
	if len(shown) > s.topN {
		rest = shown[s.topN:]
		shown = shown[:s.topN]
	}

	for _, entry := range shown {
		rows = append(rows, []string{entry.Value, formatInt(entry.Count), formatPercent(entry.Percent)})
	}

	if len(rest) > 0 {
		restCount := 0
		for _, entry := range rest {
			restCount += entry.Count
		}
		rows = append(rows, []string{
			fmt.Sprintf("Outros (%d itens)", len(rest)),
			formatInt(restCount),
			formatPercent(percentOf(restCount, table.Total)),
		})
	}

	if table.Confidential > 0 {
		rows = append(rows, []string{
			"Sigiloso",
			formatInt(table.Confidential),
			formatPercent(percentOf(table.Confidential, table.Total)),
		})
	}

	rows = append(rows, []string{"TOTAL GERAL", formatInt(table.Total), formatPercent(100)})
	return rows
}

// WriteCombinedCSV writes all tables into one sectioned CSV. Tables
// are grouped by context in input order; within a context the subset
// title and column name introduce each table.
func (s *ReportSink) WriteCombinedCSV(ctx context.Context, path string, tables []*domain.FrequencyTable) error {
	var records [][]string
	lastContext := ""
	lastSubset := domain.Subset("")

	for _, table := range tables {
		if table.Context != lastContext {
			if lastContext != "" {
				records = append(records, []string{""})
			}
			records = append(records, []string{fmt.Sprintf("=== %s ===", table.Context)})
			lastContext = table.Context
			lastSubset = ""
		}
		if table.Subset != lastSubset {
			records = append(records, []string{fmt.Sprintf("** %s **", subsetTitles[table.Subset])})
			lastSubset = table.Subset
		}

		records = append(records, []string{fmt.Sprintf("--- Coluna: %s ---", table.Column)})
		records = append(records, reportHeader)
		records = append(records, s.FormatTable(table)...)
		records = append(records, []string{""})
	}

	if err := s.writer.WriteRecords(path, nil, records); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "wrote combined report CSV",
		slog.String("path", path),
		slog.Int("tables", len(tables)))
	return nil
}

// WriteTableCSVs writes each table as its own CSV inside dir, named
// from the base name plus the table's context, subset and column. It
// returns the paths written.
func (s *ReportSink) WriteTableCSVs(ctx context.Context, dir, baseName string, tables []*domain.FrequencyTable) ([]string, error) {
	written := make([]string, 0, len(tables))
	for _, table := range tables {
		name := fmt.Sprintf("%s_%s_%s_%s.csv",
			baseName, slugify(table.Context), table.Subset, slugify(table.Column))
		path := filepath.Join(dir, name)

		if err := s.writer.WriteRecords(path, reportHeader, s.FormatTable(table)); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	s.logger.InfoContext(ctx, "wrote per-table report CSVs",
		slog.String("dir", dir),
		slog.Int("count", len(written)))
	return written, nil
}

// slugify lowers a label and collapses anything outside [a-z0-9] into
// single underscores, for use in file names.
func slugify(label string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// WriteWorkbook writes all tables into a workbook with one sheet per
// analysis context. Each sheet stacks the tables for that context in
// input order, with subset and column headings between them.
func (s *ReportSink) WriteWorkbook(ctx context.Context, path string, tables []*domain.FrequencyTable) error {
	f := excelize.NewFile()
	defer f.Close()

	byContext := make(map[string][]*domain.FrequencyTable)
	var order []string
	for _, table := range tables {
		if _, seen := byContext[table.Context]; !seen {
			order = append(order, table.Context)
		}
		byContext[table.Context] = append(byContext[table.Context], table)
	}

	for i, contextLabel := range order {
		sheet := sheetName(contextLabel)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return errors.NewStorageError("failed to rename workbook sheet", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return errors.NewStorageError("failed to create workbook sheet "+sheet, err)
			}
		}
		if err := s.writeSheet(f, sheet, byContext[contextLabel]); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save workbook at "+path, err)
	}

	s.logger.InfoContext(ctx, "wrote report workbook",
		slog.String("path", path),
		slog.Int("sheets", len(order)))
	return nil
}

func (s *ReportSink) writeSheet(f *excelize.File, sheet string, tables []*domain.FrequencyTable) error {
	row := 1
	lastSubset := domain.Subset("")

	for _, table := range tables {
		if table.Subset != lastSubset {
			if lastSubset != "" {
				row++
			}
			if err := setRow(f, sheet, row, []string{subsetTitles[table.Subset]}); err != nil {
				return err
			}
			row += 2
			lastSubset = table.Subset
		}

		if err := setRow(f, sheet, row, []string{table.Column}); err != nil {
			return err
		}
		row++
		if err := setRow(f, sheet, row, reportHeader); err != nil {
			return err
		}
		row++
		for _, record := range s.FormatTable(table) {
			if err := setRow(f, sheet, row, record); err != nil {
				return err
			}
			row++
		}
		row++
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return errors.NewStorageError("invalid workbook coordinates", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return errors.NewStorageError("failed to set workbook cell "+cell, err)
		}
	}
	return nil
}

// sheetName trims a context label to the workbook sheet name limit.
func sheetName(label string) string {
	const maxSheetName = 31
	if len(label) > maxSheetName {
		return label[:maxSheetName]
	}
	return label
}

// percentOf mirrors the rounding used when frequency tables are built.
func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*10000) / 100
}
