// Package exporter persists pipeline outputs: per-source filtered
// extracts, the consolidated national extract, and the frequency
// analysis reports (sectioned CSV and workbook). All CSV output uses
// the semicolon dialect of the source exports and is written through
// a temp-file-then-rename step.
package exporter
