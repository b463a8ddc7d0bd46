package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all resolved filesystem locations the pipeline touches.
// This is the single source of truth for file paths: components receive
// a *Paths at construction and never consult ambient state.
type Paths struct {
	// DataDir is the root holding one subdirectory per source group.
	DataDir string
	// FilteredDir receives the per-source filtered extracts.
	FilteredDir string
	// ReportsDir receives the analysis CSV and workbook outputs.
	ReportsDir string
	// LogsDir receives application logs.
	LogsDir string

	// ConsolidatedCSV is the fixed-name national extract, written next
	// to the filtered directory.
	ConsolidatedCSV string
}

// NewPaths resolves the configured directory layout against the working
// directory. Relative entries stay relative to where the batch was
// launched, matching how the exports are laid out next to the binary.
func NewPaths(cfg PathsConfig) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	abs := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(wd, p)
	}

	filteredDir := abs(cfg.FilteredDir)

	return &Paths{
		DataDir:         abs(cfg.DataDir),
		FilteredDir:     filteredDir,
		ReportsDir:      abs(cfg.ReportsDir),
		LogsDir:         abs(cfg.LogsDir),
		ConsolidatedCSV: filepath.Join(filepath.Dir(filteredDir), ConsolidatedFileName),
	}, nil
}

// EnsureOutputDirectories creates the writable directories if missing.
// The data root is deliberately not created here: a missing input tree
// is a configuration error, not something to paper over.
func (p *Paths) EnsureOutputDirectories() error {
	for _, dir := range []string{p.FilteredDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetFilteredPath returns the path of a file inside the filtered-output
// directory.
func (p *Paths) GetFilteredPath(filename string) string {
	return filepath.Join(p.FilteredDir, filename)
}

// GetReportPath returns the path of a file inside the reports directory.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path of a file inside the logs directory.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
