package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, "AnaliseBR", cfg.Paths.DataDir)
	assert.Equal(t, "Output_AnaliseBR_Saude", cfg.Paths.FilteredDir)
	assert.Equal(t, "Output_reports", cfg.Paths.ReportsDir)
	assert.Equal(t, DefaultTopN, cfg.Analysis.TopN)
	assert.True(t, cfg.Analysis.IncludeRegions)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CNJ_LOGGING_LEVEL", "debug")
	t.Setenv("CNJ_PATHS_DATA_DIR", "/data/cnj")
	t.Setenv("CNJ_ANALYSIS_TOP_N", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/data/cnj", cfg.Paths.DataDir)
	assert.Equal(t, 5, cfg.Analysis.TopN)
}

func TestLoad_InvalidLevelRejected(t *testing.T) {
	t.Setenv("CNJ_LOGGING_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestMergeConfigs_EnvPrecedence(t *testing.T) {
	fileCfg := Config{
		Logging: LoggingConfig{Level: "warn", Output: "file"},
		Paths:   PathsConfig{DataDir: "from-file"},
	}
	envCfg := Config{
		Logging: LoggingConfig{Level: "debug"},
	}

	merged := mergeConfigs(fileCfg, envCfg)

	assert.Equal(t, "debug", merged.Logging.Level)
	assert.Equal(t, "file", merged.Logging.Output)
	assert.Equal(t, "from-file", merged.Paths.DataDir)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultTopN, cfg.Analysis.TopN)
}

func TestNewPaths_ResolvesRelativeEntries(t *testing.T) {
	cfg := Default()

	paths, err := NewPaths(cfg.Paths)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, "AnaliseBR"), paths.DataDir)
	assert.Equal(t, filepath.Join(wd, "Output_AnaliseBR_Saude"), paths.FilteredDir)
	assert.Equal(t, filepath.Join(wd, ConsolidatedFileName), paths.ConsolidatedCSV)
}

func TestNewPaths_KeepsAbsoluteEntries(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/srv/cnj/AnaliseBR"

	paths, err := NewPaths(cfg.Paths)
	require.NoError(t, err)

	assert.Equal(t, "/srv/cnj/AnaliseBR", paths.DataDir)
}

func TestPaths_EnsureOutputDirectories(t *testing.T) {
	base := t.TempDir()
	paths := &Paths{
		DataDir:     filepath.Join(base, "AnaliseBR"),
		FilteredDir: filepath.Join(base, "filtered"),
		ReportsDir:  filepath.Join(base, "reports"),
		LogsDir:     filepath.Join(base, "logs"),
	}

	require.NoError(t, paths.EnsureOutputDirectories())

	for _, dir := range []string{paths.FilteredDir, paths.ReportsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// The input root is never created implicitly.
	_, err := os.Stat(paths.DataDir)
	assert.True(t, os.IsNotExist(err))
}

func TestPaths_FileHelpers(t *testing.T) {
	paths := &Paths{
		FilteredDir: "/out/filtered",
		ReportsDir:  "/out/reports",
		LogsDir:     "/out/logs",
	}

	assert.Equal(t, "/out/filtered/a.csv", paths.GetFilteredPath("a.csv"))
	assert.Equal(t, "/out/reports/analise.xlsx", paths.GetReportPath("analise.xlsx"))
	assert.Equal(t, "/out/logs/filter.log", paths.GetLogPath("filter.log"))
}
