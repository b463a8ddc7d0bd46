package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/cnjsaude.log"`
}

// PathsConfig contains the directory layout the pipeline reads from and
// writes to. Relative entries are resolved against the working directory
// by ResolvePaths.
type PathsConfig struct {
	DataDir     string `yaml:"data_dir" envconfig:"DATA_DIR" default:"AnaliseBR" validate:"required"`
	FilteredDir string `yaml:"filtered_dir" envconfig:"FILTERED_DIR" default:"Output_AnaliseBR_Saude" validate:"required"`
	ReportsDir  string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"Output_reports" validate:"required"`
	LogsDir     string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs" validate:"required"`
}

// AnalysisConfig tunes the report stage.
type AnalysisConfig struct {
	TopN           int  `yaml:"top_n" envconfig:"TOP_N" default:"10" validate:"min=1"`
	IncludeRegions bool `yaml:"include_regions" envconfig:"INCLUDE_REGIONS" default:"true"`
}

// Load loads configuration from environment variables and an optional
// config.yaml, env taking precedence, and validates the result.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CNJ", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile := findConfigFile(); configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence:
// an env field left at its zero value falls back to the file value).
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Paths.DataDir == "" {
		envConfig.Paths.DataDir = fileConfig.Paths.DataDir
	}
	if envConfig.Paths.FilteredDir == "" {
		envConfig.Paths.FilteredDir = fileConfig.Paths.FilteredDir
	}
	if envConfig.Paths.ReportsDir == "" {
		envConfig.Paths.ReportsDir = fileConfig.Paths.ReportsDir
	}
	if envConfig.Paths.LogsDir == "" {
		envConfig.Paths.LogsDir = fileConfig.Paths.LogsDir
	}
	if envConfig.Analysis.TopN == 0 {
		envConfig.Analysis.TopN = fileConfig.Analysis.TopN
	}

	return envConfig
}

// validate validates the configuration using struct tags.
func (c *Config) validate() error {
	if c.Analysis.TopN == 0 {
		c.Analysis.TopN = DefaultTopN
	}
	return validator.New().Struct(c)
}

// findConfigFile returns the path of the first config file found in the
// common locations, or "" to use env vars only.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "both",
			FilePath: "logs/cnjsaude.log",
		},
		Paths: PathsConfig{
			DataDir:     "AnaliseBR",
			FilteredDir: "Output_AnaliseBR_Saude",
			ReportsDir:  "Output_reports",
			LogsDir:     "logs",
		},
		Analysis: AnalysisConfig{
			TopN:           DefaultTopN,
			IncludeRegions: true,
		},
	}
}
