// =============================================================================
// Property CSV Mapper - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. The tool is
// designed to run with zero configuration: every setting has a sensible
// default, and a missing config file simply yields the defaults.
//
// CONFIGURATION SOURCES (highest precedence last):
//   1. Built-in defaults
//   2. config.yaml (or the file named by --config)
//   3. Command-line flags on the process command
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// OutputDir is the directory where generated CSV files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where processed input files are moved
	// when ArchiveInputs is enabled.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveInputs moves the input file into ArchiveDir after a
	// successful run. Failed runs leave the input file in place.
	// Default: false
	ArchiveInputs bool `yaml:"archive_inputs"`

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Dedup contains the duplicate-removal settings.
	Dedup DedupSettings `yaml:"dedup"`

	// CSV contains settings for parsing the input CSV file.
	CSV CSVSettings `yaml:"csv_settings"`

	// Mapping overrides the built-in column mapping.
	Mapping MappingSettings `yaml:"mapping"`
}

// DedupSettings controls the owner/mailing-address duplicate removal pass.
type DedupSettings struct {
	// Disabled skips the deduplication pass entirely; the output then
	// contains one row per input row.
	// Default: false
	Disabled bool `yaml:"disabled"`
}

// CSVSettings contains settings for parsing the input CSV file.
type CSVSettings struct {
	// Delimiter is the field separator. Accepts a literal character or
	// the names "tab", "pipe", "semicolon".
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRows is the number of header rows. Multi-row headers are
	// merged column-wise with a space.
	// Default: 1
	HeaderRows int `yaml:"header_rows"`

	// DataStartRow is the 1-indexed row where data begins.
	// Default: HeaderRows + 1
	DataStartRow int `yaml:"data_start_row"`
}

// MappingSettings selects the column mapping for the run. When both fields
// are empty the built-in property-owner mapping is used. XLSXFile wins over
// Pairs when both are set.
type MappingSettings struct {
	// XLSXFile is the path to a mapping workbook (MAP.xlsx style:
	// column A = source header, column B = target header, one header row).
	XLSXFile string `yaml:"xlsx_file"`

	// Pairs is an inline ordered mapping.
	Pairs []PairSetting `yaml:"pairs"`
}

// PairSetting is one inline (source, target) mapping entry.
type PairSetting struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults, and
// validates the result. A missing file is not an error: the defaults are
// returned so the tool works out of the box.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file; run on defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.CSV.Delimiter == "" {
		cfg.CSV.Delimiter = ","
	}
	if cfg.CSV.HeaderRows == 0 {
		cfg.CSV.HeaderRows = 1
	}
	if cfg.CSV.DataStartRow == 0 {
		cfg.CSV.DataStartRow = cfg.CSV.HeaderRows + 1
	}
}

// validate checks the configuration for values the pipeline cannot work with.
func validate(cfg *Config) error {
	if cfg.CSV.HeaderRows < 1 {
		return fmt.Errorf("csv_settings.header_rows must be at least 1")
	}
	if cfg.CSV.DataStartRow <= cfg.CSV.HeaderRows {
		return fmt.Errorf("csv_settings.data_start_row must be greater than header_rows")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", cfg.LogLevel)
	}

	for i, pair := range cfg.Mapping.Pairs {
		if pair.Source == "" || pair.Target == "" {
			return fmt.Errorf("mapping.pairs[%d]: source and target must both be set", i)
		}
	}

	return nil
}
