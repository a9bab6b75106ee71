// Package config provides configuration management for GNlichen.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use GNLICHEN_ prefix with underscores for nesting:
//
//	GNLICHEN_DECODE_NAME_COLUMN=Name
//	GNLICHEN_LOG_LEVEL=info
//	GNLICHEN_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete GNlichen configuration.
type Config struct {
	// Decode contains settings for codename resolution and the
	// fill-only join.
	Decode DecodeConfig `mapstructure:"decode" yaml:"decode"`

	// Clean contains settings for dataset filtering and binning.
	Clean CleanConfig `mapstructure:"clean" yaml:"clean"`

	// Baseline contains settings for the majority-class report.
	Baseline BaselineConfig `mapstructure:"baseline" yaml:"baseline"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations such as collision-group resolution. Default value is
	// set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories
	// reside. It must be set by CLI during init, there is no default
	// value for it.
	HomeDir string
}

// DecodeConfig contains settings for the decode command.
type DecodeConfig struct {
	// ReferenceFile is the taxonomic reference table (plant list) with
	// one free-text scientific name per row.
	ReferenceFile string `mapstructure:"reference_file" yaml:"reference_file"`

	// TargetFile is the observation table whose blank name fields are
	// filled from the codename mapping.
	TargetFile string `mapstructure:"target_file" yaml:"target_file"`

	// OutputFile receives the augmented target table.
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`

	// ReferenceNameColumn locates the scientific-name column of the
	// reference table by case-insensitive substring.
	ReferenceNameColumn string `mapstructure:"reference_name_column" yaml:"reference_name_column"`

	// CodeColumn locates the codename lookup column of the target table.
	CodeColumn string `mapstructure:"code_column" yaml:"code_column"`

	// NameColumn locates the name column of the target table. Only
	// blank cells of this column are ever written.
	NameColumn string `mapstructure:"name_column" yaml:"name_column"`

	// WithVerify enables the gnparser cross-check of reconstructed
	// names. Runtime-only, set by the --verify flag.
	WithVerify bool

	// SQLiteFile, when non-empty, is the path of an additional SQLite
	// export of the mapping and the augmented table. Runtime-only.
	SQLiteFile string
}

// CleanConfig contains settings for the clean command.
type CleanConfig struct {
	// InputFile is the raw element-analysis table.
	InputFile string `mapstructure:"input_file" yaml:"input_file"`

	// OutputFile receives the filtered, binned table.
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`

	// Elements are the tissue concentration columns to keep and bin,
	// matched by substring ("nitrogen" finds "Nitrogen mg/kg dw").
	Elements []string `mapstructure:"elements" yaml:"elements"`

	// NumericColumns are additional numeric columns to filter and bin.
	NumericColumns []string `mapstructure:"numeric_columns" yaml:"numeric_columns"`

	// CategoryColumns are non-numeric columns that must be present in
	// every kept row.
	CategoryColumns []string `mapstructure:"category_columns" yaml:"category_columns"`
}

// BaselineConfig contains settings for the baseline command.
type BaselineConfig struct {
	// InputFile is the cleaned dataset the baseline is computed from.
	InputFile string `mapstructure:"input_file" yaml:"input_file"`

	// ScoreColumn locates the air pollution score column by substring.
	ScoreColumn string `mapstructure:"score_column" yaml:"score_column"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Decode: DecodeConfig{
			ReferenceFile:       "plantlist.csv",
			TargetFile:          "air_lichen_query.csv",
			OutputFile:          "air_lichen_scinames.csv",
			ReferenceNameColumn: "Scientific Name with Author",
			CodeColumn:          "Code for scientific name",
			NameColumn:          "Name",
		},
		Clean: CleanConfig{
			InputFile:  "air_lichen_query.csv",
			OutputFile: "element_analysis.csv",
			Elements: []string{
				"nitrogen", "sulfur", "phosphorous",
				"lead", "copper", "chromium",
			},
			NumericColumns: []string{
				"Year of tissue collection",
				"Air pollution score",
			},
			CategoryColumns: []string{
				"region",
				"Code for scientific name",
			},
		},
		Baseline: BaselineConfig{
			InputFile:   "element_analysis.csv",
			ScoreColumn: "air pollution",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
