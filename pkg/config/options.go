package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDecodeReferenceFile sets the path of the taxonomic reference table.
func OptDecodeReferenceFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Decode Reference File", s) {
			c.Decode.ReferenceFile = s
		}
	}
}

// OptDecodeTargetFile sets the path of the target observation table.
func OptDecodeTargetFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Decode Target File", s) {
			c.Decode.TargetFile = s
		}
	}
}

// OptDecodeOutputFile sets the path of the augmented output table.
func OptDecodeOutputFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Decode Output File", s) {
			c.Decode.OutputFile = s
		}
	}
}

// OptDecodeReferenceNameColumn sets the substring that locates the
// scientific-name column of the reference table.
func OptDecodeReferenceNameColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference Name Column", s) {
			c.Decode.ReferenceNameColumn = s
		}
	}
}

// OptDecodeCodeColumn sets the substring that locates the codename
// lookup column of the target table.
func OptDecodeCodeColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Code Column", s) {
			c.Decode.CodeColumn = s
		}
	}
}

// OptDecodeNameColumn sets the substring that locates the name column
// of the target table.
func OptDecodeNameColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Name Column", s) {
			c.Decode.NameColumn = s
		}
	}
}

// OptDecodeWithVerify enables the gnparser cross-check of
// reconstructed names. Runtime-only field - not in ToOptions().
func OptDecodeWithVerify(b bool) Option {
	return func(c *Config) {
		c.Decode.WithVerify = b
	}
}

// OptDecodeSQLiteFile sets the path of the optional SQLite export.
// Runtime-only field - not in ToOptions().
func OptDecodeSQLiteFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Decode.SQLiteFile = s
	}
}

// OptCleanInputFile sets the path of the raw element-analysis table.
func OptCleanInputFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Clean Input File", s) {
			c.Clean.InputFile = s
		}
	}
}

// OptCleanOutputFile sets the path of the cleaned, binned table.
func OptCleanOutputFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Clean Output File", s) {
			c.Clean.OutputFile = s
		}
	}
}

// OptCleanElements sets the element columns to keep and bin.
func OptCleanElements(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Clean.Elements = ss
		}
	}
}

// OptCleanNumericColumns sets the additional numeric columns to
// filter and bin.
func OptCleanNumericColumns(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Clean.NumericColumns = ss
		}
	}
}

// OptCleanCategoryColumns sets the non-numeric columns that must be
// present in every kept row.
func OptCleanCategoryColumns(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Clean.CategoryColumns = ss
		}
	}
}

// OptBaselineInputFile sets the dataset the baseline is computed from.
func OptBaselineInputFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Baseline Input File", s) {
			c.Baseline.InputFile = s
		}
	}
}

// OptBaselineScoreColumn sets the substring that locates the air
// pollution score column.
func OptBaselineScoreColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Baseline Score Column", s) {
			c.Baseline.ScoreColumn = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel
// operations. Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log
// locations. Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
