// Package config provides configuration schema types for benchtimer.
package config

// CurrentConfigVersion is the latest config schema version.
const CurrentConfigVersion = 1

// Config represents the root configuration for benchtimer.
type Config struct {
	// Version is the config schema version. Defaults to 1 when omitted.
	Version int `json:"version,omitempty" koanf:"version" toml:"version,omitempty"`

	// Bench controls how commands are measured.
	Bench *BenchConfig `json:"bench,omitempty" koanf:"bench" toml:"bench,omitempty"`

	// Report controls how measurements are printed.
	Report *ReportConfig `json:"report,omitempty" koanf:"report" toml:"report,omitempty"`

	// Log controls diagnostic logging.
	Log *LogConfig `json:"log,omitempty" koanf:"log" toml:"log,omitempty"`
}

// BenchConfig controls measurement.
type BenchConfig struct {
	// Runs is the number of independent runs averaged per command.
	// Default: 1
	Runs int `json:"runs,omitempty" koanf:"runs" toml:"runs,omitempty"`

	// Unit is the reporting period: a suffix ("ms"), a name ("milli") or a
	// ratio of seconds ("1/1000").
	// Default: "ms"
	Unit string `json:"unit,omitempty" koanf:"unit" toml:"unit,omitempty"`

	// Representation is the tick type: "float64" keeps fractions, "int64"
	// truncates toward zero.
	// Default: "float64"
	Representation Representation `json:"representation,omitempty" koanf:"representation" toml:"representation,omitempty"`
}

// ReportConfig controls output.
type ReportConfig struct {
	// Format is one of "text", "table", "json" or "yaml".
	// Default: "text"
	Format Format `json:"format,omitempty" koanf:"format" toml:"format,omitempty"`

	// Label prefixes every text report line. "{command}" expands to the command line.
	// Default: "{command}: "
	Label string `json:"label,omitempty" koanf:"label" toml:"label,omitempty"`

	// Encoding is the text encoding of text reports ("utf8", "utf16le", ...).
	// Default: "utf8"
	Encoding string `json:"encoding,omitempty" koanf:"encoding" toml:"encoding,omitempty"`

	// Newline terminates each text report with a line break.
	// Default: true
	Newline *bool `json:"newline,omitempty" koanf:"newline" toml:"newline,omitempty"`

	// Color enables styled table output on terminals.
	// Default: true
	Color *bool `json:"color,omitempty" koanf:"color" toml:"color,omitempty"`

	// Host adds a host summary (CPU model, cores, OS) above table reports.
	// Default: true
	Host *bool `json:"host,omitempty" koanf:"host" toml:"host,omitempty"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is "debug", "info" or "error".
	// Default: "error"
	Level string `json:"level,omitempty" koanf:"level" toml:"level,omitempty"`

	// File receives log lines instead of stderr when set.
	File string `json:"file,omitempty" koanf:"file" toml:"file,omitempty"`
}

// GetBench returns the bench config, creating it if it doesn't exist.
func (c *Config) GetBench() *BenchConfig {
	if c.Bench == nil {
		c.Bench = &BenchConfig{}
	}

	return c.Bench
}

// GetReport returns the report config, creating it if it doesn't exist.
func (c *Config) GetReport() *ReportConfig {
	if c.Report == nil {
		c.Report = &ReportConfig{}
	}

	return c.Report
}

// GetLog returns the log config, creating it if it doesn't exist.
func (c *Config) GetLog() *LogConfig {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}

	return c.Log
}

// IsNewlineEnabled returns whether text reports end with a line break.
func (r *ReportConfig) IsNewlineEnabled() bool {
	if r == nil || r.Newline == nil {
		return true
	}

	return *r.Newline
}

// IsColorEnabled returns whether table output may be styled.
func (r *ReportConfig) IsColorEnabled() bool {
	if r == nil || r.Color == nil {
		return true
	}

	return *r.Color
}

// IsHostEnabled returns whether the host summary is printed.
func (r *ReportConfig) IsHostEnabled() bool {
	if r == nil || r.Host == nil {
		return true
	}

	return *r.Host
}
