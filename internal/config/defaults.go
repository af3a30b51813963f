// Package config provides internal configuration loading and processing.
package config

import (
	"github.com/smykla-skalski/benchtimer/pkg/config"
)

const (
	// DefaultRuns is the number of runs averaged per command.
	DefaultRuns = 1

	// DefaultUnit is the reporting period.
	DefaultUnit = "ms"

	// DefaultLabel is the text report prefix.
	DefaultLabel = "{command}: "

	// DefaultEncoding is the text report encoding.
	DefaultEncoding = "utf8"

	// DefaultLogLevel is the diagnostic log level.
	DefaultLogLevel = "error"
)

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *config.Config {
	return &config.Config{
		Version: config.CurrentConfigVersion,
		Bench:   DefaultBenchConfig(),
		Report:  DefaultReportConfig(),
		Log:     DefaultLogConfig(),
	}
}

// DefaultBenchConfig returns the default bench configuration.
func DefaultBenchConfig() *config.BenchConfig {
	return &config.BenchConfig{
		Runs:           DefaultRuns,
		Unit:           DefaultUnit,
		Representation: config.RepresentationFloat64,
	}
}

// DefaultReportConfig returns the default report configuration.
func DefaultReportConfig() *config.ReportConfig {
	newline := true
	color := true
	host := true

	return &config.ReportConfig{
		Format:   config.FormatText,
		Label:    DefaultLabel,
		Encoding: DefaultEncoding,
		Newline:  &newline,
		Color:    &color,
		Host:     &host,
	}
}

// DefaultLogConfig returns the default log configuration.
func DefaultLogConfig() *config.LogConfig {
	return &config.LogConfig{
		Level: DefaultLogLevel,
	}
}

// defaultsToMap converts the defaults to a map for koanf loading.
func defaultsToMap() map[string]any {
	return map[string]any{
		"version": config.CurrentConfigVersion,
		"bench": map[string]any{
			"runs":           DefaultRuns,
			"unit":           DefaultUnit,
			"representation": config.RepresentationFloat64.String(),
		},
		"report": map[string]any{
			"format":   config.FormatText.String(),
			"label":    DefaultLabel,
			"encoding": DefaultEncoding,
			"newline":  true,
			"color":    true,
			"host":     true,
		},
		"log": map[string]any{
			"level": DefaultLogLevel,
		},
	}
}
