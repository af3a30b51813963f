package config

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/benchtimer/pkg/config"
	"github.com/smykla-skalski/benchtimer/pkg/logger"
	"github.com/smykla-skalski/benchtimer/pkg/period"
	"github.com/smykla-skalski/benchtimer/pkg/units"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRuns is returned when the run count is not positive.
	ErrInvalidRuns = errors.New("runs must be at least 1")

	// ErrUnsupportedVersion is returned for config versions newer than this binary.
	ErrUnsupportedVersion = errors.New("unsupported config version")
)

// fieldCheck validates one config key. It returns nil when the key's
// section is absent.
type fieldCheck struct {
	key   string
	check func(cfg *config.Config) error
}

var fieldChecks = []fieldCheck{
	{"version", func(cfg *config.Config) error {
		if cfg.Version > config.CurrentConfigVersion {
			return errors.Wrapf(ErrUnsupportedVersion, "%d, latest is %d", cfg.Version, config.CurrentConfigVersion)
		}

		return nil
	}},
	{"bench.runs", func(cfg *config.Config) error {
		if cfg.Bench != nil && cfg.Bench.Runs < 1 {
			return errors.Wrapf(ErrInvalidRuns, "got %d", cfg.Bench.Runs)
		}

		return nil
	}},
	{"bench.unit", func(cfg *config.Config) error {
		if cfg.Bench == nil {
			return nil
		}

		_, err := period.Parse(cfg.Bench.Unit)

		return err
	}},
	{"bench.representation", func(cfg *config.Config) error {
		if cfg.Bench != nil && !cfg.Bench.Representation.IsARepresentation() {
			return errors.Wrapf(config.ErrInvalidRepresentation, "%d", int(cfg.Bench.Representation))
		}

		return nil
	}},
	{"report.format", func(cfg *config.Config) error {
		if cfg.Report != nil && !cfg.Report.Format.IsAFormat() {
			return errors.Wrapf(config.ErrInvalidFormat, "%d", int(cfg.Report.Format))
		}

		return nil
	}},
	{"report.encoding", func(cfg *config.Config) error {
		if cfg.Report == nil {
			return nil
		}

		_, err := units.ParseEncoding(cfg.Report.Encoding)

		return err
	}},
	{"log.level", func(cfg *config.Config) error {
		if cfg.Log == nil {
			return nil
		}

		_, err := logger.ParseLevel(cfg.Log.Level)

		return err
	}},
}

// Validator checks the merged configuration before it is used.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs every field check and reports all failures at once. The
// result matches ErrInvalidConfig and each underlying cause with errors.Is.
func (*Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.WithMessage(ErrInvalidConfig, "config is nil")
	}

	var errs []error

	for _, fc := range fieldChecks {
		if err := fc.check(cfg); err != nil {
			errs = append(errs, errors.Wrap(err, fc.key))
		}
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errors.Mark(errors.Wrap(errs[0], "1 invalid setting"), ErrInvalidConfig)
	default:
		return errors.Mark(errors.Wrapf(errors.Join(errs...), "%d invalid settings", len(errs)), ErrInvalidConfig)
	}
}
