// Package bench runs command lines repeatedly and averages their wall time.
package bench

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/benchtimer/internal/exec"
	"github.com/smykla-skalski/benchtimer/pkg/config"
	"github.com/smykla-skalski/benchtimer/pkg/logger"
	"github.com/smykla-skalski/benchtimer/pkg/period"
	"github.com/smykla-skalski/benchtimer/pkg/timer"
)

// ErrNoCommands is returned when RunAll gets nothing to run.
var ErrNoCommands = errors.New("no commands to benchmark")

// Settings controls a benchmark.
type Settings struct {
	Runs           int
	Period         period.Period
	Representation config.Representation
}

// SettingsFromConfig resolves the bench section of a loaded config.
func SettingsFromConfig(cfg *config.BenchConfig) (Settings, error) {
	if cfg == nil {
		cfg = &config.BenchConfig{}
	}

	unit := cfg.Unit
	if unit == "" {
		unit = "ms"
	}

	p, err := period.Parse(unit)
	if err != nil {
		return Settings{}, err
	}

	runs := cfg.Runs
	if runs == 0 {
		runs = 1
	}

	return Settings{
		Runs:           runs,
		Period:         p,
		Representation: cfg.Representation,
	}, nil
}

// Result is the averaged measurement of one command line.
type Result struct {
	Command string        `json:"command"  yaml:"command"`
	Argv    []string      `json:"argv"     yaml:"argv"`
	Runs    int           `json:"runs"     yaml:"runs"`
	Mean    string        `json:"mean"     yaml:"mean"`
	Value   float64       `json:"value"    yaml:"value"`
	Unit    string        `json:"unit"     yaml:"unit"`
	Period  string        `json:"period"   yaml:"period"`
	Seconds float64       `json:"seconds"  yaml:"seconds"`
	Wall    time.Duration `json:"wall_ns"  yaml:"wall"`
}

// Runner benchmarks command lines.
type Runner struct {
	commands exec.CommandRunner
	tools    exec.ToolChecker
	log      logger.Logger
	clock    timer.Clock
}

// Option configures a Runner.
type Option func(*Runner)

// WithCommandRunner sets the runner used to execute commands.
func WithCommandRunner(cr exec.CommandRunner) Option {
	return func(r *Runner) {
		if cr != nil {
			r.commands = cr
		}
	}
}

// WithToolChecker sets the PATH lookup used before a command is run.
func WithToolChecker(tc exec.ToolChecker) Option {
	return func(r *Runner) {
		if tc != nil {
			r.tools = tc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// WithClock sets the clock every measurement reads.
func WithClock(c timer.Clock) Option {
	return func(r *Runner) {
		if c != nil {
			r.clock = c
		}
	}
}

// NewRunner creates a Runner executing real processes.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		commands: exec.NewCommandRunner(),
		tools:    exec.NewToolChecker(),
		log:      logger.NewNoOpLogger(),
		clock:    timer.SystemClock{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RunAll benchmarks every line in order and stops at the first failure.
func (r *Runner) RunAll(ctx context.Context, lines []string, s Settings) ([]*Result, error) {
	if len(lines) == 0 {
		return nil, ErrNoCommands
	}

	results := make([]*Result, 0, len(lines))

	for _, line := range lines {
		res, err := r.Run(ctx, line, s)
		if err != nil {
			return results, err
		}

		results = append(results, res)
	}

	return results, nil
}

// Run benchmarks one command line: it is executed s.Runs times and the mean
// wall time is reported in s.Period. A failing run aborts the benchmark.
func (r *Runner) Run(ctx context.Context, line string, s Settings) (*Result, error) {
	argv, err := exec.Split(line)
	if err != nil {
		return nil, err
	}

	path, err := r.tools.Lookup(argv[0])
	if err != nil {
		return nil, errors.Wrapf(err, "benchmarking %q", line)
	}

	log := r.log.With("command", line)
	log.Debug("benchmarking", "argv", argv, "path", path, "runs", s.Runs, "period", s.Period.String())

	run := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}

		res := r.commands.Run(ctx, argv[0], argv[1:]...)
		if res.Err != nil {
			log.Debug("run failed", "exit", res.ExitCode, "stderr", res.Stderr)
		}

		return res.Err
	}

	wall := timer.New[int64](period.Nano, timer.WithClock(r.clock))

	res := &Result{Command: line, Argv: argv, Runs: s.Runs}

	switch s.Representation {
	case config.RepresentationInt64:
		err = average[int64](res, s, run, r.clock)
	default:
		err = average[float64](res, s, run, r.clock)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "benchmarking %q", line)
	}

	res.Wall = time.Duration(wall.Elapsed())

	log.Info("benchmarked", "mean", res.Mean+res.Unit, "wall", res.Wall.String())

	return res, nil
}

func average[R timer.Number](res *Result, s Settings, fn func() error, clock timer.Clock) error {
	d, err := timer.AverageDuration[R](s.Period, s.Runs, fn, timer.WithClock(clock))
	if err != nil {
		return err
	}

	res.Mean = timer.FormatCount(d.Count)
	res.Value = float64(d.Count)
	res.Unit = d.Label()
	res.Period = d.Period.String()
	res.Seconds = d.Seconds()

	return nil
}
