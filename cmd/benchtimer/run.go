package main

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/benchtimer/internal/bench"
	"github.com/smykla-skalski/benchtimer/internal/color"
	"github.com/smykla-skalski/benchtimer/internal/hostinfo"
	"github.com/smykla-skalski/benchtimer/internal/report"
	"github.com/smykla-skalski/benchtimer/pkg/config"
)

var (
	runsFlag           int
	unitFlag           string
	representationFlag string
	formatFlag         string
	labelFlag          string
	encodingFlag       string
	noNewlineFlag      bool
	noHostFlag         bool
)

var runCmd = &cobra.Command{
	Use:   "run [flags] <command line>...",
	Short: "Benchmark command lines",
	Long: `Run every command line --runs times and report the mean wall time.

Each argument is one command line. Simple commands are executed directly;
lines using pipes, lists, redirections or substitutions are run with sh -c.
A run that exits non-zero aborts the benchmark; commands measured before it
are still reported.

Examples:
  benchtimer run 'sleep 0.1'
  benchtimer run -n 10 -u us 'git status' 'git status --short'
  benchtimer run -f table 'ls | wc -l'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&runsFlag, "runs", "n", 1, "Number of runs averaged per command")
	runCmd.Flags().StringVarP(&unitFlag, "unit", "u", "ms", `Reporting unit: suffix ("ms"), name ("milli") or ratio ("1/1000")`)
	runCmd.Flags().StringVar(&representationFlag, "representation", "float64", "Tick type: float64 or int64")
	runCmd.Flags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text, table, json or yaml")
	runCmd.Flags().StringVar(&labelFlag, "label", "{command}: ", "Text report prefix; {command} expands to the command line")
	runCmd.Flags().StringVar(&encodingFlag, "encoding", "utf8", "Text report encoding: utf8, utf16le, utf16be, utf32le or utf32be")
	runCmd.Flags().BoolVar(&noNewlineFlag, "no-newline", false, "Do not end text report lines with a line break")
	runCmd.Flags().BoolVar(&noHostFlag, "no-host", false, "Omit the host summary")
}

// runFlags returns only the flags the user set, so config files and env
// vars are not shadowed by flag defaults.
func runFlags(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)
	set := cmd.Flags().Changed

	if set("runs") {
		flags["runs"] = runsFlag
	}

	if set("unit") {
		flags["unit"] = unitFlag
	}

	if set("representation") {
		flags["representation"] = representationFlag
	}

	if set("format") {
		flags["format"] = formatFlag
	}

	if set("label") {
		flags["label"] = labelFlag
	}

	if set("encoding") {
		flags["encoding"] = encodingFlag
	}

	if set("no-newline") {
		flags["newline"] = !noNewlineFlag
	}

	if set("no-host") {
		flags["host"] = !noHostFlag
	}

	return flags
}

func runRun(cmd *cobra.Command, args []string) error {
	phases := newPhaseTiming(cmd.ErrOrStderr())
	defer phases.start("total")()

	// Stops are idempotent; the deferred ones only fire on early returns.
	stopConfig := phases.start("config")
	defer stopConfig()

	cfg, err := loadConfig(runFlags(cmd))
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.GetLog())
	if err != nil {
		return err
	}
	defer closeLog()

	log.Debug("configuration loaded", "sources", strings.Join(configSources, ","))

	settings, err := bench.SettingsFromConfig(cfg.GetBench())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	opts, err := report.OptionsFromConfig(cfg.GetReport(), color.Enabled(out, noColorFlag))
	if err != nil {
		return err
	}

	renderer, err := report.New(cfg.GetReport().Format, opts)
	if err != nil {
		return err
	}

	stopConfig()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stopBench := phases.start("bench")
	defer stopBench()

	runner := bench.NewRunner(bench.WithLogger(log))

	// Commands measured before a failure are still reported.
	results, runErr := runner.RunAll(ctx, args, settings)

	stopBench()

	if len(results) == 0 {
		return runErr
	}

	rep := &report.Report{Results: results}

	if cfg.GetReport().Format != config.FormatText && cfg.GetReport().IsHostEnabled() {
		stopHost := phases.start("host")

		info, hostErr := hostinfo.Collect(ctx)
		if hostErr != nil {
			log.Debug("host probe incomplete", "error", hostErr)
		}

		stopHost()

		rep.Host = info
	}

	defer phases.start("render")()

	if err := renderer.Render(out, rep); err != nil {
		return errors.CombineErrors(runErr, errors.Wrap(err, "rendering report"))
	}

	return runErr
}
