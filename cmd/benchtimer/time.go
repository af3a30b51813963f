package main

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smykla-skalski/benchtimer/internal/bench"
	"github.com/smykla-skalski/benchtimer/internal/exec"
	"github.com/smykla-skalski/benchtimer/internal/report"
	"github.com/smykla-skalski/benchtimer/pkg/autotimer"
	"github.com/smykla-skalski/benchtimer/pkg/config"
	"github.com/smykla-skalski/benchtimer/pkg/units"
)

var timeCmd = &cobra.Command{
	Use:   "time [flags] <command> [args...]",
	Short: "Run a command once and report its wall time",
	Long: `Run a command once and write "label elapsed unit" to stderr when it exits.

The report is written whether the command succeeds or fails. The command's
own output is passed through after the measurement.

Examples:
  benchtimer time sleep 1
  benchtimer time -u us --label 'ls took ' ls -la`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTime,
}

func init() {
	rootCmd.AddCommand(timeCmd)

	timeCmd.Flags().SetInterspersed(false)
	timeCmd.Flags().StringVarP(&unitFlag, "unit", "u", "ms", `Reporting unit: suffix ("ms"), name ("milli") or ratio ("1/1000")`)
	timeCmd.Flags().StringVar(&representationFlag, "representation", "float64", "Tick type: float64 or int64")
	timeCmd.Flags().StringVar(&labelFlag, "label", "{command}: ", "Report prefix; {command} expands to the command line")
	timeCmd.Flags().StringVar(&encodingFlag, "encoding", "utf8", "Report encoding: utf8, utf16le, utf16be, utf32le or utf32be")
	timeCmd.Flags().BoolVar(&noNewlineFlag, "no-newline", false, "Do not end the report with a line break")
}

func runTime(cmd *cobra.Command, args []string) error {
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

	rc := cfg.GetReport()

	enc, err := units.ParseEncoding(rc.Encoding)
	if err != nil {
		return err
	}

	opts := []autotimer.Option{autotimer.WithEncoding(enc)}
	if rc.IsNewlineEnabled() {
		opts = append(opts, autotimer.WithNewline())
	}

	label := strings.ReplaceAll(rc.Label, report.CommandPlaceholder, strings.Join(args, " "))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := exec.NewCommandRunner()

	var res *exec.CommandResult

	fn := func() error {
		res = runner.RunWithStdin(ctx, cmd.InOrStdin(), args[0], args[1:]...)

		return res.Err
	}

	log.Debug("timing", "argv", args, "period", settings.Period.String())

	sink := cmd.ErrOrStderr()

	if settings.Representation == config.RepresentationInt64 {
		err = autotimer.Scope[int64](sink, label, settings.Period, fn, opts...)
	} else {
		err = autotimer.Scope[float64](sink, label, settings.Period, fn, opts...)
	}

	if res != nil {
		_, _ = io.WriteString(cmd.OutOrStdout(), res.Stdout)
		_, _ = io.WriteString(cmd.ErrOrStderr(), res.Stderr)
	}

	return err
}
