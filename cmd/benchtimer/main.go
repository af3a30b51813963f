// Package main provides the CLI entry point for benchtimer.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/benchtimer/internal/config"
	"github.com/smykla-skalski/benchtimer/pkg/config"
	"github.com/smykla-skalski/benchtimer/pkg/logger"
)

const (
	// ExitCodeOK indicates success.
	ExitCodeOK = 0

	// ExitCodeError indicates a failed command or benchmark.
	ExitCodeError = 1

	// ExitCodeCrash reports a panic.
	ExitCodeCrash = 3
)

var (
	configPath  string
	verboseMode bool
	traceMode   bool
	logFile     string
	noColorFlag bool
)

func main() {
	os.Exit(mainWithExitCode())
}

// mainWithExitCode runs the root command. A panic anywhere below is
// reported with the build version and turned into ExitCodeCrash.
func mainWithExitCode() (exitCode int) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		fmt.Fprintf(os.Stderr, "benchtimer %s crashed: %v\n\n%s", displayVersion(), r, debug.Stack())

		exitCode = ExitCodeCrash
	}()

	err := rootCmd.Execute()
	if err == nil {
		return ExitCodeOK
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	return ExitCodeError
}

var rootCmd = &cobra.Command{
	Use:   "benchtimer",
	Short: "Time and benchmark commands",
	Long: `benchtimer measures how long commands take.

"benchtimer time" runs one command once and reports its wall time, like the
shell's time builtin. "benchtimer run" runs one or more command lines several
times each and reports the mean in a chosen unit and format.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to configuration file (default: .benchtimer/config.toml or benchtimer.toml)",
	)
	rootCmd.PersistentFlags().BoolVar(&verboseMode, "verbose", false, "Enable info logging")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append log lines to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// configSources lists the layers merged by the last loadConfig call.
var configSources []string

// loadConfig merges defaults, files, env and the flags the user set.
func loadConfig(flags map[string]any) (*config.Config, error) {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		loader.WithConfigFile(configPath)
	}

	if noColorFlag {
		flags["color"] = false
	}

	if verboseMode || traceMode {
		flags["log-level"] = logger.LevelFromFlags(verboseMode, traceMode).String()
	}

	if logFile != "" {
		flags["log-file"] = logFile
	}

	cfg, err := loader.Load(flags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	configSources = loader.Sources()

	return cfg, nil
}

// newLogger builds the logger described by the log section. The returned
// close function must be called before exit.
func newLogger(cfg *config.LogConfig) (logger.Logger, func(), error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	if cfg.File == "" {
		return logger.New(os.Stderr, level), func() {}, nil
	}

	log, err := logger.NewFileLogger(cfg.File, level)
	if err != nil {
		return nil, nil, err
	}

	return log, func() { _ = log.Close() }, nil
}
