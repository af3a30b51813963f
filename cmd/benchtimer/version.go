package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

const shortCommitLength = 12

// Build information set by ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	// versionRequested is set by the --version/-v flag.
	versionRequested bool
	versionShort     bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), displayVersion())

			return
		}

		writeVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().BoolVarP(&versionRequested, "version", "v", false, "Print version information")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

func checkVersionFlag() {
	if versionRequested {
		writeVersion(os.Stdout)
		os.Exit(ExitCodeOK)
	}
}

func writeVersion(w io.Writer) {
	fmt.Fprintf(w, "benchtimer %s\n", displayVersion())
	fmt.Fprintf(w, "  commit:    %s\n", buildCommit())
	fmt.Fprintf(w, "  built:     %s\n", date)
	fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
	fmt.Fprintf(w, "  os/arch:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// displayVersion prints release versions as "vMAJOR.MINOR.PATCH" and any
// other build version as set.
func displayVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}

	return "v" + v.String()
}

// buildCommit prefers the ldflags commit and falls back to the VCS stamp.
func buildCommit() string {
	if commit != "unknown" {
		return commit
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit
	}

	rev, modified := "", false

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value[:min(shortCommitLength, len(setting.Value))]
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	switch {
	case rev == "":
		return commit
	case modified:
		return rev + " (modified)"
	default:
		return rev
	}
}
