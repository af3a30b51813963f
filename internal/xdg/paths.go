// Package xdg locates benchtimer's user-level files following the XDG Base
// Directory conventions. Project-local paths (.benchtimer/config.toml,
// benchtimer.toml) stay in internal/config.
package xdg

import (
	"os"
	"path/filepath"
)

const (
	appName    = "benchtimer"
	legacyDir  = ".benchtimer"
	configFile = "config.toml"
)

// ConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func ConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("~", ".config")
	}

	return filepath.Join(home, ".config")
}

// PathResolver resolves benchtimer's user-level paths.
type PathResolver interface {
	// ConfigDir is the XDG config directory for benchtimer.
	ConfigDir() string

	// GlobalConfigFile is the global config file to read and write: the XDG
	// location unless only the legacy ~/.benchtimer/config.toml exists.
	GlobalConfigFile() string

	// LegacyConfigFile is ~/.benchtimer/config.toml.
	LegacyConfigFile() string
}

// DefaultResolver returns a resolver honoring $XDG_CONFIG_HOME, with legacy
// paths under homeDir.
//
//nolint:ireturn // callers only need the interface
func DefaultResolver(homeDir string) PathResolver {
	return resolver{homeDir: homeDir, configHome: ConfigHome()}
}

// ResolverFor returns a resolver rooted entirely at homeDir, ignoring the
// environment.
//
//nolint:ireturn // callers only need the interface
func ResolverFor(homeDir string) PathResolver {
	return resolver{homeDir: homeDir, configHome: filepath.Join(homeDir, ".config")}
}

type resolver struct {
	homeDir    string
	configHome string
}

func (r resolver) ConfigDir() string {
	return filepath.Join(r.configHome, appName)
}

func (r resolver) GlobalConfigFile() string {
	return ResolveFile(filepath.Join(r.ConfigDir(), configFile), r.LegacyConfigFile())
}

func (r resolver) LegacyConfigFile() string {
	return filepath.Join(r.homeDir, legacyDir, configFile)
}
