package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/benchtimer/internal/xdg"
	"github.com/smykla-skalski/benchtimer/pkg/config"
)

var (
	// ErrInvalidPermissions is returned when config file has insecure permissions.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

const (
	// ProjectConfigDir is the directory name for project configuration.
	ProjectConfigDir = ".benchtimer"

	// ProjectConfigFile is the primary project configuration file name.
	ProjectConfigFile = "config.toml"

	// ProjectConfigFileAlt is the alternative project configuration file name.
	ProjectConfigFileAlt = "benchtimer.toml"

	// EnvPrefix prefixes every environment variable read as configuration.
	EnvPrefix = "BENCHTIMER_"
)

// KoanfLoader merges configuration layers with koanf. Later layers win:
//
//	defaults
//	global file   $XDG_CONFIG_HOME/benchtimer/config.toml (or legacy ~/.benchtimer/config.toml)
//	project file  --config, else .benchtimer/config.toml, else benchtimer.toml
//	environment   BENCHTIMER_SECTION_KEY
//	flags         only those set on the command line
type KoanfLoader struct {
	k        *koanf.Koanf
	paths    xdg.PathResolver
	workDir  string
	explicit string
	sources  []string
}

// layer is one configuration source. parser is nil for providers that
// already yield maps.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// NewKoanfLoader creates a loader for the current user and working directory.
func NewKoanfLoader() (*KoanfLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolving home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "resolving working directory")
	}

	return &KoanfLoader{paths: xdg.DefaultResolver(homeDir), workDir: workDir}, nil
}

// NewKoanfLoaderWithDirs creates a loader rooted at the given directories.
// $XDG_CONFIG_HOME is ignored.
func NewKoanfLoaderWithDirs(homeDir, workDir string) *KoanfLoader {
	return &KoanfLoader{paths: xdg.ResolverFor(homeDir), workDir: workDir}
}

// WithConfigFile makes the loader read path instead of the project config.
// The file must exist.
func (l *KoanfLoader) WithConfigFile(path string) *KoanfLoader {
	l.explicit = path

	return l
}

// Load merges every layer and validates the result.
func (l *KoanfLoader) Load(flags map[string]any) (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation(flags)
	if err != nil {
		return nil, err
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadWithoutValidation merges every layer without validating.
func (l *KoanfLoader) LoadWithoutValidation(flags map[string]any) (*config.Config, error) {
	layers, err := l.layers(flags)
	if err != nil {
		return nil, err
	}

	l.k = koanf.New(".")
	l.sources = l.sources[:0]

	for _, ly := range layers {
		if err := l.k.Load(ly.provider, ly.parser); err != nil {
			return nil, errors.Wrapf(err, "loading %s", ly.name)
		}

		l.sources = append(l.sources, ly.name)
	}

	var cfg config.Config

	if err := l.k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: DecoderConfig(&cfg),
	}); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	return &cfg, nil
}

// Sources lists the layers applied by the last load, lowest precedence first.
// Files are listed by path.
func (l *KoanfLoader) Sources() []string {
	return slices.Clone(l.sources)
}

func (l *KoanfLoader) layers(flags map[string]any) ([]layer, error) {
	out := []layer{{name: "defaults", provider: confmap.Provider(defaultsToMap(), ".")}}

	global := l.GlobalConfigPath()

	switch err := checkConfigFile(global); {
	case err == nil:
		out = append(out, tomlLayer(global))
	case !errors.Is(err, fs.ErrNotExist):
		return nil, errors.Wrap(err, "global config")
	}

	if project := l.FindProjectConfigPath(); project != "" {
		if err := checkConfigFile(project); err != nil {
			return nil, errors.Wrapf(err, "config %s", project)
		}

		out = append(out, tomlLayer(project))
	}

	out = append(out, layer{
		name: "environment",
		provider: env.Provider(".", env.Opt{
			Prefix:        EnvPrefix,
			TransformFunc: envKey,
		}),
	})

	if len(flags) > 0 {
		out = append(out, layer{name: "flags", provider: confmap.Provider(flagsToConfig(flags), ".")})
	}

	return out, nil
}

func tomlLayer(path string) layer {
	return layer{name: path, provider: file.Provider(path), parser: tomlparser.Parser()}
}

// checkConfigFile stats path and refuses files anyone may write.
func checkConfigFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if perm := info.Mode().Perm(); perm&0o002 != 0 {
		return errors.Wrapf(ErrInvalidPermissions, "%s is world-writable (mode: %s)", path, perm)
	}

	return nil
}

// envKey maps BENCHTIMER_REPORT_FORMAT to report.format.
func envKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	return strings.ReplaceAll(key, "_", "."), value
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return l.paths.GlobalConfigFile()
}

// ProjectConfigPaths returns the paths to check for project configuration.
func (l *KoanfLoader) ProjectConfigPaths() []string {
	return []string{
		filepath.Join(l.workDir, ProjectConfigDir, ProjectConfigFile),
		filepath.Join(l.workDir, ProjectConfigFileAlt),
	}
}

// FindProjectConfigPath returns the explicit config file when one was set,
// otherwise the first project config file that exists, or "".
func (l *KoanfLoader) FindProjectConfigPath() string {
	if l.explicit != "" {
		return l.explicit
	}

	for _, path := range l.ProjectConfigPaths() {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// HasGlobalConfig checks if a global configuration file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	return fileExists(l.GlobalConfigPath())
}

// flagKeys maps CLI flag names to config paths.
var flagKeys = map[string]string{
	"runs":           "bench.runs",
	"unit":           "bench.unit",
	"representation": "bench.representation",
	"format":         "report.format",
	"label":          "report.label",
	"encoding":       "report.encoding",
	"newline":        "report.newline",
	"color":          "report.color",
	"host":           "report.host",
	"log-level":      "log.level",
	"log-file":       "log.file",
}

// flagsToConfig nests CLI flag values under their config paths. Unknown
// flag names are ignored.
func flagsToConfig(flags map[string]any) map[string]any {
	flat := make(map[string]any, len(flags))

	for name, value := range flags {
		if path, ok := flagKeys[name]; ok {
			flat[path] = value
		}
	}

	return maps.Unflatten(flat, ".")
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
