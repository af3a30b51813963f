package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/benchtimer/internal/schema"
	"github.com/smykla-skalski/benchtimer/internal/xdg"
	"github.com/smykla-skalski/benchtimer/pkg/config"
)

const (
	// ConfigFileMode is the file mode for configuration files (user read/write only).
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for configuration directories (user rwx only).
	ConfigDirMode = 0o700
)

// ErrConfigExists is returned when writing would overwrite an existing file.
var ErrConfigExists = errors.New("configuration file already exists")

// Target selects the file a Writer writes.
type Target int

const (
	// TargetProject is .benchtimer/config.toml in the working directory.
	TargetProject Target = iota

	// TargetGlobal is the user's global config file.
	TargetGlobal
)

// Writer renders configs as commented TOML files.
type Writer struct {
	paths   xdg.PathResolver
	workDir string
}

// NewWriter creates a Writer for the current user and working directory.
func NewWriter() (*Writer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolving home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "resolving working directory")
	}

	return &Writer{paths: xdg.DefaultResolver(homeDir), workDir: workDir}, nil
}

// NewWriterWithDirs creates a Writer rooted at the given directories.
// $XDG_CONFIG_HOME is ignored.
func NewWriterWithDirs(homeDir, workDir string) *Writer {
	return &Writer{paths: xdg.ResolverFor(homeDir), workDir: workDir}
}

// Path returns the file Write would create for t. For TargetGlobal an
// existing legacy ~/.benchtimer/config.toml is reused.
func (w *Writer) Path(t Target) string {
	if t == TargetGlobal {
		return w.paths.GlobalConfigFile()
	}

	return filepath.Join(w.workDir, ProjectConfigDir, ProjectConfigFile)
}

// Write writes cfg to the file for t and returns its path. Existing files
// are only replaced when force is set.
func (w *Writer) Write(t Target, cfg *config.Config, force bool) (string, error) {
	path := w.Path(t)

	if !force && fileExists(path) {
		return path, errors.Wrapf(ErrConfigExists, "%s (use --force to overwrite)", path)
	}

	return path, WriteFile(path, cfg)
}

// WriteFile encodes cfg to path behind a #:schema directive. The file is
// written next to path and renamed into place.
func WriteFile(path string, cfg *config.Config) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	buf := bytes.NewBufferString(schema.SchemaDirective() + "\n")

	enc := toml.NewEncoder(buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "encoding config")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()

		return errors.Wrapf(err, "writing %s", tmp.Name())
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmp.Name())
	}

	if err := os.Chmod(tmp.Name(), ConfigFileMode); err != nil {
		return errors.Wrapf(err, "setting mode on %s", tmp.Name())
	}

	return errors.Wrapf(os.Rename(tmp.Name(), path), "replacing %s", path)
}
