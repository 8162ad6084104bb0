package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/packetguard/pkg/config"
)

const (
	// ConfigFileMode is the file mode for configuration files (user read/write only).
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for configuration directories (user rwx only).
	ConfigDirMode = 0o700

	fileHeader = "# packetguard diagnostics configuration. Never affects verdicts.\n"
)

// ErrConfigExists is returned when a write would replace an existing file.
var ErrConfigExists = errors.New("config file already exists")

// Writer handles writing configuration to TOML files.
type Writer struct {
	homeDir string
}

// NewWriter creates a Writer for the given home directory.
func NewWriter(homeDir string) *Writer {
	return &Writer{homeDir: homeDir}
}

// GlobalConfigPath returns the path to the global configuration file.
func (w *Writer) GlobalConfigPath() string {
	return filepath.Join(w.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// WriteGlobal writes cfg to the global config file. An existing file is
// only replaced when force is set.
func (w *Writer) WriteGlobal(cfg *config.Config, force bool) (string, error) {
	path := w.GlobalConfigPath()

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, errors.Wrapf(ErrConfigExists, "%s", path)
		}
	}

	return path, w.WriteFile(path, cfg)
}

// WriteFile writes the configuration to the given path.
func (*Writer) WriteFile(path string, cfg *config.Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	if err := os.WriteFile(path, data, ConfigFileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}

// Marshal encodes cfg as indented TOML with a comment header.
func Marshal(cfg *config.Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	var buf bytes.Buffer

	buf.WriteString(fileHeader)
	buf.WriteByte('\n')

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to encode config to TOML")
	}

	return buf.Bytes(), nil
}
