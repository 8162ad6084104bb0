package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/packetguard/pkg/config"
)

// ErrInvalidPermissions is returned when config file has insecure permissions.
var ErrInvalidPermissions = errors.New("config file has insecure permissions")

const (
	// GlobalConfigDir is the directory name for global configuration.
	GlobalConfigDir = ".packetguard"

	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// EnvPrefix prefixes every environment variable the loader reads.
	EnvPrefix = "PACKETGUARD_"
)

// KoanfLoader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. Environment Variables (PACKETGUARD_*)
// 2. Global Config (~/.packetguard/config.toml)
// 3. Defaults
type KoanfLoader struct {
	k        *koanf.Koanf
	homeDir  string
	tomlOpts koanf.UnmarshalConf
}

// NewKoanfLoader creates a new KoanfLoader for the current user.
func NewKoanfLoader() (*KoanfLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	return NewKoanfLoaderWithHome(homeDir), nil
}

// NewKoanfLoaderWithHome creates a new KoanfLoader with a custom home
// directory (for testing).
func NewKoanfLoaderWithHome(homeDir string) *KoanfLoader {
	return &KoanfLoader{
		k:       koanf.New("."),
		homeDir: homeDir,
		tomlOpts: koanf.UnmarshalConf{
			Tag:       "koanf",
			FlatPaths: false,
		},
	}
}

// Load loads configuration from all sources with precedence and validates it.
// Defaults → Global TOML → Env Vars
func (l *KoanfLoader) Load() (*config.Config, error) {
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if err := l.loadTOMLFile(l.GlobalConfigPath()); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: l.envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	var cfg config.Config

	opts := l.tomlOpts
	opts.DecoderConfig = CustomDecoderConfig()
	opts.DecoderConfig.Result = &cfg

	if err := l.k.UnmarshalWithConf("", &cfg, opts); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Log == nil {
		cfg.Log = &config.LogConfig{Level: DefaultLogLevel}
	}

	cfg.Log.File = l.expandHome(cfg.Log.File)

	if err := NewValidator().Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// loadTOMLFile loads a TOML configuration file with security checks.
func (l *KoanfLoader) loadTOMLFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	// Reject world-writable files
	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	return l.k.Load(file.Provider(path), tomlparser.Parser())
}

// envTransform transforms environment variable names to config paths.
// PACKETGUARD_LOG_FILE → log.file
func (*KoanfLoader) envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", ".")

	return key, value
}

func (l *KoanfLoader) expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(l.homeDir, rest)
	}

	return path
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}
