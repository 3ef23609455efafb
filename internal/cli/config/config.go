// Package config loads unitgen.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// FileName is the config file unitgen looks for, without extension
const FileName = "unitgen"

// ErrNoProject is returned when no unitgen.yaml is found up to the
// filesystem root
var ErrNoProject = errors.New("not in a unitgen project (no unitgen.yaml found)")

// Config represents the unitgen configuration
type Config struct {
	Catalog  string      `mapstructure:"catalog"`
	Output   string      `mapstructure:"output"`
	Module   string      `mapstructure:"module"`
	LogLevel string      `mapstructure:"log_level"`
	Watch    WatchConfig `mapstructure:"watch"`

	// Dir is the directory relative paths resolve against: the directory
	// of the config file, or the working directory when there is none
	Dir string `mapstructure:"-"`
}

// WatchConfig represents watch mode configuration
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
	Ignore   []string      `mapstructure:"ignore"`
}

// Load loads the configuration. With an empty file it looks for
// unitgen.yaml or unitgen.yml in the working directory and falls back to
// defaults when neither exists. UNITGEN_* environment variables override
// file values, e.g. UNITGEN_LOG_LEVEL or UNITGEN_WATCH_DEBOUNCE.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("catalog", "catalog.yaml")
	v.SetDefault("output", "pkg/units")
	v.SetDefault("module", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("watch.debounce", "100ms")
	v.SetDefault("watch.ignore", []string{})

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("UNITGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if used := v.ConfigFileUsed(); used != "" {
		cfg.Dir = filepath.Dir(used)
	} else {
		cfg.Dir = "."
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CatalogPath returns the catalog file path
func (c *Config) CatalogPath() string {
	return c.resolve(c.Catalog)
}

// OutputDir returns the directory of the core package
func (c *Config) OutputDir() string {
	return c.resolve(c.Output)
}

// CoreImport returns the import path of the generated core package
func (c *Config) CoreImport() string {
	return path.Join(c.Module, filepath.ToSlash(filepath.Clean(c.Output)))
}

// Level returns the configured zap level
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// FindProjectRoot walks up from the working directory to the first
// directory holding unitgen.yaml or unitgen.yml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, ext := range []string{".yaml", ".yml"} {
			if _, err := os.Stat(filepath.Join(dir, FileName+ext)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProject
		}
		dir = parent
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Catalog == "" {
		return fmt.Errorf("catalog must not be empty")
	}
	if cfg.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if filepath.IsAbs(cfg.Output) || strings.HasPrefix(filepath.Clean(cfg.Output), "..") {
		return fmt.Errorf("output must be a directory inside the module, got: %s", cfg.Output)
	}
	if cfg.Module == "" {
		return fmt.Errorf("module must be set to the Go module path of the project")
	}
	if strings.ContainsAny(cfg.Module, " \t\\") || strings.HasSuffix(cfg.Module, "/") {
		return fmt.Errorf("module is not a valid import path, got: %s", cfg.Module)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got: %s", cfg.LogLevel)
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got: %s", cfg.Watch.Debounce)
	}
	return nil
}
