// Package config loads driver settings from a YAML file and the
// environment, and builds the zerolog logger the driver uses.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/burrow/puzzle"
)

// Environment variables consulted by LoadEnv.
const (
	EnvConfigPath = "BURROW_CONFIG"
	EnvLogLevel   = "BURROW_LOG_LEVEL"
)

// Sentinel errors for configuration validation.
var (
	ErrFoldIndex = errors.New("config: fold.index must be positive")
	ErrFoldRows  = errors.New("config: fold.rows must not be empty")
	ErrMaxEnergy = errors.New("config: max_energy must be non-negative")
)

// Fold describes where the hidden part-2 rows go.
type Fold struct {
	Index int      `yaml:"index"`
	Rows  []string `yaml:"rows"`
}

// Config is the driver configuration.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	Fold      Fold   `yaml:"fold"`
	MaxEnergy int64  `yaml:"max_energy"`
	ShowPath  bool   `yaml:"show_path"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML file at path, fills unset fields with defaults and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnv loads an optional .env file, then reads the config file named
// by BURROW_CONFIG (or returns defaults when unset). BURROW_LOG_LEVEL
// overrides the file's log level.
func LoadEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv(EnvConfigPath); path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = zerolog.InfoLevel.String()
	}
	if cfg.Fold.Index == 0 {
		cfg.Fold.Index = puzzle.FoldIndex
	}
	if len(cfg.Fold.Rows) == 0 {
		cfg.Fold.Rows = slices.Clone(puzzle.FoldRows)
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Fold.Index <= 0 {
		return fmt.Errorf("%w: got %d", ErrFoldIndex, c.Fold.Index)
	}
	if len(c.Fold.Rows) == 0 {
		return ErrFoldRows
	}
	if c.MaxEnergy < 0 {
		return fmt.Errorf("%w: got %d", ErrMaxEnergy, c.MaxEnergy)
	}
	return nil
}

// NewLogger returns a timestamped zerolog logger writing to w at the given
// level, falling back to Info for unknown levels.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
