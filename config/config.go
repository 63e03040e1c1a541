// Package config loads wordgrid settings from defaults, an optional YAML
// file and WORDGRID_* environment variables, in that order of precedence
// (later sources win).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of the CLI.
//
// Thread Safety: safe to read concurrently; not safe to modify after Load.
type Config struct {
	// Rows and Columns size generated and parsed boards.
	Rows    int `yaml:"rows" env:"ROWS"`
	Columns int `yaml:"columns" env:"COLUMNS"`

	// MinWordLength is the shortest accepted word in letters.
	MinWordLength int `yaml:"min_word_length" env:"MIN_WORD_LENGTH"`

	// GameTime is how long "play" waits before revealing the solution.
	GameTime time.Duration `yaml:"game_time" env:"GAME_TIME"`

	// DictionaryPath points at a newline-separated word list.
	DictionaryPath string `yaml:"dictionary" env:"DICTIONARY"`

	// Parallelism is the number of goroutines a solve may use.
	Parallelism int `yaml:"parallelism" env:"PARALLELISM"`

	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`
}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "WORDGRID_"

// Default returns the built-in configuration: a 4×4 board, three-letter
// words, a three minute game and sequential solving.
func Default() Config {
	return Config{
		Rows:          4,
		Columns:       4,
		MinWordLength: 3,
		GameTime:      180 * time.Second,
		Parallelism:   1,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Columns < 1:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Columns)
	case c.MinWordLength < 1:
		return fmt.Errorf("%w: min_word_length must be at least 1, got %d", ErrInvalidConfig, c.MinWordLength)
	case c.GameTime < 0:
		return fmt.Errorf("%w: game_time must not be negative, got %s", ErrInvalidConfig, c.GameTime)
	case c.Parallelism < 1:
		return fmt.Errorf("%w: parallelism must be at least 1, got %d", ErrInvalidConfig, c.Parallelism)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level must be debug, info, warn or error, got %q", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
