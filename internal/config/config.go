// apps/go-scorer/internal/config/config.go
//
// Runtime configuration for the scorer CLI.
//
// Precedence (lowest to highest):
//   1. Built-in defaults.
//   2. Environment variables (a local .env is loaded first via godotenv).
//   3. YAML file named by --config or WORDLE_CONFIG.
//   4. Command-line flags (applied by cmd).
//
// Environment variables:
//   LOG_LEVEL=debug|info|warn|error
//   WORDS_FILE=/path/to/words.txt
//   DAILY_SALT=...
//   WORDLE_COLOR=auto|always|never
//   WORDLE_MAX_GUESSES=6
//   WORDLE_CONFIG=/path/to/wordle.yaml

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/score"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the resolved configuration.
type Config struct {
	LogLevel   string `yaml:"log_level"`
	WordsFile  string `yaml:"words_file"`
	DailySalt  string `yaml:"daily_salt"`
	Color      string `yaml:"color"`
	MaxGuesses int    `yaml:"max_guesses"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		LogLevel:  "info",
		DailySalt: "local_dev_salt",
		Color:     string(score.ColorAuto),
	}
}

// Load resolves defaults, .env, environment and the optional YAML file.
// path overrides WORDLE_CONFIG; an empty result means no file.
// Only read and parse failures are reported; the caller overlays flags and
// then calls Validate.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	c := Default()
	if err := c.applyEnv(); err != nil {
		return c, err
	}
	if path == "" {
		path = os.Getenv("WORDLE_CONFIG")
	}
	if path != "" {
		if err := c.applyFile(path); err != nil {
			return c, err
		}
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	setStr := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setStr(&c.LogLevel, "LOG_LEVEL")
	setStr(&c.WordsFile, "WORDS_FILE")
	setStr(&c.DailySalt, "DAILY_SALT")
	setStr(&c.Color, "WORDLE_COLOR")
	if v := os.Getenv("WORDLE_MAX_GUESSES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: WORDLE_MAX_GUESSES=%q: %v", ErrInvalid, v, err)
		}
		c.MaxGuesses = n
	}
	return nil
}

// applyFile overlays the non-zero fields of a YAML file.
func (c *Config) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var f Config
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.WordsFile != "" {
		c.WordsFile = f.WordsFile
	}
	if f.DailySalt != "" {
		c.DailySalt = f.DailySalt
	}
	if f.Color != "" {
		c.Color = f.Color
	}
	if f.MaxGuesses != 0 {
		c.MaxGuesses = f.MaxGuesses
	}
	return nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	if _, err := score.ParseColorMode(c.Color); err != nil {
		return fmt.Errorf("%w: color: %v", ErrInvalid, err)
	}
	if c.MaxGuesses < 0 {
		return fmt.Errorf("%w: max_guesses must be >= 0, got %d", ErrInvalid, c.MaxGuesses)
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// ColorMode returns the parsed colour mode. Call after Validate.
func (c Config) ColorMode() score.ColorMode {
	m, err := score.ParseColorMode(c.Color)
	if err != nil {
		return score.ColorAuto
	}
	return m
}
