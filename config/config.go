// Package config resolves nwalign settings from defaults, an optional YAML
// file and NWALIGN_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nwalign/nw"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log formats accepted by LogFormat.
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds every tunable of the aligner and its CLI.
// Fields without an env or yaml value keep their current value.
type Config struct {
	Match     int    `yaml:"match" env:"NWALIGN_MATCH"`
	Mismatch  int    `yaml:"mismatch" env:"NWALIGN_MISMATCH"`
	Gap       int    `yaml:"gap" env:"NWALIGN_GAP"`
	GapSymbol string `yaml:"gap_symbol" env:"NWALIGN_GAP_SYMBOL"`

	// Workers bounds concurrent alignments; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" env:"NWALIGN_WORKERS"`

	LogLevel  string `yaml:"log_level" env:"NWALIGN_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"NWALIGN_LOG_FORMAT"`

	// MetricsFile, when set, receives Prometheus text-format metrics on exit.
	MetricsFile string `yaml:"metrics_file" env:"NWALIGN_METRICS_FILE"`
}

// Default returns the built-in settings: +1/-1/-2 scoring, '-' gaps.
func Default() Config {
	return Config{
		Match:     nw.DefaultMatch,
		Mismatch:  nw.DefaultMismatch,
		Gap:       nw.DefaultGapPenalty,
		GapSymbol: string(nw.DefaultGapRune),
		LogLevel:  "info",
		LogFormat: LogFormatAuto,
	}
}

// Load builds a Config from Default, then the YAML file at path (skipped when
// path is empty), then the environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}

	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Match <= c.Mismatch {
		return fmt.Errorf("%w: match (%d) must exceed mismatch (%d)", ErrInvalidConfig, c.Match, c.Mismatch)
	}
	if utf8.RuneCountInString(c.GapSymbol) != 1 {
		return fmt.Errorf("%w: gap symbol %q must be a single character", ErrInvalidConfig, c.GapSymbol)
	}
	if r, _ := utf8.DecodeRuneInString(c.GapSymbol); r == utf8.RuneError {
		return fmt.Errorf("%w: gap symbol %q is not valid UTF-8", ErrInvalidConfig, c.GapSymbol)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers (%d) must be >= 0", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log format %q (want auto, text or json)", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// Scoring returns the scoring scheme.
func (c Config) Scoring() nw.Scoring {
	return nw.Scoring{Match: c.Match, Mismatch: c.Mismatch, Gap: c.Gap}
}

// GapRune returns the gap marker. Call Validate first.
func (c Config) GapRune() rune {
	r, _ := utf8.DecodeRuneInString(c.GapSymbol)

	return r
}

// AlignOptions converts the scoring settings into nw options.
func (c Config) AlignOptions() []nw.Option {
	return []nw.Option{nw.WithScoring(c.Scoring()), nw.WithGapRune(c.GapRune())}
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}
