// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is everything the range and the batch simulator read at startup.
type Config struct {
	// Seed fixes the random stream; 0 picks one at random.
	Seed     int64  `env:"MISSILE_SEED" envDefault:"0"`
	LogLevel string `env:"MISSILE_LOG_LEVEL" envDefault:"info"`
	// AutoConfirm answers every friendly-fire prompt with yes.
	AutoConfirm bool `env:"MISSILE_AUTO_CONFIRM" envDefault:"false"`
	Trials      int  `env:"MISSILE_TRIALS" envDefault:"1000"`
	// Class skips the kit selection screen when it names a kit.
	Class      string `env:"MISSILE_CLASS"`
	Difficulty int    `env:"MISSILE_DIFFICULTY" envDefault:"1"`

	OTelEnabled  bool   `env:"MISSILE_OTEL_ENABLED" envDefault:"true"`
	OTelEndpoint string `env:"MISSILE_OTEL_ENDPOINT"`

	DataHome string `env:"XDG_DATA_HOME"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Trials < 1 {
		return Config{}, fmt.Errorf("MISSILE_TRIALS must be positive, got %d", cfg.Trials)
	}
	if cfg.Difficulty < 1 {
		return Config{}, fmt.Errorf("MISSILE_DIFFICULTY must be at least 1, got %d", cfg.Difficulty)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseLevel maps a level name onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Level is the parsed LogLevel. Load has already rejected bad names.
func (c Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
