package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Report output formats
const (
	ReportFormatTable = "table"
	ReportFormatYAML  = "yaml"
)

// Config holds the settings of the engineinfo tool.
type Config struct {
	// CacheSize is the number of detection results kept in memory, 0 disables caching.
	CacheSize int `env:"UAENGINE_CACHE_SIZE" envDefault:"1024"`

	LogLevel  string `env:"UAENGINE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"UAENGINE_LOG_FORMAT" envDefault:"text"`

	ReportFormat string `env:"UAENGINE_REPORT_FORMAT" envDefault:"table"`
	// FullVersions groups report rows by full version instead of short version.
	FullVersions bool `env:"UAENGINE_FULL_VERSIONS" envDefault:"false"`
}

var defaultEnvLoaded sync.Once

// Load reads the optional .env file of the working directory once per
// process, then parses the environment into a Config and validates it.
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	return parse()
}

// LoadFrom loads the given .env files, which must exist, and then parses the
// environment. Variables already set in the environment take precedence.
func LoadFrom(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return parse()
}

func parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that enumerated settings hold known values.
func (c Config) Validate() error {
	var errs []error
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("cache size must not be negative, got %d", c.CacheSize))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	switch strings.ToLower(c.ReportFormat) {
	case ReportFormatTable, ReportFormatYAML:
	default:
		errs = append(errs, fmt.Errorf("unknown report format %q", c.ReportFormat))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// SlogLevel returns LogLevel as a slog.Level, falling back to INFO.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return l, nil
}
