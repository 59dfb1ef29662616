package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/25x8/checkdigit/internal/checkdigit/checksum"
	"github.com/25x8/checkdigit/internal/checkdigit/generator"
)

// Log output formats
const (
	LogOutputConsole = "console"
	LogOutputJSON    = "json"
)

var (
	ErrVerifyNeedsAlgorithm = errors.New("verification needs a single algorithm")
	ErrInvalidLogLevel      = errors.New("unknown logging level")
	ErrInvalidLogOutput     = errors.New("unknown logging output format")
)

// Config contains application configuration
type Config struct {
	Algorithm  string `env:"ALGORITHM"`
	BaseNumber string `env:"BASE_NUMBER"`
	BaseDigits int    `env:"BASE_DIGITS"`
	Verify     string `env:"VERIFY"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogOutput  string `env:"LOG_OUTPUT"`
}

// NewConfig creates a new configuration from command line flags, a .env file and environment variables
func NewConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load reads .env from the working directory into the environment, then parses args.
// Variables already present in the environment are not overwritten by .env.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(".env: %w", err)
	}
	return Parse(args)
}

// Parse builds a configuration from command line arguments, then overrides
// it with environment variables that are set.
func Parse(args []string) (*Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("checkdigit", flag.ContinueOnError)
	fs.StringVar(&cfg.Algorithm, "a", checksum.NameAll, "Algorithm: luhn, verhoeff or all")
	fs.StringVar(&cfg.BaseNumber, "b", "", "Base number, random when empty")
	fs.IntVar(&cfg.BaseDigits, "n", generator.DefaultDigits, "Digits of a random base number")
	fs.StringVar(&cfg.Verify, "v", "", "Composite number to verify")
	fs.StringVar(&cfg.LogLevel, "l", "info",
		"Only log messages with the given severity or above: debug, info, warn, error")
	fs.StringVar(&cfg.LogOutput, "o", LogOutputConsole, "Output format of log messages: console or json")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Override with env vars if present
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	cfg.Algorithm = strings.ToLower(strings.TrimSpace(cfg.Algorithm))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if _, err := checksum.Select(c.Algorithm); err != nil {
		return err
	}
	if c.Verify != "" && c.Algorithm == checksum.NameAll {
		return fmt.Errorf("%w, got %q", ErrVerifyNeedsAlgorithm, c.Algorithm)
	}
	if c.BaseDigits < 1 || c.BaseDigits > generator.MaxDigits {
		return fmt.Errorf("%w: %d", generator.ErrInvalidDigits, c.BaseDigits)
	}
	if c.HasBase() {
		if _, err := c.Base(); err != nil {
			return err
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.LogOutput != LogOutputConsole && c.LogOutput != LogOutputJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogOutput, c.LogOutput)
	}
	return nil
}

// Base returns the configured base number
func (c *Config) Base() (int64, error) {
	base, err := checksum.ParseNumber(c.BaseNumber)
	if err != nil {
		return 0, fmt.Errorf("base number: %w", err)
	}
	return base, nil
}

// HasBase reports whether a fixed base number is configured
func (c *Config) HasBase() bool {
	return c.BaseNumber != ""
}

// Level returns the zerolog level named by LogLevel
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.NoLevel, fmt.Errorf("%w: empty", ErrInvalidLogLevel)
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}
