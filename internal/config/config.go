package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/goliatone/go-formcheck/pkg/display"
)

// Config is the runtime configuration shared by the formcheck binaries.
type Config struct {
	Output      string `env:"FORMCHECK_OUTPUT" envDefault:"json"`
	UISchema    string `env:"FORMCHECK_UI_SCHEMA"`
	HTTPAddr    string `env:"FORMCHECK_HTTP_ADDR" envDefault:":8080"`
	MaxAttempts int    `env:"FORMCHECK_MAX_ATTEMPTS" envDefault:"3"`
	LogPrefix   string `env:"FORMCHECK_LOG_PREFIX" envDefault:"formcheck: "`
}

// Load reads the given dotenv files (".env" when none are passed) and then
// parses the environment. Missing dotenv files are ignored; variables already
// set in the environment win over dotenv values.
func Load(envFiles ...string) (Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// OutputFormat returns the parsed emission format.
func (c Config) OutputFormat() (display.OutputFormat, error) {
	return display.ParseOutputFormat(c.Output)
}

// Validate reports values no binary can start with.
func (c Config) Validate() error {
	if _, err := c.OutputFormat(); err != nil {
		return fmt.Errorf("config: FORMCHECK_OUTPUT: %w", err)
	}
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return errors.New("config: FORMCHECK_HTTP_ADDR is empty")
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("config: FORMCHECK_MAX_ATTEMPTS must be >= 0, got %d", c.MaxAttempts)
	}
	return nil
}
