package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads configuration from the YAML file named by CONFIG_PATH and from
// environment variables. See LoadFrom.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom reads configuration with priority ENV > YAML > defaults, then
// validates it. An empty path falls back to ./config.yaml when that
// file exists and to ENV + defaults otherwise; an explicit path must exist.
func LoadFrom(path string) (*Config, error) {
	cfg := defaults()

	file, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	if file != "" {
		if err := cleanenv.ReadConfig(file, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// defaults seeds the boolean settings that are on unless turned off.
// cleanenv treats false as unset and would apply a "true" env-default over
// an explicit YAML false, so these are not tagged.
func defaults() Config {
	var cfg Config
	cfg.Database.AutoMigrate = true
	cfg.Syllabifier.WarmOnStart = true
	cfg.RateLimit.Enabled = true
	return cfg
}

// resolvePath returns the file to read, or "" for environment-only loading.
func resolvePath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: file %s: %w", path, err)
		}
		return path, nil
	}

	_, err := os.Stat(defaultPath)
	switch {
	case err == nil:
		return defaultPath, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("config: file %s: %w", defaultPath, err)
	}
}

// Usage writes the environment variables Config understands, with their
// defaults and descriptions, to w.
func Usage(w io.Writer) error {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return fmt.Errorf("config: describe: %w", err)
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
