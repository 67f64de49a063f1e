package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Syllabifier.validate(); err != nil {
		return fmt.Errorf("syllabifier: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (s *SyllabifierConfig) validate() error {
	if s.MemoSize < 0 {
		return fmt.Errorf("memo_size must be >= 0 (got %d)", s.MemoSize)
	}
	if s.BatchLimit <= 0 || s.BatchLimit > 1000 {
		return fmt.Errorf("batch_limit must be in 1..1000 (got %d)", s.BatchLimit)
	}
	if s.OverrideTimeout <= 0 {
		return fmt.Errorf("override_timeout must be > 0 (got %v)", s.OverrideTimeout)
	}
	if s.CatalogMaxLimit <= 0 {
		return fmt.Errorf("catalog_max_limit must be > 0 (got %d)", s.CatalogMaxLimit)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be > 0 (got %v)", r.RequestsPerSecond)
	}
	if r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", r.Burst)
	}
	return nil
}
