package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Quran.validate(); err != nil {
		return fmt.Errorf("quran: %w", err)
	}
	if c.Planner.RateLimitPerMinute <= 0 {
		return fmt.Errorf("planner: rate_limit_per_minute must be > 0 (got %d)", c.Planner.RateLimitPerMinute)
	}

	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535 (got %d)", s.Port)
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be > 0 (got %v)", s.ShutdownTimeout)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be between 0 and max_conns (got %d)", d.MinConns)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	return nil
}

func (q *QuranConfig) validate() error {
	u, err := url.Parse(q.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", q.BaseURL)
	}
	if q.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", q.Timeout)
	}
	if q.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", q.RetryDelay)
	}
	q.BaseURL = strings.TrimRight(q.BaseURL, "/")
	return nil
}
