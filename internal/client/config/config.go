package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the inkwell CLI.
//
// Fields:
//   - APIBaseURL: base URL of the blog backend, including the /api prefix.
//   - RequestTimeout: upper bound for one HTTP request.
//   - StateDSN: SQLite database holding the persisted session.
//   - CookieFile: file backing the session cookie jar.
//   - LogFormat, LogLevel: see logging.New.
//   - RevalidateSession: drop a persisted user at startup when its cookies
//     are gone or expired.
type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	StateDSN          string
	CookieFile        string
	LogFormat         string
	LogLevel          string
	RevalidateSession bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.StateDSN = "inkwell.db"
	c.CookieFile = "cookies.json"
	c.LogFormat = "console"
	c.LogLevel = "warn"
	c.RevalidateSession = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if -c is given) and command-line flags found in args. Later sources
// take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}
