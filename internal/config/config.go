package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration options for the timeclock application
type Config struct {
	Database    DatabaseConfig
	Session     SessionConfig
	Admin       AdminConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir          string        `env:"TC_DB_DIR"`
	Filename     string        `env:"TC_DB_FILENAME"`
	QueryTimeout time.Duration `env:"TC_DB_QUERY_TIMEOUT"`
}

// SessionConfig holds the work session policy configuration.
// The lunch window and cutoff are wall-clock hours on the session's start day.
type SessionConfig struct {
	StateDir        string        `env:"TC_STATE_DIR"`
	LunchStartHour  int           `env:"TC_LUNCH_START_HOUR"`
	LunchEndHour    int           `env:"TC_LUNCH_END_HOUR"`
	CutoffHour      int           `env:"TC_CUTOFF_HOUR"`
	MonitorInterval time.Duration `env:"TC_MONITOR_INTERVAL"`
}

// AdminConfig holds the minimal role gating configuration
type AdminConfig struct {
	Password string `env:"TC_ADMIN_PASSWORD"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout  time.Duration `env:"TC_APP_TIMEOUT"`
	LogLevel string        `env:"TC_LOG_LEVEL"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".timeclock")

	return &Config{
		Database: DatabaseConfig{
			Dir:          defaultDir,
			Filename:     "timeclock.db",
			QueryTimeout: 10 * time.Second,
		},
		Session: SessionConfig{
			StateDir:        filepath.Join(defaultDir, "state"),
			LunchStartHour:  12,
			LunchEndHour:    13,
			CutoffHour:      17,
			MonitorInterval: 30 * time.Second,
		},
		Admin: AdminConfig{
			Password: "chef123",
		},
		Application: ApplicationConfig{
			Timeout:  60 * time.Second,
			LogLevel: "info",
		},
	}
}

// Load creates the configuration from defaults overridden by TC_* environment variables
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Session.StateDir == "" {
		return &ConfigError{Field: "session.state_dir", Message: "state directory cannot be empty"}
	}
	if c.Session.LunchStartHour < 0 || c.Session.LunchStartHour > 23 {
		return &ConfigError{Field: "session.lunch_start_hour", Message: "lunch start hour must be between 0 and 23"}
	}
	if c.Session.LunchEndHour <= c.Session.LunchStartHour || c.Session.LunchEndHour > 24 {
		return &ConfigError{Field: "session.lunch_end_hour", Message: "lunch end hour must be after the start hour"}
	}
	if c.Session.CutoffHour < 1 || c.Session.CutoffHour > 24 {
		return &ConfigError{Field: "session.cutoff_hour", Message: "cutoff hour must be between 1 and 24"}
	}
	if c.Session.MonitorInterval <= 0 {
		return &ConfigError{Field: "session.monitor_interval", Message: "monitor interval must be positive"}
	}
	if c.Admin.Password == "" {
		return &ConfigError{Field: "admin.password", Message: "admin password cannot be empty"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
