package database

import (
	"fmt"
	"strings"

	"github.com/franciscosanchezn/meal-master-api/internal/config"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string

	// MaxRetries is the number of connection attempts before giving up
	MaxRetries int
}

// NewDatabaseConfig extracts the database settings from the application configuration
func NewDatabaseConfig(cfg *config.Config) DatabaseConfig {
	return DatabaseConfig{
		Driver:     cfg.DBDriver,
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		User:       cfg.DBUser,
		Password:   cfg.DBPassword,
		Name:       cfg.DBName,
		SSLMode:    cfg.DBSSLMode,
		Path:       cfg.DBPath,
		MaxRetries: 5,
	}
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		if c.inMemory() || strings.Contains(c.Path, "?") {
			return c.Path
		}
		// writers take the lock when the transaction begins and wait for it instead of failing
		return c.Path + "?_txlock=immediate&_busy_timeout=5000"
	default:
		return ""
	}
}

// isSQLite reports whether the configured driver is SQLite, which allows a single writer
func (c *DatabaseConfig) isSQLite() bool {
	driver := strings.ToLower(c.Driver)
	return driver == "sqlite" || driver == ""
}

// inMemory reports whether the sqlite database lives only in the process.
// Each pooled connection to ":memory:" would open its own empty database.
func (c *DatabaseConfig) inMemory() bool {
	return c.isSQLite() && c.Path == ":memory:"
}
