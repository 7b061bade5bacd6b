package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	// HTTP Server
	Port            string
	ShutdownTimeout time.Duration

	// Dataset source
	DataSource      string
	DataDir         string
	TimestampColumn string
	MeasureColumns  []string

	// Postgres
	PostgresDSN   string
	MaxOpenConns  int
	RunMigrations bool

	// Logging
	LogLevel  string
	LogFormat string // text | json
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),

		DataSource:      getEnv("DATA_SOURCE", SourceFile),
		DataDir:         getEnv("DATA_DIR", "./data"),
		TimestampColumn: getEnv("TIMESTAMP_COLUMN", "PublishedDate"),
		MeasureColumns:  getEnvList("MEASURE_COLUMNS", []string{"PostCount", "ThemeCount", "CodeCount"}),

		PostgresDSN:   getEnv("POSTGRES_DSN", ""),
		MaxOpenConns:  getEnvInt("POSTGRES_MAX_OPEN_CONNS", 20),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", false),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	sources := []string{SourceFile, SourcePostgres}
	if !slices.Contains(sources, c.DataSource) {
		errs = append(errs, fmt.Sprintf("invalid data source '%s': must be one of %v", c.DataSource, sources))
	}

	if c.DataSource == SourceFile {
		if c.DataDir == "" {
			errs = append(errs, "DATA_DIR cannot be empty when using the file source")
		} else if info, err := os.Stat(c.DataDir); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Sprintf("data directory does not exist: %s", c.DataDir))
		}
		if c.TimestampColumn == "" {
			errs = append(errs, "TIMESTAMP_COLUMN cannot be empty")
		}
	}

	// ingestion always writes to postgres, so the file source only needs it
	// when migrations are requested
	if (c.DataSource == SourcePostgres || c.RunMigrations) && c.PostgresDSN == "" {
		errs = append(errs, "POSTGRES_DSN is required when using the postgres source or RUN_MIGRATIONS")
	}

	if c.MaxOpenConns < 1 {
		errs = append(errs, fmt.Sprintf("invalid postgres max open conns %d: must be at least 1", c.MaxOpenConns))
	}

	if c.ShutdownTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid shutdown timeout %v: must be at least 1 second", c.ShutdownTimeout))
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
