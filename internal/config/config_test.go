package config

import (
	"strings"
	"testing"
	"time"
)

func validFileConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Port:            "8080",
		ShutdownTimeout: 5 * time.Second,
		DataSource:      SourceFile,
		DataDir:         t.TempDir(),
		TimestampColumn: "PublishedDate",
		MaxOpenConns:    20,
		LogFormat:       "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid file source",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid postgres source",
			mutate: func(c *Config) {
				c.DataSource = SourcePostgres
				c.DataDir = ""
				c.PostgresDSN = "postgres://localhost/mentions?sslmode=disable"
			},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid data source",
			mutate:      func(c *Config) { c.DataSource = "s3" },
			wantErr:     true,
			errorString: "invalid data source 's3': must be one of [file postgres]",
		},
		{
			name:        "missing data directory",
			mutate:      func(c *Config) { c.DataDir = "/does/not/exist/anywhere" },
			wantErr:     true,
			errorString: "data directory does not exist: /does/not/exist/anywhere",
		},
		{
			name:        "postgres source without dsn",
			mutate:      func(c *Config) { c.DataSource = SourcePostgres },
			wantErr:     true,
			errorString: "POSTGRES_DSN is required",
		},
		{
			name:        "migrations without dsn",
			mutate:      func(c *Config) { c.RunMigrations = true },
			wantErr:     true,
			errorString: "POSTGRES_DSN is required",
		},
		{
			name:        "shutdown timeout too short",
			mutate:      func(c *Config) { c.ShutdownTimeout = 10 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid shutdown timeout",
		},
		{
			name:        "invalid log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validFileConfig(t)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validFileConfig(t)
	cfg.Port = "abc"
	cfg.LogFormat = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid port") || !strings.Contains(err.Error(), "invalid log format") {
		t.Fatalf("expected both problems reported, got %q", err.Error())
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_SOURCE", "MEASURE_COLUMNS", "SHUTDOWN_TIMEOUT", "RUN_MIGRATIONS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DataSource != SourceFile {
		t.Fatalf("expected default source file, got %s", cfg.DataSource)
	}
	if len(cfg.MeasureColumns) != 3 || cfg.MeasureColumns[0] != "PostCount" {
		t.Fatalf("unexpected default measure columns: %v", cfg.MeasureColumns)
	}
	if cfg.ShutdownTimeout != 5*time.Second || cfg.RunMigrations {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_SOURCE", "postgres")
	t.Setenv("MEASURE_COLUMNS", " ThemeCount , ,CodeCount")
	t.Setenv("SHUTDOWN_TIMEOUT", "15s")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()
	if cfg.Port != "9090" || cfg.DataSource != SourcePostgres {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.MeasureColumns) != 2 || cfg.MeasureColumns[0] != "ThemeCount" || cfg.MeasureColumns[1] != "CodeCount" {
		t.Fatalf("unexpected measure columns: %v", cfg.MeasureColumns)
	}
	if cfg.ShutdownTimeout != 15*time.Second || !cfg.RunMigrations {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.MaxOpenConns != 20 {
		t.Fatalf("expected fallback max open conns, got %d", cfg.MaxOpenConns)
	}
}
