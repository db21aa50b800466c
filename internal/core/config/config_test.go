package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	want := DefaultConfig()
	if cfg.DatabaseURL != want.DatabaseURL {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, want.DatabaseURL)
	}
	if cfg.RequestTimeout != want.RequestTimeout {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, want.RequestTimeout)
	}
	if cfg.BatchLimit != want.BatchLimit {
		t.Errorf("BatchLimit = %d, want %d", cfg.BatchLimit, want.BatchLimit)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log settings = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("database_url: postgres://user@localhost/hazwaste\nrequest_timeout: 10s\nbatch_limit: 50\nlog_format: json\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DatabaseURL != "postgres://user@localhost/hazwaste" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.BatchLimit != 50 {
		t.Errorf("BatchLimit = %d, want 50", cfg.BatchLimit)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	os.Setenv("HW_BATCH_LIMIT", "25")
	defer os.Unsetenv("HW_BATCH_LIMIT")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BatchLimit != 25 {
		t.Errorf("BatchLimit = %d, want env override 25", cfg.BatchLimit)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty database url", func(c *Config) { c.DatabaseURL = "" }, true},
		{"bad scheme", func(c *Config) { c.DatabaseURL = "mysql://host/db" }, true},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }, true},
		{"negative batch limit", func(c *Config) { c.BatchLimit = -1 }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
