package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"parlo/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("DATA_DIR", "")

	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}
	if exists {
		t.Fatal("missing file reported as existing")
	}
	if cfg.Translate.TargetLanguage != "es" {
		t.Fatalf("default target language = %q", cfg.Translate.TargetLanguage)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("DATA_DIR", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[telegram]
token = "123:abc"

[paths]
data_dir = "` + filepath.ToSlash(dir) + `/media"

[translate]
target_language = "Spanish"

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatal("config file not detected")
	}
	if cfg.Telegram.Token != "123:abc" {
		t.Fatalf("token = %q", cfg.Telegram.Token)
	}
	if cfg.Translate.TargetLanguage != "es" {
		t.Fatalf("target language not normalized: %q", cfg.Translate.TargetLanguage)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not lowercased: %q", cfg.Logging.Level)
	}
	if !strings.HasSuffix(filepath.ToSlash(cfg.Paths.DataDir), "/media") {
		t.Fatalf("data dir not expanded: %q", cfg.Paths.DataDir)
	}
}

func TestEnvOverrides(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("TELEGRAM_TOKEN", "999:env")
	t.Setenv("DATA_DIR", dataDir)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.Token != "999:env" {
		t.Fatalf("env token not applied: %q", cfg.Telegram.Token)
	}
	if cfg.Paths.DataDir != dataDir {
		t.Fatalf("env data dir not applied: %q", cfg.Paths.DataDir)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown language", func(c *config.Config) { c.Translate.TargetLanguage = "klingon" }},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"zero poll timeout", func(c *config.Config) { c.Telegram.PollTimeout = 0 }},
		{"empty data dir", func(c *config.Config) { c.Paths.DataDir = "" }},
		{"zero translate timeout", func(c *config.Config) { c.Translate.TimeoutSeconds = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Paths.DataDir = "/tmp/parlo-test"
			cfg.Paths.LogDir = "/tmp/parlo-test-logs"
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestRequireTelegramToken(t *testing.T) {
	cfg := config.Default()
	if err := cfg.RequireTelegramToken(); err == nil {
		t.Fatal("expected error for missing token")
	}
	cfg.Telegram.Token = "123:abc"
	if err := cfg.RequireTelegramToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHistoryPathDefault(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = "/var/log/parlo"
	if got := cfg.HistoryPath(); got != filepath.Join("/var/log/parlo", "history.db") {
		t.Fatalf("HistoryPath = %q", got)
	}
	cfg.History.Path = "/data/plays.db"
	if got := cfg.HistoryPath(); got != "/data/plays.db" {
		t.Fatalf("HistoryPath override = %q", got)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[telegram]") {
		t.Fatalf("sample missing telegram section")
	}
}
