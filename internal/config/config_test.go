package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tldr/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("unexpected API key: %q", cfg.OpenAIAPIKey)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", cfg.OpenAIModel)
	}
	if cfg.Port != 3000 {
		t.Fatalf("unexpected port: %d", cfg.Port)
	}
	if cfg.RequestTimeout != 20*time.Second {
		t.Fatalf("unexpected request timeout: %s", cfg.RequestTimeout)
	}
	if cfg.MaxBodyBytes != 2<<20 {
		t.Fatalf("unexpected max body bytes: %d", cfg.MaxBodyBytes)
	}
	if cfg.ExtractReadability {
		t.Fatalf("expected readability strategy to be off by default")
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Fatalf("unexpected log level: %s", cfg.SlogLevel())
	}
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := config.LoadConfig(); err == nil {
		t.Fatalf("expected error when OPENAI_API_KEY is empty")
	}
}

func TestLoadConfigRejectsInvalidPort(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "70000")

	if _, err := config.LoadConfig(); err == nil {
		t.Fatalf("expected error for out-of-range port")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "8080")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("EXTRACT_READABILITY", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 || cfg.RequestTimeout != 5*time.Second || !cfg.ExtractReadability {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("unexpected log level: %s", cfg.SlogLevel())
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	loaded, err := config.LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded {
		t.Fatalf("expected missing file to be reported as not loaded")
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TLDR_DOTENV_NEW=from-file\nTLDR_DOTENV_SET=from-file\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	t.Setenv("TLDR_DOTENV_NEW", "")
	if err := os.Unsetenv("TLDR_DOTENV_NEW"); err != nil {
		t.Fatalf("unset env: %v", err)
	}
	t.Setenv("TLDR_DOTENV_SET", "from-env")

	loaded, err := config.LoadDotEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loaded {
		t.Fatalf("expected file to be loaded")
	}

	if got := os.Getenv("TLDR_DOTENV_NEW"); got != "from-file" {
		t.Fatalf("unexpected TLDR_DOTENV_NEW: %q", got)
	}
	if got := os.Getenv("TLDR_DOTENV_SET"); got != "from-env" {
		t.Fatalf("unexpected TLDR_DOTENV_SET: %q", got)
	}
}
