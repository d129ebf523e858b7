package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	OpenAIAPIKey  string `env:"OPENAI_API_KEY,required,notEmpty"`
	OpenAIModel   string `env:"OPENAI_MODEL"                     envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	Port           int           `env:"PORT"            envDefault:"3000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"20s"`
	MaxBodyBytes   int64         `env:"MAX_BODY_BYTES"  envDefault:"2097152"`

	FetchTimeout      time.Duration `env:"FETCH_TIMEOUT"        envDefault:"15s"`
	FetchMaxBodyBytes int64         `env:"FETCH_MAX_BODY_BYTES" envDefault:"10485760"`

	ExtractReadability bool `env:"EXTRACT_READABILITY" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadDotEnv loads variables from path into the process environment without
// overriding ones that are already set. A missing file is not an error.
func LoadDotEnv(path string) (bool, error) {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("load dotenv: %w", err)
	}

	return true, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("parse env: PORT out of range: %d", cfg.Port)
	}

	return cfg, nil
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
