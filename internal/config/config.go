package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/AngelCh415/ROI_GO/internal/inputs"
	"github.com/AngelCh415/ROI_GO/internal/models"
)

type Config struct {
	Port         string
	Env          string
	HTTPTimeout  time.Duration
	LogLevel     slog.Level
	DefaultsFile string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		lvl = slog.LevelDebug
	}
	return Config{
		Port:         envOr("PORT", "8080"),
		Env:          envOr("ENV", "production"),
		HTTPTimeout:  to,
		LogLevel:     lvl,
		DefaultsFile: os.Getenv("ROI_DEFAULTS_FILE"),
	}
}

func (c Config) Development() bool { return strings.EqualFold(c.Env, "development") }

// Logger builds the process logger: text in development, JSON elsewhere.
func (c Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.Development() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// Defaults is the built-in snapshot, overlaid with DefaultsFile when set.
func (c Config) Defaults() (models.Inputs, error) {
	def := inputs.Defaults()
	if c.DefaultsFile == "" {
		return def, nil
	}
	return inputs.LoadYAML(c.DefaultsFile, def)
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
