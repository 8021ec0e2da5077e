package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	ModeDemo = "demo"
	ModeHTTP = "http"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port            string
	Env             string
	Mode            string
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// LoadConfig reads .env when present and lets environment variables override it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_MODE", ModeDemo)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		shutdownTimeout = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:            v.GetString("APP_PORT"),
			Env:             v.GetString("APP_ENV"),
			Mode:            v.GetString("APP_MODE"),
			ShutdownTimeout: shutdownTimeout,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if config.App.Mode != ModeDemo && config.App.Mode != ModeHTTP {
		return nil, fmt.Errorf("unsupported APP_MODE %q (want %q or %q)", config.App.Mode, ModeDemo, ModeHTTP)
	}

	if config.RateLimit.RPS <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", config.RateLimit.RPS)
	}
	if config.RateLimit.Burst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", config.RateLimit.Burst)
	}

	return config, nil
}
