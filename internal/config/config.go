package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains service configuration parameters.
type Config struct {
	LogLevel        int           `env:"LOG_LEVEL" envDefault:"0"`
	WorkerCount     int           `env:"WORKER_COUNT"` // 0 表示 runtime.NumCPU()
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTP            HTTP          `envPrefix:"HTTP_"`
	Database        Database      `envPrefix:"DATABASE_"`
	Redis           Redis         `envPrefix:"REDIS_"`
	Session         Session       `envPrefix:"SESSION_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

// Database contains database connection parameters.
type Database struct {
	URL string `env:"URL,required,notEmpty"`
}

// Redis contains session store connection parameters.
type Redis struct {
	Addr     string `env:"ADDR,required,notEmpty"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Session contains session cookie parameters.
type Session struct {
	Secret       string `env:"SECRET,required,notEmpty"`
	CookieName   string `env:"COOKIE_NAME" envDefault:"session"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("invalid WORKER_COUNT: %d", cfg.WorkerCount)
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = runtime.NumCPU()
	}

	return &cfg, nil
}
