package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	LogText = "text"
	LogJSON = "json"

	defaultSQLitePath = "task-manager.db"
)

type Config struct {
	HTTPAddr        string
	DBDriver        string
	DBURL           string
	LogFormat       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:  envOr("HTTP_ADDR", ":8080"),
		DBDriver:  strings.ToLower(envOr("DB_DRIVER", DriverSQLite)),
		DBURL:     os.Getenv("DB_URL"),
		LogFormat: strings.ToLower(envOr("LOG_FORMAT", LogText)),
	}

	var err error
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", 3*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}

	switch cfg.DBDriver {
	case DriverMemory:
	case DriverSQLite:
		if cfg.DBURL == "" {
			cfg.DBURL = defaultSQLitePath
		}
	case DriverPostgres, DriverMySQL:
		if cfg.DBURL == "" {
			return Config{}, fmt.Errorf("DB_URL is required for DB_DRIVER=%s", cfg.DBDriver)
		}
	default:
		return Config{}, fmt.Errorf("DB_DRIVER must be one of memory, sqlite, postgres, mysql; got %q", cfg.DBDriver)
	}

	if cfg.LogFormat != LogText && cfg.LogFormat != LogJSON {
		return Config{}, errors.New("LOG_FORMAT must be text or json")
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration like 3s; got %q", key, v)
	}
	return d, nil
}
