// Package config loads the service settings from the environment, reading a .env file first when
// one is present.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/radhian/receipt-reconciliation/consts"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type Config struct {
	Port             string
	AppEnv           string
	APIKey           string
	LogLevel         string
	DB               DBConfig
	AllowedDatabases []string
	BatchWorkers     int
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Load reads the optional env files and then the process environment.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Warnf("[Config] Error loading %s: %v", f, err)
			continue
		}
		log.Infof("[Config] Loaded environment variables from %s", f)
	}

	cfg := Config{
		Port:     getEnv("PORT", consts.DefaultPort),
		AppEnv:   getEnv("APP_ENV", "development"),
		APIKey:   os.Getenv("API_KEY"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", consts.DefaultDriver),
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: os.Getenv("DB_DATABASE"),
		},
		BatchWorkers: getEnvInt("BATCH_WORKERS", consts.DefaultBatchWorkers),
	}

	cfg.AllowedDatabases = splitList(os.Getenv("ALLOWED_DATABASES"))
	if len(cfg.AllowedDatabases) == 0 && cfg.DB.Database != "" {
		cfg.AllowedDatabases = []string{cfg.DB.Database}
	}

	if cfg.APIKey == "" {
		log.Warn("[Config] API_KEY is not set. Using a default, insecure key.")
		cfg.APIKey = consts.DefaultAPIKey
	}
	return cfg
}

// IsProduction reports whether error details must be hidden from clients.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// ConfigureLogging applies LOG_LEVEL to the package logger.
func (c Config) ConfigureLogging() {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		log.SetLevel(log.DEBUG)
	case "warn", "warning":
		log.SetLevel(log.WARN)
	case "error":
		log.SetLevel(log.ERROR)
	case "off":
		log.SetLevel(log.OFF)
	default:
		log.SetLevel(log.INFO)
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warnf("[Config] Invalid %s %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
