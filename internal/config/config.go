package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	HTTPAddr        string
	DataDir         string
	CatalogPath     string
	BookingsFile    string
	ExportDir       string
	LogLevel        string
	LogFormat       string
	DefaultPageSize int
}

// Load loads configuration from .env (optional) and environment
// variables. Every key has a default so the service boots with zero
// configuration.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Application environment (default: dev)
	cfg.IsProduction = getEnv("APP_ENV", "dev") == prodString

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Base directory for catalog, bookings snapshot and exports
	cfg.DataDir = getEnv("DATA_DIR", "data")

	cfg.CatalogPath = getEnv("CATALOG_PATH", filepath.Join(cfg.DataDir, "services.json"))
	cfg.BookingsFile = getEnv("BOOKINGS_FILE", filepath.Join(cfg.DataDir, "bookings.json"))
	cfg.ExportDir = getEnv("EXPORT_DIR", filepath.Join(cfg.DataDir, "exports"))

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "json")

	var err error
	cfg.DefaultPageSize, err = getEnvAsInt("PAGE_SIZE_DEFAULT", 200)
	if err != nil {
		return nil, fmt.Errorf("invalid PAGE_SIZE_DEFAULT: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer,
// returning the default when unset and an error when unparsable.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
