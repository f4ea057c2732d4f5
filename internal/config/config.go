// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     int
	LogLevel string
	DevMode  bool

	// Data acquisition
	CachePath       string        // Flat CSV cache of the raw series
	WorldBankURL    string        // Base URL of the World Bank API
	Indicator       string        // Indicator code to fetch
	FetchTimeout    time.Duration // Timeout for a single API page
	RefreshSchedule string        // Cron schedule for background refresh

	// Default analysis window
	YearFrom int
	YearTo   int

	// Analytics
	ClusterSeed   int64   // Fixed seed for reproducible clustering
	HighInflation float64 // Rate above which a country counts as high-inflation
	Deflation     float64 // Rate below which a country counts as deflating
	TrendDelta    float64 // Minimum recent-vs-early gap to call a trend
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnvAsInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DevMode:  getEnvAsBool("DEV_MODE", false),

		CachePath:       getEnv("CACHE_PATH", "./data/inflation_cache.csv"),
		WorldBankURL:    getEnv("WORLDBANK_URL", "https://api.worldbank.org/v2"),
		Indicator:       getEnv("INDICATOR", "FP.CPI.TOTL.ZG"),
		FetchTimeout:    time.Duration(getEnvAsInt("FETCH_TIMEOUT_SECONDS", 10)) * time.Second,
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "@hourly"),

		YearFrom: getEnvAsInt("YEAR_FROM", 2010),
		YearTo:   getEnvAsInt("YEAR_TO", 2024),

		ClusterSeed:   int64(getEnvAsInt("CLUSTER_SEED", 42)),
		HighInflation: getEnvAsFloat("HIGH_INFLATION_THRESHOLD", 10.0),
		Deflation:     getEnvAsFloat("DEFLATION_THRESHOLD", 0.0),
		TrendDelta:    getEnvAsFloat("TREND_DELTA", 1.0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.CachePath == "" {
		return fmt.Errorf("CACHE_PATH is required")
	}
	if c.WorldBankURL == "" {
		return fmt.Errorf("WORLDBANK_URL is required")
	}
	if c.YearFrom > c.YearTo {
		return fmt.Errorf("YEAR_FROM (%d) must not exceed YEAR_TO (%d)", c.YearFrom, c.YearTo)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
