package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application-level configuration
type Config struct {
	// HTTP
	HTTPAddr          string
	RateLimitCapacity int
	RateLimitWindow   time.Duration

	// Cache (empty address keeps runs in process memory only)
	RedisAddr string
	CacheTTL  time.Duration

	// Simulation
	DefaultYears  int
	MaxStoredRuns int

	// Output
	CSVOutputDir string
	Debug        bool
}

// Load reads a .env file when present, then environment variables, falling back to defaults
func Load() *Config {
	// .env es opcional
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		RateLimitCapacity: getEnvInt("RATE_LIMIT_CAPACITY", 5),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		CacheTTL:          getEnvDuration("CACHE_TTL", 24*time.Hour),
		DefaultYears:      getEnvInt("DEFAULT_YEARS", 30),
		MaxStoredRuns:     getEnvInt("MAX_STORED_RUNS", 500),
		CSVOutputDir:      getEnv("CSV_OUTPUT_DIR", "output"),
		Debug:             getEnvBool("LOG_DEBUG", false),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
