package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Market data provider
	ProviderBaseURL   string
	ProviderTimeout   time.Duration
	ProviderRateLimit float64
	ProviderRateBurst int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "tradefolio"),
		DBPassword: getEnv("DB_PASSWORD", "tradefolio"),
		DBName:     getEnv("DB_NAME", "tradefolio"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Market data provider
		ProviderBaseURL: getEnv("PROVIDER_BASE_URL", "https://psxterminal.com/api"),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	// Parse provider timeout
	toStr := getEnv("PROVIDER_TIMEOUT", "10s")
	toDur, err := time.ParseDuration(toStr)
	if err != nil {
		log.Printf("Warning: invalid PROVIDER_TIMEOUT value '%s', falling back to 10s\n", toStr)
		toDur = 10 * time.Second
	}
	config.ProviderTimeout = toDur

	// Parse provider rate limit (requests per second) and burst
	rateStr := getEnv("PROVIDER_RATE_LIMIT", "5")
	rateVal, err := strconv.ParseFloat(rateStr, 64)
	if err != nil || rateVal <= 0 {
		log.Printf("Warning: invalid PROVIDER_RATE_LIMIT value '%s', falling back to 5\n", rateStr)
		rateVal = 5
	}
	config.ProviderRateLimit = rateVal

	burstStr := getEnv("PROVIDER_RATE_BURST", "5")
	burstVal, err := strconv.Atoi(burstStr)
	if err != nil || burstVal <= 0 {
		log.Printf("Warning: invalid PROVIDER_RATE_BURST value '%s', falling back to 5\n", burstStr)
		burstVal = 5
	}
	config.ProviderRateBurst = burstVal

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
