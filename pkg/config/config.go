package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	BloodAPI BloodAPIConfig
	Redis    RedisConfig
	OTEL     OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host        string
	Port        int
	Environment string
}

// BloodAPIConfig holds the upstream blood-bank backend configuration.
// Providers are constructed once from this struct; changing the
// environment afterwards does not affect an already-built instance.
type BloodAPIConfig struct {
	BaseURL   string
	APIKey    string
	ForceMock bool
}

// UseMock reports whether the mock data path is active: mock mode is
// explicitly forced, or no backend URL is configured at all.
func (c *BloodAPIConfig) UseMock() bool {
	return c.ForceMock || c.BaseURL == ""
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			Port:        getEnvAsInt("SERVER_PORT", 8080),
			Environment: getEnv("APP_ENV", "development"),
		},
		BloodAPI: BloodAPIConfig{
			BaseURL:   getEnv("BLOOD_API_BASE_URL", ""),
			APIKey:    getEnv("BLOOD_API_KEY", ""),
			ForceMock: getEnvAsBool("BLOOD_API_FORCE_MOCK", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "school-health-hub"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

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
