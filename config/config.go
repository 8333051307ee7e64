package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Port string

	// Simulated network latency applied inside the procedure layer. Set to 0
	// to disable (tests do).
	ProcedureLatency time.Duration

	// Optional notification broker; empty disables publishing.
	RabbitURL string

	// Monitoring
	EnableMetrics bool
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		ProcedureLatency: getEnvAsDuration("SIMULATED_LATENCY", "1s"),
		RabbitURL:        getEnv("RABBITMQ_URL", ""),
		EnableMetrics:    getEnvAsBool("ENABLE_METRICS", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
