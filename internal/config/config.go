package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration.
type Config struct {
	Env                  string
	LogLevel             string
	TypingDelay          time.Duration
	GreetingEnabled      bool
	ChatHistoryLimit     int
	ReminderPollInterval time.Duration
	ReminderLeadTime     time.Duration
	SeedDemoData         bool
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Env:                  getEnv("ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		TypingDelay:          getEnvAsDuration("CHAT_TYPING_DELAY", 1500*time.Millisecond),
		GreetingEnabled:      getEnvAsBool("CHAT_GREETING_ENABLED", true),
		ChatHistoryLimit:     getEnvAsInt("CHAT_HISTORY_LIMIT", 50),
		ReminderPollInterval: getEnvAsDuration("REMINDER_POLL_INTERVAL", time.Minute),
		ReminderLeadTime:     getEnvAsDuration("REMINDER_LEAD_TIME", 24*time.Hour),
		SeedDemoData:         getEnvAsBool("SEED_DEMO_DATA", true),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
