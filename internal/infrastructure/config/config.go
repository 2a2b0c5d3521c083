package config

import (
	"os"
)

// Config holds application configuration values.
type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string
	AppBaseURL   string
}

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() *Config {
	port := getEnv("PORT", "3000")
	return &Config{
		Port:         port,
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("MONGODB_DB_NAME", "citysignal"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:"+port),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
