package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	RemotePort int
	LogLevel   string
}

var config Config

func init() {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found")
	}
}

func Load() {
	config = Config{
		RemotePort: getEnvIntOrDefault("REMOTE_PORT", 8331),
		LogLevel:   getEnvVarOrDefault("LOG_LEVEL", "info"),
	}
}

func getEnvVarOrDefault(envVar string, defaultValue string) string {
	value, exists := os.LookupEnv(envVar)
	if exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(envVar string, defaultValue int) int {
	value, exists := os.LookupEnv(envVar)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func Get() *Config {
	return &config
}
