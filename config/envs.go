package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	DefaultWidth     int   // Maze width used when no flag is given
	DefaultHeight    int   // Maze height used when no flag is given
	DefaultSeed      int64 // Seed used when no flag is given; zero or below means draw one from the clock
	AnimationDelayMS int   // Delay between animation frames in milliseconds
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [WARNING] .env file could not be loaded: %v", err)
	}

	// Populate the Config struct with optional environment variables
	return Config{
		DefaultWidth:     getEnvAsIntWithDefault("MAZE_WIDTH", 10),
		DefaultHeight:    getEnvAsIntWithDefault("MAZE_HEIGHT", 10),
		DefaultSeed:      getEnvAsInt64WithDefault("MAZE_SEED", 0),
		AnimationDelayMS: getEnvAsIntWithDefault("MAZE_ANIMATION_DELAY_MS", 40),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or returns a default value if not set or cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

// getEnvAsInt64WithDefault retrieves the value of an environment variable as a 64-bit integer or returns a default value if not set or cannot be parsed.
func getEnvAsInt64WithDefault(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
