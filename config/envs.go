package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultInitialCols = 2
	defaultInitialRows = 4
)

// MazeConfig holds the options of the maze core.
type MazeConfig struct {
	InitialCols int   // Width of the first level
	InitialRows int   // Height of the first level
	RandomSeed  int64 // Seed of the maze generator, 0 picks one from the clock
}

// Config holds the application's configuration values.
type Config struct {
	Maze                  MazeConfig
	HostIP                string // Host IP for the server
	RESTPort              int    // Port for the REST API
	DBHost                string // Hostname or IP address for the database
	DBPort                int    // Port number for the database
	DBUser                string // Username for the database
	DBPassword            string // Password for the database
	DBName                string // Name of the database
	RedisAddr             string // host:port of the redis server backing the leaderboard
	RedisPassword         string // Password for redis, empty when auth is disabled
	LeaderboardTTLSeconds int    // Expiry of the leaderboard sorted set
	GinMode               string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret             string // Secret key for JWT signing
	JWTIssuer             string // Issuer claim for JWTs
}

// loadDotEnv loads a .env file if available.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
}

// Load initializes and returns the full server configuration.
// It loads environment variables from a .env file.
func Load() Config {
	loadDotEnv()

	// Populate the Config struct with required environment variables
	return Config{
		Maze:                  mazeFromEnv(),
		DBHost:                mustGetEnv("DB_HOST"),
		DBPort:                mustGetEnvAsInt("DB_PORT"),
		DBUser:                mustGetEnv("DB_USER"),
		DBPassword:            mustGetEnv("DB_PASS"),
		DBName:                mustGetEnv("DB_NAME"),
		RedisAddr:             mustGetEnv("REDIS_ADDR"),
		RedisPassword:         getEnvWithDefault("REDIS_PASSWORD", ""),
		LeaderboardTTLSeconds: getEnvAsIntWithDefault("LEADERBOARD_TTL_SECONDS", 0),
		GinMode:               getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:             mustGetEnv("JWT_SECRET"),
		JWTIssuer:             mustGetEnv("JWT_ISSUER"),
		HostIP:                mustGetEnv("HOST_IP"),
		RESTPort:              mustGetEnvAsInt("REST_PORT"),
	}
}

// LoadMaze returns only the maze options, for tools that do not run the server.
func LoadMaze() MazeConfig {
	loadDotEnv()
	return mazeFromEnv()
}

func mazeFromEnv() MazeConfig {
	cfg := MazeConfig{
		InitialCols: getEnvAsIntWithDefault("MAZE_INITIAL_COLS", defaultInitialCols),
		InitialRows: getEnvAsIntWithDefault("MAZE_INITIAL_ROWS", defaultInitialRows),
		RandomSeed:  int64(getEnvAsIntWithDefault("MAZE_RANDOM_SEED", 0)),
	}
	if cfg.InitialCols < 1 || cfg.InitialRows < 1 {
		log.Fatalf("[APP] [FATAL] Maze dimensions must be positive, got %dx%d", cfg.InitialCols, cfg.InitialRows)
	}
	return cfg
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. A value that does not parse is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
