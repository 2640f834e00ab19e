package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey string // API key for authentication

	// Optional Discord notification sink
	DiscordToken     string
	DiscordChannelID string

	// Directory holding ladder/reward/rate JSON definitions
	ConfigDir string

	// Player state cache
	CacheSize       int
	CacheTTLSeconds int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:        getEnv("LOG_FORMAT", DefaultLogFormat),
		ServiceName:      getEnv("SERVICE_NAME", DefaultServiceName),
		Version:          getEnv("SERVICE_VERSION", DefaultVersion),
		Environment:      getEnv("ENVIRONMENT", DefaultEnvironment),
		DBUser:           getEnv("DB_USER", DefaultDBUser),
		DBPassword:       getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:           getEnv("DB_HOST", DefaultDBHost),
		DBPort:           getEnv("DB_PORT", DefaultDBPort),
		DBName:           getEnv("DB_NAME", DefaultDBName),
		APIKey:           getEnv("API_KEY", ""),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID: getEnv("DISCORD_CHANNEL_ID", ""),
		ConfigDir:        getEnv("CONFIG_DIR", DefaultConfigDir),
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cacheSize, err := getEnvInt("CACHE_SIZE", DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE value: %w", err)
	}
	cfg.CacheSize = cacheSize

	cacheTTL, err := getEnvInt("CACHE_TTL_SECONDS", DefaultCacheTTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS value: %w", err)
	}
	cfg.CacheTTLSeconds = cacheTTL

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
