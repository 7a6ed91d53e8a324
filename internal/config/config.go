package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/QuestTown_Go/internal/database"
	"github.com/osse101/QuestTown_Go/internal/persistence"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // API key for authentication

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	// Storage
	StorageBackend    string
	DataDir           string
	SQLitePath        string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	BlobCacheSize     int
	BlobCacheTTL      time.Duration

	// Game
	ContentPath            string // empty uses the embedded default content
	EquipRequiresOwnership bool
	SessionCacheSize       int
	SessionTTL             time.Duration
	Timezone               string

	// Discord bot
	APIURL         string
	DiscordToken   string
	DiscordAppID   string
	DiscordGuildID string
	DiscordPort    string
	DiscordForce   bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		APIKey:      getEnv(EnvAPIKey, ""),

		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		StorageBackend:    getEnv(EnvStorageBackend, DefaultStorageBackend),
		DataDir:           getEnv(EnvDataDir, DefaultDataDir),
		SQLitePath:        getEnv(EnvSQLitePath, ""),
		DBUser:            getEnv(EnvDBUser, "postgres"),
		DBPassword:        getEnv(EnvDBPassword, "postgres"),
		DBHost:            getEnv(EnvDBHost, "localhost"),
		DBPort:            getEnv(EnvDBPort, "5432"),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, 30*time.Minute),
		BlobCacheSize:     getEnvAsInt(EnvBlobCacheSize, 0),
		BlobCacheTTL:      getEnvAsDuration(EnvBlobCacheTTL, 10*time.Minute),

		ContentPath:            getEnv(EnvContentPath, ""),
		EquipRequiresOwnership: getEnvAsBool(EnvEquipRequiresOwnership, true),
		SessionCacheSize:       getEnvAsInt(EnvSessionCacheSize, DefaultSessionCacheSize),
		SessionTTL:             getEnvAsDuration(EnvSessionTTL, 30*time.Minute),
		Timezone:               getEnv(EnvTimezone, DefaultTimezone),

		APIURL:         getEnv(EnvAPIURL, DefaultAPIURL),
		DiscordToken:   getEnv(EnvDiscordToken, ""),
		DiscordAppID:   getEnv(EnvDiscordAppID, ""),
		DiscordGuildID: getEnv(EnvDiscordGuildID, ""),
		DiscordPort:    getEnv(EnvDiscordHealthPort, DefaultDiscordPort),
		DiscordForce:   getEnvAsBool(EnvDiscordForceUpdate, false),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.StorageBackend {
	case persistence.BackendMemory, persistence.BackendFile, persistence.BackendSQLite, persistence.BackendPostgres:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: expected memory, file, sqlite or postgres", cfg.StorageBackend)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value: %w", err)
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

// getEnvAsInt parses an integer variable, falling back on absence or bad input
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a Go duration string such as 30m
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool accepts the strconv.ParseBool spellings
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
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

// Persistence returns the storage settings for persistence.Open
func (c *Config) Persistence() persistence.Config {
	return persistence.Config{
		Backend:     c.StorageBackend,
		DataDir:     c.DataDir,
		SQLitePath:  c.SQLitePath,
		PostgresURL: c.GetDBConnString(),
		Pool: database.PoolOptions{
			MaxConns: c.DBMaxConns,
			MaxIdle:  c.DBMaxConnIdleTime,
			MaxLife:  c.DBMaxConnLifetime,
		},
		CacheSize: c.BlobCacheSize,
		CacheTTL:  c.BlobCacheTTL,
	}
}

// Location resolves the time zone save timestamps are shown in
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
