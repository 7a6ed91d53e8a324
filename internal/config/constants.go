package config

// Environment variable names
const (
	EnvPort                   = "PORT"
	EnvLogLevel               = "LOG_LEVEL"
	EnvLogFormat              = "LOG_FORMAT"
	EnvEnvironment            = "ENVIRONMENT"
	EnvServiceName            = "SERVICE_NAME"
	EnvVersion                = "VERSION"
	EnvAPIKey                 = "API_KEY"
	EnvTrustedProxies         = "TRUSTED_PROXIES"
	EnvStorageBackend         = "STORAGE_BACKEND"
	EnvDataDir                = "DATA_DIR"
	EnvSQLitePath             = "SQLITE_PATH"
	EnvDBUser                 = "DB_USER"
	EnvDBPassword             = "DB_PASSWORD"
	EnvDBHost                 = "DB_HOST"
	EnvDBPort                 = "DB_PORT"
	EnvDBName                 = "DB_NAME"
	EnvDBMaxConns             = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime      = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime      = "DB_MAX_CONN_LIFETIME"
	EnvContentPath            = "CONTENT_PATH"
	EnvEquipRequiresOwnership = "EQUIP_REQUIRES_OWNERSHIP"
	EnvSessionCacheSize       = "SESSION_CACHE_SIZE"
	EnvSessionTTL             = "SESSION_TTL"
	EnvBlobCacheSize          = "BLOB_CACHE_SIZE"
	EnvBlobCacheTTL           = "BLOB_CACHE_TTL"
	EnvTimezone               = "TIMEZONE"
	EnvAPIURL                 = "API_URL"
	EnvDiscordToken           = "DISCORD_TOKEN"
	EnvDiscordAppID           = "DISCORD_APP_ID"
	EnvDiscordGuildID         = "DISCORD_GUILD_ID"
	EnvDiscordHealthPort      = "DISCORD_HEALTH_PORT"
	EnvDiscordForceUpdate     = "DISCORD_FORCE_COMMAND_UPDATE"
)

// Defaults
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "questtown"
	DefaultVersion          = "dev"
	DefaultStorageBackend   = "file"
	DefaultDataDir          = "data"
	DefaultDBName           = "questtown"
	DefaultDBMaxConns       = 20
	DefaultSessionCacheSize = 256
	DefaultTimezone         = "Local"
	DefaultAPIURL           = "http://localhost:8080"
	DefaultDiscordPort      = "8082"
)

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
