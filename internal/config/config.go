package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host                   string   `mapstructure:"host"`
	Port                   int      `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
	AllowedOrigins         []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the persistence backend.
	Driver string `mapstructure:"driver" validate:"required,oneof=postgres mongo"`
	URL    string `mapstructure:"url"    validate:"required,url"`
	// Name is the database name for the mongo driver. Postgres reads it from URL.
	Name                   string `mapstructure:"name"                      validate:"required"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
	MigrateOnStart         bool   `mapstructure:"migrate_on_start"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret  string `mapstructure:"jwt_secret"  validate:"required,min=32"`
	BcryptCost int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}
