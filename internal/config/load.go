package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "FOOD"

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.name", "food-ordering")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)
	v.SetDefault("database.migrate_on_start", false)
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without a default or config file entry are invisible to Unmarshal
	// unless bound explicitly.
	for _, key := range []string{"database.url", "auth.jwt_secret"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	applyLegacyEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// applyLegacyEnv honours the IP, PORT and MONGOPORT variables used by earlier
// deployments when the prefixed variables are not set.
func applyLegacyEnv(v *viper.Viper) {
	if ip := os.Getenv("IP"); ip != "" && !isSet("SERVER_HOST") {
		v.Set("server.host", ip)
	}
	if port := os.Getenv("PORT"); port != "" && !isSet("SERVER_PORT") {
		v.Set("server.port", port)
	}
	if v.GetString("database.url") == "" && v.GetString("database.driver") == "mongo" {
		host := v.GetString("server.host")
		if host == "" {
			host = "localhost"
		}
		mongoPort := os.Getenv("MONGOPORT")
		if mongoPort == "" {
			mongoPort = "27017"
		}
		v.Set("database.url", fmt.Sprintf("mongodb://%s:%s", host, mongoPort))
	}
}

func isSet(suffix string) bool {
	return os.Getenv(EnvPrefix+"_"+suffix) != ""
}
