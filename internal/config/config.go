// Package config loads dashboard settings from an optional config file, a
// .env file and DASHBOARD_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. DASHBOARD_SERVER_ADDRESS.
const EnvPrefix = "DASHBOARD"

type Configuration struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type AuthConfig struct {
	// Secret signs session tokens. Only the serve command requires it.
	Secret        string        `mapstructure:"secret" validate:"omitempty,min=16"`
	TokenTTL      time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
	SecureCookies bool          `mapstructure:"secure_cookies"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
}

// ErrMissingSecret is returned by RequireSecret when no signing secret is set.
var ErrMissingSecret = errors.New("auth secret is required: set " + EnvPrefix + "_AUTH_SECRET")

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.path", "./data/dashboard.db")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.secure_cookies", false)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("logging.level", "info")
}

// Load reads the configuration. configFile may be empty, in which case
// config.yaml is looked up in the working directory and ./config.
func Load(configFile string) (*Configuration, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		slog.Debug("Using config file", "path", v.ConfigFileUsed())
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Configuration) Validate() error {
	return validator.New().Struct(c)
}

// RequireSecret reports ErrMissingSecret when no token signing secret is set.
func (c Configuration) RequireSecret() error {
	if c.Auth.Secret == "" {
		return ErrMissingSecret
	}
	return nil
}
