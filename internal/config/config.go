package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultStoreProvider is used when the config names no store provider.
const DefaultStoreProvider = "redis"

type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Store    struct {
		Provider string `mapstructure:"provider"` // "redis" or "memory"
		Redis    struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"store"`
}

// Load reads configuration from a yaml "config" file (searched in "." and
// "./config") with APP_-prefixed environment overrides. A missing config
// file is not an error; defaults and environment variables apply.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable support
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.BindEnv("log_level", "LOG_LEVEL")
	_ = viper.BindEnv("store.redis.address", "REDIS_ADDRESS")

	viper.SetDefault("store.provider", DefaultStoreProvider)
	viper.SetDefault("store.redis.address", "localhost:6379")
	viper.SetDefault("store.redis.db", 0)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.Store.Provider == "" {
		config.Store.Provider = DefaultStoreProvider
	}

	return &config, nil
}

// NewLogger builds a console zerolog logger at the given level.
// An empty or unparseable level falls back to info.
func NewLogger(level string) zerolog.Logger {
	parsed := zerolog.InfoLevel
	if level != "" {
		if l, err := zerolog.ParseLevel(level); err == nil {
			parsed = l
		}
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger().Level(parsed)
}
