// Package config loads service settings from configs/config.yml with
// environment overrides (WARDROBE_STORE_DRIVER, WARDROBE_AUTH_SIGNING_KEY, ...).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "WARDROBE"
	configName = "config"

	// DefaultSigningKey is a placeholder; deployments must override it.
	DefaultSigningKey = "change-me"

	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

type Config struct {
	Port  string `mapstructure:"port"`
	Log   Log    `mapstructure:"log"`
	Auth  Auth   `mapstructure:"auth"`
	Store Store  `mapstructure:"store"`
	HTTP  HTTP   `mapstructure:"http"`
	CORS  CORS   `mapstructure:"cors"`
	WS    WS     `mapstructure:"ws"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Auth struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	BcryptCost int           `mapstructure:"bcrypt_cost"`
}

// Store selects where users and wardrobes live. "memory" keeps everything in
// process and loses it on restart.
type Store struct {
	Driver string `mapstructure:"driver"`
	SQLite SQLite `mapstructure:"sqlite"`
	Redis  Redis  `mapstructure:"redis"`
}

type SQLite struct {
	Path string `mapstructure:"path"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type HTTP struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type WS struct {
	DefaultInterval time.Duration `mapstructure:"default_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("auth.signing_key", DefaultSigningKey)
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.sqlite.path", "wardrobe.db")
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", "wardrobe:")
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("ws.default_interval", time.Second)
}

// Load reads config.yml from the given directories (first match wins). A
// missing file is not an error: defaults and environment still apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UsesDefaultSigningKey reports whether tokens are signed with the shipped placeholder key.
func (a Auth) UsesDefaultSigningKey() bool {
	return a.SigningKey == DefaultSigningKey
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite, DriverRedis:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Auth.SigningKey == "" {
		return errors.New("auth.signing_key must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	return nil
}
