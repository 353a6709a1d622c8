package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. BRAINMON_SERVER_PORT
const EnvPrefix = "BRAINMON"

// Default values
const (
	DefaultPort         = 50051
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultStoreEngine  = StoreEngineRedis
	DefaultRedisAddr    = "localhost:6379"
	DefaultSQLitePath   = "data/brainmon.sqlite"
	DefaultPokeAPIURL   = "https://pokeapi.co/api/v2/"
	DefaultOpenTDBURL   = "https://opentdb.com/"
	DefaultHTTPTimeout  = 15 * time.Second
	DefaultFetchTimeout = 20 * time.Second
	DefaultDeleteDelay  = time.Second
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.log_format", DefaultLogFormat)
	v.SetDefault("store.engine", DefaultStoreEngine)
	v.SetDefault("store.redis_addr", DefaultRedisAddr)
	v.SetDefault("store.sqlite_path", DefaultSQLitePath)
	v.SetDefault("pokeapi.base_url", DefaultPokeAPIURL)
	v.SetDefault("pokeapi.timeout", DefaultHTTPTimeout)
	v.SetDefault("opentdb.base_url", DefaultOpenTDBURL)
	v.SetDefault("opentdb.timeout", DefaultHTTPTimeout)
	v.SetDefault("battle.fetch_timeout", DefaultFetchTimeout)
	v.SetDefault("battle.delete_delay", DefaultDeleteDelay)
}

// Load builds a Config from defaults, the YAML file at path (skipped when empty) and BRAINMON_ environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags of the whole tree
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
