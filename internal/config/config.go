// Package config loads server configuration from defaults, an optional YAML
// file and BRAINMON_ environment variables.
package config

import (
	"time"
)

// Store engines
const (
	StoreEngineRedis  = "redis"
	StoreEngineSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig `mapstructure:"server" validate:"required"`
	Store   StoreConfig  `mapstructure:"store" validate:"required"`
	PokeAPI ClientConfig `mapstructure:"pokeapi" validate:"required"`
	OpenTDB ClientConfig `mapstructure:"opentdb" validate:"required"`
	Battle  BattleConfig `mapstructure:"battle" validate:"required"`
}

// ServerConfig contains the gRPC listener and logging settings
type ServerConfig struct {
	Port      int    `mapstructure:"port" validate:"gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
}

// StoreConfig selects and configures the monster store
type StoreConfig struct {
	Engine     string `mapstructure:"engine" validate:"required,oneof=redis sqlite"`
	RedisAddr  string `mapstructure:"redis_addr" validate:"required_if=Engine redis"`
	SQLitePath string `mapstructure:"sqlite_path" validate:"required_if=Engine sqlite"`
}

// ClientConfig configures one remote HTTP API
type ClientConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// BattleConfig tunes the encounter orchestrator
type BattleConfig struct {
	FetchTimeout time.Duration `mapstructure:"fetch_timeout" validate:"gt=0"`
	DeleteDelay  time.Duration `mapstructure:"delete_delay" validate:"gte=0"`
}
