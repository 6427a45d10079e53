// Package config loads the command-line configuration: the case parameters
// plus logging, group structure data, export, store and server settings.
//
// Sources, lowest precedence first: built-in defaults (the reference case),
// an optional YAML file, and BLANKET_* environment variables, where nested keys
// join with underscores (BLANKET_CASE_MATERIALS_LI6_ENRICHMENT).
package config

import (
	"time"

	"github.com/aretw0/blanket"
)

// Config holds all application configuration.
type Config struct {
	Case   blanket.Case `mapstructure:"case"`
	Log    LogConfig    `mapstructure:"log"`
	Groups GroupsConfig `mapstructure:"groups"`
	Export ExportConfig `mapstructure:"export"`
	Store  StoreConfig  `mapstructure:"store"`
	Server ServerConfig `mapstructure:"server"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// GroupsConfig points at the energy group structure data.
type GroupsConfig struct {
	File string `mapstructure:"file"`
}

// ExportConfig selects where and how models are written.
type ExportConfig struct {
	Dir    string `mapstructure:"dir" validate:"required"`
	Format string `mapstructure:"format" validate:"oneof=openmc manifest"`
}

// StoreConfig selects the model snapshot store.
type StoreConfig struct {
	Backend string      `mapstructure:"backend" validate:"oneof=none memory file redis"`
	Path    string      `mapstructure:"path"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig configures the redis store.
type RedisConfig struct {
	Addr       string        `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db" validate:"gte=0"`
	Prefix     string        `mapstructure:"prefix"`
	LockPrefix string        `mapstructure:"lock_prefix" validate:"nefield=Prefix"`
	TTL        time.Duration `mapstructure:"ttl" validate:"gte=0"`
	Enabled    bool          `mapstructure:"-"`
}

// ServerConfig configures the inspection server.
type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}
