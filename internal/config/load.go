package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/aretw0/blanket"
	"github.com/aretw0/blanket/internal/adapters/redis"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "BLANKET"

func setDefaults(v *viper.Viper) {
	c := blanket.DefaultCase()
	v.SetDefault("case.name", c.Name)
	v.SetDefault("case.geometry.first_wall_area", c.Geometry.FirstWallArea)
	v.SetDefault("case.geometry.major_radius", c.Geometry.MajorRadius)
	v.SetDefault("case.geometry.thicknesses", c.Geometry.Thicknesses)
	v.SetDefault("case.materials.temperature", c.Materials.Temperature)
	v.SetDefault("case.materials.li6_enrichment", c.Materials.Li6Enrichment)
	v.SetDefault("case.source.peak_energy", c.Source.PeakEnergy)
	v.SetDefault("case.source.mass_ratio", c.Source.MassRatio)
	v.SetDefault("case.source.ion_temperature", c.Source.IonTemperature)
	v.SetDefault("case.settings.batches", c.Settings.Batches)
	v.SetDefault("case.settings.particles", c.Settings.Particles)
	v.SetDefault("case.settings.inactive", c.Settings.Inactive)
	v.SetDefault("case.settings.photon_transport", c.Settings.PhotonTransport)
	v.SetDefault("case.tallies.group_structure", c.Tallies.GroupStructure)

	v.SetDefault("log.level", "info")
	v.SetDefault("groups.file", "")
	v.SetDefault("export.dir", "openmc")
	v.SetDefault("export.format", "openmc")
	v.SetDefault("store.backend", "none")
	v.SetDefault("store.path", ".blanket/models")
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", redis.DefaultPrefix)
	v.SetDefault("store.redis.lock_prefix", redis.DefaultLockPrefix)
	v.SetDefault("store.redis.ttl", "0s")
	v.SetDefault("server.addr", ":8080")
}

// Load reads configuration from defaults, the optional YAML file at path and
// the environment. An empty path skips the file; a missing file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("config file not found: %w", err)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Store.Redis.Enabled = cfg.Store.Backend == "redis"

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration, including the case ranges.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := cfg.Case.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
