package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/spanforge/pkg/pipeline"
)

// Cache backend names accepted in the config file.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Config is the on-disk CLI configuration, read from
// ~/.config/spanforge/config.toml. Every field has a working default, so
// the file is entirely optional.
//
// Example:
//
//	[defaults]
//	k = 500
//
//	[cache]
//	backend = "redis"
//
//	[cache.redis]
//	addr = "localhost:6379"
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Cache    CacheConfig    `toml:"cache"`
}

// DefaultsConfig holds default construction parameters.
type DefaultsConfig struct {
	// K is the default edge budget for cluster runs. Zero falls back to
	// the pipeline default.
	K int `toml:"k"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo", "none".
	Backend string `toml:"backend"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig holds redis backend settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig holds mongo backend settings.
type MongoConfig struct {
	URI string `toml:"uri"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{K: pipeline.DefaultK},
		Cache: CacheConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017"},
		},
	}
}

// LoadConfig reads the TOML config at path, layered over the defaults.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0])
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendNone:
	default:
		return fmt.Errorf("invalid cache backend: %q (must be one of: file, redis, mongo, none)", c.Cache.Backend)
	}
	if c.Defaults.K < 0 {
		return fmt.Errorf("invalid defaults.k: %d (must be positive)", c.Defaults.K)
	}
	return nil
}
