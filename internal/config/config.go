// Package config loads settings for the lcssim binaries from defaults, an
// optional YAML file, LCSSIM_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
)

// EnvPrefix is prepended to every environment variable, e.g. LCSSIM_LOG_LEVEL.
const EnvPrefix = "LCSSIM"

// LogConfig configures the process logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
	File  string `mapstructure:"file"`
}

// EngineConfig configures the comparison.
type EngineConfig struct {
	MaxRowWidth int    `mapstructure:"max_row_width"`
	Normalize   string `mapstructure:"normalize"`
	Details     bool   `mapstructure:"details"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	ComputeTimeout time.Duration `mapstructure:"compute_timeout"`
	MaxRequestSize int           `mapstructure:"max_request_size"`
	Concurrency    int           `mapstructure:"concurrency"`
	WarmUp         bool          `mapstructure:"warm_up"`
}

// Config is the full configuration tree.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Engine EngineConfig `mapstructure:"engine"`
	Server ServerConfig `mapstructure:"server"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")

	v.SetDefault("engine.max_row_width", lcs.DefaultMaxRowWidth)
	v.SetDefault("engine.normalize", "none")
	v.SetDefault("engine.details", false)

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.compute_timeout", 30*time.Second)
	v.SetDefault("server.max_request_size", 10*1024*1024)
	v.SetDefault("server.concurrency", 0)
	v.SetDefault("server.warm_up", true)
}

// FlagKeys maps command-line flag names to configuration keys. Flags not
// present in a command's flag set are ignored.
var FlagKeys = map[string]string{
	"log-level":        "log.level",
	"log-json":         "log.json",
	"log-file":         "log.file",
	"max-row-width":    "engine.max_row_width",
	"normalize":        "engine.normalize",
	"details":          "engine.details",
	"port":             "server.port",
	"read-timeout":     "server.read_timeout",
	"write-timeout":    "server.write_timeout",
	"compute-timeout":  "server.compute_timeout",
	"max-request-size": "server.max_request_size",
	"concurrency":      "server.concurrency",
	"warm-up":          "server.warm_up",
}

// Defaults overrides built-in defaults for one binary, keyed like "log.level".
type Defaults map[string]interface{}

// Load builds a Config. configFile may be empty, in which case only defaults,
// environment and flags apply. Only flags the user actually set override
// the other sources. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet, overrides ...Defaults) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	for _, o := range overrides {
		for key, value := range o {
			v.SetDefault(key, value)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Engine.MaxRowWidth <= 0 {
		return errors.New("engine.max_row_width must be greater than 0")
	}
	if _, err := normalizer.ParseType(c.Engine.Normalize); err != nil {
		return fmt.Errorf("engine.normalize: %w", err)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.MaxRequestSize < 0 {
		return errors.New("server.max_request_size must not be negative")
	}
	return nil
}
