// Package config loads runtime settings for the logit backend and CLI.
package config

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/born-ml/logit/internal/parallel"
	"github.com/born-ml/logit/internal/tensor"
)

// Config represents the application configuration.
type Config struct {
	Parallel ParallelConfig `mapstructure:"parallel"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	DType    string         `mapstructure:"dtype"`
}

// ParallelConfig controls how kernels split their index range.
type ParallelConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	Workers      int  `mapstructure:"workers"`
	MinChunkSize int  `mapstructure:"min_chunk_size"`
}

// BackendConfig controls CPU backend behavior.
type BackendConfig struct {
	Forwarding bool `mapstructure:"forwarding"`
}

// LoggingConfig controls the logrus logger.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	p := parallel.DefaultConfig()
	return &Config{
		Parallel: ParallelConfig{
			Enabled:      p.Enabled,
			Workers:      0,
			MinChunkSize: p.MinChunkSize,
		},
		Backend: BackendConfig{
			Forwarding: false,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			Console: true,
		},
		DType: "float64",
	}
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("parallel.enabled", d.Parallel.Enabled)
	v.SetDefault("parallel.workers", d.Parallel.Workers)
	v.SetDefault("parallel.min_chunk_size", d.Parallel.MinChunkSize)
	v.SetDefault("backend.forwarding", d.Backend.Forwarding)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.console", d.Logging.Console)
	v.SetDefault("dtype", d.DType)
}

// New returns a viper instance with defaults and LOGIT_* environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("LOGIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path (if non-empty) and the environment.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Parallel.Workers < 0 {
		return errors.Errorf("parallel.workers must be >= 0, got %d", c.Parallel.Workers)
	}
	if c.Parallel.MinChunkSize < 0 {
		return errors.Errorf("parallel.min_chunk_size must be >= 0, got %d", c.Parallel.MinChunkSize)
	}
	dt, err := tensor.ParseDataType(c.DType)
	if err != nil {
		return errors.Wrap(err, "dtype")
	}
	if !dt.IsFloat() {
		return tensor.UnsupportedDType("dtype", dt)
	}
	return nil
}

// ParallelSettings converts the parallel section into a parallel.Config.
// Zero workers means one per CPU.
func (c *Config) ParallelSettings() parallel.Config {
	workers := c.Parallel.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return parallel.Config{
		Enabled:      c.Parallel.Enabled && workers > 1,
		NumWorkers:   workers,
		MinChunkSize: c.Parallel.MinChunkSize,
	}
}

// DataType returns the configured default element type.
func (c *Config) DataType() tensor.DataType {
	dt, err := tensor.ParseDataType(c.DType)
	if err != nil {
		return tensor.Float64
	}
	return dt
}
