// Package config provides configuration for san-english.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/errors"
)

// Defaults applied by NewConfig.
const (
	DefaultWorkers    = 1
	DefaultBufferSize = 10
	DefaultLogLevel   = "info"
	DefaultAddr       = ":8080"
)

// Config holds all program configuration. It is decoded from TOML and then
// overridden by command line flags.
type Config struct {
	// Mode is the default rendering mode ("simple" or "verbose").
	Mode english.Mode `toml:"mode"`

	// Workers is the number of goroutines translating a game.
	Workers int `toml:"workers"`

	// BufferSize is the capacity of the worker pool channels.
	BufferSize int `toml:"buffer_size"`

	Log    *LogConfig    `toml:"log"`
	Server *ServerConfig `toml:"server"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       english.Simple,
		Workers:    DefaultWorkers,
		BufferSize: DefaultBufferSize,
		Log:        NewLogConfig(),
		Server:     NewServerConfig(),
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML data over the defaults and validates the result.
func Decode(data []byte) (*Config, error) {
	cfg := NewConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Errors wrap errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if c.BufferSize < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "buffer_size must not be negative, got %d", c.BufferSize)
	}
	if c.Log == nil {
		c.Log = NewLogConfig()
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if c.Server == nil {
		c.Server = NewServerConfig()
	}
	if c.Server.Addr == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "server addr must not be empty")
	}
	return nil
}
