package config

import (
	"strings"

	"github.com/lgbarn/san-english-go/internal/errors"
)

// LogConfig holds settings for the logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level"`

	// File, if set, receives JSON log records in addition to stderr
	File string `toml:"file"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: DefaultLogLevel}
}

// Validate checks the level name.
func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidConfig, "unknown log level %q", l.Level)
}
