// Package config provides YAML-based configuration loading for the bitmap
// editor, its history journal and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// MaxDimension mirrors the largest image the editor accepts.
const MaxDimension = 250

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full application configuration.
type Config struct {
	Editor  EditorConfig      `yaml:"editor"`
	History HistoryConfig     `yaml:"history"`
	Log     LogConfig         `yaml:"log"`
	SSH     SSHConfig         `yaml:"ssh"`
	Palette map[string]string `yaml:"palette"` // colour letter -> ANSI colour
}

// EditorConfig controls the line editor.
type EditorConfig struct {
	Prompt    string `yaml:"prompt"`
	Welcome   string `yaml:"welcome"`
	MaxWidth  int    `yaml:"max_width"`
	MaxHeight int    `yaml:"max_height"`
}

// HistoryConfig controls the command journal.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SSHConfig controls the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // empty = ~/.bitmap/ssh_host_ed25519
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Overrides carries command-line values that take precedence over the file.
// Empty fields leave the loaded value untouched.
type Overrides struct {
	DBPath     string
	LogLevel   string
	NoHistory  bool
	SSHAddress string
	HostKey    string
}

// ApplyOverrides copies the non-empty overrides into cfg.
func (cfg *Config) ApplyOverrides(o Overrides) {
	if o.DBPath != "" {
		cfg.History.DBPath = o.DBPath
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.NoHistory {
		cfg.History.Enabled = false
	}
	if o.SSHAddress != "" {
		cfg.SSH.Address = o.SSHAddress
	}
	if o.HostKey != "" {
		cfg.SSH.HostKey = o.HostKey
	}
}

// Validate reports the first problem found in cfg.
func (cfg Config) Validate() error {
	if cfg.Editor.MaxWidth < 1 || cfg.Editor.MaxWidth > MaxDimension {
		return fmt.Errorf("%w: editor.max_width must be between 1 and %d, got %d",
			ErrInvalidConfig, MaxDimension, cfg.Editor.MaxWidth)
	}
	if cfg.Editor.MaxHeight < 1 || cfg.Editor.MaxHeight > MaxDimension {
		return fmt.Errorf("%w: editor.max_height must be between 1 and %d, got %d",
			ErrInvalidConfig, MaxDimension, cfg.Editor.MaxHeight)
	}
	if _, err := cfg.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if cfg.History.Enabled && cfg.History.DBPath == "" {
		return fmt.Errorf("%w: history.db_path is required when history is enabled", ErrInvalidConfig)
	}
	if cfg.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout must not be negative", ErrInvalidConfig)
	}
	for key := range cfg.Palette {
		if len(key) != 1 || key[0] < 'A' || key[0] > 'Z' {
			return fmt.Errorf("%w: palette key %q is not a colour letter", ErrInvalidConfig, key)
		}
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means warn.
func (cfg Config) LogLevel() (log.Level, error) {
	if cfg.Log.Level == "" {
		return log.WarnLevel, nil
	}
	return log.ParseLevel(cfg.Log.Level)
}
