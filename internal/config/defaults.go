package config

import (
	_ "embed"
	"maps"
	"time"
)

//go:embed defaults/bitmap.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// defaultPalette matches defaults/bitmap.yaml.
var defaultPalette = map[string]string{
	"A": "9",
	"B": "12",
	"C": "14",
	"G": "10",
	"K": "240",
	"M": "13",
	"O": "15",
	"R": "1",
	"W": "255",
	"Y": "11",
	"Z": "208",
}

// Default returns the hard-coded configuration used when no file can be read.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			Prompt:    "> ",
			Welcome:   "type ? for help",
			MaxWidth:  MaxDimension,
			MaxHeight: MaxDimension,
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "~/.bitmap/history.db",
		},
		Log: LogConfig{
			Level: "warn",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Palette: maps.Clone(defaultPalette),
	}
}
