package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds CLI-facing defaults for qrmatrix: which error-correction
// level and symbol form a command uses when the caller doesn't override
// them, and how a generated symbol is rendered to the terminal.
type Config struct {
	LogLevel string       `yaml:"loglevel"`
	LogFile  string       `yaml:"logfile"`
	Encode   EncodeConfig `yaml:"encode"`
	Render   RenderConfig `yaml:"render"`
}

// EncodeConfig carries the defaults the CLI falls back to when an
// invocation doesn't specify them explicitly. Only ECLevel and Form are
// consulted; MinVersion is loaded but no command reads it.
type EncodeConfig struct {
	ECLevel    string `yaml:"ec_level"`    // "low", "medium", "quartile", "high"
	Form       string `yaml:"form"`        // "qr" or "micro"
	MinVersion int    `yaml:"min_version"` // 0 means "no hint"
}

// RenderConfig selects the output style for encode and structured-append.
type RenderConfig struct {
	Style string `yaml:"style"` // "halfblock", "text", or "png"
	Scale int    `yaml:"scale"` // PNG module scale, ignored otherwise
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		LogLevel: "warn",
		LogFile:  "./qrmatrix.log",
		Encode: EncodeConfig{
			ECLevel: "medium",
			Form:    "qr",
		},
		Render: RenderConfig{
			Style: "halfblock",
			Scale: 8,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
