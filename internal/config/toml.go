// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	General GeneralConfig `toml:"general"`
	Tester  TesterConfig  `toml:"tester"`
	Typing  TypingConfig  `toml:"typing"`
	Log     LogConfig     `toml:"log"`
}

// GeneralConfig maps settings shared by both views.
type GeneralConfig struct {
	Lang *string `toml:"lang"`
	Mode *string `toml:"mode"`
}

// TesterConfig maps switch tester settings.
type TesterConfig struct {
	ReleaseMs *int `toml:"release-ms"`
}

// TypingConfig maps speed typing settings.
type TypingConfig struct {
	Corpus     *string  `toml:"corpus"`
	Seed       *int64   `toml:"seed"`
	History    *bool    `toml:"history"`
	FocusWeak  *bool    `toml:"focus-weak"`
	WeakTop    *int     `toml:"weak-top"`
	WeakFactor *float64 `toml:"weak-factor"`
	WeakWindow *int     `toml:"weak-window"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
	File   *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
