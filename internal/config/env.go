package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds KEIX_* overrides. Unset variables leave their field nil.
type EnvConfig struct {
	Lang       *string  `env:"KEIX_LANG"`
	Mode       *string  `env:"KEIX_MODE"`
	ReleaseMs  *int     `env:"KEIX_RELEASE_MS"`
	Corpus     *string  `env:"KEIX_CORPUS"`
	Seed       *int64   `env:"KEIX_SEED"`
	NoHistory  *bool    `env:"KEIX_NO_HISTORY"`
	FocusWeak  *bool    `env:"KEIX_FOCUS_WEAK"`
	WeakTop    *int     `env:"KEIX_WEAK_TOP"`
	WeakFactor *float64 `env:"KEIX_WEAK_FACTOR"`
	WeakWindow *int     `env:"KEIX_WEAK_WINDOW"`
	LogLevel   *string  `env:"KEIX_LOG_LEVEL"`
	LogFormat  *string  `env:"KEIX_LOG_FORMAT"`
	LogFile    *string  `env:"KEIX_LOG_FILE"`
}

// ParseEnv loads overrides from the process environment.
func ParseEnv() (EnvConfig, error) {
	return parseEnv(env.Options{})
}

// ParseEnvFrom loads overrides from the given variables instead of the process environment.
func ParseEnvFrom(vars map[string]string) (EnvConfig, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parseEnv(env.Options{Environment: vars})
}

func parseEnv(opts env.Options) (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
