package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings that can come from the environment.
// Command-line flags win over these.
type Env struct {
	ConfigPath string `env:"BLADEFALL_CONFIG"`
	TickRate   int    `env:"BLADEFALL_TICK_RATE"`
	Seed       int64  `env:"BLADEFALL_SEED"`
	LogLevel   string `env:"BLADEFALL_LOG_LEVEL"`
	LogFile    string `env:"BLADEFALL_LOG_FILE"`
}

// ParseEnv reads the BLADEFALL_* variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if e.TickRate < 0 {
		return Env{}, fmt.Errorf("parse env: BLADEFALL_TICK_RATE must not be negative, got %d", e.TickRate)
	}
	return e, nil
}

// Apply overrides the loaded config with the environment's tick rate.
func (e Env) Apply(cfg BladefallConfig) BladefallConfig {
	if e.TickRate > 0 {
		cfg.TickRate = e.TickRate
	}
	return cfg
}
