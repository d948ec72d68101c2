package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rpgo/projection-engine/internal/domain"
)

// Settings are runtime options read from the environment. Command-line flags override them.
type Settings struct {
	Env       string `env:"PROJECTOR_ENV"        envDefault:"prod"`
	LogLevel  string `env:"PROJECTOR_LOG_LEVEL"  envDefault:"info"`
	OutputDir string `env:"PROJECTOR_OUTPUT_DIR" envDefault:"."`
	Speed     string `env:"PROJECTOR_SPEED"      envDefault:"month"`
}

// Development reports whether the settings select the development profile.
func (s Settings) Development() bool {
	switch strings.ToLower(s.Env) {
	case "dev", "development", "local":
		return true
	}
	return false
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return LoadSettingsFrom(vars)
}

// LoadSettingsFrom reads Settings from the given variables instead of the process environment.
func LoadSettingsFrom(vars map[string]string) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: vars}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s.validate()
}

func (s Settings) validate() (Settings, error) {
	speed, err := domain.ParseSpeed(s.Speed)
	if err != nil {
		return Settings{}, fmt.Errorf("PROJECTOR_SPEED: %w", err)
	}
	s.Speed = string(speed)
	return s, nil
}
