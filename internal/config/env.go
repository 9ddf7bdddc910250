package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from DOTCONF_* environment variables.
// When environ is non-nil it is used instead of the process environment.
func parseEnv(cfg *Settings, environ map[string]string) error {
	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error reading environment settings: %w", err)
	}
	return nil
}
