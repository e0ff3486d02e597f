package deps

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"pkgstage.run/internal/staging"
)

// ProvideStagingConfig builds the staging configuration from defaults and
// PKGSTAGE_* environment overrides. The package descriptor list is loaded
// separately by the stage command.
func ProvideStagingConfig() (staging.Config, error) {
	var cfg staging.Config
	if err := env.Parse(&cfg); err != nil {
		return staging.Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	cfg.Default()

	return cfg, nil
}
