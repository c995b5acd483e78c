package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks a loaded configuration against the struct validation tags
// plus the cross-field rules the tags cannot express.
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if !cfg.PackageManager.IsValid() {
		return fmt.Errorf("unsupported package manager %q (valid: npm, yarn, pnpm)", cfg.PackageManager)
	}

	// An identity override must be a usable UID/GID, not an arbitrary
	// negative number. The unset sentinel is the only negative allowed.
	if cfg.RemapUID < unsetID {
		return fmt.Errorf("invalid UID override %d", cfg.RemapUID)
	}
	if cfg.RemapGID < unsetID {
		return fmt.Errorf("invalid GID override %d", cfg.RemapGID)
	}

	return nil
}
