package config

import (
	"strings"

	"github.com/NavyStack/node-bb-docker/pkg/pkgmanager"
)

// Built-in defaults. They match the image layout the bootstrap ships in.
const (
	DefaultConfigDir        = "/opt/config"
	DefaultAppDir           = "/usr/src/app"
	DefaultInitVerb         = "install"
	DefaultContainerUser    = "nodebb"
	DefaultContainerUserID  = 1001
	DefaultContainerGroupID = 1001
	DefaultLogLevel         = "INFO"
	DefaultLogFormat        = "text"
)

// ApplyDefaults fills in any unset configuration fields.
//
// Zero values ("", 0) are replaced with defaults; explicit values are
// preserved. RemapUID/RemapGID keep their "unset" sentinel so the identity
// phase can tell "not supplied" apart from an explicit 0.
func ApplyDefaults(cfg *Config) {
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = DefaultConfigDir
	}
	if cfg.AppDir == "" {
		cfg.AppDir = DefaultAppDir
	}
	if cfg.InitVerb == "" {
		cfg.InitVerb = DefaultInitVerb
	}
	if cfg.PackageManager == "" {
		cfg.PackageManager = pkgmanager.NPM
	}
	if cfg.ContainerUser == "" {
		cfg.ContainerUser = DefaultContainerUser
	}
	if cfg.ContainerUserID == 0 {
		cfg.ContainerUserID = DefaultContainerUserID
	}
	if cfg.ContainerGroupID == 0 {
		cfg.ContainerGroupID = DefaultContainerGroupID
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	// Normalize log level for consistent internal representation.
	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
}

// GetDefaultConfig returns a Config with all default values applied.
// Useful for generating sample output and for tests.
func GetDefaultConfig() *Config {
	cfg := &Config{
		RemapUID: unsetID,
		RemapGID: unsetID,
	}
	ApplyDefaults(cfg)
	return cfg
}
