// Package config loads the bootstrap configuration from the container
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/NavyStack/node-bb-docker/pkg/pkgmanager"
)

// unsetID marks an identity override that was not supplied by the caller.
const unsetID = -1

// Config captures every setting the bootstrap pipeline reads. It is
// populated once at startup and treated as immutable afterwards; no
// component performs ad hoc environment lookups.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (plain names, no prefix: CONFIG_DIR, SETUP, ...)
//  2. An optional <AppDir>/.env file, loaded before the environment is read
//  3. Default values
type Config struct {
	// ConfigDir is the persistent configuration directory. It survives
	// container recreation and is the durable home for the forum's
	// config.json and the package descriptor pair.
	ConfigDir string `mapstructure:"config_dir" validate:"required" yaml:"config_dir" json:"config_dir"`

	// InitVerb is the forum subcommand run on first start, before a
	// config.json exists. NodeBB accepts "install" (the default) and "setup".
	InitVerb string `mapstructure:"nodebb_init_verb" validate:"required" yaml:"nodebb_init_verb" json:"nodebb_init_verb"`

	// StartBuild triggers a forum build before every normal start.
	StartBuild bool `mapstructure:"start_build" yaml:"start_build" json:"start_build"`

	// Setup requests an explicit setup session when non-empty. It takes
	// priority over every other lifecycle branch.
	Setup string `mapstructure:"setup" yaml:"setup" json:"setup"`

	// PackageManager selects which package manager installs dependencies
	// and starts the forum.
	PackageManager pkgmanager.Manager `mapstructure:"package_manager" validate:"required,oneof=npm yarn pnpm" yaml:"package_manager" json:"package_manager"`

	// OverrideUpdateLock is read for compatibility with older images but is
	// not consumed by any pipeline step.
	OverrideUpdateLock bool `mapstructure:"override_update_lock" yaml:"override_update_lock" json:"override_update_lock"`

	// ContainerUser is the unprivileged service account the forum runs as.
	ContainerUser string `mapstructure:"container_user" validate:"required" yaml:"container_user" json:"container_user"`

	// ContainerUserID and ContainerGroupID are the service account's
	// built-in UID/GID.
	ContainerUserID  int `mapstructure:"container_user_id" validate:"gte=0" yaml:"container_user_id" json:"container_user_id"`
	ContainerGroupID int `mapstructure:"container_grp_id" validate:"gte=0" yaml:"container_grp_id" json:"container_grp_id"`

	// RemapUID and RemapGID are caller-supplied identity overrides (UID/GID
	// environment variables). A negative value means "not supplied".
	RemapUID int `mapstructure:"uid" yaml:"uid" json:"uid"`
	RemapGID int `mapstructure:"gid" yaml:"gid" json:"gid"`

	// Logging controls the bootstrap's own log output.
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"log_level" json:"log_level"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=text json" yaml:"log_format" json:"log_format"`

	// AppDir is the application source tree. It is fixed by the image
	// layout; tests override it directly.
	AppDir string `mapstructure:"-" yaml:"-" json:"-"`
}

// ConfigFile returns the path of the forum's durable configuration file.
// Its existence is the marker for "already installed".
func (c *Config) ConfigFile() string {
	return filepath.Join(c.ConfigDir, "config.json")
}

// HomeDir returns the service account's home directory.
func (c *Config) HomeDir() string {
	return filepath.Join("/home", c.ContainerUser)
}

// LogDir returns the forum's log directory inside the source tree.
func (c *Config) LogDir() string {
	return filepath.Join(c.AppDir, "logs")
}

// HasRemapUID reports whether the caller supplied a UID override.
func (c *Config) HasRemapUID() bool { return c.RemapUID >= 0 }

// HasRemapGID reports whether the caller supplied a GID override.
func (c *Config) HasRemapGID() bool { return c.RemapGID >= 0 }

// Load reads the bootstrap configuration from the environment, applies
// defaults, and validates the result.
func Load() (*Config, error) {
	// Containers frequently ship overrides in an .env file next to the
	// application; a missing file is not an error.
	if err := godotenv.Load(filepath.Join(DefaultAppDir, ".env")); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setupViper(v)

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to decode environment configuration: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setupViper registers a default for every setting so AutomaticEnv picks up
// the matching uppercase environment variable for each key.
func setupViper(v *viper.Viper) {
	v.AutomaticEnv()

	v.SetDefault("config_dir", DefaultConfigDir)
	v.SetDefault("nodebb_init_verb", DefaultInitVerb)
	v.SetDefault("start_build", false)
	v.SetDefault("setup", "")
	v.SetDefault("package_manager", string(pkgmanager.NPM))
	v.SetDefault("override_update_lock", false)
	v.SetDefault("container_user", DefaultContainerUser)
	v.SetDefault("container_user_id", DefaultContainerUserID)
	v.SetDefault("container_grp_id", DefaultContainerGroupID)
	v.SetDefault("uid", unsetID)
	v.SetDefault("gid", unsetID)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
}

// configDecodeHooks returns a combined decode hook for all custom types.
// Environment values always arrive as strings, so each scalar target gets
// an explicit conversion.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		managerDecodeHook(),
		stringToBoolHook(),
		stringToIntHook(),
	)
}

// managerDecodeHook converts strings into pkgmanager.Manager, rejecting
// unknown values at decode time.
func managerDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(pkgmanager.Manager("")) {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		return pkgmanager.Parse(s)
	}
}

// stringToBoolHook parses boolean environment values ("true", "1", "false").
func stringToBoolHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to.Kind() != reflect.Bool || from.Kind() != reflect.String {
			return data, nil
		}
		s := data.(string)
		if s == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value %q", s)
		}
		return b, nil
	}
}

// stringToIntHook parses integer environment values (UID, GID, ids).
func stringToIntHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to.Kind() != reflect.Int || from.Kind() != reflect.String {
			return data, nil
		}
		s := data.(string)
		if s == "" {
			return unsetID, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value %q", s)
		}
		return n, nil
	}
}
