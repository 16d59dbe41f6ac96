package config

import "time"

// Options configures the config loader.
type Options struct {
	// YAMLPath is the path to the primary YAML config file.
	YAMLPath string

	// EnvPath is the path to the fallback .env file, used only when YAML is absent.
	EnvPath string

	// AllowProcessEnv lets Init succeed with only the process environment
	// when neither file exists.
	AllowProcessEnv bool
}

// ConfigProvider is the interface consumers depend on for reading configuration.
// Implementations must be safe for concurrent use.
type ConfigProvider interface {
	// GetString returns the value associated with the key as a string.
	GetString(key string) string

	// GetInt returns the value associated with the key as an int.
	GetInt(key string) int

	// GetBool returns the value associated with the key as a bool.
	GetBool(key string) bool

	// GetDuration returns the value associated with the key as a time.Duration.
	GetDuration(key string) time.Duration

	// IsSet checks whether the key is set in the config or the process environment.
	IsSet(key string) bool

	// Set overrides the value for key, used for command-line flags.
	Set(key string, value any)

	// Source returns which config source is active: "yaml", "env" or "process".
	Source() string
}
