// Package config provides configuration loading and management.
package config

// Defaults holds the generation defaults applied when a flag is not given.
type Defaults struct {
	// Kind is the component kind: class or functional.
	// Env: RCG_KIND, Default: class
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" mapstructure:"kind"`

	// Platform is the target platform: web or native.
	// Env: RCG_PLATFORM, Default: web
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty" mapstructure:"platform"`

	// Language is the source language: js or ts.
	// Env: RCG_LANGUAGE, Default: js
	Language string `json:"language,omitempty" yaml:"language,omitempty" mapstructure:"language"`

	// Props adds an empty prop-types block or props interface.
	// Env: RCG_PROPS, Default: false
	Props *bool `json:"props,omitempty" yaml:"props,omitempty" mapstructure:"props"`

	// UpperCase imports components from the capitalized path.
	// Env: RCG_UPPER_CASE, Default: false
	UpperCase *bool `json:"upperCase,omitempty" yaml:"upperCase,omitempty" mapstructure:"upperCase"`

	// Smoke adds the mount/unmount assertion to test stubs.
	// Env: RCG_SMOKE, Default: false
	Smoke *bool `json:"smoke,omitempty" yaml:"smoke,omitempty" mapstructure:"smoke"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the rcg configuration.
// Loaded from ~/.rcg/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Defaults contains generation defaults.
	Defaults Defaults `json:"defaults" yaml:"defaults" mapstructure:"defaults"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}

// Built-in defaults.
const (
	DefaultKind     = "class"
	DefaultPlatform = "web"
	DefaultLanguage = "js"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `rcg config init` to generate the initial config file.
func DefaultConfig() *Config {
	f := false
	t := true
	return &Config{
		Defaults: Defaults{
			Kind:      DefaultKind,
			Platform:  DefaultPlatform,
			Language:  DefaultLanguage,
			Props:     &f,
			UpperCase: &f,
			Smoke:     &f,
		},
		Log: LogConfig{
			Timestamps: &t,
		},
	}
}
