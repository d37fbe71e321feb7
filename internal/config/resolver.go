package config

import (
	"github.com/spf13/viper"

	"github.com/opmodel/rcg/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Resolved is a configuration value together with its source and the
// lower-precedence values it shadowed.
type Resolved[T any] struct {
	Value    T
	Source   ConfigSource
	Shadowed map[ConfigSource]T
}

// resolve applies flag > env > config > default precedence.
// Nil pointers mean "not set" at that layer.
func resolve[T any](flag, env, cfg *T, def T) Resolved[T] {
	r := Resolved[T]{Shadowed: make(map[ConfigSource]T)}

	layers := []struct {
		source ConfigSource
		value  *T
	}{
		{SourceFlag, flag},
		{SourceEnv, env},
		{SourceConfig, cfg},
		{SourceDefault, &def},
	}

	for _, l := range layers {
		if l.value == nil {
			continue
		}
		if r.Source == "" {
			r.Value = *l.value
			r.Source = l.source
			continue
		}
		r.Shadowed[l.source] = *l.value
	}

	return r
}

// Environment variable names for each key.
var envKeys = map[string]string{
	"kind":       "RCG_KIND",
	"platform":   "RCG_PLATFORM",
	"language":   "RCG_LANGUAGE",
	"props":      "RCG_PROPS",
	"upperCase":  "RCG_UPPER_CASE",
	"smoke":      "RCG_SMOKE",
	"timestamps": "RCG_TIMESTAMPS",
}

// envReader reads bound RCG_* variables through viper so booleans are
// parsed the same way as in the config file.
type envReader struct {
	v *viper.Viper
}

func newEnvReader() *envReader {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
	return &envReader{v: v}
}

func (e *envReader) str(key string) *string {
	if !e.v.IsSet(key) {
		return nil
	}
	s := e.v.GetString(key)
	return &s
}

func (e *envReader) boolean(key string) *bool {
	if !e.v.IsSet(key) {
		return nil
	}
	b := e.v.GetBool(key)
	return &b
}

// ResolveOptions contains the inputs to Resolve.
// Flag fields are nil when the flag was not given on the command line.
type ResolveOptions struct {
	Config *Config

	KindFlag       *string
	PlatformFlag   *string
	LanguageFlag   *string
	PropsFlag      *bool
	UpperCaseFlag  *bool
	SmokeFlag      *bool
	TimestampsFlag *bool
}

// ResolvedConfig holds every resolved generation and logging setting.
type ResolvedConfig struct {
	Kind       Resolved[string]
	Platform   Resolved[string]
	Language   Resolved[string]
	Props      Resolved[bool]
	UpperCase  Resolved[bool]
	Smoke      Resolved[bool]
	Timestamps Resolved[bool]
}

// Resolve resolves all settings using precedence:
// (1) flag, (2) RCG_* env, (3) config file, (4) built-in default.
func Resolve(opts ResolveOptions) *ResolvedConfig {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	env := newEnvReader()

	return &ResolvedConfig{
		Kind:       resolve(opts.KindFlag, env.str("kind"), nonEmpty(cfg.Defaults.Kind), DefaultKind),
		Platform:   resolve(opts.PlatformFlag, env.str("platform"), nonEmpty(cfg.Defaults.Platform), DefaultPlatform),
		Language:   resolve(opts.LanguageFlag, env.str("language"), nonEmpty(cfg.Defaults.Language), DefaultLanguage),
		Props:      resolve(opts.PropsFlag, env.boolean("props"), cfg.Defaults.Props, false),
		UpperCase:  resolve(opts.UpperCaseFlag, env.boolean("upperCase"), cfg.Defaults.UpperCase, false),
		Smoke:      resolve(opts.SmokeFlag, env.boolean("smoke"), cfg.Defaults.Smoke, false),
		Timestamps: resolve(opts.TimestampsFlag, env.boolean("timestamps"), cfg.Log.Timestamps, true),
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) RCG_CONFIG env, (3) ~/.rcg/config.yaml default.
func ResolveConfigPath(flagValue string) (Resolved[string], error) {
	paths, err := DefaultPaths()
	if err != nil {
		return Resolved[string]{}, err
	}

	env := viper.New()
	_ = env.BindEnv("config", "RCG_CONFIG")

	var envValue *string
	if env.IsSet("config") {
		s := env.GetString("config")
		envValue = &s
	}

	return resolve(nonEmpty(flagValue), envValue, nil, paths.ConfigFile), nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func (r *ResolvedConfig) LogResolvedValues() {
	logResolved("kind", r.Kind)
	logResolved("platform", r.Platform)
	logResolved("language", r.Language)
	logResolved("props", r.Props)
	logResolved("upperCase", r.UpperCase)
	logResolved("smoke", r.Smoke)
	logResolved("timestamps", r.Timestamps)
}

func logResolved[T any](key string, v Resolved[T]) {
	output.Debug("config value resolved",
		"key", key,
		"value", v.Value,
		"source", v.Source,
	)
	for source, shadowed := range v.Shadowed {
		if source == SourceDefault {
			continue
		}
		output.Debug("  shadowed by higher precedence",
			"key", key,
			"shadowed_source", source,
			"shadowed_value", shadowed,
		)
	}
}
