package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// Environment variable prefix for rcg configuration.
const envPrefix = "RCG"

// Loader reads the config file.
// Environment variables are applied by the resolver, not here, so each
// value keeps an accurate source.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file yields an empty Config.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Missing config file is fine: defaults and env apply.
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadOptions configures LoadConfig.
type LoadOptions struct {
	// ConfigFlag is the --config flag value.
	ConfigFlag string

	// Validate checks the loaded file against the CUE schema.
	Validate bool
}

// LoadResult is the outcome of LoadConfig.
type LoadResult struct {
	// Config is the loaded configuration (never nil on success).
	Config *Config

	// Path is the resolved config path.
	Path Resolved[string]

	// Exists reports whether the file was found.
	Exists bool
}

// LoadConfig resolves the config path, loads the file and optionally
// validates it.
func LoadConfig(opts LoadOptions) (*LoadResult, error) {
	path, err := ResolveConfigPath(opts.ConfigFlag)
	if err != nil {
		return nil, err
	}

	exists, err := FileExists(path.Value)
	if err != nil {
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	cfg, err := NewLoader().Load(path.Value)
	if err != nil {
		return nil, err
	}

	if opts.Validate && exists {
		v, err := NewValidator()
		if err != nil {
			return nil, err
		}
		if err := v.ValidateFile(path.Value); err != nil {
			return nil, err
		}
	}

	return &LoadResult{Config: cfg, Path: path, Exists: exists}, nil
}
