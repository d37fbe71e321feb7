// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	configcmd "github.com/opmodel/rcg/internal/cmd/config"
	"github.com/opmodel/rcg/internal/cmdtypes"
	"github.com/opmodel/rcg/internal/cmdutil"
	"github.com/opmodel/rcg/internal/config"
	oerrors "github.com/opmodel/rcg/internal/errors"
	"github.com/opmodel/rcg/internal/output"
	"github.com/opmodel/rcg/internal/version"
)

// NewRootCmd creates the root command for the rcg CLI.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	g := &cmdtypes.GlobalConfig{Config: &config.Config{}}

	rootCmd := &cobra.Command{
		Use:   "rcg",
		Short: "React component boilerplate renderer",
		Long: `rcg renders React and React Native component boilerplate.

It prints component sources, index files, folder indexes and snapshot
test stubs to stdout. Nothing is written to disk.

Defaults for every render flag come from ~/.rcg/config.yaml and RCG_*
environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			g.Verbose = verboseFlag
			return initializeGlobals(c, g, configFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: RCG_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output (env: RCG_TIMESTAMPS)")

	rootCmd.AddCommand(
		NewComponentCmd(g),
		NewIndexCmd(g),
		NewFolderIndexCmd(g),
		NewTestCmd(g),
		NewTemplateCmd(g),
		configcmd.NewConfigCmd(g),
		NewVersionCmd(g),
	)

	return rootCmd
}

// initializeGlobals loads the config file and sets up logging.
func initializeGlobals(c *cobra.Command, g *cmdtypes.GlobalConfig, configFlag string) error {
	result, loadErr := config.LoadConfig(config.LoadOptions{
		ConfigFlag: configFlag,
		Validate:   true,
	})
	if loadErr == nil {
		g.Config = result.Config
		g.ConfigPath = result.Path
		g.ConfigExists = result.Exists
	} else {
		g.Config = &config.Config{}
		if path, err := config.ResolveConfigPath(configFlag); err == nil {
			g.ConfigPath = path
			g.ConfigExists, _ = config.FileExists(path.Value)
		}
	}

	// Timestamps: flag > env > config > default (true).
	resolved := config.Resolve(config.ResolveOptions{
		Config:         g.Config,
		TimestampsFlag: cmdutil.ChangedBool(c, "timestamps"),
	})

	output.SetupLogging(output.LogConfig{
		Verbose:    g.Verbose,
		Timestamps: output.BoolPtr(resolved.Timestamps.Value),
		Writer:     c.ErrOrStderr(),
	})

	if loadErr != nil {
		if !cmdtypes.IsLenient(c) {
			return &oerrors.ExitError{
				Code: oerrors.ExitCodeFromError(loadErr),
				Err:  fmt.Errorf("loading config %s: %w", g.ConfigPath.Value, loadErr),
			}
		}
		output.Debug("config load error", "error", loadErr)
	}

	output.Debug("initializing CLI",
		"version", version.Get().Version,
		"config", g.ConfigPath.Value,
		"source", g.ConfigPath.Source,
		"exists", g.ConfigExists,
	)

	return nil
}
