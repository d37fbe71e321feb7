package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/rcg/internal/cmdtypes"
	"github.com/opmodel/rcg/internal/config"
	oerrors "github.com/opmodel/rcg/internal/errors"
	"github.com/opmodel/rcg/internal/output"
)

// configHeader is prepended to generated config files.
const configHeader = `# rcg configuration
# Values apply when the matching flag is not given.
# Environment overrides: RCG_KIND, RCG_PLATFORM, RCG_LANGUAGE, RCG_PROPS,
# RCG_UPPER_CASE, RCG_SMOKE, RCG_TIMESTAMPS.

`

func newInitCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new rcg configuration file",
		Long: `Create a new rcg configuration file with default values.

The configuration file is created at ~/.rcg/config.yaml by default.
Use --config flag or RCG_CONFIG to specify a different location.

Examples:
  # Initialize configuration
  rcg config init

  # Overwrite existing configuration
  rcg config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, g, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, g *cmdtypes.GlobalConfig, force bool) error {
	path, err := config.ExpandPath(g.ConfigPath.Value)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}
	if path == "" {
		return fmt.Errorf("config path not resolved")
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err: &oerrors.DetailError{
				Type:     "config exists",
				Message:  "configuration already exists",
				Location: path,
				Hint:     "Use --force to overwrite existing configuration.",
			},
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.DefaultConfig()); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))
	fmt.Fprintln(c.OutOrStdout(), "Validate with: rcg config vet")
	return nil
}
