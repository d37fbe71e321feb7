package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/rcg/internal/cmdtypes"
	"github.com/opmodel/rcg/internal/config"
	oerrors "github.com/opmodel/rcg/internal/errors"
	"github.com/opmodel/rcg/internal/output"
)

func newVetCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the rcg configuration file",
		Long: `Validate the rcg configuration file against the internal schema.

The config path is resolved using precedence:
  --config flag > RCG_CONFIG env > ~/.rcg/config.yaml

Examples:
  # Validate default configuration
  rcg config vet

  # Validate custom config path
  rcg config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, g)
		},
	}
}

func runVet(c *cobra.Command, g *cmdtypes.GlobalConfig) error {
	path, err := config.ExpandPath(g.ConfigPath.Value)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	output.Debug("validating config", "path", path, "source", g.ConfigPath.Source)

	exists, err := config.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err: oerrors.NewNotFoundError("configuration file not found", path,
				"Run 'rcg config init' to create default configuration."),
		}
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", path)
			for _, e := range validationErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
		}
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
