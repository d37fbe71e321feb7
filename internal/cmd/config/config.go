// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/rcg/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
// Its commands run even when the config file is invalid.
func NewConfigCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management",
		Long:        `Configuration management for the rcg CLI.`,
		Annotations: map[string]string{cmdtypes.AnnotationLenientConfig: ""},
	}

	c.AddCommand(newInitCmd(g))
	c.AddCommand(newShowCmd(g))
	c.AddCommand(newVetCmd(g))

	return c
}
