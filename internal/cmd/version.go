package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/rcg/internal/cmdtypes"
	"github.com/opmodel/rcg/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show rcg version information.

Displays:
  - rcg version, commit, and build date
  - Go and CUE SDK versions`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cmdtypes.AnnotationLenientConfig: ""},
		RunE: func(c *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return err
		},
	}
}
