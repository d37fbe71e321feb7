package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/rcg/internal/cmdtypes"
	"github.com/opmodel/rcg/internal/cmdutil"
	"github.com/opmodel/rcg/internal/output"
	"github.com/opmodel/rcg/internal/templates"
)

// NewFolderIndexCmd creates the folder-index command.
func NewFolderIndexCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var sf cmdutil.StrictFlag

	c := &cobra.Command{
		Use:   "folder-index [folder...]",
		Short: "Render an index file aggregating several folders",
		Long: `Render a barrel file with one import per folder followed by a single
export listing every folder, in the order given. With no folders the
export list is empty.

Examples:
  rcg folder-index Button Card Header`,
		RunE: func(c *cobra.Command, args []string) error {
			return runFolderIndex(c, args, g, sf.Strict)
		},
	}

	sf.AddTo(c)

	return c
}

func runFolderIndex(c *cobra.Command, folders []string, g *cmdtypes.GlobalConfig, strict bool) error {
	for _, folder := range folders {
		if err := cmdutil.CheckName(folder, strict, templates.ValidateIdentifier); err != nil {
			return err
		}
	}

	if err := cmdutil.WriteDocument(c.OutOrStdout(), templates.RenderFolderIndex(folders)); err != nil {
		return err
	}

	if g.Verbose {
		output.DocumentLogger("folder-index").Info(output.FormatCheckmark(fmt.Sprintf("rendered %d folders", len(folders))))
	}
	return nil
}
