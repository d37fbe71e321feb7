package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/rcg/internal/cmdtypes"
	"github.com/opmodel/rcg/internal/cmdutil"
	"github.com/opmodel/rcg/internal/config"
	"github.com/opmodel/rcg/internal/output"
	"github.com/opmodel/rcg/internal/templates"
)

// NewIndexCmd creates the index command.
func NewIndexCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		pf cmdutil.PathFlags
		sf cmdutil.StrictFlag
	)

	c := &cobra.Command{
		Use:   "index <name>",
		Short: "Render an index file re-exporting a component",
		Long: `Render a one-line barrel file that re-exports the default export of
a component.

Examples:
  # export { default } from './button';
  rcg index button

  # export { default } from './Button';
  rcg index button --upper`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runIndex(c, args[0], g, sf.Strict)
		},
	}

	pf.AddTo(c)
	sf.AddTo(c)

	return c
}

func runIndex(c *cobra.Command, name string, g *cmdtypes.GlobalConfig, strict bool) error {
	if err := cmdutil.CheckName(name, strict, templates.ValidateComponentName); err != nil {
		return err
	}

	resolved := config.Resolve(cmdutil.ResolveOptions(c, g.Config))
	resolved.LogResolvedValues()

	doc := templates.RenderIndex(name, resolved.UpperCase.Value)
	if err := cmdutil.WriteDocument(c.OutOrStdout(), doc); err != nil {
		return err
	}

	if g.Verbose {
		output.DocumentLogger("index").Info(output.FormatCheckmark("rendered index for " + name))
	}
	return nil
}
