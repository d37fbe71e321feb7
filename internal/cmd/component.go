package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/rcg/internal/cmdtypes"
	"github.com/opmodel/rcg/internal/cmdutil"
	"github.com/opmodel/rcg/internal/config"
	"github.com/opmodel/rcg/internal/output"
	"github.com/opmodel/rcg/internal/templates"
)

// NewComponentCmd creates the component command.
func NewComponentCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		cf cmdutil.ComponentFlags
		sf cmdutil.StrictFlag
	)

	c := &cobra.Command{
		Use:     "component <name>",
		Aliases: []string{"comp"},
		Short:   "Render a component source file",
		Long: `Render a class or functional component for web or native, in
JavaScript or TypeScript. The first letter of <name> is capitalized for
the exported symbol.

Examples:
  # Class component for the web, in JavaScript
  rcg component button

  # Functional React Native component in TypeScript with a props interface
  rcg component card --kind functional --platform native --lang ts --props`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runComponent(c, args[0], g, sf.Strict)
		},
	}

	cf.AddTo(c)
	sf.AddTo(c)

	return c
}

func runComponent(c *cobra.Command, name string, g *cmdtypes.GlobalConfig, strict bool) error {
	if err := cmdutil.CheckName(name, strict, templates.ValidateComponentName); err != nil {
		return err
	}

	resolved := config.Resolve(cmdutil.ResolveOptions(c, g.Config))
	resolved.LogResolvedValues()

	req, err := cmdutil.ComponentRequest(name, resolved)
	if err != nil {
		return err
	}

	if err := cmdutil.WriteDocument(c.OutOrStdout(), templates.Render(req)); err != nil {
		return err
	}

	if g.Verbose {
		output.DocumentLogger("component").Info(output.FormatCheckmark("rendered " + templates.Capitalize(name)))
	}
	return nil
}
