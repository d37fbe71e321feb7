package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/rcg/internal/cmdtypes"
	"github.com/opmodel/rcg/internal/cmdutil"
	"github.com/opmodel/rcg/internal/config"
	"github.com/opmodel/rcg/internal/output"
	"github.com/opmodel/rcg/internal/templates"
)

// NewTestCmd creates the test command.
func NewTestCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		tf cmdutil.TestFlags
		sf cmdutil.StrictFlag
	)

	c := &cobra.Command{
		Use:   "test <name>",
		Short: "Render a snapshot test stub for a component",
		Long: `Render an enzyme snapshot test for a component. With --smoke the stub
also mounts the component into a detached element and unmounts it.

--ts defaults to the resolved language (defaults.language / RCG_LANGUAGE).

Examples:
  rcg test button --upper --smoke
  rcg test card --ts`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTest(c, args[0], g, sf.Strict)
		},
	}

	tf.AddTo(c)
	sf.AddTo(c)

	return c
}

func runTest(c *cobra.Command, name string, g *cmdtypes.GlobalConfig, strict bool) error {
	if err := cmdutil.CheckName(name, strict, templates.ValidateComponentName); err != nil {
		return err
	}

	resolved := config.Resolve(cmdutil.ResolveOptions(c, g.Config))
	resolved.LogResolvedValues()

	req, err := cmdutil.TestRequest(name, cmdutil.ChangedBool(c, "ts"), resolved)
	if err != nil {
		return err
	}

	if err := cmdutil.WriteDocument(c.OutOrStdout(), templates.RenderTest(req)); err != nil {
		return err
	}

	if g.Verbose {
		output.DocumentLogger("test").Info(output.FormatCheckmark("rendered test for " + templates.Capitalize(name)))
	}
	return nil
}
