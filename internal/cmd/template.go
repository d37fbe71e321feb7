package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/rcg/internal/cmdtypes"
	"github.com/opmodel/rcg/internal/cmdutil"
	"github.com/opmodel/rcg/internal/config"
	oerrors "github.com/opmodel/rcg/internal/errors"
	"github.com/opmodel/rcg/internal/output"
	"github.com/opmodel/rcg/internal/templates"
)

// sampleName is the component name used for sample renderings.
const sampleName = "example"

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Inspect the documents rcg can render",
		Long: `Commands for discovering and inspecting the documents rcg renders.

Use 'rcg template show <document>' to preview a document with the
current defaults.`,
	}

	c.AddCommand(
		newTemplateListCmd(),
		newTemplateShowCmd(g),
	)

	return c
}

func newTemplateListCmd() *cobra.Command {
	var skeletons bool

	c := &cobra.Command{
		Use:   "list",
		Short: "List available documents",
		Long: `Lists all renderable documents with their descriptions.

The default document is marked with "(default)". With --skeletons the
named templates of the embedded catalog are listed instead.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if skeletons {
				return runSkeletonList(c.OutOrStdout())
			}
			return runTemplateList(c.OutOrStdout())
		},
	}

	c.Flags().BoolVar(&skeletons, "skeletons", false, "List the embedded skeleton templates")

	return c
}

func newTemplateShowCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show <document>",
		Short: "Show document details and a sample rendering",
		Long: `Shows a document's description, the request fields that change its
output and a rendering for the name "example" using the resolved defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTemplateShow(c.OutOrStdout(), args[0], g)
		},
	}
}

func runTemplateList(w io.Writer) error {
	tbl := output.NewTable("DOCUMENT", "DESCRIPTION", "VARIANTS")
	for _, d := range templates.Documents() {
		variants := strings.Join(d.Variants, ", ")
		if variants == "" {
			variants = "-"
		}
		tbl.Row(output.FormatDefault(d.Name, d.Default), d.Description, variants)
	}

	if output.IsTerminal(w) {
		fmt.Fprintln(w, tbl.String())
	} else {
		fmt.Fprint(w, tbl.Plain())
	}
	return nil
}

func runSkeletonList(w io.Writer) error {
	for _, name := range templates.Default().ListSkeletons() {
		fmt.Fprintln(w, name)
	}
	return nil
}

func runTemplateShow(w io.Writer, name string, g *cmdtypes.GlobalConfig) error {
	doc, err := templates.GetDocument(name)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err: oerrors.NewNotFoundError(err.Error(), "", "Run 'rcg template list' to see available documents."),
		}
	}

	sample, err := renderSample(doc.Name, g)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Document: %s\n", output.FormatDefault(doc.Name, doc.Default))
	fmt.Fprintf(w, "Description: %s\n", doc.Description)
	if len(doc.Variants) > 0 {
		fmt.Fprintf(w, "Variants: %s\n", strings.Join(doc.Variants, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sample (%s):\n", output.StyleDim.Render("name "+sampleName))
	return cmdutil.WriteDocument(w, sample)
}

// renderSample renders a document for sampleName with env and config
// defaults applied.
func renderSample(document string, g *cmdtypes.GlobalConfig) (string, error) {
	resolved := config.Resolve(config.ResolveOptions{Config: g.Config})

	switch document {
	case "index":
		return templates.RenderIndex(sampleName, resolved.UpperCase.Value), nil
	case "folder-index":
		return templates.RenderFolderIndex([]string{sampleName}), nil
	case "test":
		req, err := cmdutil.TestRequest(sampleName, nil, resolved)
		if err != nil {
			return "", err
		}
		return templates.RenderTest(req), nil
	default:
		req, err := cmdutil.ComponentRequest(sampleName, resolved)
		if err != nil {
			return "", err
		}
		return templates.Render(req), nil
	}
}
