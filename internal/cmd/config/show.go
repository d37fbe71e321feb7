package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/rcg/internal/cmdtypes"
	"github.com/opmodel/rcg/internal/config"
)

func newShowCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration in effect after applying RCG_* environment
variables, the config file and built-in defaults.

Each value is annotated with the layer it came from.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runShow(c, g)
		},
	}
}

func runShow(c *cobra.Command, g *cmdtypes.GlobalConfig) error {
	r := config.Resolve(config.ResolveOptions{Config: g.Config})

	doc, err := resolvedDocument(r)
	if err != nil {
		return err
	}

	state := "found"
	if !g.ConfigExists {
		state = "missing"
	}
	w := c.OutOrStdout()
	fmt.Fprintf(w, "# config: %s (%s, %s)\n", g.ConfigPath.Value, g.ConfigPath.Source, state)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// resolvedDocument builds a YAML mapping of r with each value's source as
// a line comment.
func resolvedDocument(r *config.ResolvedConfig) (*yaml.Node, error) {
	defaults, err := mapping(
		field("kind", r.Kind.Value, r.Kind.Source),
		field("platform", r.Platform.Value, r.Platform.Source),
		field("language", r.Language.Value, r.Language.Source),
		field("props", r.Props.Value, r.Props.Source),
		field("upperCase", r.UpperCase.Value, r.UpperCase.Source),
		field("smoke", r.Smoke.Value, r.Smoke.Source),
	)
	if err != nil {
		return nil, err
	}

	log, err := mapping(field("timestamps", r.Timestamps.Value, r.Timestamps.Source))
	if err != nil {
		return nil, err
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "defaults"}, defaults,
			{Kind: yaml.ScalarNode, Value: "log"}, log,
		},
	}, nil
}

type entry struct {
	key    string
	value  any
	source config.ConfigSource
}

func field(key string, value any, source config.ConfigSource) entry {
	return entry{key: key, value: value, source: source}
}

func mapping(entries ...entry) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		var value yaml.Node
		if err := value.Encode(e.value); err != nil {
			return nil, fmt.Errorf("encoding %s: %w", e.key, err)
		}
		value.LineComment = string(e.source)
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: e.key}, &value)
	}
	return node, nil
}
