// Package cmdutil provides shared command utilities for the render commands.
// It centralizes flag groups, request construction from resolved
// configuration, name checks and document output.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/rcg/internal/config"
)

// ComponentFlags holds the flags that select a component skeleton.
type ComponentFlags struct {
	Kind     string
	Platform string
	Language string
	Props    bool
}

// AddTo registers the component flags on the given cobra command.
func (f *ComponentFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Kind, "kind", "k", "",
		"Component kind: class or functional (default: from config)")
	cmd.Flags().StringVarP(&f.Platform, "platform", "p", "",
		"Target platform: web or native (default: from config)")
	cmd.Flags().StringVarP(&f.Language, "lang", "l", "",
		"Source language: js or ts (default: from config)")
	cmd.Flags().BoolVar(&f.Props, "props", false,
		"Add an empty prop-types block or props interface")
}

// PathFlags holds the flag that selects the import path form.
type PathFlags struct {
	UpperCase bool
}

// AddTo registers the path flags on the given cobra command.
func (f *PathFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.UpperCase, "upper", "u", false,
		"Import from the capitalized path")
}

// TestFlags holds the flags of the test stub command.
type TestFlags struct {
	PathFlags
	TypeScript bool
	Smoke      bool
}

// AddTo registers the test flags on the given cobra command.
func (f *TestFlags) AddTo(cmd *cobra.Command) {
	f.PathFlags.AddTo(cmd)
	cmd.Flags().BoolVar(&f.TypeScript, "ts", false,
		"Use TypeScript namespace imports (default: from config language)")
	cmd.Flags().BoolVar(&f.Smoke, "smoke", false,
		"Add a mount/unmount smoke assertion")
}

// StrictFlag makes name check failures fatal.
type StrictFlag struct {
	Strict bool
}

// AddTo registers the strict flag on the given cobra command.
func (f *StrictFlag) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Strict, "strict", false,
		"Fail instead of warning when a name is not a valid identifier")
}

// ResolveOptions builds resolver inputs from the flags the user set
// explicitly on cmd. Flags left untouched do not shadow env or config values.
func ResolveOptions(cmd *cobra.Command, cfg *config.Config) config.ResolveOptions {
	return config.ResolveOptions{
		Config:         cfg,
		KindFlag:       ChangedString(cmd, "kind"),
		PlatformFlag:   ChangedString(cmd, "platform"),
		LanguageFlag:   ChangedString(cmd, "lang"),
		PropsFlag:      ChangedBool(cmd, "props"),
		UpperCaseFlag:  ChangedBool(cmd, "upper"),
		SmokeFlag:      ChangedBool(cmd, "smoke"),
		TimestampsFlag: ChangedBool(cmd, "timestamps"),
	}
}

// ChangedString returns the flag value when it was set on the command line.
func ChangedString(cmd *cobra.Command, name string) *string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return nil
	}
	v := flag.Value.String()
	return &v
}

// ChangedBool returns the flag value when it was set on the command line.
func ChangedBool(cmd *cobra.Command, name string) *bool {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}
