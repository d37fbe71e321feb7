// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/rcg/internal/config"
	oerrors "github.com/opmodel/rcg/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file, empty when the file is absent.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath config.Resolved[string]

	// ConfigExists reports whether ConfigPath was found on disk.
	ConfigExists bool

	// Verbose mirrors the --verbose flag.
	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// AnnotationLenientConfig marks commands that still run when the config
// file fails to load or validate.
const AnnotationLenientConfig = "rcg/lenient-config"

// IsLenient reports whether c or any of its parents carries
// AnnotationLenientConfig.
func IsLenient(c *cobra.Command) bool {
	for ; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[AnnotationLenientConfig]; ok {
			return true
		}
	}
	return false
}
