package cmdtypes

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	oerrors "github.com/opmodel/rcg/internal/errors"
)

func TestIsLenient(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	group := &cobra.Command{
		Use:         "config",
		Annotations: map[string]string{AnnotationLenientConfig: ""},
	}
	child := &cobra.Command{Use: "vet"}
	other := &cobra.Command{Use: "component"}

	group.AddCommand(child)
	root.AddCommand(group, other)

	assert.True(t, IsLenient(group))
	assert.True(t, IsLenient(child), "annotation is inherited from parents")
	assert.False(t, IsLenient(other))
	assert.False(t, IsLenient(root))
}

func TestExitCodeAliases(t *testing.T) {
	assert.Equal(t, oerrors.ExitSuccess, ExitSuccess)
	assert.Equal(t, oerrors.ExitGeneralError, ExitGeneralError)
	assert.Equal(t, oerrors.ExitValidationError, ExitValidationError)
	assert.Equal(t, oerrors.ExitNotFound, ExitNotFound)

	var err error = &ExitError{Code: ExitNotFound}
	assert.Equal(t, 5, oerrors.ExitCodeFromError(err))
}
