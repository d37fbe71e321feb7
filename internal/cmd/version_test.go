package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/rcg/internal/version"
	"github.com/opmodel/rcg/internal/testutil"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd(nil)

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestVersion(t *testing.T) {
	testutil.IsolateHome(t)

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Get().String()+"\n", stdout)
}
