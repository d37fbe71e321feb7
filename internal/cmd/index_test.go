package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/rcg/internal/testutil"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{"raw path", []string{"index", "foo"}, nil, "export { default } from './foo';\n"},
		{"upper flag", []string{"index", "foo", "--upper"}, nil, "export { default } from './Foo';\n"},
		{"upper env", []string{"index", "foo"}, map[string]string{"RCG_UPPER_CASE": "true"}, "export { default } from './Foo';\n"},
		{"flag beats env", []string{"index", "foo", "--upper=false"}, map[string]string{"RCG_UPPER_CASE": "true"}, "export { default } from './foo';\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.IsolateHome(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestFolderIndex(t *testing.T) {
	testutil.IsolateHome(t)

	t.Run("order preserved", func(t *testing.T) {
		stdout, _, err := execute(t, "folder-index", "b", "a")
		require.NoError(t, err)
		assert.Equal(t, "import b from './b' \nimport a from './a' \nexport {\n    b, \na\n}\n", stdout)
	})

	t.Run("no folders", func(t *testing.T) {
		stdout, _, err := execute(t, "folder-index")
		require.NoError(t, err)
		assert.Equal(t, "export {\n    \n}\n", stdout)
	})

	t.Run("reserved word strict", func(t *testing.T) {
		_, _, err := execute(t, "folder-index", "Button", "default", "--strict")
		assert.Error(t, err)
	})
}
