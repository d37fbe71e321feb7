package cmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"adds newline", "export {\n    a\n}", "export {\n    a\n}\n"},
		{"keeps single newline", "export default Foo;\n", "export default Foo;\n"},
		{"collapses extra newlines", "x\n\n\n", "x\n"},
		{"empty", "", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteDocument(&buf, tt.doc))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
