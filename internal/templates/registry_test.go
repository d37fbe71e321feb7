package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDocument(t *testing.T) {
	d, err := GetDocument("test")
	require.NoError(t, err)
	assert.Equal(t, "test", d.Name)
	assert.Contains(t, d.Variants, "smoke")

	_, err = GetDocument("stylesheet")
	assert.Error(t, err)
}

func TestDocuments(t *testing.T) {
	docs := Documents()
	require.Len(t, docs, len(DocumentNames()))

	defaults := 0
	for i, d := range docs {
		assert.Equal(t, DocumentNames()[i], d.Name)
		assert.NotEmpty(t, d.Description)
		if d.Default {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults, "exactly one document should be the default")
	assert.Equal(t, DefaultDocumentName, DefaultDocument().Name)
}
