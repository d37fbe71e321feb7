package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	skeletons := c.ListSkeletons()
	for _, want := range []string{"class", "functional", "index", "folder-index", "test", "imports", "markup"} {
		assert.Contains(t, skeletons, want)
	}
	for _, s := range skeletons {
		assert.NotContains(t, s, ".tmpl", "file-level templates should not be listed")
	}
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestLoadCatalog_MissingSkeleton(t *testing.T) {
	fsys := fstest.MapFS{
		"skeletons/index.tmpl": &fstest.MapFile{Data: []byte(`{{define "index"}}x{{end}}`)},
	}

	_, err := loadCatalog(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not defined")
}

func TestLoadCatalog_ParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"skeletons/broken.tmpl": &fstest.MapFile{Data: []byte(`{{define "class"}}{{if}}{{end}}`)},
	}

	_, err := loadCatalog(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing skeletons")
}

func TestRequiredTemplates(t *testing.T) {
	assert.Equal(t, []string{"class", "folder-index", "functional", "index", "test"}, requiredTemplates())
}
