package output

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	out := NewTable("NAME", "DESCRIPTION").
		Row("component", "Component source file").
		Row("index", "Barrel file").
		String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "Barrel file")
}

func TestTable_Plain(t *testing.T) {
	out := NewTable("NAME", "DESCRIPTION").
		Row("component", "Component source file").
		Row("index", "Barrel file").
		Plain()

	want := "NAME       DESCRIPTION\n" +
		"component  Component source file\n" +
		"index      Barrel file\n"
	assert.Equal(t, want, out)
}

func TestTable_PlainShortRow(t *testing.T) {
	out := NewTable("A", "B", "C").Row("x").Plain()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "x", lines[1])
}

func TestIsTerminal_NonFile(t *testing.T) {
	var sb strings.Builder
	assert.False(t, IsTerminal(&sb))
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty-*")
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
