package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"camel case", "myComponent", "MyComponent"},
		{"already capitalized", "MyComponent", "MyComponent"},
		{"single letter", "a", "A"},
		{"empty", "", ""},
		{"rest untouched", "hELLO", "HELLO"},
		{"tail case kept", "fooBAR_baz", "FooBAR_baz"},
		{"leading digit", "9lives", "9lives"},
		{"leading symbol", "$store", "$store"},
		{"multibyte first rune", "élan", "Élan"},
		{"invalid utf8", "\xffabc", "\xffabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.input))
		})
	}
}
