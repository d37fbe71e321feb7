package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"class", Class, false},
		{"CLASS", Class, false},
		{"functional", Functional, false},
		{"fc", Functional, false},
		{" function ", Functional, false},
		{"hook", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "class, functional")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlatform(t *testing.T) {
	got, err := ParsePlatform("react-native")
	require.NoError(t, err)
	assert.Equal(t, Native, got)

	got, err = ParsePlatform("Web")
	require.NoError(t, err)
	assert.Equal(t, Web, got)

	_, err = ParsePlatform("desktop")
	assert.Error(t, err)
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{"js", JavaScript},
		{"javascript", JavaScript},
		{"JSX", JavaScript},
		{"ts", TypeScript},
		{"TypeScript", TypeScript},
		{"tsx", TypeScript},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLanguage("coffee")
	assert.Error(t, err)
}

func TestValidNames(t *testing.T) {
	assert.Equal(t, []string{"class", "functional"}, ValidKinds())
	assert.Equal(t, []string{"web", "native"}, ValidPlatforms())
	assert.Equal(t, []string{"js", "ts"}, ValidLanguages())
}
