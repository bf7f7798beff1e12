package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBanner(t *testing.T) {
	for _, text := range []string{"Go", "asciicreator", "  @me  "} {
		t.Run(text, func(t *testing.T) {
			art, err := RenderBanner(text)
			require.NoError(t, err)

			lines := strings.Split(art, "\n")
			require.NotEmpty(t, lines)
			assert.NotEmpty(t, strings.TrimSpace(lines[0]), "leading blank line")
			assert.NotEmpty(t, strings.TrimSpace(lines[len(lines)-1]), "trailing blank line")
			assert.False(t, strings.HasSuffix(art, "\n"))
		})
	}

	_, err := RenderBanner("   ")
	assert.Error(t, err)
}

func TestTrimBlankLines(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"     \n @ \n     \n", " @ "},
		{"a\n\nb\n", "a\n\nb"},
		{"   \n   \n", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := trimBlankLines(tt.in); got != tt.want {
			t.Errorf("trimBlankLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
