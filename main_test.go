package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asciicreator/ascii"
)

func TestRunText(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	require.NoError(t, SaveImage(src, testImage(60, 40)))

	out := filepath.Join(dir, "art.txt")
	require.NoError(t, run(&Options{Columns: 10, Out: out}, []string{src}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	img, err := LoadImage(src)
	require.NoError(t, err)
	want, err := ascii.New(ascii.WithColumns(10)).Text(img)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestRunImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	require.NoError(t, SaveImage(src, testImage(60, 40)))

	out := filepath.Join(dir, "art.png")
	require.NoError(t, run(&Options{FontSize: 10, Background: "#000000", Image: out}, []string{src}))

	img, err := LoadImage(out)
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	require.NoError(t, SaveImage(src, testImage(60, 40)))

	cfg := writeFile(t, "config.yml", "columns: 6\nglyphs:\n  \"#\": 0\n")
	out := filepath.Join(dir, "art.txt")
	require.NoError(t, run(&Options{Config: cfg, Out: out}, []string{src}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSuffix(string(got), "\n"), "\n") {
		assert.Equal(t, "# # # # # #", line)
	}
}

func TestRunErrors(t *testing.T) {
	assert.ErrorIs(t, run(&Options{}, nil), ErrNoInput)
	assert.Error(t, run(&Options{}, []string{filepath.Join(t.TempDir(), "missing.png")}))

	dir := t.TempDir()
	src := filepath.Join(dir, "tiny.png")
	require.NoError(t, SaveImage(src, testImage(20, 20)))
	err := run(&Options{Out: filepath.Join(dir, "x.txt")}, []string{src})
	assert.ErrorIs(t, err, ascii.ErrInvalidConfiguration)
}

func TestColorProfile(t *testing.T) {
	tests := []struct {
		name string
		want termenv.Profile
	}{
		{"truecolor", termenv.TrueColor},
		{"256", termenv.ANSI256},
		{"16", termenv.ANSI},
		{"none", termenv.Ascii},
	}

	for _, tt := range tests {
		if got := colorProfile(tt.name); got != tt.want {
			t.Errorf("colorProfile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
