package main

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asciicreator/ascii"
)

func TestBrailleRender(t *testing.T) {
	img := testImage(16, 16)

	r := &BrailleRenderer{Filter: DefaultBrailleFilter()}
	out, err := r.Render(img)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	for _, char := range strings.ReplaceAll(out, "\n", "") {
		assert.True(t, char >= '⠀' && char <= '⣿', "unexpected rune %q", char)
	}

	_, err = r.Render(nil)
	assert.ErrorIs(t, err, ascii.ErrNilImage)
}

func TestBrailleColorize(t *testing.T) {
	withColorProfile(t, termenv.TrueColor)

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	// right block stays transparent

	r := &BrailleRenderer{Palette: []colorful.Color{{R: 1}, {B: 1}}}
	out := r.colorize(img, "⣿⣿\n")

	assert.Contains(t, out, "\x1b[38;2;255;0;0m⣿")
	assert.True(t, strings.HasSuffix(out, "⣿\n"))
	assert.Equal(t, 1, strings.Count(out, "\x1b[38;2;"), "transparent block is not coloured")
}

func TestBlockColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 4))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	c, ok := blockColor(img, 0, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.5, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 0.5, c.B, 1e-9)

	_, ok = blockColor(image.NewNRGBA(image.Rect(0, 0, 2, 4)), 0, 0)
	assert.False(t, ok)
}
