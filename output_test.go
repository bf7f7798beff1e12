package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadImage(t *testing.T) {
	src := testImage(12, 8)

	tests := []struct {
		name     string
		file     string
		lossless bool
	}{
		{"png", "out.png", true},
		{"bmp", "out.bmp", true},
		{"tiff", "out.tiff", true},
		{"tif", "out.TIF", true},
		{"jpeg", "out.jpg", false},
		{"gif", "out.gif", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, SaveImage(path, src))

			img, err := LoadImage(path)
			require.NoError(t, err)
			assert.Equal(t, src.Bounds(), img.Bounds())

			if !tt.lossless {
				return
			}
			for y := 0; y < 8; y++ {
				for x := 0; x < 12; x++ {
					got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
					require.Equal(t, src.NRGBAAt(x, y), got, "pixel (%d, %d)", x, y)
				}
			}
		})
	}
}

func TestSaveImageErrors(t *testing.T) {
	dir := t.TempDir()
	img := testImage(2, 2)

	assert.Error(t, SaveImage(filepath.Join(dir, "noext"), img))

	path := filepath.Join(dir, "out.xcf")
	assert.Error(t, SaveImage(path, img))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "failed output is removed")
}

func TestEncodeImageFormats(t *testing.T) {
	img := testImage(3, 3)
	for _, format := range []string{"png", ".PNG", "jpeg", "gif", "bmp", "tif"} {
		var buf bytes.Buffer
		require.NoError(t, EncodeImage(&buf, img, format), format)

		_, decoded, err := DecodeImage(&buf)
		require.NoError(t, err, format)
		assert.NotEmpty(t, decoded)
	}
}

func TestLoadImageErrors(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	_, _, err = DecodeImage(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)

}
