package ascii

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelSampleLuminance(t *testing.T) {
	tests := []struct {
		name  string
		color color.NRGBA
		want  float32
	}{
		{"white", color.NRGBA{255, 255, 255, 255}, 1.0},
		{"black", color.NRGBA{0, 0, 0, 255}, 0.0},
		{"pure red", color.NRGBA{255, 0, 0, 255}, 0.2126},
		{"pure green", color.NRGBA{0, 255, 0, 255}, 0.7152},
		{"pure blue", color.NRGBA{0, 0, 255, 255}, 0.0722},
		{"alpha ignored", color.NRGBA{255, 255, 255, 0}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SampleFromNRGBA(tt.color)
			assert.InDelta(t, tt.want, s.Luminance(false), 1e-6)
			assert.InDelta(t, 1.0-s.Luminance(false), s.Luminance(true), 1e-6)
		})
	}
}

func TestPixelSampleNRGBA(t *testing.T) {
	for _, c := range []color.NRGBA{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{12, 128, 200, 77},
		{1, 254, 99, 128},
	} {
		s := SampleFromNRGBA(c)
		assert.Equal(t, c, s.NRGBA())
	}

	assert.Equal(t, PixelSample{R: 1, G: 0, B: 0.2, A: 1}, SampleFromNRGBA(color.NRGBA{255, 0, 51, 255}))
}

func TestNewPixelGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"valid", 3, 2, false},
		{"single cell", 1, 1, false},
		{"zero width", 0, 2, true},
		{"zero height", 3, 0, true},
		{"negative", -1, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewPixelGrid(tt.width, tt.height)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGridSize)
				assert.Nil(t, grid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, grid.Width())
			assert.Equal(t, tt.height, grid.Height())
		})
	}
}

func TestPixelGridSetAt(t *testing.T) {
	grid, err := NewPixelGrid(3, 2)
	require.NoError(t, err)

	_, ok := grid.At(1, 2)
	assert.False(t, ok, "slots start absent")

	s := PixelSample{R: 0.5, G: 0.25, B: 1, A: 1}
	grid.Set(1, 2, s)

	got, ok := grid.At(1, 2)
	assert.True(t, ok)
	assert.Equal(t, s, got)

	_, ok = grid.At(0, 0)
	assert.False(t, ok)

	assert.Panics(t, func() { grid.At(2, 0) })
	assert.Panics(t, func() { grid.Set(0, 3, s) })
}

func TestBuildGrid(t *testing.T) {
	// bounds away from the origin
	img := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	for y := 5; y < 7; y++ {
		for x := 5; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 0, A: 255})
		}
	}

	grid, err := BuildGrid(img)
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Width())
	assert.Equal(t, 2, grid.Height())

	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			s, ok := grid.At(row, col)
			require.True(t, ok, "cell (%d, %d) not populated", row, col)
			assert.Equal(t, color.NRGBA{R: uint8((col + 5) * 10), G: uint8((row + 5) * 10), B: 0, A: 255}, s.NRGBA())
		}
	}
}

func TestBuildGridUnpremultiplies(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 128, G: 0, B: 0, A: 128})

	grid, err := BuildGrid(img)
	require.NoError(t, err)

	s, _ := grid.At(0, 0)
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 128}, s.NRGBA())
}

func TestBuildGridEmptyImage(t *testing.T) {
	_, err := BuildGrid(image.NewNRGBA(image.Rect(0, 0, 0, 4)))
	assert.ErrorIs(t, err, ErrInvalidGridSize)
}
