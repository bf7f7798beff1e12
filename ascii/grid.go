package ascii

import (
	"fmt"
	"image"
	"image/color"
)

// PixelGrid is a dense row-major store of samples. A slot is absent until Set.
// A grid belongs to a single conversion and is never shared.
type PixelGrid struct {
	width   int
	height  int
	cells   []PixelSample
	present []bool
}

// NewPixelGrid allocates an empty grid of width columns and height rows.
func NewPixelGrid(width, height int) (*PixelGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixel grid %dx%d: %w", width, height, ErrInvalidGridSize)
	}
	return &PixelGrid{
		width:   width,
		height:  height,
		cells:   make([]PixelSample, width*height),
		present: make([]bool, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *PixelGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *PixelGrid) Height() int { return g.height }

// Set stores s at row, col. Out of range coordinates panic like slice indexing.
func (g *PixelGrid) Set(row, col int, s PixelSample) {
	i := g.index(row, col)
	g.cells[i] = s
	g.present[i] = true
}

// At returns the sample at row, col and whether the slot was populated.
func (g *PixelGrid) At(row, col int) (PixelSample, bool) {
	i := g.index(row, col)
	return g.cells[i], g.present[i]
}

func (g *PixelGrid) index(row, col int) int {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("pixel grid: cell (%d, %d) out of range %dx%d", row, col, g.width, g.height))
	}
	return row*g.width + col
}

// BuildGrid samples every pixel of img into a grid of the image's own size.
// Row indexes y and col indexes x, both relative to the image bounds.
func BuildGrid(img image.Image) (*PixelGrid, error) {
	bounds := img.Bounds()
	grid, err := NewPixelGrid(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	for row := 0; row < grid.height; row++ {
		for col := 0; col < grid.width; col++ {
			grid.Set(row, col, SampleFromNRGBA(nrgbaAt(img, bounds.Min.X+col, bounds.Min.Y+row)))
		}
	}

	return grid, nil
}

// nrgbaAt reads a pixel as non-premultiplied bytes, skipping the colour
// model conversion when the image already stores NRGBA.
func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
