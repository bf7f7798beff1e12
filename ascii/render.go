package ascii

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// grayInk is the draw colour of grayscale output before alpha is applied.
var grayInk = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

// Cell is one resolved grid position.
type Cell struct {
	Glyph     string
	Luminance float32
	Sample    PixelSample
	// Color is the ink the cell is drawn with in image output.
	Color color.NRGBA
}

// Text converts img to rows of glyphs. Glyphs in a row are separated by a
// single space and every row ends with a newline.
func (c *Converter) Text(img image.Image) (string, error) {
	grid, err := c.sample(img)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	glyphs := make([]string, grid.Width())
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			glyphs[col] = ""
			if s, ok := grid.At(row, col); ok {
				glyphs[col] = c.table.Glyph(s.Luminance(c.reversed))
			}
		}
		b.WriteString(strings.Join(glyphs, " "))
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// Image draws the glyphs of img onto a canvas the size of img. The glyph of
// grid cell (row, col) has its baseline origin at (row*cell, col*cell).
func (c *Converter) Image(img image.Image) (draw.Image, error) {
	grid, err := c.sample(img)
	if err != nil {
		return nil, err
	}

	f := c.font
	if f == nil {
		if f, err = DefaultFont(); err != nil {
			return nil, err
		}
	}

	cellSize := c.CellSize()
	face, err := newFace(f, cellSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	canvas := newCanvas(img)
	if !isTransparent(c.background) {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
	}

	drawer := &font.Drawer{Dst: canvas, Face: face}
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			s, ok := grid.At(row, col)
			if !ok {
				continue
			}
			cell := c.resolve(s)
			drawer.Src = image.NewUniform(cell.Color)
			drawer.Dot = fixed.Point26_6{
				X: toFixed(float64(row) * cellSize),
				Y: toFixed(float64(col) * cellSize),
			}
			drawer.DrawString(cell.Glyph)
		}
	}

	return canvas, nil
}

// Cells converts img to resolved cells, indexed [row][col].
func (c *Converter) Cells(img image.Image) ([][]Cell, error) {
	grid, err := c.sample(img)
	if err != nil {
		return nil, err
	}

	cells := make([][]Cell, grid.Height())
	for row := range cells {
		cells[row] = make([]Cell, grid.Width())
		for col := range cells[row] {
			if s, ok := grid.At(row, col); ok {
				cells[row][col] = c.resolve(s)
			}
		}
	}
	return cells, nil
}

func (c *Converter) resolve(s PixelSample) Cell {
	luminance := s.Luminance(c.reversed)
	return Cell{
		Glyph:     c.table.Glyph(luminance),
		Luminance: luminance,
		Sample:    s,
		Color:     c.ink(s, luminance),
	}
}

// ink picks the draw colour: the sample itself, or gray with alpha equal to
// luminance*255 in grayscale mode.
func (c *Converter) ink(s PixelSample, luminance float32) color.NRGBA {
	if !c.grayScale {
		return s.NRGBA()
	}
	ink := grayInk
	ink.A = GrayAlpha(luminance)
	return ink
}

// GrayAlpha returns round(luminance*255) clamped to a byte.
func GrayAlpha(luminance float32) uint8 {
	v := math.Round(float64(luminance) * 255.0)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// newCanvas allocates an empty image the size of src, keeping src's pixel
// format where it is one of the RGBA families.
func newCanvas(src image.Image) draw.Image {
	r := image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy())
	switch src.(type) {
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	default:
		return image.NewNRGBA(r)
	}
}

func isTransparent(c color.Color) bool {
	if c == nil {
		return true
	}
	r, g, b, a := c.RGBA()
	return r == 0 && g == 0 && b == 0 && a == 0
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
