package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kevin-cantwell/dotmatrix"
	"github.com/lucasb-eyer/go-colorful"

	"asciicreator/ascii"
)

// DefaultBrailleFilter sharpens edges, darkens midtones and lifts contrast
// before dithering, which keeps faces readable at braille resolution.
func DefaultBrailleFilter() ascii.Filter {
	return &ascii.ChainFilter{Filters: []ascii.Filter{
		&ascii.SharpnessFilter{Sigma: 1, Amount: 2},
		&ascii.GammaFilter{Gamma: 0.8},
		&ascii.ContrastFilter{Percentage: 20},
	}}
}

// BrailleRenderer prints images as dithered braille, optionally colouring
// each character from the source block snapped to a palette.
type BrailleRenderer struct {
	Filter  ascii.Filter
	Palette []colorful.Color
	Color   bool
}

// Render prints img. img should already be sized to the terminal: every
// braille character covers 2x4 source pixels.
func (r *BrailleRenderer) Render(img image.Image) (string, error) {
	if img == nil {
		return "", ascii.ErrNilImage
	}

	var buf bytes.Buffer
	config := &dotmatrix.Config{
		Drawer: draw.FloydSteinberg,
	}
	if r.Filter != nil {
		config.Filter = r.Filter
	}

	if err := dotmatrix.NewPrinter(&buf, config).Print(img); err != nil {
		return "", fmt.Errorf("failed to print braille: %w", err)
	}

	if !r.Color {
		return buf.String(), nil
	}
	return r.colorize(img, buf.String()), nil
}

// colorize styles each braille rune with the average colour of its 2x4 block
func (r *BrailleRenderer) colorize(img image.Image, braille string) string {
	bounds := img.Bounds()
	lines := strings.Split(strings.TrimSuffix(braille, "\n"), "\n")

	var out strings.Builder
	for lineIdx, line := range lines {
		charIdx := 0
		for _, char := range line {
			x := bounds.Min.X + charIdx*2
			y := bounds.Min.Y + lineIdx*4
			charIdx++

			if char == ' ' || char == '⠀' || x >= bounds.Max.X || y >= bounds.Max.Y {
				out.WriteRune(char)
				continue
			}

			ink, ok := blockColor(img, x, y)
			if !ok {
				out.WriteRune(char)
				continue
			}
			ink = nearestColor(ink, r.Palette)
			out.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(ink.Hex())).
				Render(string(char)))
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// blockColor averages the opaque pixels of the 2x4 block at (startX, startY)
func blockColor(img image.Image, startX, startY int) (colorful.Color, bool) {
	bounds := img.Bounds()

	var sum colorful.Color
	count := 0
	for y := startY; y < startY+4 && y < bounds.Max.Y; y++ {
		for x := startX; x < startX+2 && x < bounds.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			sum.R += c.R
			sum.G += c.G
			sum.B += c.B
			count++
		}
	}

	if count == 0 {
		return colorful.Color{}, false
	}
	n := float64(count)
	return colorful.Color{R: sum.R / n, G: sum.G / n, B: sum.B / n}, true
}
