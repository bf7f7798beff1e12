package main

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"asciicreator/ascii"
)

// RenderANSI lays out cells like Converter.Text, with each glyph coloured by
// its cell ink. With a palette every ink is snapped to the nearest palette
// entry. Fully transparent inks print the bare glyph.
func RenderANSI(cells [][]ascii.Cell, palette []colorful.Color) string {
	var b strings.Builder
	glyphs := make([]string, 0)

	for _, row := range cells {
		glyphs = glyphs[:0]
		for _, cell := range row {
			glyphs = append(glyphs, colorGlyph(cell, palette))
		}
		b.WriteString(strings.Join(glyphs, " "))
		b.WriteByte('\n')
	}

	return b.String()
}

func colorGlyph(cell ascii.Cell, palette []colorful.Color) string {
	if cell.Color.A == 0 || strings.TrimSpace(cell.Glyph) == "" {
		return cell.Glyph
	}

	ink := nearestColor(toColorful(cell.Color), palette)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ink.Hex())).
		Render(cell.Glyph)
}

// toColorful drops alpha; grayscale inks keep their gray.
func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// nearestColor finds the closest palette colour by CIE Lab distance.
// An empty palette returns target.
func nearestColor(target colorful.Color, palette []colorful.Color) colorful.Color {
	if len(palette) == 0 {
		return target
	}

	closest := palette[0]
	minDistance := target.DistanceLab(closest)
	for _, c := range palette[1:] {
		if d := target.DistanceLab(c); d < minDistance {
			minDistance = d
			closest = c
		}
	}
	return closest
}
