package main

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"asciicreator/ascii"
)

const (
	bannerFontPx  = 16
	bannerPadding = 4
	// pixels of rendered text per banner column
	bannerScale = 4
)

// RenderBanner draws text in Go Mono and converts it to ASCII art, so the
// title is rendered by the same pipeline as the images.
func RenderBanner(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("banner text is empty")
	}

	f, err := ascii.DefaultFont()
	if err != nil {
		return "", err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    bannerFontPx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil() + 2*bannerPadding
	height := (metrics.Ascent + metrics.Descent).Ceil() + 2*bannerPadding

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(bannerPadding, bannerPadding+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	conv := ascii.New(ascii.WithColumns(max(width/bannerScale, ascii.MinColumns)))
	art, err := conv.Text(img)
	if err != nil {
		return "", fmt.Errorf("failed to render banner: %w", err)
	}
	return trimBlankLines(art), nil
}

// trimBlankLines drops rows that are entirely spaces at both ends
func trimBlankLines(art string) string {
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
