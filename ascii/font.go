package ascii

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

var (
	goMonoOnce sync.Once
	goMono     *opentype.Font
	goMonoErr  error
)

// DefaultFont returns the bundled Go Mono font, parsed on first use.
func DefaultFont() (*opentype.Font, error) {
	goMonoOnce.Do(func() {
		goMono, goMonoErr = opentype.Parse(gomono.TTF)
	})
	return goMono, goMonoErr
}

// ParseFont parses a TrueType or OpenType font. Collections yield their
// first font.
func ParseFont(data []byte) (*opentype.Font, error) {
	if f, err := opentype.Parse(data); err == nil {
		return f, nil
	}

	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	if coll.NumFonts() == 0 {
		return nil, fmt.Errorf("failed to parse font: empty collection")
	}
	return coll.Font(0)
}

// newFace sizes f so one em equals px pixels.
func newFace(f *opentype.Font, px float64) (font.Face, error) {
	if px <= 0 {
		return nil, fmt.Errorf("%w: font size must be positive, got %.2fpx", ErrInvalidConfiguration, px)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
