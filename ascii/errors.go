package ascii

import "errors"

var (
	// ErrInvalidConfiguration is returned when the derived column count is too
	// small for a meaningful conversion.
	ErrInvalidConfiguration = errors.New("invalid parameter")

	// ErrInvalidGridSize is returned when a pixel grid is built with a
	// non-positive width or height.
	ErrInvalidGridSize = errors.New("width and height must be positive values")

	// ErrEmptyGlyphTable is returned when a glyph table is built from an empty mapping.
	ErrEmptyGlyphTable = errors.New("glyph mapping is empty")

	// ErrNilImage is returned when a conversion is asked for a nil image.
	ErrNilImage = errors.New("original image can not be nil")
)
