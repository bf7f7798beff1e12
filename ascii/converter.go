package ascii

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/opentype"
)

const (
	// DefaultFontSize is the glyph size in sp used when none is configured.
	DefaultFontSize = 18.0

	// MinColumns is the smallest column count a conversion accepts.
	MinColumns = 5
)

// Converter holds one conversion session: glyph table, cell size, colours and
// the memoised column count. It is not safe for concurrent mutation; setters
// must not race with an in-flight conversion.
type Converter struct {
	table      *GlyphTable
	fontSize   float64 // sp
	density    float64 // px per sp
	background color.Color
	reversed   bool
	grayScale  bool

	// columns is derived from the first image seen and reused until Reset.
	columns float64

	interp draw.Interpolator
	filter Filter
	font   *opentype.Font
}

// Option configures a Converter at construction
type Option func(*Converter)

// WithGlyphTable replaces the default glyph table
func WithGlyphTable(t *GlyphTable) Option {
	return func(c *Converter) {
		c.table = t
	}
}

// WithFontSize sets the glyph size in sp
func WithFontSize(sp float64) Option {
	return func(c *Converter) {
		c.fontSize = sp
	}
}

// WithDensity sets how many pixels one sp covers
func WithDensity(density float64) Option {
	return func(c *Converter) {
		c.density = density
	}
}

// WithBackground fills image output with bg. Fully transparent means no fill.
func WithBackground(bg color.Color) Option {
	return func(c *Converter) {
		c.background = bg
	}
}

// WithReversedLuminance maps bright pixels to dense glyphs
func WithReversedLuminance(reversed bool) Option {
	return func(c *Converter) {
		c.reversed = reversed
	}
}

// WithGrayScale draws glyphs in gray, with alpha following luminance
func WithGrayScale(grayScale bool) Option {
	return func(c *Converter) {
		c.grayScale = grayScale
	}
}

// WithColumns fixes the column count instead of deriving it from the image width
func WithColumns(columns int) Option {
	return func(c *Converter) {
		c.columns = float64(columns)
	}
}

// WithInterpolator selects the resampling kernel used by the resize step
func WithInterpolator(interp draw.Interpolator) Option {
	return func(c *Converter) {
		c.interp = interp
	}
}

// WithFilter preprocesses every source image before resizing
func WithFilter(f Filter) Option {
	return func(c *Converter) {
		c.filter = f
	}
}

// WithFont draws image output with f instead of Go Mono
func WithFont(f *opentype.Font) Option {
	return func(c *Converter) {
		c.font = f
	}
}

// New returns a converter with the default glyph table, 18sp cells, a
// transparent background and colour output.
func New(opts ...Option) *Converter {
	c := &Converter{
		table:      DefaultGlyphTable(),
		fontSize:   DefaultFontSize,
		density:    1.0,
		background: color.Transparent,
		interp:     draw.CatmullRom,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.table == nil {
		c.table = DefaultGlyphTable()
	}
	return c
}

// SetFontSize sets the glyph size in sp. The cached column count is kept;
// call Reset to derive it again.
func (c *Converter) SetFontSize(sp float64) { c.fontSize = sp }

// SetDensity sets how many pixels one sp covers
func (c *Converter) SetDensity(density float64) { c.density = density }

// SetBackground sets the fill of image output
func (c *Converter) SetBackground(bg color.Color) { c.background = bg }

// SetReversedLuminance toggles 1 - luminance lookups
func (c *Converter) SetReversedLuminance(reversed bool) { c.reversed = reversed }

// SetGrayScale toggles gray glyphs in image output
func (c *Converter) SetGrayScale(grayScale bool) { c.grayScale = grayScale }

// SetColumns fixes the column count. 0 derives it from the next image.
func (c *Converter) SetColumns(columns int) { c.columns = float64(columns) }

// SetFilter sets the preprocessing filter, nil disables it
func (c *Converter) SetFilter(f Filter) { c.filter = f }

// SetInterpolator sets the resampling kernel
func (c *Converter) SetInterpolator(interp draw.Interpolator) { c.interp = interp }

func (c *Converter) FontSize() float64       { return c.fontSize }
func (c *Converter) Background() color.Color { return c.background }
func (c *Converter) ReversedLuminance() bool { return c.reversed }
func (c *Converter) GrayScale() bool         { return c.grayScale }
func (c *Converter) GlyphTable() *GlyphTable { return c.table }

// CellSize returns the pixel footprint of one glyph.
func (c *Converter) CellSize() float64 {
	return c.fontSize * c.density
}

// Columns returns the cached column count, 0 when not derived yet.
func (c *Converter) Columns() float64 { return c.columns }

// Reset forgets the cached column count so the next conversion derives it
// from its image width and the current cell size.
func (c *Converter) Reset() { c.columns = 0 }

// GridWidth returns the column count for an image of the given width,
// deriving and caching it on first use.
func (c *Converter) GridWidth(imageWidth int) float64 {
	if c.columns == 0 {
		c.columns = float64(imageWidth) / c.CellSize()
	}
	return c.columns
}

// validColumns checks the column count before any image work is done.
func (c *Converter) validColumns(imageWidth int) (int, error) {
	columns := c.GridWidth(imageWidth)
	if math.IsNaN(columns) || math.IsInf(columns, 0) {
		return 0, fmt.Errorf("%w: columns count %v, font size must be positive", ErrInvalidConfiguration, columns)
	}
	if columns < MinColumns {
		return 0, fmt.Errorf("%w: columns count %.2f is very small, font size needs to be reduced", ErrInvalidConfiguration, columns)
	}
	return int(columns), nil
}

// sample runs the shared front half of every conversion: validate, filter,
// resize, and build the grid.
func (c *Converter) sample(img image.Image) (*PixelGrid, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	columns, err := c.validColumns(img.Bounds().Dx())
	if err != nil {
		return nil, err
	}

	src := img
	if c.filter != nil {
		src = c.filter.Filter(src)
	}

	interp := c.interp
	if interp == nil {
		interp = draw.CatmullRom
	}

	return BuildGrid(ResizeWith(src, columns, interp))
}
