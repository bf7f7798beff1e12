// Package ascii turns raster images into ASCII art, either as a plain text
// grid of glyphs or as a bitmap with the glyphs drawn over a canvas.
//
// The pipeline is the same for every output: the source is resized to the
// configured column count, sampled into a PixelGrid, and each cell's BT.709
// luminance is looked up in a GlyphTable.
package ascii

import "image/color"

// BT.709 luma weights
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// PixelSample holds one grid cell's colour as normalised channels in [0,1].
type PixelSample struct {
	R, G, B, A float32
}

// SampleFromNRGBA normalises non-premultiplied channel bytes to [0,1].
func SampleFromNRGBA(c color.NRGBA) PixelSample {
	return PixelSample{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// Luminance returns the perceptual brightness of the sample.
// When reversed is set the result is 1 - luminance.
func (s PixelSample) Luminance(reversed bool) float32 {
	luminance := lumaR*float64(s.R) + lumaG*float64(s.G) + lumaB*float64(s.B)
	if reversed {
		luminance = 1.0 - luminance
	}
	return float32(luminance)
}

// NRGBA converts the sample back to channel bytes, rounding to nearest.
func (s PixelSample) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: toByte(s.R),
		G: toByte(s.G),
		B: toByte(s.B),
		A: toByte(s.A),
	}
}

func toByte(v float32) uint8 {
	scaled := v*255.0 + 0.5
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}
