package ascii

import (
	"image"

	"github.com/disintegration/gift"
)

// Filter preprocesses the source image before it is resized and sampled.
// The method set matches dotmatrix.Filter so the same values can drive the
// braille printer.
type Filter interface {
	Filter(img image.Image) image.Image
}

// ContrastFilter changes contrast. Percentage is in [-100, 100], 0 is a no-op.
type ContrastFilter struct {
	Percentage float32
}

// Filter applies the contrast adjustment
func (f *ContrastFilter) Filter(img image.Image) image.Image {
	return applyGift(img, gift.Contrast(f.Percentage))
}

// GammaFilter adjusts midtones. 1.0 = no change, <1.0 darker, >1.0 brighter.
type GammaFilter struct {
	Gamma float32
}

// Filter applies gamma correction
func (f *GammaFilter) Filter(img image.Image) image.Image {
	return applyGift(img, gift.Gamma(f.Gamma))
}

// SharpnessFilter enhances edges with an unsharp mask.
type SharpnessFilter struct {
	Sigma  float32
	Amount float32
}

// Filter applies the unsharp mask
func (f *SharpnessFilter) Filter(img image.Image) image.Image {
	return applyGift(img, gift.UnsharpMask(f.Sigma, f.Amount, 0))
}

// ChainFilter applies multiple filters in sequence
type ChainFilter struct {
	Filters []Filter
}

// Filter applies all filters in order
func (f *ChainFilter) Filter(img image.Image) image.Image {
	result := img
	for _, filter := range f.Filters {
		result = filter.Filter(result)
	}
	return result
}

// applyGift runs a gift pipeline into a fresh image; src is left untouched.
func applyGift(src image.Image, filters ...gift.Filter) image.Image {
	g := gift.New(filters...)
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}
