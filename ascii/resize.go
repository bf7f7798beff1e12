package ascii

import (
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// Resize downscales img to the given number of columns with Catmull-Rom
// resampling. See ResizeWith.
func Resize(img image.Image, columns int) image.Image {
	return ResizeWith(img, columns, draw.CatmullRom)
}

// ResizeWith scales img so its width equals columns, keeping the aspect ratio.
// columns <= 1 returns img untouched. columns is clamped to the smaller source
// dimension so the image is never upscaled past it.
func ResizeWith(img image.Image, columns int, interp draw.Interpolator) image.Image {
	bounds := img.Bounds()
	width, height, ok := ScaledSize(bounds.Dx(), bounds.Dy(), columns)
	if !ok {
		return img
	}

	// output starts at the origin so grid coordinates line up
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width == bounds.Dx() && height == bounds.Dy() {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		return dst
	}
	interp.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// ScaledSize computes the output size of ResizeWith. ok is false when no
// scaling happens: columns <= 1 or an empty source.
func ScaledSize(width, height, columns int) (int, int, bool) {
	if columns <= 1 || width <= 0 || height <= 0 {
		return width, height, false
	}

	if smallest := min(width, height); columns > smallest {
		columns = smallest
	}

	ratio := float64(columns) / float64(width)
	outHeight := int(math.Round(ratio * float64(height)))
	if outHeight < 1 {
		outHeight = 1
	}

	return columns, outHeight, true
}

// InterpolatorByName resolves a resampling kernel from its config name.
// An empty name selects Catmull-Rom.
func InterpolatorByName(name string) (draw.Interpolator, error) {
	switch strings.ToLower(name) {
	case "", "catmullrom", "catmull-rom":
		return draw.CatmullRom, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "approxbilinear", "approx-bilinear":
		return draw.ApproxBiLinear, nil
	case "nearest", "nearestneighbor":
		return draw.NearestNeighbor, nil
	default:
		return nil, fmt.Errorf("unknown interpolator %q", name)
	}
}
