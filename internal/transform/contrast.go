package transform

import (
	"image"

	"github.com/chewxy/math32"
)

// StretchContrast remaps the HSV Value channel so the observed range
// fills [0,1], leaving hue and saturation untouched. The first pass
// scans the whole image for the global Value extremes; the second pass
// must not start before the first completes. When no remap occurs —
// a zero-area or flat (single-value) image — the input instance itself
// is returned.
func StretchContrast(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return img
	}

	out := cloneNRGBA(img)

	minV := float32(1.0)
	maxV := float32(0.0)
	for i := 0; i < len(out.Pix); i += 4 {
		_, _, v := RGBToHSV(out.Pix[i], out.Pix[i+1], out.Pix[i+2])
		minV = math32.Min(minV, v)
		maxV = math32.Max(maxV, v)
	}

	if maxV <= minV {
		return img
	}

	scale := maxV - minV
	for i := 0; i < len(out.Pix); i += 4 {
		h, s, v := RGBToHSV(out.Pix[i], out.Pix[i+1], out.Pix[i+2])
		v = (v - minV) / scale
		out.Pix[i], out.Pix[i+1], out.Pix[i+2] = HSVToRGB(h, s, v)
	}

	return out
}
