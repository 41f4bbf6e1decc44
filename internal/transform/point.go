package transform

import (
	"image"
	"image/draw"
)

// cloneNRGBA copies img into a freshly allocated NRGBA buffer,
// converting the color model if needed. NRGBA carries straight
// (non-premultiplied) samples; channel arithmetic on premultiplied
// samples would distort any pixel with partial alpha.
func cloneNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)
	return dst
}

// ToGray converts img to 8-bit grayscale using the standard library
// luma weights (299, 587, 114 per thousand).
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	dst := image.NewGray(bounds)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)
	return dst
}

// Invert maps each color channel to its complement (255 - value).
// Alpha is left untouched. Applying Invert twice restores the image
// exactly.
func Invert(img image.Image) *image.NRGBA {
	out := cloneNRGBA(img)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = 255 - out.Pix[i]
		out.Pix[i+1] = 255 - out.Pix[i+1]
		out.Pix[i+2] = 255 - out.Pix[i+2]
	}
	return out
}

// AdjustBrightness adds delta to each color channel with a saturating
// clamp to [0,255]. Alpha is left untouched. Once a channel clamps the
// shift is not invertible.
func AdjustBrightness(img image.Image, delta int) *image.NRGBA {
	out := cloneNRGBA(img)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = clampU8(int(out.Pix[i]) + delta)
		out.Pix[i+1] = clampU8(int(out.Pix[i+1]) + delta)
		out.Pix[i+2] = clampU8(int(out.Pix[i+2]) + delta)
	}
	return out
}

// ThresholdManual binarizes img: luma intensity strictly greater than t
// becomes white (255), everything else black (0). The output is
// single-channel grayscale regardless of the input format.
func ThresholdManual(img image.Image, t uint8) *image.Gray {
	out := ToGray(img)
	for i, p := range out.Pix {
		if p > t {
			out.Pix[i] = 255
		} else {
			out.Pix[i] = 0
		}
	}
	return out
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
