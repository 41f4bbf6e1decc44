// Package transform implements the pixel-level enhancement engine:
// color model conversion, point transforms, histogram statistics,
// Otsu threshold search and linear contrast stretching. Every function
// is pure; inputs are never mutated and no state survives a call.
package transform

import "github.com/chewxy/math32"

// RGBToHSV converts an 8-bit RGB triple to hue in degrees [0,360),
// saturation [0,1] and value [0,1]. A grayscale pixel (zero delta)
// yields hue 0, pure black yields saturation 0.
func RGBToHSV(r, g, b uint8) (h, s, v float32) {
	rf := float32(r) / 255.0
	gf := float32(g) / 255.0
	bf := float32(b) / 255.0

	cmax := math32.Max(rf, math32.Max(gf, bf))
	cmin := math32.Min(rf, math32.Min(gf, bf))
	delta := cmax - cmin

	switch {
	case delta == 0:
		h = 0
	case cmax == rf:
		h = 60 * math32.Mod((gf-bf)/delta, 6)
	case cmax == gf:
		h = 60 * ((bf-rf)/delta + 2)
	default: // cmax == bf
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	if cmax > 0 {
		s = delta / cmax
	}
	v = cmax

	return h, s, v
}

// HSVToRGB converts hue [0,360), saturation [0,1] and value [0,1] back
// to an 8-bit RGB triple. The round trip through RGBToHSV is lossy by
// at most one quantization step per channel.
func HSVToRGB(h, s, v float32) (r, g, b uint8) {
	c := v * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := v - c

	var rf, gf, bf float32
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default: // [300,360)
		rf, gf, bf = c, 0, x
	}

	r = uint8(math32.Round((rf + m) * 255))
	g = uint8(math32.Round((gf + m) * 255))
	b = uint8(math32.Round((bf + m) * 255))

	return r, g, b
}
