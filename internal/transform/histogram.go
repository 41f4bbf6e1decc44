package transform

import "image"

// Histogram holds per-intensity pixel counts for an 8-bit grayscale
// image. The sum of all counts equals the pixel count of the image it
// was built from.
type Histogram [256]uint64

// BuildHistogram counts intensity occurrences in a single pass over img.
func BuildHistogram(img *image.Gray) Histogram {
	var hist Histogram
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := img.PixOffset(bounds.Min.X, y)
		for _, p := range img.Pix[offset : offset+bounds.Dx()] {
			hist[p]++
		}
	}
	return hist
}

// Total returns the number of pixels counted.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, count := range h {
		total += count
	}
	return total
}

// WeightedSum returns the first moment sum over all intensity levels,
// the quantity the Otsu search derives class means from.
func (h *Histogram) WeightedSum() float64 {
	var sum float64
	for i, count := range h {
		sum += float64(i) * float64(count)
	}
	return sum
}
