package transform

import "image"

// OtsuThreshold searches all 256 candidate splits for the intensity
// level maximizing between-class variance w_b*w_f*(mean_b-mean_f)^2.
// The strictly-greater comparison keeps the first level reaching the
// maximum. ok is false when the histogram is empty or no split ever
// separates two non-empty classes with positive variance (a uniform
// image); the returned level is then 0.
func (h *Histogram) OtsuThreshold() (t uint8, ok bool) {
	total := h.Total()
	if total == 0 {
		return 0, false
	}
	weightedTotal := h.WeightedSum()

	var (
		weightB     float64
		sumB        float64
		best        int
		maxVariance float64
	)
	totalF := float64(total)

	for level := 0; level < 256; level++ {
		weightB += float64(h[level])
		if weightB == 0 {
			continue
		}
		weightF := totalF - weightB
		if weightF == 0 {
			break
		}
		sumB += float64(level) * float64(h[level])

		meanB := sumB / weightB
		meanF := (weightedTotal - sumB) / weightF
		diff := meanB - meanF
		variance := weightB * weightF * diff * diff

		if variance > maxVariance {
			maxVariance = variance
			best = level
			ok = true
		}
	}

	return uint8(best), ok
}

// ThresholdOtsu binarizes img at the automatically determined optimal
// threshold. A zero-area image is returned unchanged; a uniform image
// deterministically binarizes at level 0.
func ThresholdOtsu(img image.Image) image.Image {
	gray := ToGray(img)
	hist := BuildHistogram(gray)
	if hist.Total() == 0 {
		return img
	}

	level, _ := hist.OtsuThreshold()
	return ThresholdManual(gray, level)
}
