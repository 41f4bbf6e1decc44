package transform

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBimodalGray(w, h int, low, high uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := low
			if x >= w/2 {
				v = high
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func TestBuildHistogramCountsEveryPixel(t *testing.T) {
	img := newBimodalGray(10, 20, 50, 200)
	hist := BuildHistogram(img)

	assert.Equal(t, uint64(100), hist[50])
	assert.Equal(t, uint64(100), hist[200])
	assert.Equal(t, uint64(200), hist.Total())
	assert.Equal(t, float64(100*50+100*200), hist.WeightedSum())
}

func TestBuildHistogramSubImage(t *testing.T) {
	base := newBimodalGray(10, 10, 0, 255)
	sub := base.SubImage(image.Rect(2, 2, 8, 8)).(*image.Gray)

	hist := BuildHistogram(sub)
	assert.Equal(t, uint64(36), hist.Total())
}

func TestBuildHistogramEmptyImage(t *testing.T) {
	hist := BuildHistogram(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.Equal(t, uint64(0), hist.Total())
}

func TestOtsuThresholdBimodal(t *testing.T) {
	img := newBimodalGray(10, 20, 50, 200)
	hist := BuildHistogram(img)

	level, ok := hist.OtsuThreshold()
	require.True(t, ok)
	require.GreaterOrEqual(t, level, uint8(50))
	require.Less(t, level, uint8(200))

	// Thresholding at the found level must reproduce the two-class
	// partition exactly: intensity 50 stays black, 200 becomes white.
	out := ThresholdManual(img, level)
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			want := uint8(0)
			if x >= 5 {
				want = 255
			}
			require.Equal(t, want, out.GrayAt(x, y).Y, "pixel %d,%d", x, y)
		}
	}
}

func TestOtsuThresholdKeepsFirstMaximum(t *testing.T) {
	// Every split in [50,199] yields the same variance for a two-spike
	// histogram; the strictly-greater comparison must keep the first.
	var hist Histogram
	hist[50] = 100
	hist[200] = 100

	level, ok := hist.OtsuThreshold()
	require.True(t, ok)
	assert.Equal(t, uint8(50), level)
}

func TestOtsuThresholdEmptyHistogram(t *testing.T) {
	var hist Histogram
	level, ok := hist.OtsuThreshold()
	assert.False(t, ok)
	assert.Equal(t, uint8(0), level)
}

func TestOtsuThresholdUniformImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 100
	}
	hist := BuildHistogram(img)

	// The foreground weight hits zero at level 100 before any split sees
	// both classes populated, so no optimum with positive variance exists.
	level, ok := hist.OtsuThreshold()
	assert.False(t, ok)
	assert.Equal(t, uint8(0), level)
}

func TestThresholdOtsuUniformImageIsDeterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}

	out := ThresholdOtsu(img)
	gray, isGray := out.(*image.Gray)
	require.True(t, isGray)
	for _, p := range gray.Pix {
		assert.Equal(t, uint8(255), p, "uniform 100 binarized at level 0 is all white")
	}
}

func TestThresholdOtsuEmptyImageReturnsInput(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	out := ThresholdOtsu(img)
	assert.Same(t, image.Image(img), out)
}
