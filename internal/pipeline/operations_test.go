package pipeline

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryHasAllOperations(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{
		OpStretchContrast,
		OpOtsuThreshold,
		OpManualThreshold,
		OpInvert,
		OpBrightness,
	} {
		op, err := registry.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, op.Name())
	}
	assert.Len(t, registry.Names(), 5)
}

func TestRegistryUnknownOperation(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Get("Gaussian Blur")
	assert.Error(t, err)
}

func TestManualThresholdParameterValidation(t *testing.T) {
	op := manualThresholdOp{}

	assert.NoError(t, op.ValidateParameters(map[string]interface{}{"threshold": 0}))
	assert.NoError(t, op.ValidateParameters(map[string]interface{}{"threshold": 255}))
	assert.Error(t, op.ValidateParameters(map[string]interface{}{"threshold": 256}))
	assert.Error(t, op.ValidateParameters(map[string]interface{}{"threshold": -1}))
	assert.Error(t, op.ValidateParameters(map[string]interface{}{}))
	assert.Error(t, op.ValidateParameters(map[string]interface{}{"threshold": "high"}))
}

func TestBrightnessParameterValidation(t *testing.T) {
	op := brightnessOp{}

	assert.NoError(t, op.ValidateParameters(map[string]interface{}{"delta": -255}))
	assert.NoError(t, op.ValidateParameters(map[string]interface{}{"delta": 255}))
	assert.Error(t, op.ValidateParameters(map[string]interface{}{"delta": 300}))
	assert.Error(t, op.ValidateParameters(map[string]interface{}{}))
}

func TestOperationApplyRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	_, err := invertOp{}.Apply(ctx, img, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestThresholdOperationChangesFormat(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}

	out, err := manualThresholdOp{}.Apply(context.Background(), img, map[string]interface{}{"threshold": 100})
	require.NoError(t, err)
	assert.IsType(t, &image.Gray{}, out)
}

func TestFloatParametersAccepted(t *testing.T) {
	// Slider widgets report float64; the registry must accept them.
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 100, G: 100, B: 100, A: 255})

	out, err := brightnessOp{}.Apply(context.Background(), img, map[string]interface{}{"delta": float64(50)})
	require.NoError(t, err)
	assert.Equal(t, uint8(150), out.(*image.NRGBA).NRGBAAt(0, 0).R)
}
