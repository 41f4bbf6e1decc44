package pipeline

import (
	"context"
	"fmt"
	"image"
	"sync"

	"lumaforge/internal/transform"
)

// Operation is a named transform entry point. Implementations are
// stateless; parameters arrive per call and are validated before the
// engine is invoked.
type Operation interface {
	Name() string
	DefaultParameters() map[string]interface{}
	ValidateParameters(params map[string]interface{}) error
	Apply(ctx context.Context, img image.Image, params map[string]interface{}) (image.Image, error)
}

const (
	OpStretchContrast = "Stretch Contrast"
	OpOtsuThreshold   = "Otsu Threshold"
	OpManualThreshold = "Manual Threshold"
	OpInvert          = "Invert"
	OpBrightness      = "Brightness"
)

// Registry holds the available operations keyed by display name.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

func NewRegistry() *Registry {
	r := &Registry{ops: make(map[string]Operation)}
	for _, op := range []Operation{
		stretchContrastOp{},
		otsuThresholdOp{},
		manualThresholdOp{},
		invertOp{},
		brightnessOp{},
	} {
		r.ops[op.Name()] = op
	}
	return r
}

func (r *Registry) Get(name string) (Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, exists := r.ops[name]
	if !exists {
		return nil, fmt.Errorf("unknown operation: %s", name)
	}
	return op, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	return names
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

type stretchContrastOp struct{}

func (stretchContrastOp) Name() string { return OpStretchContrast }
func (stretchContrastOp) DefaultParameters() map[string]interface{} { return map[string]interface{}{} }
func (stretchContrastOp) ValidateParameters(map[string]interface{}) error { return nil }

func (stretchContrastOp) Apply(ctx context.Context, img image.Image, _ map[string]interface{}) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return transform.StretchContrast(img), nil
}

type otsuThresholdOp struct{}

func (otsuThresholdOp) Name() string { return OpOtsuThreshold }
func (otsuThresholdOp) DefaultParameters() map[string]interface{} { return map[string]interface{}{} }
func (otsuThresholdOp) ValidateParameters(map[string]interface{}) error { return nil }

func (otsuThresholdOp) Apply(ctx context.Context, img image.Image, _ map[string]interface{}) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return transform.ThresholdOtsu(img), nil
}

type manualThresholdOp struct{}

func (manualThresholdOp) Name() string { return OpManualThreshold }

func (manualThresholdOp) DefaultParameters() map[string]interface{} {
	return map[string]interface{}{"threshold": 128}
}

func (manualThresholdOp) ValidateParameters(params map[string]interface{}) error {
	t, err := intParam(params, "threshold")
	if err != nil {
		return err
	}
	if t < 0 || t > 255 {
		return fmt.Errorf("threshold must be in [0,255], got: %d", t)
	}
	return nil
}

func (op manualThresholdOp) Apply(ctx context.Context, img image.Image, params map[string]interface{}) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := op.ValidateParameters(params); err != nil {
		return nil, err
	}
	t, _ := intParam(params, "threshold")
	return transform.ThresholdManual(img, uint8(t)), nil
}

type invertOp struct{}

func (invertOp) Name() string { return OpInvert }
func (invertOp) DefaultParameters() map[string]interface{} { return map[string]interface{}{} }
func (invertOp) ValidateParameters(map[string]interface{}) error { return nil }

func (invertOp) Apply(ctx context.Context, img image.Image, _ map[string]interface{}) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return transform.Invert(img), nil
}

type brightnessOp struct{}

func (brightnessOp) Name() string { return OpBrightness }

func (brightnessOp) DefaultParameters() map[string]interface{} {
	return map[string]interface{}{"delta": 0}
}

func (brightnessOp) ValidateParameters(params map[string]interface{}) error {
	delta, err := intParam(params, "delta")
	if err != nil {
		return err
	}
	if delta < -255 || delta > 255 {
		return fmt.Errorf("delta must be in [-255,255], got: %d", delta)
	}
	return nil
}

func (op brightnessOp) Apply(ctx context.Context, img image.Image, params map[string]interface{}) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := op.ValidateParameters(params); err != nil {
		return nil, err
	}
	delta, _ := intParam(params, "delta")
	return transform.AdjustBrightness(img, delta), nil
}

func intParam(params map[string]interface{}, name string) (int, error) {
	raw, exists := params[name]
	if !exists {
		return 0, fmt.Errorf("missing parameter: %s", name)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("parameter %s must be an integer, got %T", name, raw)
	}
}
