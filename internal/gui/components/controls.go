package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"lumaforge/internal/pipeline"
)

// Controls is the transform panel: one button per parameterless
// operation plus slider-driven manual threshold and brightness. All
// controls stay disabled until an image is loaded.
type Controls struct {
	container *fyne.Container

	stretchButton *widget.Button
	otsuButton    *widget.Button
	invertButton  *widget.Button

	thresholdSlider *widget.Slider
	thresholdValue  int
	thresholdApply  *widget.Button

	brightnessSlider *widget.Slider
	brightnessValue  int
	brightnessApply  *widget.Button

	applyHandler func(operation string, params map[string]interface{})
}

func NewControls(defaultThreshold, defaultBrightness int) *Controls {
	c := &Controls{
		thresholdValue:  defaultThreshold,
		brightnessValue: defaultBrightness,
	}
	c.setupControls()
	c.SetImageLoaded(false)
	return c
}

func (c *Controls) setupControls() {
	c.stretchButton = widget.NewButton("Stretch Contrast", func() {
		c.apply(pipeline.OpStretchContrast, nil)
	})
	c.otsuButton = widget.NewButton("Otsu Threshold", func() {
		c.apply(pipeline.OpOtsuThreshold, nil)
	})
	c.invertButton = widget.NewButton("Invert", func() {
		c.apply(pipeline.OpInvert, nil)
	})

	thresholdLabel := widget.NewLabel("Threshold: " + strconv.Itoa(c.thresholdValue))
	c.thresholdSlider = widget.NewSlider(0, 255)
	c.thresholdSlider.SetValue(float64(c.thresholdValue))
	c.thresholdSlider.OnChanged = func(value float64) {
		c.thresholdValue = int(value)
		thresholdLabel.SetText("Threshold: " + strconv.Itoa(c.thresholdValue))
	}
	c.thresholdApply = widget.NewButton("Apply Threshold", func() {
		c.apply(pipeline.OpManualThreshold, map[string]interface{}{
			"threshold": c.thresholdValue,
		})
	})

	brightnessLabel := widget.NewLabel("Brightness: " + strconv.Itoa(c.brightnessValue))
	c.brightnessSlider = widget.NewSlider(-255, 255)
	c.brightnessSlider.SetValue(float64(c.brightnessValue))
	c.brightnessSlider.OnChanged = func(value float64) {
		c.brightnessValue = int(value)
		brightnessLabel.SetText("Brightness: " + strconv.Itoa(c.brightnessValue))
	}
	c.brightnessApply = widget.NewButton("Apply Brightness", func() {
		c.apply(pipeline.OpBrightness, map[string]interface{}{
			"delta": c.brightnessValue,
		})
	})

	c.container = container.NewVBox(
		widget.NewLabel("Transforms"),
		container.NewHBox(c.stretchButton, c.otsuButton, c.invertButton),
		widget.NewSeparator(),
		thresholdLabel,
		c.thresholdSlider,
		c.thresholdApply,
		widget.NewSeparator(),
		brightnessLabel,
		c.brightnessSlider,
		c.brightnessApply,
	)
}

func (c *Controls) GetContainer() *fyne.Container {
	return c.container
}

func (c *Controls) SetApplyHandler(handler func(string, map[string]interface{})) {
	c.applyHandler = handler
}

// SetImageLoaded toggles every transform control.
func (c *Controls) SetImageLoaded(loaded bool) {
	widgets := []fyne.Disableable{
		c.stretchButton, c.otsuButton, c.invertButton,
		c.thresholdSlider, c.thresholdApply,
		c.brightnessSlider, c.brightnessApply,
	}
	for _, w := range widgets {
		if loaded {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

func (c *Controls) apply(operation string, params map[string]interface{}) {
	if c.applyHandler != nil {
		c.applyHandler(operation, params)
	}
}
