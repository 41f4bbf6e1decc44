package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/nfnt/resize"
)

const (
	// Largest preview rendered per pane; bigger images are downscaled
	// before texture upload so the window stays responsive.
	PreviewMaxWidth  = 640
	PreviewMaxHeight = 480
)

// ImageDisplay shows the original and the processing result side by
// side, each labeled, inside a shared scroll container.
type ImageDisplay struct {
	container      *fyne.Container
	originalCanvas *canvas.Image
	resultCanvas   *canvas.Image
}

func NewImageDisplay() *ImageDisplay {
	originalCanvas := canvas.NewImageFromImage(nil)
	originalCanvas.FillMode = canvas.ImageFillOriginal
	originalCanvas.SetMinSize(fyne.NewSize(PreviewMaxWidth, PreviewMaxHeight))

	resultCanvas := canvas.NewImageFromImage(nil)
	resultCanvas.FillMode = canvas.ImageFillOriginal
	resultCanvas.SetMinSize(fyne.NewSize(PreviewMaxWidth, PreviewMaxHeight))

	originalPane := container.NewVBox(
		widget.NewRichTextFromMarkdown("**Original**"),
		originalCanvas,
	)
	resultPane := container.NewVBox(
		widget.NewRichTextFromMarkdown("**Result**"),
		resultCanvas,
	)

	scroll := container.NewScroll(container.NewHBox(originalPane, resultPane))

	return &ImageDisplay{
		container:      container.NewBorder(nil, nil, nil, nil, scroll),
		originalCanvas: originalCanvas,
		resultCanvas:   resultCanvas,
	}
}

func (d *ImageDisplay) GetContainer() *fyne.Container {
	return d.container
}

// SetOriginalImage replaces the left pane content.
func (d *ImageDisplay) SetOriginalImage(img image.Image) {
	d.setCanvas(d.originalCanvas, img)
}

// SetResultImage replaces the right pane content. Threshold results
// arrive as single-channel grayscale; the canvas renders either format.
func (d *ImageDisplay) SetResultImage(img image.Image) {
	d.setCanvas(d.resultCanvas, img)
}

func (d *ImageDisplay) setCanvas(target *canvas.Image, img image.Image) {
	if img == nil {
		return
	}
	target.Image = fitPreview(img)
	target.Refresh()
}

// fitPreview downscales img to the preview bounds, preserving aspect
// ratio. Images that already fit are shown as-is.
func fitPreview(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= PreviewMaxWidth && bounds.Dy() <= PreviewMaxHeight {
		return img
	}
	return resize.Thumbnail(PreviewMaxWidth, PreviewMaxHeight, img, resize.Lanczos3)
}
