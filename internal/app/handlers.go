package app

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"lumaforge/internal/gui"
	"lumaforge/internal/logger"
	"lumaforge/internal/pipeline"
)

// Handlers connects GUI intent to the processing pipeline. All pipeline
// work runs off the UI goroutine; results are marshalled back through
// fyne.Do.
type Handlers struct {
	ctx         context.Context
	coordinator *pipeline.Coordinator
	guiManager  *gui.Manager
	logger      logger.Logger
}

func NewHandlers(ctx context.Context, coord *pipeline.Coordinator, gm *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		ctx:         ctx,
		coordinator: coord,
		guiManager:  gm,
		logger:      log,
	}
}

func (h *Handlers) HandleLoad() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.guiManager.ShowError("File Load Error", err)
			return
		}
		if reader == nil {
			return
		}

		h.guiManager.UpdateStatus("Loading image...")

		go func() {
			imageData, loadErr := h.coordinator.LoadImage(reader)
			reader.Close()

			fyne.Do(func() {
				if loadErr != nil {
					h.guiManager.ShowError("Image Load Error", loadErr)
					h.guiManager.UpdateStatus("Ready")
					return
				}
				h.guiManager.ShowLoadedImage(imageData)
				h.guiManager.UpdateStatus("Image loaded")
			})
		}()
	}, h.guiManager.GetWindow())
}

func (h *Handlers) HandleSave() {
	if h.coordinator.Processed() == nil {
		h.guiManager.ShowError("Save Error", fmt.Errorf("no image to save"))
		return
	}

	fileSave := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.guiManager.ShowError("File Save Error", err)
			return
		}
		if writer == nil {
			return
		}

		h.guiManager.UpdateStatus("Saving image...")

		go func() {
			saveErr := h.coordinator.SaveImage(writer)
			writer.Close()

			fyne.Do(func() {
				if saveErr != nil {
					h.guiManager.ShowError("Image Save Error", saveErr)
					h.guiManager.UpdateStatus("Ready")
					return
				}
				h.guiManager.UpdateStatus("Image saved")
			})
		}()
	}, h.guiManager.GetWindow())

	fileSave.SetFileName("result.png")
	fileSave.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}))
	fileSave.Show()
}

func (h *Handlers) HandleReset() {
	restored := h.coordinator.Reset()
	if restored == nil {
		return
	}
	h.guiManager.ShowResultImage(restored)
	h.guiManager.UpdateStatus("Reset to original")
}

func (h *Handlers) HandleApply(operation string, params map[string]interface{}) {
	h.guiManager.UpdateStatus("Processing: " + operation)

	go func() {
		result, err := h.coordinator.ApplyOperation(h.ctx, operation, params)

		fyne.Do(func() {
			if err != nil {
				h.guiManager.ShowError("Processing Error", err)
				h.guiManager.UpdateStatus("Ready")
				return
			}
			h.guiManager.ShowResultImage(result)
			h.guiManager.UpdateStatus("Applied: " + operation)
		})
	}()
}
