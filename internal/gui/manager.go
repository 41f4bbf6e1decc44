// Package gui assembles the Fyne window content and routes user intent
// to handlers wired in by the application layer.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"lumaforge/internal/gui/components"
	"lumaforge/internal/logger"
	"lumaforge/internal/models"
)

type Manager struct {
	window fyne.Window
	logger logger.Logger

	toolbar      *components.Toolbar
	controls     *components.Controls
	imageDisplay *components.ImageDisplay
	statusBar    *components.StatusBar
}

func NewManager(window fyne.Window, log logger.Logger, defaultThreshold, defaultBrightness int) *Manager {
	m := &Manager{
		window:       window,
		logger:       log,
		toolbar:      components.NewToolbar(),
		controls:     components.NewControls(defaultThreshold, defaultBrightness),
		imageDisplay: components.NewImageDisplay(),
		statusBar:    components.NewStatusBar(),
	}

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"preview_width":  components.PreviewMaxWidth,
		"preview_height": components.PreviewMaxHeight,
	})

	return m
}

// GetMainContainer lays out toolbar on top, transform controls on the
// left, status bar at the bottom and the image panes in the center.
func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		m.toolbar.GetContainer(),
		m.statusBar.GetContainer(),
		m.controls.GetContainer(),
		nil,
		m.imageDisplay.GetContainer(),
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetLoadHandler(handler func())  { m.toolbar.SetLoadHandler(handler) }
func (m *Manager) SetSaveHandler(handler func())  { m.toolbar.SetSaveHandler(handler) }
func (m *Manager) SetResetHandler(handler func()) { m.toolbar.SetResetHandler(handler) }

func (m *Manager) SetApplyHandler(handler func(string, map[string]interface{})) {
	m.controls.SetApplyHandler(handler)
}

// ShowLoadedImage populates both panes with a freshly loaded image and
// enables the transform controls.
func (m *Manager) ShowLoadedImage(data *models.ImageData) {
	m.imageDisplay.SetOriginalImage(data.Image)
	m.imageDisplay.SetResultImage(data.Image)
	m.toolbar.SetImageLoaded(true)
	m.controls.SetImageLoaded(true)
	m.statusBar.SetImageInfo(data.Width, data.Height, data.Format.String())
}

// ShowResultImage replaces the right pane with a transform result. The
// format tag is surfaced in the status bar since threshold operations
// change the channel depth.
func (m *Manager) ShowResultImage(data *models.ImageData) {
	m.imageDisplay.SetResultImage(data.Image)
	m.statusBar.SetImageInfo(data.Width, data.Height, data.Format.String())
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{"dialog": title})
	dialog.ShowError(err, m.window)
}
