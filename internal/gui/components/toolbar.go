package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the file-level actions: load, save, reset. Save and
// reset stay disabled until an image is loaded.
type Toolbar struct {
	container   *fyne.Container
	LoadButton  *widget.Button
	SaveButton  *widget.Button
	ResetButton *widget.Button

	loadHandler  func()
	saveHandler  func()
	resetHandler func()
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}

	t.LoadButton = widget.NewButton("Load Image", t.onLoad)
	t.LoadButton.Importance = widget.HighImportance
	t.SaveButton = widget.NewButton("Save Result", t.onSave)
	t.ResetButton = widget.NewButton("Reset", t.onReset)
	t.SaveButton.Disable()
	t.ResetButton.Disable()

	t.container = container.NewHBox(
		t.LoadButton,
		t.SaveButton,
		t.ResetButton,
		widget.NewSeparator(),
	)

	return t
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

// SetImageLoaded toggles the actions that require a loaded image.
func (t *Toolbar) SetImageLoaded(loaded bool) {
	if loaded {
		t.SaveButton.Enable()
		t.ResetButton.Enable()
	} else {
		t.SaveButton.Disable()
		t.ResetButton.Disable()
	}
}

func (t *Toolbar) SetLoadHandler(handler func())  { t.loadHandler = handler }
func (t *Toolbar) SetSaveHandler(handler func())  { t.saveHandler = handler }
func (t *Toolbar) SetResetHandler(handler func()) { t.resetHandler = handler }

func (t *Toolbar) onLoad() {
	if t.loadHandler != nil {
		t.loadHandler()
	}
}

func (t *Toolbar) onSave() {
	if t.saveHandler != nil {
		t.saveHandler()
	}
}

func (t *Toolbar) onReset() {
	if t.resetHandler != nil {
		t.resetHandler()
	}
}
