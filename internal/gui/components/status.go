package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the current activity and the dimensions/format of the
// displayed result.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	imageLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	s := &StatusBar{
		statusLabel: widget.NewLabel("Ready"),
		imageLabel:  widget.NewLabel(""),
	}
	s.container = container.NewBorder(nil, nil, s.statusLabel, s.imageLabel)
	return s
}

func (s *StatusBar) GetContainer() *fyne.Container {
	return s.container
}

func (s *StatusBar) SetStatus(status string) {
	s.statusLabel.SetText(status)
}

func (s *StatusBar) SetImageInfo(width, height int, format string) {
	s.imageLabel.SetText(fmt.Sprintf("%dx%d %s", width, height, format))
}
