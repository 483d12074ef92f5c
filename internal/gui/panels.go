package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"fyne-tool/internal/settings"
)

func (s *Shell) buildWelcomePanel() fyne.CanvasObject {
	text := widget.NewLabel(settings.WelcomeText)
	text.Wrapping = fyne.TextWrapWord

	return container.NewVScroll(container.NewPadded(text))
}

func (s *Shell) buildLogPanel() fyne.CanvasObject {
	s.logText = widget.NewLabel("")
	s.logText.TextStyle = fyne.TextStyle{Monospace: true}
	s.logText.Wrapping = fyne.TextWrapBreak
	s.logScroll = container.NewVScroll(s.logText)

	back := widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), func() {
		if s.logOpen {
			s.ToggleLog()
		}
	})

	return container.NewBorder(nil, back, nil, nil, s.logScroll)
}
