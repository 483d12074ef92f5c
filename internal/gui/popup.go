package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"fyne-tool/internal/modal"
	"fyne-tool/internal/settings"
)

const minPopupWidth = 280

// popupButtons holds the buttons of the popup on screen. Absent buttons are nil.
type popupButtons struct {
	ok     *widget.Button
	cancel *widget.Button
	remove *widget.Button
	link   *widget.Button
}

// renderModal keeps the on-screen popup in step with the descriptor. A
// descriptor replaced while open swaps the popup; a closed one hides it.
func (s *Shell) renderModal() {
	if !s.modal.IsOpen() {
		s.hidePopup()
		return
	}

	if s.popup != nil && s.popupRevision == s.modal.Revision() {
		return
	}

	s.hidePopup()
	s.popup = s.buildPopup(s.modal.State())
	s.popupRevision = s.modal.Revision()
	s.popup.Show()
}

func (s *Shell) hidePopup() {
	if s.popup == nil {
		return
	}
	s.popup.Hide()
	s.popup = nil
	s.popupButtons = popupButtons{}
}

func (s *Shell) buildPopup(state modal.State) dialog.Dialog {
	width := s.window.Canvas().Size().Width / 2
	if width < minPopupWidth {
		width = minPopupWidth
	}
	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(width, 0))

	message := widget.NewLabel(state.Message)
	message.Wrapping = fyne.TextWrapWord

	body := container.NewVBox(sizer, message)
	buttons := popupButtons{}

	if state.Kind == modal.KindAbout {
		buttons.link = widget.NewButtonWithIcon(settings.AppName+" on GitHub", theme.ComputerIcon(), func() {
			s.run(s.handlers.OpenRepo)
		})
		buttons.link.Importance = widget.HighImportance
		body.Add(buttons.link)
	}

	buttons.ok = widget.NewButton("OK", func() { s.Resolve(modal.ChoiceOK) })
	buttons.ok.Importance = widget.HighImportance
	right := container.NewHBox(buttons.ok)

	if state.HasCancel {
		buttons.cancel = widget.NewButton("Cancel", func() { s.Resolve(modal.ChoiceCancel) })
		right.Add(buttons.cancel)
	}

	var left fyne.CanvasObject
	if state.HasDelete {
		buttons.remove = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() { s.Resolve(modal.ChoiceDelete) })
		buttons.remove.Importance = widget.DangerImportance
		left = buttons.remove
	}
	s.popupButtons = buttons

	footer := container.NewBorder(nil, nil, left, right)
	content := container.NewBorder(nil, footer, nil, nil, body)

	return dialog.NewCustomWithoutButtons(state.Title, content, s.window)
}
