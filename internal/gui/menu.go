package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	showLogLabel  = "Show Log"
	closeLogLabel = "Close Log"
)

func (s *Shell) buildMenu() *fyne.MainMenu {
	addContent := fyne.NewMenuItem("Add Content", func() { s.run(s.handlers.AddContent) })
	addContent.Icon = theme.ContentAddIcon()

	editContent := fyne.NewMenuItem("Edit Content", func() { s.run(s.handlers.EditContent) })
	editContent.Icon = theme.DocumentCreateIcon()

	deleteContent := fyne.NewMenuItem("Delete Content", func() { s.run(s.handlers.DeleteContent) })
	deleteContent.Icon = theme.DeleteIcon()

	save := fyne.NewMenuItem("Save", func() { s.run(s.handlers.Save) })
	save.Icon = theme.DocumentSaveIcon()

	exit := fyne.NewMenuItem("Exit", func() { s.run(s.handlers.Exit) })
	exit.Icon = theme.CancelIcon()
	exit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		addContent,
		editContent,
		deleteContent,
		fyne.NewMenuItemSeparator(),
		save,
		exit,
	)

	s.logToggleItem = fyne.NewMenuItem(showLogLabel, s.ToggleLog)
	s.logToggleItem.Icon = theme.VisibilityIcon()
	optionsMenu := fyne.NewMenu("Options", s.logToggleItem)

	logs := fyne.NewMenuItem("Logs", nil)
	logs.Icon = theme.FolderOpenIcon()
	logs.ChildMenu = fyne.NewMenu("",
		fyne.NewMenuItem("All", func() { s.run(s.handlers.OpenAllLog) }),
		fyne.NewMenuItem("Important", func() { s.run(s.handlers.OpenImportantLog) }),
	)

	about := fyne.NewMenuItem("About", func() { s.run(s.handlers.About) })
	about.Icon = theme.InfoIcon()

	helpMenu := fyne.NewMenu("Help", logs, about)

	return fyne.NewMainMenu(fileMenu, optionsMenu, helpMenu)
}

func (s *Shell) renderMenu() {
	label, icon := showLogLabel, theme.VisibilityIcon()
	if s.logOpen {
		label, icon = closeLogLabel, theme.VisibilityOffIcon()
	}

	if s.logToggleItem.Label == label {
		return
	}

	s.logToggleItem.Label = label
	s.logToggleItem.Icon = icon
	s.menu.Refresh()
}
