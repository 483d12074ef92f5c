package app

import (
	"os"

	"fyne-tool/internal/launcher"
	"fyne-tool/internal/logger"
	"fyne-tool/internal/modal"
	"fyne-tool/internal/settings"
)

// ContentHooks are the places to plug in a tool's own add, edit, delete and
// save logic. Nil hooks are skipped.
type ContentHooks struct {
	Add    func(modal.State)
	Edit   func(modal.State)
	Delete func(modal.State)
	Save   func()
}

type Handlers struct {
	modal    *modal.Descriptor
	launcher launcher.Launcher
	logger   logger.Logger
	paths    settings.Paths
	quit     func()
	exists   func(path string) bool
	hooks    ContentHooks
}

func NewHandlers(descriptor *modal.Descriptor, l launcher.Launcher, log logger.Logger, paths settings.Paths, quit func()) *Handlers {
	return &Handlers{
		modal:    descriptor,
		launcher: l,
		logger:   log,
		paths:    paths,
		quit:     quit,
		exists:   fileExists,
	}
}

func (h *Handlers) SetContentHooks(hooks ContentHooks) {
	h.hooks = hooks
}

// HandleOpenLog opens the file with the default handler, or shows a
// "not found" dialog instead of launching anything when it does not exist.
func (h *Handlers) HandleOpenLog(path, note string) {
	if !h.exists(path) {
		h.logger.Debug("Handlers", "log file not found", map[string]interface{}{
			"path": path,
		})
		h.modal.SetFileNotFound(path, note)
		return
	}

	h.launcher.Open(path)
}

func (h *Handlers) HandleOpenAllLog() {
	h.HandleOpenLog(h.paths.AllLogPath, settings.AllLogNote)
}

func (h *Handlers) HandleOpenImportantLog() {
	h.HandleOpenLog(h.paths.ImportantLogPath, settings.ImportantLogNote)
}

func (h *Handlers) HandleAbout() {
	h.modal.SetAbout()
}

func (h *Handlers) HandleOpenRepo() {
	h.launcher.Open(settings.RepoURL)
}

func (h *Handlers) HandleAddContent() {
	h.modal.SetAddContent("Add Content", "Your add content logic goes here.")
}

func (h *Handlers) HandleEditContent() {
	h.modal.SetEditContent("Edit Content", "Your edit content logic goes here.")
}

func (h *Handlers) HandleDeleteContent() {
	h.modal.SetDeleteConfirm("Delete the selected content? This cannot be undone.")
}

func (h *Handlers) HandleSave() {
	h.logger.Info("Handlers", "save requested", nil)
	if h.hooks.Save != nil {
		h.hooks.Save()
	}
}

func (h *Handlers) HandleExit() {
	h.logger.Info("Handlers", "exit requested", nil)
	if h.quit != nil {
		h.quit()
	}
}

// HandleModalResult runs the content hook matching a dismissed dialog.
func (h *Handlers) HandleModalResult(state modal.State, choice modal.Choice) {
	h.logger.Debug("Handlers", "modal result", map[string]interface{}{
		"kind":   state.Kind.String(),
		"choice": choice.String(),
	})

	switch choice {
	case modal.ChoiceDelete:
		if h.hooks.Delete != nil {
			h.hooks.Delete(state)
		}
	case modal.ChoiceOK:
		switch state.Kind {
		case modal.KindAddContent:
			if h.hooks.Add != nil {
				h.hooks.Add(state)
			}
		case modal.KindEditContent:
			if h.hooks.Edit != nil {
				h.hooks.Edit(state)
			}
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
