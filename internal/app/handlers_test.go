package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyne-tool/internal/launcher"
	"fyne-tool/internal/logger"
	"fyne-tool/internal/modal"
	"fyne-tool/internal/settings"
)

type handlerFixture struct {
	handlers   *Handlers
	descriptor *modal.Descriptor
	launched   []string
	quits      int
	paths      settings.Paths
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		descriptor: modal.NewDescriptor(),
		paths:      settings.ResolvePaths(t.TempDir()),
	}
	stub := launcher.Func(func(target string) { f.launched = append(f.launched, target) })
	f.handlers = NewHandlers(f.descriptor, stub, logger.NoOp{}, f.paths, func() { f.quits++ })
	return f
}

func TestOpenMissingLogNeverLaunches(t *testing.T) {
	f := newHandlerFixture(t)

	f.handlers.HandleOpenAllLog()

	assert.Empty(t, f.launched)
	require.True(t, f.descriptor.IsOpen())
	state := f.descriptor.State()
	assert.Equal(t, modal.FileNotFoundTitle, state.Title)
	assert.Contains(t, state.Message, f.paths.AllLogPath)
	assert.Contains(t, state.Message, settings.AllLogNote)
}

func TestOpenMissingImportantLogUsesItsNote(t *testing.T) {
	f := newHandlerFixture(t)

	f.handlers.HandleOpenImportantLog()

	assert.Empty(t, f.launched)
	assert.Contains(t, f.descriptor.State().Message, f.paths.ImportantLogPath)
	assert.Contains(t, f.descriptor.State().Message, settings.ImportantLogNote)
}

func TestOpenExistingLogLaunches(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, os.MkdirAll(f.paths.LogsPath, 0o755))
	require.NoError(t, os.WriteFile(f.paths.AllLogPath, []byte("entry\n"), 0o644))

	f.handlers.HandleOpenAllLog()

	assert.Equal(t, []string{f.paths.AllLogPath}, f.launched)
	assert.False(t, f.descriptor.IsOpen())
}

func TestOpenDirectoryIsNotAFile(t *testing.T) {
	f := newHandlerFixture(t)
	dir := filepath.Join(f.paths.LogsPath, "nested")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	f.handlers.HandleOpenLog(dir, "note")

	assert.Empty(t, f.launched)
	assert.True(t, f.descriptor.IsOpen())
}

func TestAboutAndRepo(t *testing.T) {
	f := newHandlerFixture(t)

	f.handlers.HandleAbout()
	assert.Equal(t, modal.KindAbout, f.descriptor.State().Kind)

	f.handlers.HandleOpenRepo()
	assert.Equal(t, []string{settings.RepoURL}, f.launched)
}

func TestContentDialogs(t *testing.T) {
	f := newHandlerFixture(t)

	f.handlers.HandleAddContent()
	assert.Equal(t, modal.KindAddContent, f.descriptor.State().Kind)

	f.handlers.HandleEditContent()
	assert.Equal(t, modal.KindEditContent, f.descriptor.State().Kind)

	f.handlers.HandleDeleteContent()
	assert.True(t, f.descriptor.State().HasDelete)
	assert.True(t, f.descriptor.State().HasCancel)
}

func TestModalResultRunsHooks(t *testing.T) {
	f := newHandlerFixture(t)

	var got []string
	f.handlers.SetContentHooks(ContentHooks{
		Add:    func(modal.State) { got = append(got, "add") },
		Edit:   func(modal.State) { got = append(got, "edit") },
		Delete: func(modal.State) { got = append(got, "delete") },
		Save:   func() { got = append(got, "save") },
	})

	f.handlers.HandleModalResult(modal.State{Kind: modal.KindAddContent}, modal.ChoiceOK)
	f.handlers.HandleModalResult(modal.State{Kind: modal.KindAddContent}, modal.ChoiceCancel)
	f.handlers.HandleModalResult(modal.State{Kind: modal.KindEditContent}, modal.ChoiceOK)
	f.handlers.HandleModalResult(modal.State{Kind: modal.KindInfo, HasDelete: true}, modal.ChoiceDelete)
	f.handlers.HandleModalResult(modal.State{Kind: modal.KindAbout}, modal.ChoiceOK)
	f.handlers.HandleSave()

	assert.Equal(t, []string{"add", "edit", "delete", "save"}, got)
}

func TestModalResultWithoutHooks(t *testing.T) {
	f := newHandlerFixture(t)
	assert.NotPanics(t, func() {
		f.handlers.HandleModalResult(modal.State{Kind: modal.KindAddContent}, modal.ChoiceOK)
		f.handlers.HandleModalResult(modal.State{HasDelete: true}, modal.ChoiceDelete)
		f.handlers.HandleSave()
	})
}

func TestExit(t *testing.T) {
	f := newHandlerFixture(t)
	f.handlers.HandleExit()
	assert.Equal(t, 1, f.quits)
}
