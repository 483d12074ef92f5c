package app

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"fyne-tool/internal/gui"
	"fyne-tool/internal/launcher"
	"fyne-tool/internal/logger"
	"fyne-tool/internal/logmirror"
	"fyne-tool/internal/modal"
	"fyne-tool/internal/settings"
)

const (
	prefWindowWidth  = "window.width"
	prefWindowHeight = "window.height"
)

type Application struct {
	config    settings.Config
	fyneApp   fyne.App
	window    fyne.Window
	mirror    *logmirror.Mirror
	pipeline  *logger.Pipeline
	logger    logger.Logger
	modal     *modal.Descriptor
	handlers  *Handlers
	shell     *gui.Shell
	lifecycle *Lifecycle
}

// NewLogging builds the log mirror and the pipeline that feeds it. The
// general log from the previous run is removed first.
func NewLogging(config settings.Config) (*logmirror.Mirror, *logger.Pipeline, error) {
	mirror := logmirror.New(logmirror.WithMaxLines(config.MirrorMaxLines))

	pipelineConfig := logger.DefaultPipelineConfig(config.Paths.AllLogPath, config.Paths.ImportantLogPath)
	pipelineConfig.JSONConsole = config.JSONConsole
	pipelineConfig.Mirror = mirror.Writer()
	if config.Debug {
		pipelineConfig.ConsoleLevel = logger.DebugLevel
	}

	pipeline, err := logger.NewPipeline(pipelineConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("logging setup: %w", err)
	}
	return mirror, pipeline, nil
}

func NewApplication(config settings.Config, mirror *logmirror.Mirror, pipeline *logger.Pipeline) (*Application, error) {
	application := New(app.NewWithID(settings.AppID), config, mirror, pipeline)

	if err := application.loadContent(); err != nil {
		return nil, err
	}
	return application, nil
}

// New wires the application around an existing fyne.App.
func New(fyneApp fyne.App, config settings.Config, mirror *logmirror.Mirror, pipeline *logger.Pipeline) *Application {
	window := fyneApp.NewWindow(settings.WindowTitle)

	a := &Application{
		config:   config,
		fyneApp:  fyneApp,
		window:   window,
		mirror:   mirror,
		pipeline: pipeline,
		logger:   pipeline,
		modal:    modal.NewDescriptor(),
	}

	window.Resize(a.initialWindowSize())
	window.SetFixedSize(false)
	window.CenterOnScreen()
	window.SetMaster()

	a.handlers = NewHandlers(a.modal, launcher.NewFyneLauncher(fyneApp, a.logger), a.logger, config.Paths, fyneApp.Quit)
	a.shell = gui.NewShell(window, mirror, a.modal, a.logger)
	a.setupHandlers()

	a.lifecycle = NewLifecycle(a.logger, pipeline, a.shell, a.saveLayout)

	a.logger.Headline("APP-INITIALIZED")
	a.logger.Info("Application", "window created", map[string]interface{}{
		"version":        settings.AppVersion,
		"window_width":   window.Canvas().Size().Width,
		"window_height":  window.Canvas().Size().Height,
		"debug_console":  config.Debug,
		"persist_layout": config.PersistLayout,
	})

	return a
}

func (a *Application) setupHandlers() {
	a.shell.SetMenuHandlers(gui.MenuHandlers{
		AddContent:       a.handlers.HandleAddContent,
		EditContent:      a.handlers.HandleEditContent,
		DeleteContent:    a.handlers.HandleDeleteContent,
		Save:             a.handlers.HandleSave,
		Exit:             a.handlers.HandleExit,
		OpenAllLog:       a.handlers.HandleOpenAllLog,
		OpenImportantLog: a.handlers.HandleOpenImportantLog,
		About:            a.handlers.HandleAbout,
		OpenRepo:         a.handlers.HandleOpenRepo,
	})
	a.shell.SetModalResultHandler(a.handlers.HandleModalResult)
}

// SetContentHooks plugs a tool's own logic into the content dialogs and Save.
func (a *Application) SetContentHooks(hooks ContentHooks) {
	a.handlers.SetContentHooks(hooks)
}

// loadContent makes the content directory the working directory.
func (a *Application) loadContent() error {
	if err := os.MkdirAll(a.config.Paths.ContentPath, 0o755); err != nil {
		return fmt.Errorf("create content directory: %w", err)
	}
	if err := os.Chdir(a.config.Paths.ContentPath); err != nil {
		return fmt.Errorf("enter content directory: %w", err)
	}

	wd, _ := os.Getwd()
	a.logger.Debug("Application", "content loaded", map[string]interface{}{
		"working_dir":       wd,
		"local_content_dir": a.config.Paths.ContentPath,
	})
	return nil
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	stopListening := a.lifecycle.Listen()
	defer stopListening()

	go a.shell.Run(a.lifecycle.Context())
	go func() {
		<-a.lifecycle.Done()
		fyne.Do(a.fyneApp.Quit)
	}()

	a.shell.Render()
	a.logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()

	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) initialWindowSize() fyne.Size {
	size := fyne.NewSize(settings.WindowWidth, settings.WindowHeight)
	if !a.config.PersistLayout {
		return size
	}

	prefs := a.fyneApp.Preferences()
	return fyne.NewSize(
		float32(prefs.FloatWithFallback(prefWindowWidth, float64(size.Width))),
		float32(prefs.FloatWithFallback(prefWindowHeight, float64(size.Height))),
	)
}

func (a *Application) saveLayout() {
	if !a.config.PersistLayout {
		return
	}

	// Shutdown runs off the UI goroutine, so use the size the last frame recorded.
	size := a.shell.WindowSize()
	prefs := a.fyneApp.Preferences()
	prefs.SetFloat(prefWindowWidth, float64(size.Width))
	prefs.SetFloat(prefWindowHeight, float64(size.Height))

	a.logger.Debug("Application", "window layout saved", map[string]interface{}{
		"width":  size.Width,
		"height": size.Height,
	})
}
