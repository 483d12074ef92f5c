package gui

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"fyne-tool/internal/logger"
	"fyne-tool/internal/logmirror"
	"fyne-tool/internal/modal"
	"fyne-tool/internal/settings"
)

// MenuHandlers are invoked from the menu bar and the About popup. Nil entries are skipped.
type MenuHandlers struct {
	AddContent       func()
	EditContent      func()
	DeleteContent    func()
	Save             func()
	Exit             func()
	OpenAllLog       func()
	OpenImportantLog func()
	About            func()
	OpenRepo         func()
}

// Shell draws the window contents from the log mirror, the modal descriptor
// and its own view toggle. Everything except Run and Shutdown must be called
// on the UI goroutine.
type Shell struct {
	window fyne.Window
	mirror *logmirror.Mirror
	modal  *modal.Descriptor
	logger logger.Logger

	handlers      MenuHandlers
	onModalResult func(modal.State, modal.Choice)

	logOpen         bool
	renderedVersion uint64

	background   *canvas.Rectangle
	welcomePanel fyne.CanvasObject
	logPanel     fyne.CanvasObject
	logText      *widget.Label
	logScroll    *container.Scroll

	menu          *fyne.MainMenu
	logToggleItem *fyne.MenuItem

	popup         dialog.Dialog
	popupRevision uint64
	popupButtons  popupButtons

	sizeMu     sync.Mutex
	windowSize fyne.Size

	stop     chan struct{}
	stopOnce sync.Once
}

func NewShell(window fyne.Window, mirror *logmirror.Mirror, descriptor *modal.Descriptor, log logger.Logger) *Shell {
	s := &Shell{
		window: window,
		mirror: mirror,
		modal:  descriptor,
		logger: log,
		stop:   make(chan struct{}),
	}

	s.background = canvas.NewRectangle(settings.BackgroundColor)
	s.welcomePanel = s.buildWelcomePanel()
	s.logPanel = s.buildLogPanel()
	s.logPanel.Hide()

	s.menu = s.buildMenu()
	window.SetMainMenu(s.menu)
	window.SetContent(container.NewStack(
		s.background,
		container.NewStack(s.welcomePanel, s.logPanel),
	))
	window.Canvas().SetOnTypedKey(s.handleKey)

	log.Debug("Shell", "initialized", nil)
	return s
}

func (s *Shell) SetMenuHandlers(handlers MenuHandlers) {
	s.handlers = handlers
}

// SetModalResultHandler receives every dismissed dialog together with the button that closed it.
func (s *Shell) SetModalResultHandler(handler func(modal.State, modal.Choice)) {
	s.onModalResult = handler
}

// Render draws one frame.
func (s *Shell) Render() {
	s.recordWindowSize()
	s.clear()
	s.renderMenu()

	if s.logOpen {
		s.renderLog()
		s.welcomePanel.Hide()
		s.logPanel.Show()
	} else {
		s.logPanel.Hide()
		s.welcomePanel.Show()
	}

	s.renderModal()
}

// Run renders a frame every settings.FrameInterval until ctx is cancelled or Shutdown is called.
func (s *Shell) Run(ctx context.Context) {
	ticker := time.NewTicker(settings.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			fyne.Do(s.Render)
		}
	}
}

func (s *Shell) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.stop)
		s.logger.Debug("Shell", "frame loop stopped", nil)
	})
}

// WindowSize returns the canvas size seen by the last frame. Safe from any goroutine.
func (s *Shell) WindowSize() fyne.Size {
	s.sizeMu.Lock()
	defer s.sizeMu.Unlock()
	return s.windowSize
}

func (s *Shell) recordWindowSize() {
	size := s.window.Canvas().Size()
	s.sizeMu.Lock()
	s.windowSize = size
	s.sizeMu.Unlock()
}

func (s *Shell) LogOpen() bool {
	return s.logOpen
}

func (s *Shell) ToggleLog() {
	s.logOpen = !s.logOpen
	s.mirror.RequestScroll()
	s.logger.Trace("Shell", "log panel toggled", map[string]interface{}{
		"open": s.logOpen,
	})
	s.Render()
}

// Resolve dismisses the open popup as if the given button had been pressed.
func (s *Shell) Resolve(choice modal.Choice) {
	state, ok := s.modal.Resolve(choice)
	if !ok {
		return
	}

	s.logger.Debug("Shell", "modal dismissed", map[string]interface{}{
		"title":  state.Title,
		"kind":   state.Kind.String(),
		"choice": choice.String(),
	})

	if s.onModalResult != nil {
		s.onModalResult(state, choice)
	}
	s.Render()
}

func (s *Shell) clear() {
	if s.background.FillColor != settings.BackgroundColor {
		s.background.FillColor = settings.BackgroundColor
		s.background.Refresh()
	}
}

func (s *Shell) renderLog() {
	if version := s.mirror.Version(); version != s.renderedVersion {
		s.logText.SetText(s.mirror.ReadAll())
		s.renderedVersion = version
	}

	if s.mirror.ConsumeScrollFlag() {
		s.scrollLogToBottom()
	}
}

// scrollLogToBottom lays the text out at its new height before scrolling; the
// scroller ignores offsets past content it still thinks fits the viewport. The
// request stays pending until the bottom is actually reached.
func (s *Shell) scrollLogToBottom() {
	s.logText.Resize(s.logText.MinSize().Max(s.logScroll.Size()))
	s.logScroll.ScrollToBottom()

	if s.logScroll.Offset.Y < s.logScrollMax() {
		s.mirror.RequestScroll()
	}
}

func (s *Shell) logScrollMax() float32 {
	max := s.logText.MinSize().Height - s.logScroll.Size().Height
	if max < 0 {
		return 0
	}
	return max
}

func (s *Shell) handleKey(event *fyne.KeyEvent) {
	if !s.modal.IsOpen() {
		return
	}

	switch event.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		s.Resolve(modal.ChoiceOK)
	case fyne.KeyEscape:
		s.Resolve(modal.ChoiceCancel)
	}
}

func (s *Shell) run(handler func()) {
	if handler != nil {
		handler()
	}
	s.Render()
}
