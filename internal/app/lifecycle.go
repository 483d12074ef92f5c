package app

import (
	"context"

	"fyne-tool/internal/logger"
	"fyne-tool/internal/shutdown"
)

// Lifecycle owns shutdown ordering: the frame loop stops first, then the
// window layout is saved, and the log files are closed last so every earlier
// step is still recorded.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(log logger.Logger, logs shutdown.Shutdownable, shell shutdown.Shutdownable, saveLayout func()) *Lifecycle {
	manager := shutdown.NewManager(log)
	manager.Register("logging", logs)
	manager.Register("layout", shutdown.Func(saveLayout))
	manager.Register("shell", shell)

	return &Lifecycle{manager: manager, logger: log}
}

func (l *Lifecycle) Listen() func() {
	return l.manager.Listen()
}

func (l *Lifecycle) Context() context.Context {
	return l.manager.Context()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}
