package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"fyne-tool/internal/logger"
)

const DefaultTimeout = 5 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() {
	f()
}

type entry struct {
	name      string
	component Shutdownable
}

// Manager stops registered components in reverse registration order, so the
// first component registered (typically the log pipeline) is stopped last.
type Manager struct {
	entries []entry
	logger  logger.Logger
	timeout time.Duration
	mu      sync.Mutex
	done    chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:  log,
		timeout: DefaultTimeout,
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (m *Manager) SetTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = timeout
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry{name: name, component: component})
}

// Listen triggers Shutdown on SIGINT or SIGTERM. The returned function stops listening.
func (m *Manager) Listen() func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.ctx.Done():
		}
	}()

	return func() {
		signal.Stop(sigChan)
	}
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.entries),
	})

	m.cancel()

	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]

		// Log before stopping so the log pipeline, stopped last, still records it.
		m.logger.Debug("ShutdownManager", "stopping component", map[string]interface{}{
			"component": e.name,
		})

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			e.component.Shutdown()
		}()

		select {
		case <-finished:
		case <-time.After(m.timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": e.name,
			})
		}
	}
}

// Context is cancelled as soon as shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
