package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fyne-tool/internal/logger"
)

func TestShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.NoOp{})

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
		}
	}

	m.Register("logging", record("logging"))
	m.Register("shell", record("shell"))
	m.Register("layout", record("layout"))

	m.Shutdown()

	assert.Equal(t, []string{"layout", "shell", "logging"}, order)
}

func TestShutdownIsIdempotent(t *testing.T) {
	m := NewManager(logger.NoOp{})

	calls := 0
	m.Register("counter", Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestShutdownCancelsContextAndClosesDone(t *testing.T) {
	m := NewManager(logger.NoOp{})

	select {
	case <-m.Done():
		t.Fatal("done closed before shutdown")
	default:
	}
	assert.NoError(t, m.Context().Err())

	m.Shutdown()

	<-m.Done()
	assert.Error(t, m.Context().Err())
}

func TestShutdownTimeoutMovesOn(t *testing.T) {
	m := NewManager(logger.NoOp{})
	m.SetTimeout(20 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	reached := false
	m.Register("fast", Func(func() { reached = true }))
	m.Register("stuck", Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, reached)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestListenStop(t *testing.T) {
	m := NewManager(logger.NoOp{})
	stop := m.Listen()
	stop()
	m.Shutdown()
	<-m.Done()
}
