// Package logmirror keeps an in-memory copy of emitted log lines for on-screen display.
package logmirror

import (
	"strings"
	"sync"
	"time"
)

const TimestampLayout = "15:04:05"

// Mirror is safe for concurrent appends while the UI goroutine reads it.
type Mirror struct {
	mu       sync.Mutex
	lines    []string
	scroll   bool
	version  uint64
	maxLines int
	now      func() time.Time
}

type Option func(*Mirror)

// WithMaxLines caps the retained lines, dropping the oldest first. Zero keeps every line.
func WithMaxLines(n int) Option {
	return func(m *Mirror) {
		if n > 0 {
			m.maxLines = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Mirror) {
		m.now = now
	}
}

func New(opts ...Option) *Mirror {
	m := &Mirror{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Append stamps the line under the lock so buffer order and timestamp order agree.
func (m *Mirror) Append(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines = append(m.lines, m.now().Format(TimestampLayout)+" "+line+"\n")
	if m.maxLines > 0 && len(m.lines) > m.maxLines {
		drop := len(m.lines) - m.maxLines
		copy(m.lines, m.lines[drop:])
		m.lines = m.lines[:m.maxLines]
	}
	m.version++
	m.scroll = true
}

func (m *Mirror) ReadAll() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
	}
	return b.String()
}

// ConsumeScrollFlag reports whether a scroll to the bottom was requested and clears the request.
func (m *Mirror) ConsumeScrollFlag() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	requested := m.scroll
	m.scroll = false
	return requested
}

func (m *Mirror) RequestScroll() {
	m.mu.Lock()
	m.scroll = true
	m.mu.Unlock()
}

// Version increases with every append, including appends that evicted old lines.
func (m *Mirror) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

func (m *Mirror) Lines() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}
