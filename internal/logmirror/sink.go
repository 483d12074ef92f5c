package logmirror

import "strings"

// Sink adapts a Mirror to io.Writer. Each Write carries one rendered log event.
type Sink struct {
	mirror *Mirror
}

func (m *Mirror) Writer() *Sink {
	return &Sink{mirror: m}
}

func (s *Sink) Write(p []byte) (int, error) {
	s.Emit(string(p))
	return len(p), nil
}

func (s *Sink) Emit(rendered string) {
	s.mirror.Append(strings.TrimRight(rendered, "\r\n"))
}
