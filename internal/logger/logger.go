package logger

import "github.com/rs/zerolog"

type LogLevel int

const (
	TraceLevel LogLevel = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type Logger interface {
	Trace(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Headline(title string)
}

// NoOp discards everything.
type NoOp struct{}

func (NoOp) Trace(component, message string, fields map[string]interface{})   {}
func (NoOp) Debug(component, message string, fields map[string]interface{})   {}
func (NoOp) Info(component, message string, fields map[string]interface{})    {}
func (NoOp) Warning(component, message string, fields map[string]interface{}) {}
func (NoOp) Error(component string, err error, fields map[string]interface{}) {}
func (NoOp) Headline(title string)                                            {}
