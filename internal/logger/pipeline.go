package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const fileTimeFormat = "2006-01-02 15:04:05.000 -07:00"

type PipelineConfig struct {
	AllLogPath       string
	ImportantLogPath string

	// ResetAllLog removes the previous run's general log before the first write.
	ResetAllLog bool

	Console      io.Writer
	ConsoleLevel LogLevel
	JSONConsole  bool

	// Mirror receives one rendered line per event. Nil disables the mirror sink.
	Mirror io.Writer

	MaxSizeMB       int
	MaxBackups      int
	ImportantMaxAge int
}

func DefaultPipelineConfig(allLogPath, importantLogPath string) PipelineConfig {
	return PipelineConfig{
		AllLogPath:       allLogPath,
		ImportantLogPath: importantLogPath,
		ResetAllLog:      true,
		Console:          os.Stdout,
		ConsoleLevel:     InfoLevel,
		MaxSizeMB:        1,
		MaxBackups:       31,
		ImportantMaxAge:  31,
	}
}

// Pipeline fans every event out to the general log file, the important log
// file, the console and the mirror, each with its own minimum level.
type Pipeline struct {
	*ZerologAdapter
	files []*lumberjack.Logger
}

func NewPipeline(config PipelineConfig) (*Pipeline, error) {
	if err := os.MkdirAll(filepath.Dir(config.AllLogPath), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if config.ResetAllLog {
		if err := os.Remove(config.AllLogPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reset general log: %w", err)
		}
	}

	allFile := &lumberjack.Logger{
		Filename:   config.AllLogPath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
	}
	importantFile := &lumberjack.Logger{
		Filename:   config.ImportantLogPath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.ImportantMaxAge,
		LocalTime:  true,
	}

	writers := []io.Writer{
		filtered(fileWriter(allFile), zerolog.TraceLevel),
		filtered(fileWriter(importantFile), zerolog.WarnLevel),
	}

	if config.Console != nil {
		var console io.Writer = config.Console
		if !config.JSONConsole {
			console = zerolog.ConsoleWriter{Out: config.Console}
		}
		writers = append(writers, filtered(console, config.ConsoleLevel.zerologLevel()))
	}

	if config.Mirror != nil {
		writers = append(writers, filtered(MirrorWriter(config.Mirror), zerolog.TraceLevel))
	}

	adapter := NewZerolog(zerolog.MultiLevelWriter(writers...), zerolog.TraceLevel)

	return &Pipeline{
		ZerologAdapter: adapter,
		files:          []*lumberjack.Logger{allFile, importantFile},
	}, nil
}

// MirrorWriter renders only the message text of each event. An attached
// error is appended as "message: error". The mirror stamps lines itself.
func MirrorWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       true,
		PartsOrder:    []string{zerolog.MessageFieldName},
		FormatPrepare: messageOnly,
	}
}

func messageOnly(evt map[string]interface{}) error {
	message, _ := evt[zerolog.MessageFieldName].(string)
	if err, ok := evt[zerolog.ErrorFieldName]; ok {
		message = fmt.Sprintf("%s: %v", message, err)
	}

	for key := range evt {
		delete(evt, key)
	}
	evt[zerolog.MessageFieldName] = message
	return nil
}

func (p *Pipeline) Close() error {
	var errs []error
	for _, f := range p.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Shutdown lets the shutdown manager close the log files last.
func (p *Pipeline) Shutdown() {
	_ = p.Close()
}

func fileWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: fileTimeFormat,
	}
}

func filtered(w io.Writer, level zerolog.Level) *zerolog.FilteredLevelWriter {
	return &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: w},
		Level:  level,
	}
}
