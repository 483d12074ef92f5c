// Package launcher opens files and URLs with the operating system's default handler.
package launcher

import (
	"net/url"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2/storage"

	"fyne-tool/internal/logger"
)

// Launcher opens a target without waiting for or checking the spawned handler.
type Launcher interface {
	Open(target string)
}

// Func adapts a plain function to Launcher.
type Func func(target string)

func (f Func) Open(target string) {
	f(target)
}

type URLOpener interface {
	OpenURL(u *url.URL) error
}

type FyneLauncher struct {
	opener URLOpener
	logger logger.Logger
}

// NewFyneLauncher accepts a fyne.App, which satisfies URLOpener.
func NewFyneLauncher(opener URLOpener, log logger.Logger) *FyneLauncher {
	return &FyneLauncher{opener: opener, logger: log}
}

func (l *FyneLauncher) Open(target string) {
	u, err := TargetURL(target)
	if err != nil {
		l.logger.Debug("Launcher", "unusable launch target", map[string]interface{}{
			"target": target,
			"error":  err.Error(),
		})
		return
	}

	l.logger.Debug("Launcher", "opening with default handler", map[string]interface{}{
		"url": u.String(),
	})

	if err := l.opener.OpenURL(u); err != nil {
		l.logger.Debug("Launcher", "default handler failed", map[string]interface{}{
			"url":   u.String(),
			"error": err.Error(),
		})
	}
}

// TargetURL turns web URLs into *url.URL as-is and file paths into file:// URLs.
func TargetURL(target string) (*url.URL, error) {
	if strings.Contains(target, "://") {
		return url.Parse(target)
	}

	path, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}
	return url.Parse(storage.NewFileURI(path).String())
}
