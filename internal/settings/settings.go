package settings

import (
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	AppName    = "Fyne Tool"
	AppID      = "io.github.fynetool"
	AppVersion = "1.0.0"

	RepoURL = "https://github.com/fyne-tool/fyne-tool"

	WindowTitle  = "Fyne Tool"
	WindowWidth  = 600
	WindowHeight = 350

	FrameInterval = 100 * time.Millisecond

	// PersistLayout stores the window size in the app preferences between runs.
	PersistLayout = false

	ContentDirName       = "Content"
	LogsDirName          = "logs"
	AllLogFileName       = "log.txt"
	ImportantLogFileName = "important-log.txt"

	AllLogNote       = "Note: this log file will only be created on certain events."
	ImportantLogNote = "Note: this log file gets created on errors or important events."

	AboutTitle   = "About"
	AboutMessage = AppName + " " + AppVersion + "\n\n" +
		"A starter template for desktop tools built with Fyne and zerolog.\n" +
		"Replace this text with information about your own tool."

	WelcomeText = `Welcome!

This template project makes it easier to start a new desktop tool with Fyne and zerolog integrations.

It contains some very basic stuff, so you need to update everything to your needs.

Also please don't forget to update the text in the 'About' menu to your own info or alternatively remove it.

Have a nice day!`
)

var BackgroundColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// Paths holds every file system location the tool touches.
type Paths struct {
	BaseDir          string
	ContentPath      string
	LogsPath         string
	AllLogPath       string
	ImportantLogPath string
}

func ResolvePaths(baseDir string) Paths {
	logs := filepath.Join(baseDir, LogsDirName)
	return Paths{
		BaseDir:          baseDir,
		ContentPath:      filepath.Join(baseDir, ContentDirName),
		LogsPath:         logs,
		AllLogPath:       filepath.Join(logs, AllLogFileName),
		ImportantLogPath: filepath.Join(logs, ImportantLogFileName),
	}
}

type Config struct {
	Paths          Paths
	Debug          bool
	JSONConsole    bool
	MirrorMaxLines int
	PersistLayout  bool
}

func Load() Config {
	return LoadFromEnv(os.Getenv)
}

func LoadFromEnv(getenv func(string) string) Config {
	baseDir := getenv("FYNE_TOOL_HOME")
	if baseDir == "" {
		baseDir = executableDir()
	}

	config := Config{
		Paths:         ResolvePaths(baseDir),
		PersistLayout: PersistLayout,
	}

	if getenv("FYNE_TOOL_DEBUG") == "true" {
		config.Debug = true
	}

	if getenv("FYNE_TOOL_JSON_LOGS") == "true" {
		config.JSONConsole = true
	}

	if getenv("FYNE_TOOL_PERSIST_LAYOUT") == "true" {
		config.PersistLayout = true
	}

	if raw := getenv("FYNE_TOOL_MIRROR_MAX_LINES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			config.MirrorMaxLines = n
		}
	}

	return config
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
