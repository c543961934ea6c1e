package tui

import (
	"os"

	"terminal-notes/internal/app"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// debugLog is nil unless TNOTES_DEBUG_LOG names a file. The TUI owns the
// terminal while running, so debug output must never touch stdout/stderr.
var debugLog *log.Logger

// initDebugLog opens the debug log file when requested and returns a
// closer. A logging setup failure is not worth refusing to start over.
func initDebugLog() func() {
	path := os.Getenv("TNOTES_DEBUG_LOG")
	if path == "" {
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return func() {}
	}
	debugLog = log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "tui",
	})
	return func() {
		debugLog = nil
		f.Close()
	}
}

func logKey(mode app.Mode, msg tea.KeyMsg) {
	if debugLog == nil {
		return
	}
	debugLog.Debug("key", "mode", mode.String(), "key", msg.String())
}
