package app

import (
	"strings"

	"terminal-notes/internal/store"
)

// ExecuteCommand trims and dispatches the command buffer. The returned
// flag tells the event loop to terminate the process: true for q!
// unconditionally, and for q/quit when nothing is unsaved.
//
// Dispatch resets the mode to Normal afterwards unless the handler moved
// somewhere else on purpose (new entities open the editor, mm opens the
// menu, ? opens help, rnm starts the rename flow).
func (a *App) ExecuteCommand() (quit bool) {
	raw := strings.TrimSpace(a.Input.Text)
	a.Input = InputState{}

	count, token := parseCommandCount(raw)

	keepMode := false
	switch token {
	case "nn":
		for i := 0; i < count; i++ {
			a.CreateNewNote()
		}
		keepMode = count > 0
	case "ntodo":
		for i := 0; i < count; i++ {
			a.CreateNewTodo()
		}
		keepMode = count > 0
	case "del":
		for i := 0; i < count; i++ {
			a.DeleteCurrentItem()
		}
	case "rnm":
		keepMode = a.StartRename()
	case "mm":
		a.goToMainMenu()
		keepMode = true
	case "?":
		a.showHelp()
		keepMode = true
	case "save", "w":
		a.saveWithStatus()
	case "backup":
		a.backupWithStatus()
	case "export-md", "export-markdown":
		a.exportWithStatus("markdown")
	case "export-csv":
		a.exportWithStatus("csv")
	case "q", "quit":
		quit = a.RequestQuit()
	case "q!":
		quit = true
	default:
		a.StatusMessage = "Unknown command: " + token
	}

	if !keepMode {
		a.Mode = ModeNormal
	}
	return quit
}

// parseCommandCount splits a leading run of decimal digits off the command
// token: "3nn" is (3, "nn"). A bare digit run is a command of its own, and
// an unparseable prefix falls back to count 1.
func parseCommandCount(cmd string) (int, string) {
	split := strings.IndexFunc(cmd, func(r rune) bool { return r < '0' || r > '9' })
	if split <= 0 {
		return 1, cmd
	}
	count := 0
	for _, r := range cmd[:split] {
		count = count*10 + int(r-'0')
		if count > 1_000_000 {
			// Absurd counts are almost certainly typos; treat the whole
			// string as a command token like an unparseable prefix would be.
			return 1, cmd
		}
	}
	return count, cmd[split:]
}

func (a *App) saveWithStatus() {
	if err := a.Save(); err != nil {
		a.StatusMessage = "Error saving data: " + err.Error()
		return
	}
	a.StatusMessage = "Data saved successfully"
	a.UnsavedChanges = false
}

func (a *App) backupWithStatus() {
	path, err := a.store.Backup()
	if err != nil {
		a.StatusMessage = "Error creating backup: " + err.Error()
		return
	}
	a.StatusMessage = "Backup created at: " + path
}

func (a *App) exportWithStatus(format string) {
	path := store.DefaultExportPath(a.exportDir, format)
	if err := a.store.Export(format, path, a.Document()); err != nil {
		a.StatusMessage = "Error exporting to " + format + ": " + err.Error()
		return
	}
	a.StatusMessage = "Exported to: " + path
}
