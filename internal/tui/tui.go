package tui

import (
	"fmt"
	"os"

	"terminal-notes/internal/app"

	tea "github.com/charmbracelet/bubbletea"
)

// Run owns the terminal until the user quits. Unsaved changes are flushed
// best-effort on the way out; a failed exit save is reported but never
// blocks termination.
func Run(a *app.App, markdownPreview bool) error {
	applyColorProfilePreference()
	applyThemePreference()
	closeLog := initDebugLog()
	defer closeLog()

	m := newAppModel(a, markdownPreview)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()

	if a.UnsavedChanges {
		if saveErr := a.Save(); saveErr != nil {
			fmt.Fprintf(os.Stderr, "Error saving data on exit: %v\n", saveErr)
		}
	}
	return err
}
