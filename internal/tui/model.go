package tui

import (
	"time"

	"terminal-notes/internal/app"

	tea "github.com/charmbracelet/bubbletea"
)

const tickRate = 100 * time.Millisecond

type tickMsg time.Time

// appModel is the bubbletea shell around the application state. All
// mutations go through *app.App; this layer only routes events in and
// renders state out.
type appModel struct {
	app  *app.App
	keys KeyMap

	width  int
	height int

	markdownPreview bool
}

func newAppModel(a *app.App, markdownPreview bool) appModel {
	return appModel{
		app:             a,
		keys:            keys,
		markdownPreview: markdownPreview,
	}
}

func (m appModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}
