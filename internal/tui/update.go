package tui

import (
	"terminal-notes/internal/app"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.app.Tick()
		return m, tickCmd()

	case tea.KeyMsg:
		logKey(m.app.Mode, msg)

		// Ctrl+Q quits from any mode, gated on unsaved changes.
		if key.Matches(msg, m.keys.ForceQuit) {
			if m.app.RequestQuit() {
				return m, tea.Quit
			}
			return m, nil
		}

		switch m.app.Mode {
		case app.ModeMainMenu:
			return m.updateMainMenu(msg)
		case app.ModeNormal:
			return m.updateNormal(msg)
		case app.ModeCommand:
			return m.updateCommand(msg)
		case app.ModeEditing:
			return m.updateEditing(msg)
		case app.ModeHelp:
			return m.updateHelp(msg)
		case app.ModeRenaming:
			return m.updateRenaming(msg)
		}
	}
	return m, nil
}

func (m appModel) updateMainMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Command):
		m.app.EnterCommandMode()
	case key.Matches(msg, m.keys.Down):
		m.app.NextMenuItem()
	case key.Matches(msg, m.keys.Up):
		m.app.PreviousMenuItem()
	case key.Matches(msg, m.keys.Confirm):
		m.app.SelectMenuItem()
	}
	return m, nil
}

func (m appModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Command):
		m.app.EnterCommandMode()
	case key.Matches(msg, m.keys.Down):
		m.app.NextItem()
	case key.Matches(msg, m.keys.Up):
		m.app.PreviousItem()
	case key.Matches(msg, m.keys.Confirm):
		m.app.OpenSelected()
	case key.Matches(msg, m.keys.Toggle):
		if m.app.Section == app.SectionTodos {
			m.app.ToggleTodoCompletion()
		}
	}
	return m, nil
}

func (m appModel) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.app.AbandonInput()
	case tea.KeyEnter:
		if m.app.ExecuteCommand() {
			return m, tea.Quit
		}
	case tea.KeyBackspace:
		m.app.Input.Backspace()
	case tea.KeySpace:
		m.app.Input.Append(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.app.Input.Append(r)
		}
	}
	return m, nil
}

func (m appModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.app.ExitEditing()
	case tea.KeyEnter:
		// Enter is a content edit here, not a mode exit.
		m.app.InsertNewline()
	case tea.KeyBackspace:
		m.app.DeleteChar()
	case tea.KeySpace:
		m.app.InsertRune(' ')
	case tea.KeyTab:
		m.app.InsertRune('\t')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.app.InsertRune(r)
		}
	}
	return m, nil
}

func (m appModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.app.ExitHelp()
	}
	return m, nil
}

func (m appModel) updateRenaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.app.CancelRename()
	case tea.KeyEnter:
		m.app.FinishRename()
	case tea.KeyBackspace:
		m.app.Input.Backspace()
	case tea.KeySpace:
		m.app.Input.Append(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.app.Input.Append(r)
		}
	}
	return m, nil
}
