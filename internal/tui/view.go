package tui

import (
	"strings"

	"terminal-notes/internal/app"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const defaultHint = "Terminal Notes - Press : for commands, Ctrl+Q to quit"

func modeLabel(m app.Mode) string {
	switch m {
	case app.ModeNormal:
		return "NORMAL"
	case app.ModeEditing:
		return "EDITING"
	case app.ModeCommand:
		return "COMMAND"
	case app.ModeMainMenu:
		return "MENU"
	case app.ModeHelp:
		return "HELP"
	case app.ModeRenaming:
		return "RENAME"
	default:
		return "?"
	}
}

func (m appModel) View() string {
	width := m.width
	if width < 40 {
		width = 80
	}
	height := m.height
	if height < 10 {
		height = 24
	}

	status := m.viewStatusBar(width)
	// Status bar is 3 rows (border + line + border), command line is 1.
	body := m.viewBody(width, height-4)
	cmdline := m.viewCommandLine()
	return strings.Join([]string{status, body, cmdline}, "\n")
}

func (m appModel) viewStatusBar(width int) string {
	msg := m.app.StatusMessage
	if msg == "" {
		msg = defaultHint
	}
	label := lipgloss.NewStyle().Bold(true).Foreground(colorMode).Render(modeLabel(m.app.Mode))

	inner := width - 2
	gap := inner - xansi.StringWidth(msg) - xansi.StringWidth(label) - 1
	if gap < 1 {
		msg = fitLine(msg, inner-xansi.StringWidth(label)-2)
		gap = 1
	}
	line := msg + strings.Repeat(" ", gap) + label + " "

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(inner).
		Render(line)
}

func (m appModel) viewBody(width, height int) string {
	switch m.app.Mode {
	case app.ModeMainMenu:
		return m.viewMainMenu(width, height)
	case app.ModeHelp:
		return m.viewHelp(width, height)
	}
	switch m.app.Section {
	case app.SectionNotes:
		return m.viewSplit(width, height, m.noteRows(), m.viewNoteEditor)
	case app.SectionTodos:
		return m.viewSplit(width, height, m.todoRows(), m.viewTodoEditor)
	}
	return ""
}

func (m appModel) viewCommandLine() string {
	if m.app.Mode != app.ModeCommand && m.app.Mode != app.ModeRenaming {
		return ""
	}
	return lipgloss.NewStyle().Foreground(colorMode).Render(":" + m.app.Input.Text)
}

func (m appModel) viewMainMenu(width, height int) string {
	entries := []string{"Notes", "Todos", "Help"}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Main Menu"))
	b.WriteString("\n\n")
	for i, e := range entries {
		row := "  " + e
		if i == m.app.SelectedMenuItem {
			row = styleSelectedRow().Render("> " + e)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return pane(b.String(), width, height)
}

func (m appModel) viewHelp(width, height int) string {
	help := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render("Terminal Notes Help"),
		"",
		"Navigation:",
		"  j/Down - Move down in list",
		"  k/Up   - Move up in list",
		"  Enter  - Select item/Edit",
		"  Esc    - Go back/Exit editing",
		"",
		"Commands (press : to enter command mode):",
		"  [n]nn       - Create [n] new notes",
		"  [n]ntodo    - Create [n] new todos",
		"  [n]del      - Delete [n] items",
		"  :mm         - Go to main menu",
		"  :?          - Show this help",
		"  :save/:w    - Save all data",
		"  :rnm        - Rename current note/todo",
		"  :backup     - Create a backup",
		"  :export-md  - Export to Markdown",
		"  :export-csv - Export to CSV",
		"  :q/:quit    - Quit application",
		"  :q!         - Force quit",
		"",
		"Todo Management:",
		"  Space - Toggle todo completion",
		"",
		"Press Esc to exit this help screen.",
	}, "\n")
	return pane(help, width, height)
}

// viewSplit renders the 30/70 list+editor layout used by both sections.
func (m appModel) viewSplit(width, height int, rows []string, editor func(width int) string) string {
	listWidth := width * 30 / 100
	if listWidth < 16 {
		listWidth = 16
	}
	editorWidth := width - listWidth

	var b strings.Builder
	for i, row := range rows {
		line := "  " + row
		if m.listCursor() == i {
			line = styleSelectedRow().Render("> " + xansi.Strip(row))
		}
		b.WriteString(fitLine(line, listWidth-2))
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(styleMuted().Render("  (empty)"))
	}

	list := pane(b.String(), listWidth, height)
	ed := pane(editor(editorWidth-4), editorWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, ed)
}

func (m appModel) listCursor() int {
	if m.app.Section == app.SectionTodos {
		return m.app.SelectedTodo
	}
	return m.app.SelectedNote
}

func (m appModel) noteRows() []string {
	rows := make([]string, 0, len(m.app.Notes))
	for _, n := range m.app.Notes {
		row := n.Title
		if len(n.Tags) > 0 {
			row += " [" + strings.Join(n.Tags, ", ") + "]"
		}
		rows = append(rows, row)
	}
	return rows
}

func (m appModel) todoRows() []string {
	rows := make([]string, 0, len(m.app.Todos))
	for _, t := range m.app.Todos {
		box := "[ ]"
		if t.Completed {
			box = "[✓]"
		}
		row := strings.TrimRight(box+" "+t.Severity.Glyph()+" "+t.Title, " ")
		switch {
		case t.Completed:
			row = lipgloss.NewStyle().Foreground(colorDone).Render(row)
		case t.IsOverdue():
			row = lipgloss.NewStyle().Foreground(colorOverdue).Render(row)
		}
		rows = append(rows, row)
	}
	return rows
}

// previewIndex picks the entity shown in the editor pane: the open one
// while editing, the cursor's while navigating.
func previewIndex(mode app.Mode, current, selected int) int {
	if current != app.None {
		return current
	}
	if mode == app.ModeNormal {
		return selected
	}
	return app.None
}

func (m appModel) viewNoteEditor(width int) string {
	idx := previewIndex(m.app.Mode, m.app.CurrentNote, m.app.SelectedNote)
	if idx == app.None || idx >= len(m.app.Notes) {
		return styleMuted().Render("Select a note to view it.")
	}
	n := m.app.Notes[idx]
	tags := "None"
	if len(n.Tags) > 0 {
		tags = strings.Join(n.Tags, ", ")
	}
	header := "Title: " + n.Title + "\n" +
		"Created: " + n.CreatedAt + "\n" +
		"Tags: " + tags + "\n\n"
	return header + m.renderContent(n.Content, width)
}

func (m appModel) viewTodoEditor(width int) string {
	idx := previewIndex(m.app.Mode, m.app.CurrentTodo, m.app.SelectedTodo)
	if idx == app.None || idx >= len(m.app.Todos) {
		return styleMuted().Render("Select a todo to view it.")
	}
	t := m.app.Todos[idx]
	status := "Pending"
	if t.Completed {
		status = "Completed"
	} else if t.IsOverdue() {
		status = "OVERDUE"
	}
	due := "Not set"
	if t.DueDate != nil {
		due = *t.DueDate
	}
	tags := "None"
	if len(t.Tags) > 0 {
		tags = strings.Join(t.Tags, ", ")
	}
	header := "Title: " + t.Title + "\n" +
		"Created: " + t.CreatedAt + "\n" +
		"Status: " + status + "\n" +
		"Due: " + due + "\n" +
		"Severity: " + string(t.Severity) + "\n" +
		"Tags: " + tags + "\n\n"
	return header + m.renderContent(t.Content, width)
}

// renderContent shows raw text while editing (what you type is what you
// see) and a markdown preview while navigating.
func (m appModel) renderContent(content string, width int) string {
	if m.app.Mode == app.ModeEditing || !m.markdownPreview {
		return content
	}
	return renderMarkdown(content, width)
}

// pane forces s into a bordered box of exactly width x height cells so
// lipgloss.JoinHorizontal stays stable.
func pane(s string, width, height int) string {
	inner := width - 2
	innerHeight := height - 2
	if inner < 1 {
		inner = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	lines := strings.Split(s, "\n")
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = fitLine(lines[i], inner)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Render(strings.Join(lines, "\n"))
}

// fitLine pads or truncates a line to exactly width columns, ANSI-aware.
func fitLine(s string, width int) string {
	if width < 1 {
		return ""
	}
	w := xansi.StringWidth(s)
	if w > width {
		if width == 1 {
			return xansi.Cut(s, 0, 1)
		}
		s = xansi.Cut(s, 0, width-1) + "…"
		w = xansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
