// Package app holds the application state machine: the mode/section model,
// the CRUD and editing operations on notes and todos, and the command
// dispatch that drives persistence. The TUI layer routes key events into
// these methods and renders the resulting state; it never mutates it
// directly.
package app

import (
	"fmt"
	"time"
	"unicode/utf8"

	"terminal-notes/internal/model"
	"terminal-notes/internal/store"
)

type Mode int

const (
	ModeMainMenu Mode = iota
	ModeNormal
	ModeCommand
	ModeEditing
	ModeHelp
	ModeRenaming
)

func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main-menu"
	case ModeNormal:
		return "normal"
	case ModeCommand:
		return "command"
	case ModeEditing:
		return "editing"
	case ModeHelp:
		return "help"
	case ModeRenaming:
		return "renaming"
	default:
		return "unknown"
	}
}

type Section int

const (
	SectionNotes Section = iota
	SectionTodos
	SectionHelp
)

// None marks an empty selection or "nothing open in the editor".
const None = -1

const menuItemCount = 3

type InputKind int

const (
	// InputIdle: the buffer holds leftover text with no active interpretation.
	InputIdle InputKind = iota
	// InputCommand: the buffer is being typed as a command line.
	InputCommand
	// InputRename: the buffer is being typed as a replacement title.
	InputRename
)

// InputState is the transient text input. The buffer survives mode exits
// (escape abandons the interpretation, not the text); only executing a
// command or starting a rename resets it.
type InputState struct {
	Kind InputKind
	Text string
}

func (in *InputState) Append(r rune) {
	in.Text += string(r)
}

func (in *InputState) Backspace() {
	in.Text = trimLastRune(in.Text)
}

// App is the single owner of all mutable application state. It is
// explicitly constructed and handed to the event/view layers; there is no
// package-level instance.
type App struct {
	Section Section
	Notes   []model.Note
	Todos   []model.Todo

	// Cursor positions, None when the collection is empty.
	SelectedNote int
	SelectedTodo int
	// Entities open in the editor; only meaningful while Mode == ModeEditing.
	CurrentNote int
	CurrentTodo int

	SelectedMenuItem int
	Mode             Mode
	Input            InputState
	StatusMessage    string
	UnsavedChanges   bool

	store     store.Store
	exportDir string
}

// New loads the persisted document and returns the initial state. A
// malformed document is fatal: the caller must not start with corrupt
// state. A missing document file is fine and yields an empty app.
func New(st store.Store, cfg store.Config) (*App, error) {
	doc, err := st.Load()
	if err != nil {
		return nil, err
	}
	a := &App{
		Section:      SectionNotes,
		Notes:        doc.Notes,
		Todos:        doc.Todos,
		SelectedNote: None,
		SelectedTodo: None,
		CurrentNote:  None,
		CurrentTodo:  None,
		Mode:         ModeMainMenu,
		store:        st,
		exportDir:    cfg.ExportDir,
	}
	// Cursors start on the first entry of a non-empty collection so a
	// selection always exists whenever the collection does.
	if len(a.Notes) > 0 {
		a.SelectedNote = 0
	}
	if len(a.Todos) > 0 {
		a.SelectedTodo = 0
	}
	return a, nil
}

// Tick is the periodic no-op hook reserved for future background work.
func (a *App) Tick() {}

// Document assembles the persisted aggregate from the live collections.
func (a *App) Document() *model.Document {
	return &model.Document{Notes: a.Notes, Todos: a.Todos}
}

// Save persists the full document. Used by the :save command and by the
// best-effort save on exit.
func (a *App) Save() error {
	return a.store.Save(a.Document())
}

func (a *App) NextMenuItem() {
	a.SelectedMenuItem = (a.SelectedMenuItem + 1) % menuItemCount
}

func (a *App) PreviousMenuItem() {
	a.SelectedMenuItem = (a.SelectedMenuItem + menuItemCount - 1) % menuItemCount
}

// SelectMenuItem confirms the highlighted menu entry.
func (a *App) SelectMenuItem() {
	switch a.SelectedMenuItem {
	case 0:
		a.Section = SectionNotes
		a.Mode = ModeNormal
		a.StatusMessage = "Notes section"
	case 1:
		a.Section = SectionTodos
		a.Mode = ModeNormal
		a.StatusMessage = "Todo section"
	case 2:
		a.Section = SectionHelp
		a.Mode = ModeHelp
		a.StatusMessage = "Help section"
	}
}

func (a *App) NextNote() {
	a.SelectedNote = nextIndex(a.SelectedNote, len(a.Notes))
}

func (a *App) PreviousNote() {
	a.SelectedNote = previousIndex(a.SelectedNote, len(a.Notes))
}

func (a *App) NextTodo() {
	a.SelectedTodo = nextIndex(a.SelectedTodo, len(a.Todos))
}

func (a *App) PreviousTodo() {
	a.SelectedTodo = previousIndex(a.SelectedTodo, len(a.Todos))
}

// NextItem advances the cursor in the active section's collection.
func (a *App) NextItem() {
	switch a.Section {
	case SectionNotes:
		a.NextNote()
	case SectionTodos:
		a.NextTodo()
	}
}

func (a *App) PreviousItem() {
	switch a.Section {
	case SectionNotes:
		a.PreviousNote()
	case SectionTodos:
		a.PreviousTodo()
	}
}

func nextIndex(cur, n int) int {
	switch {
	case n == 0:
		return None
	case cur == None:
		return 0
	case cur >= n-1:
		return 0
	default:
		return cur + 1
	}
}

func previousIndex(cur, n int) int {
	switch {
	case n == 0:
		return None
	case cur == None:
		return n - 1
	case cur == 0:
		return n - 1
	default:
		return cur - 1
	}
}

// OpenSelected opens the cursor's entity in the editor.
func (a *App) OpenSelected() {
	switch a.Section {
	case SectionNotes:
		if a.SelectedNote != None {
			a.CurrentNote = a.SelectedNote
			a.Mode = ModeEditing
		}
	case SectionTodos:
		if a.SelectedTodo != None {
			a.CurrentTodo = a.SelectedTodo
			a.Mode = ModeEditing
		}
	}
}

func (a *App) CreateNewNote() {
	title := fmt.Sprintf("Note %d", len(a.Notes)+1)
	a.Notes = append(a.Notes, model.NewNote(title, time.Now()))
	a.SelectedNote = len(a.Notes) - 1
	a.CurrentNote = a.SelectedNote
	a.Section = SectionNotes
	a.Mode = ModeEditing
	a.StatusMessage = "New note created"
	a.UnsavedChanges = true
}

func (a *App) CreateNewTodo() {
	title := fmt.Sprintf("Todo %d", len(a.Todos)+1)
	a.Todos = append(a.Todos, model.NewTodo(title, time.Now()))
	a.SelectedTodo = len(a.Todos) - 1
	a.CurrentTodo = a.SelectedTodo
	a.Section = SectionTodos
	a.Mode = ModeEditing
	a.StatusMessage = "New todo created"
	a.UnsavedChanges = true
}

// InsertRune appends a character to the open entity's content.
func (a *App) InsertRune(r rune) {
	a.editContent(func(content string) string { return content + string(r) })
}

// InsertNewline appends a newline to the open entity's content; Enter in
// editing mode is a content edit, not a mode exit.
func (a *App) InsertNewline() {
	a.editContent(func(content string) string { return content + "\n" })
}

// DeleteChar removes the last character of the open entity's content.
func (a *App) DeleteChar() {
	a.editContent(trimLastRune)
}

func (a *App) editContent(edit func(string) string) {
	switch a.Section {
	case SectionNotes:
		if a.CurrentNote != None && a.CurrentNote < len(a.Notes) {
			a.Notes[a.CurrentNote].Content = edit(a.Notes[a.CurrentNote].Content)
			a.UnsavedChanges = true
		}
	case SectionTodos:
		if a.CurrentTodo != None && a.CurrentTodo < len(a.Todos) {
			a.Todos[a.CurrentTodo].Content = edit(a.Todos[a.CurrentTodo].Content)
			a.UnsavedChanges = true
		}
	}
}

func (a *App) ToggleTodoCompletion() {
	if a.SelectedTodo == None || a.SelectedTodo >= len(a.Todos) {
		return
	}
	td := &a.Todos[a.SelectedTodo]
	td.Completed = !td.Completed
	a.UnsavedChanges = true
	if td.Completed {
		a.StatusMessage = "Todo marked as completed"
	} else {
		a.StatusMessage = "Todo marked as incomplete"
	}
}

// DeleteCurrentItem removes the entity at the cursor in the active section.
func (a *App) DeleteCurrentItem() {
	switch a.Section {
	case SectionNotes:
		a.deleteNote()
	case SectionTodos:
		a.deleteTodo()
	}
}

func (a *App) deleteNote() {
	idx := a.SelectedNote
	if idx == None || idx >= len(a.Notes) {
		return
	}
	a.Notes = append(a.Notes[:idx], a.Notes[idx+1:]...)
	a.UnsavedChanges = true
	a.SelectedNote, a.CurrentNote = clampAfterDelete(idx, a.SelectedNote, a.CurrentNote, len(a.Notes))
	a.StatusMessage = "Note deleted"
}

func (a *App) deleteTodo() {
	idx := a.SelectedTodo
	if idx == None || idx >= len(a.Todos) {
		return
	}
	a.Todos = append(a.Todos[:idx], a.Todos[idx+1:]...)
	a.UnsavedChanges = true
	a.SelectedTodo, a.CurrentTodo = clampAfterDelete(idx, a.SelectedTodo, a.CurrentTodo, len(a.Todos))
	a.StatusMessage = "Todo deleted"
}

// clampAfterDelete re-validates the cursor and the open-editor index after
// removing the entity at removed. The cursor clamps to the new last index
// when it pointed past the end; the open index is cleared when its entity
// was the one removed and shifted down when a predecessor was removed.
func clampAfterDelete(removed, selected, current, newLen int) (int, int) {
	if newLen == 0 {
		return None, None
	}
	if selected >= newLen {
		selected = newLen - 1
	}
	switch {
	case current == removed:
		current = None
	case current > removed && current != None:
		current--
	}
	return selected, current
}

// EnterCommandMode switches to command-line input. The previous buffer
// text is retained; it is only reset when a command executes.
func (a *App) EnterCommandMode() {
	a.Mode = ModeCommand
	a.Input.Kind = InputCommand
}

// AbandonInput leaves command mode without executing, keeping the buffer.
func (a *App) AbandonInput() {
	a.Mode = ModeNormal
	a.Input.Kind = InputIdle
}

// StartRename seeds the input buffer with the selected entity's title and
// switches to rename input. Reports whether a rename actually started.
func (a *App) StartRename() bool {
	var title string
	switch a.Section {
	case SectionNotes:
		if a.SelectedNote == None || a.SelectedNote >= len(a.Notes) {
			return false
		}
		title = a.Notes[a.SelectedNote].Title
	case SectionTodos:
		if a.SelectedTodo == None || a.SelectedTodo >= len(a.Todos) {
			return false
		}
		title = a.Todos[a.SelectedTodo].Title
	default:
		return false
	}
	a.Input = InputState{Kind: InputRename, Text: title}
	a.Mode = ModeRenaming
	a.StatusMessage = "Enter new name:"
	return true
}

// FinishRename applies the pending buffer text as the new title.
func (a *App) FinishRename() {
	name := a.Input.Text
	switch a.Section {
	case SectionNotes:
		if a.SelectedNote != None && a.SelectedNote < len(a.Notes) {
			a.Notes[a.SelectedNote].Title = name
			a.UnsavedChanges = true
			a.StatusMessage = "Note renamed"
		}
	case SectionTodos:
		if a.SelectedTodo != None && a.SelectedTodo < len(a.Todos) {
			a.Todos[a.SelectedTodo].Title = name
			a.UnsavedChanges = true
			a.StatusMessage = "Todo renamed"
		}
	}
	a.Input.Kind = InputIdle
	a.Mode = ModeNormal
}

// CancelRename discards the pending rename without touching the title.
func (a *App) CancelRename() {
	a.Input.Kind = InputIdle
	a.Mode = ModeNormal
	a.StatusMessage = "Rename canceled"
}

// ExitEditing returns from the editor to list navigation.
func (a *App) ExitEditing() {
	a.Mode = ModeNormal
}

// ExitHelp returns from the help screen to list navigation.
func (a *App) ExitHelp() {
	a.Mode = ModeNormal
}

// RequestQuit reports whether the process may terminate. With unsaved
// changes it refuses and leaves a warning status instead.
func (a *App) RequestQuit() bool {
	if a.UnsavedChanges {
		a.StatusMessage = "Unsaved changes! Use :save first or :q! to force quit"
		return false
	}
	return true
}

func (a *App) goToMainMenu() {
	a.Mode = ModeMainMenu
	a.Section = SectionNotes
	a.StatusMessage = "Main Menu"
	a.CurrentNote = None
	a.CurrentTodo = None
}

func (a *App) showHelp() {
	a.Mode = ModeHelp
	a.StatusMessage = "Help"
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
