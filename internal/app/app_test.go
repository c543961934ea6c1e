package app

import (
	"os"
	"strings"
	"testing"
	"time"

	"terminal-notes/internal/model"
	"terminal-notes/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	st := store.Store{Dir: t.TempDir()}
	cfg := store.DefaultConfig()
	cfg.ExportDir = t.TempDir()
	a, err := New(st, cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a
}

func addNotes(a *App, n int) {
	for i := 0; i < n; i++ {
		a.Notes = append(a.Notes, model.NewNote("seed", time.Now()))
	}
}

func TestNewAppStartsInMainMenu(t *testing.T) {
	a := newTestApp(t)
	if a.Mode != ModeMainMenu {
		t.Fatalf("expected main menu mode, got %v", a.Mode)
	}
	if a.Section != SectionNotes {
		t.Fatalf("expected notes section, got %v", a.Section)
	}
	if a.SelectedNote != None || a.SelectedTodo != None {
		t.Fatalf("expected empty selections")
	}
	if a.UnsavedChanges {
		t.Fatalf("expected clean state on startup")
	}
}

func TestNewAppSeedsCursorsFromDocument(t *testing.T) {
	st := store.Store{Dir: t.TempDir()}
	doc := model.NewDocument()
	doc.Notes = append(doc.Notes, model.NewNote("Existing", time.Now()))
	if err := st.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	a, err := New(st, store.DefaultConfig())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if a.SelectedNote != 0 {
		t.Fatalf("expected cursor on first note, got %d", a.SelectedNote)
	}
	if a.SelectedTodo != None {
		t.Fatalf("expected no todo cursor, got %d", a.SelectedTodo)
	}
}

func TestNewAppFailsOnMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	st := store.Store{Dir: dir}
	if err := st.Save(model.NewDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Corrupt the document file in place.
	if err := os.WriteFile(st.DataPath(), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	if _, err := New(st, store.DefaultConfig()); err == nil {
		t.Fatalf("expected startup to fail on corrupt document")
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	a := newTestApp(t)
	for i := 0; i < 7; i++ {
		a.NextMenuItem()
		if a.SelectedMenuItem < 0 || a.SelectedMenuItem >= 3 {
			t.Fatalf("menu index out of range: %d", a.SelectedMenuItem)
		}
	}
	if a.SelectedMenuItem != 1 {
		t.Fatalf("expected menu index 1 after 7 steps, got %d", a.SelectedMenuItem)
	}
	a.SelectedMenuItem = 0
	a.PreviousMenuItem()
	if a.SelectedMenuItem != 2 {
		t.Fatalf("expected wrap to 2, got %d", a.SelectedMenuItem)
	}
}

func TestSelectMenuItem(t *testing.T) {
	cases := []struct {
		item        int
		wantSection Section
		wantMode    Mode
		wantStatus  string
	}{
		{0, SectionNotes, ModeNormal, "Notes section"},
		{1, SectionTodos, ModeNormal, "Todo section"},
		{2, SectionHelp, ModeHelp, "Help section"},
	}
	for _, tc := range cases {
		a := newTestApp(t)
		a.SelectedMenuItem = tc.item
		a.SelectMenuItem()
		if a.Section != tc.wantSection || a.Mode != tc.wantMode {
			t.Fatalf("item %d: section=%v mode=%v", tc.item, a.Section, a.Mode)
		}
		if a.StatusMessage != tc.wantStatus {
			t.Fatalf("item %d: status %q", tc.item, a.StatusMessage)
		}
	}
}

func TestListNavigationStaysInRange(t *testing.T) {
	a := newTestApp(t)
	addNotes(a, 3)

	// Any sequence of next/previous keeps the cursor in [0, n).
	steps := []func(){a.NextNote, a.NextNote, a.PreviousNote, a.NextNote, a.NextNote, a.NextNote, a.PreviousNote, a.PreviousNote, a.PreviousNote, a.PreviousNote}
	for i, step := range steps {
		step()
		if a.SelectedNote < 0 || a.SelectedNote >= len(a.Notes) {
			t.Fatalf("step %d: cursor %d out of range", i, a.SelectedNote)
		}
	}
}

func TestListNavigationWraparound(t *testing.T) {
	a := newTestApp(t)
	addNotes(a, 3)

	a.NextNote()
	if a.SelectedNote != 0 {
		t.Fatalf("first next should land on 0, got %d", a.SelectedNote)
	}
	a.SelectedNote = 2
	a.NextNote()
	if a.SelectedNote != 0 {
		t.Fatalf("expected wrap past end to 0, got %d", a.SelectedNote)
	}
	a.SelectedNote = 0
	a.PreviousNote()
	if a.SelectedNote != 2 {
		t.Fatalf("expected wrap before start to last, got %d", a.SelectedNote)
	}
}

func TestListNavigationOnEmptyCollection(t *testing.T) {
	a := newTestApp(t)
	a.NextNote()
	a.PreviousNote()
	a.NextTodo()
	a.PreviousTodo()
	if a.SelectedNote != None || a.SelectedTodo != None {
		t.Fatalf("navigation on empty collections must stay None")
	}
}

func TestCreateNewNote(t *testing.T) {
	a := newTestApp(t)
	a.Section = SectionTodos
	a.Mode = ModeNormal

	a.CreateNewNote()
	if len(a.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(a.Notes))
	}
	if a.Notes[0].Title != "Note 1" {
		t.Fatalf("title: %q", a.Notes[0].Title)
	}
	if _, err := time.Parse(model.CreatedAtLayout, a.Notes[0].CreatedAt); err != nil {
		t.Fatalf("created_at does not round-trip: %v", err)
	}
	if a.SelectedNote != 0 || a.CurrentNote != 0 {
		t.Fatalf("expected cursor and editor on new note")
	}
	if a.Section != SectionNotes || a.Mode != ModeEditing {
		t.Fatalf("expected notes section in editing mode")
	}
	if !a.UnsavedChanges {
		t.Fatalf("expected unsaved changes")
	}

	a.CreateNewNote()
	if a.Notes[1].Title != "Note 2" {
		t.Fatalf("second title: %q", a.Notes[1].Title)
	}
}

func TestCreateNewTodoDefaults(t *testing.T) {
	a := newTestApp(t)
	a.CreateNewTodo()
	if len(a.Todos) != 1 || a.Todos[0].Title != "Todo 1" {
		t.Fatalf("todos: %+v", a.Todos)
	}
	if a.Todos[0].Severity != model.SeverityMedium {
		t.Fatalf("severity: %v", a.Todos[0].Severity)
	}
	if a.Section != SectionTodos || a.Mode != ModeEditing {
		t.Fatalf("expected todos section in editing mode")
	}
}

func TestEditingMutatesOpenEntity(t *testing.T) {
	a := newTestApp(t)
	a.CreateNewNote()
	for _, r := range "héllo" {
		a.InsertRune(r)
	}
	a.InsertNewline()
	a.InsertRune('x')
	a.DeleteChar()
	if got := a.Notes[0].Content; got != "héllo\n" {
		t.Fatalf("content: %q", got)
	}
	// Backspace removes whole runes, not bytes.
	a.DeleteChar() // newline
	a.DeleteChar() // o
	a.DeleteChar() // l
	a.DeleteChar() // l
	a.DeleteChar() // é
	if got := a.Notes[0].Content; got != "h" {
		t.Fatalf("content after rune backspaces: %q", got)
	}
}

func TestEditingWithoutOpenEntityIsNoop(t *testing.T) {
	a := newTestApp(t)
	addNotes(a, 1)
	a.Section = SectionNotes
	a.InsertRune('x')
	a.DeleteChar()
	if a.Notes[0].Content != "" {
		t.Fatalf("content mutated without an open entity")
	}
	if a.UnsavedChanges {
		t.Fatalf("unsaved flag set without a mutation")
	}
}

func TestToggleTodoCompletion(t *testing.T) {
	a := newTestApp(t)
	a.CreateNewTodo()
	a.Mode = ModeNormal

	a.ToggleTodoCompletion()
	if !a.Todos[0].Completed {
		t.Fatalf("expected completed")
	}
	if a.StatusMessage != "Todo marked as completed" {
		t.Fatalf("status: %q", a.StatusMessage)
	}
	a.ToggleTodoCompletion()
	if a.Todos[0].Completed {
		t.Fatalf("expected incomplete")
	}
	if a.StatusMessage != "Todo marked as incomplete" {
		t.Fatalf("status: %q", a.StatusMessage)
	}
}

func TestDeleteShrinksAndClamps(t *testing.T) {
	a := newTestApp(t)
	addNotes(a, 3)
	a.Section = SectionNotes

	// Deleting the last index clamps to the new last.
	a.SelectedNote = 2
	a.DeleteCurrentItem()
	if len(a.Notes) != 2 || a.SelectedNote != 1 {
		t.Fatalf("len=%d selected=%d", len(a.Notes), a.SelectedNote)
	}

	// Deleting a middle index leaves the cursor on the shifted successor.
	a.SelectedNote = 0
	a.DeleteCurrentItem()
	if len(a.Notes) != 1 || a.SelectedNote != 0 {
		t.Fatalf("len=%d selected=%d", len(a.Notes), a.SelectedNote)
	}

	// Emptying the collection clears both indices.
	a.DeleteCurrentItem()
	if len(a.Notes) != 0 || a.SelectedNote != None || a.CurrentNote != None {
		t.Fatalf("len=%d selected=%d current=%d", len(a.Notes), a.SelectedNote, a.CurrentNote)
	}

	// Deleting with no selection is a no-op.
	a.DeleteCurrentItem()
	if a.SelectedNote != None {
		t.Fatalf("expected None after no-op delete")
	}
}

func TestDeleteKeepsOpenEditorIndexConsistent(t *testing.T) {
	a := newTestApp(t)
	addNotes(a, 3)
	a.Section = SectionNotes

	// Deleting the entity that is open clears the editor index.
	a.SelectedNote = 1
	a.CurrentNote = 1
	a.DeleteCurrentItem()
	if a.CurrentNote != None {
		t.Fatalf("expected editor index cleared, got %d", a.CurrentNote)
	}

	// Deleting a predecessor shifts the editor index down.
	addNotes(a, 1) // back to 3
	a.SelectedNote = 0
	a.CurrentNote = 2
	a.DeleteCurrentItem()
	if a.CurrentNote != 1 {
		t.Fatalf("expected editor index shifted to 1, got %d", a.CurrentNote)
	}
}

func TestRenameFlow(t *testing.T) {
	a := newTestApp(t)
	addNotes(a, 1)
	a.Section = SectionNotes
	a.SelectedNote = 0
	a.Notes[0].Title = "Old title"

	if !a.StartRename() {
		t.Fatalf("expected rename to start")
	}
	if a.Mode != ModeRenaming || a.Input.Kind != InputRename {
		t.Fatalf("mode=%v kind=%v", a.Mode, a.Input.Kind)
	}
	if a.Input.Text != "Old title" {
		t.Fatalf("buffer not seeded: %q", a.Input.Text)
	}
	if a.StatusMessage != "Enter new name:" {
		t.Fatalf("status: %q", a.StatusMessage)
	}

	a.Input.Backspace()
	for _, r := range " name" {
		a.Input.Append(r)
	}
	a.FinishRename()
	if a.Notes[0].Title != "Old titl name" {
		t.Fatalf("title: %q", a.Notes[0].Title)
	}
	if a.Mode != ModeNormal || !a.UnsavedChanges {
		t.Fatalf("mode=%v unsaved=%v", a.Mode, a.UnsavedChanges)
	}
	if a.StatusMessage != "Note renamed" {
		t.Fatalf("status: %q", a.StatusMessage)
	}
}

func TestRenameCancelKeepsTitle(t *testing.T) {
	a := newTestApp(t)
	addNotes(a, 1)
	a.Section = SectionNotes
	a.SelectedNote = 0
	a.Notes[0].Title = "Keep me"

	a.StartRename()
	a.Input.Append('!')
	a.CancelRename()
	if a.Notes[0].Title != "Keep me" {
		t.Fatalf("cancel applied the pending text: %q", a.Notes[0].Title)
	}
	if a.Mode != ModeNormal {
		t.Fatalf("mode: %v", a.Mode)
	}
	if a.StatusMessage != "Rename canceled" {
		t.Fatalf("status: %q", a.StatusMessage)
	}
	if a.UnsavedChanges {
		t.Fatalf("cancel must not mark unsaved changes")
	}
}

func TestStartRenameWithoutSelection(t *testing.T) {
	a := newTestApp(t)
	a.Section = SectionNotes
	if a.StartRename() {
		t.Fatalf("rename must not start without a selection")
	}
	if a.Mode == ModeRenaming {
		t.Fatalf("mode must not change")
	}
}

func TestRequestQuit(t *testing.T) {
	a := newTestApp(t)
	if !a.RequestQuit() {
		t.Fatalf("clean state must be allowed to quit")
	}
	a.UnsavedChanges = true
	if a.RequestQuit() {
		t.Fatalf("unsaved state must refuse to quit")
	}
	if !strings.Contains(a.StatusMessage, "Unsaved changes") {
		t.Fatalf("status: %q", a.StatusMessage)
	}
}

func TestCommandBufferSurvivesAbandon(t *testing.T) {
	a := newTestApp(t)
	a.Mode = ModeNormal
	a.EnterCommandMode()
	for _, r := range "sav" {
		a.Input.Append(r)
	}
	a.AbandonInput()
	if a.Mode != ModeNormal || a.Input.Kind != InputIdle {
		t.Fatalf("mode=%v kind=%v", a.Mode, a.Input.Kind)
	}
	// Escape abandons the interpretation, not the text.
	if a.Input.Text != "sav" {
		t.Fatalf("buffer text lost on abandon: %q", a.Input.Text)
	}
	a.EnterCommandMode()
	if a.Input.Text != "sav" {
		t.Fatalf("buffer text lost on re-entry: %q", a.Input.Text)
	}
}
