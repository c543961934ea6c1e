package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"terminal-notes/internal/model"
	"terminal-notes/internal/store"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func seedDocument(t *testing.T, dir string) *model.Document {
	t.Helper()
	st := store.Store{Dir: dir}
	doc := model.NewDocument()
	n := model.NewNote("CLI note", time.Now())
	n.Content = "body"
	doc.Notes = append(doc.Notes, n)
	doc.Todos = append(doc.Todos, model.NewTodo("CLI todo", time.Now()))
	if err := st.Save(doc); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return doc
}

func TestExportCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	seedDocument(t, dir)
	out := filepath.Join(t.TempDir(), "out.md")

	stdout, err := runCLI(t, "--dir", dir, "export", "--format", "markdown", out)
	if err != nil {
		t.Fatalf("export: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "Exported to: "+out) {
		t.Fatalf("output: %q", stdout)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(raw), "## CLI note") {
		t.Fatalf("export content:\n%s", raw)
	}
}

func TestExportCommandRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	seedDocument(t, dir)
	_, err := runCLI(t, "--dir", dir, "export", "--format", "xml", filepath.Join(t.TempDir(), "out.xml"))
	if err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}

func TestBackupCommand(t *testing.T) {
	dir := t.TempDir()

	// No document yet: the command must fail, not write an empty backup.
	if _, err := runCLI(t, "--dir", dir, "backup"); err == nil {
		t.Fatalf("expected backup without a document to fail")
	}

	seedDocument(t, dir)
	stdout, err := runCLI(t, "--dir", dir, "backup")
	if err != nil {
		t.Fatalf("backup: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "Backup created at: ") {
		t.Fatalf("output: %q", stdout)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	found := false
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "backup_") && strings.HasSuffix(e.Name(), ".json") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no backup file in %s", dir)
	}
}

func TestListCommandLoadsDocument(t *testing.T) {
	dir := t.TempDir()
	seedDocument(t, dir)
	// list prints through color.Output (the process stdout); just make
	// sure it runs cleanly against a real document.
	if _, err := runCLI(t, "--dir", dir, "list"); err != nil {
		t.Fatalf("list: %v", err)
	}
}
