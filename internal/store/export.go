package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"terminal-notes/internal/model"

	homedir "github.com/mitchellh/go-homedir"
)

const exportBaseName = "terminal_notes_export"

// DefaultExportPath is the fixed export target: <dir>/terminal_notes_export.<ext>.
// Repeated exports overwrite it; the file always holds the latest export.
// An empty dir resolves to the home directory.
func DefaultExportPath(dir, format string) string {
	ext := "csv"
	if format == "markdown" || format == "md" {
		ext = "md"
	}
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil || home == "" {
			home = "."
		}
		dir = home
	}
	return filepath.Join(dir, exportBaseName+"."+ext)
}

// Export writes the full document to path in the given format.
// "json" is a verbatim copy of the persisted document file; "csv" and
// "markdown"/"md" are generated from the in-memory document. Anything else
// is an InvalidFormatError.
func (s Store) Export(format, path string, doc *model.Document) error {
	switch format {
	case "json":
		return copyFile(s.DataPath(), path)
	case "csv":
		return exportCSV(path, doc)
	case "markdown", "md":
		return exportMarkdown(path, doc)
	default:
		return InvalidFormatError{Format: format}
	}
}

func exportCSV(path string, doc *model.Document) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Type", "Title", "Content", "Created At", "Completed"}); err != nil {
		return err
	}
	for _, n := range doc.Notes {
		if err := w.Write([]string{"Note", n.Title, n.Content, n.CreatedAt, ""}); err != nil {
			return err
		}
	}
	for _, t := range doc.Todos {
		if err := w.Write([]string{"Todo", t.Title, t.Content, t.CreatedAt, strconv.FormatBool(t.Completed)}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func exportMarkdown(path string, doc *model.Document) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Notes\n\n")
	for _, n := range doc.Notes {
		fmt.Fprintf(&buf, "## %s\n", n.Title)
		fmt.Fprintf(&buf, "*Created: %s*\n\n", n.CreatedAt)
		fmt.Fprintf(&buf, "%s\n---\n\n", n.Content)
	}
	fmt.Fprintf(&buf, "# Todos\n\n")
	for _, t := range doc.Todos {
		box := "☐"
		if t.Completed {
			box = "✓"
		}
		fmt.Fprintf(&buf, "## %s %s\n", box, t.Title)
		fmt.Fprintf(&buf, "*Created: %s*\n\n", t.CreatedAt)
		fmt.Fprintf(&buf, "%s\n---\n\n", t.Content)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
