package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"terminal-notes/internal/model"

	homedir "github.com/mitchellh/go-homedir"
)

const (
	dataDirName  = ".terminal_notes"
	dataFileName = "data.json"
)

// Store persists a single Document as data.json inside Dir.
type Store struct {
	Dir string
}

// DefaultDir resolves ~/.terminal_notes, falling back to the working
// directory when the home directory cannot be determined.
func DefaultDir() string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, dataDirName)
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// DataPath is the document file; backups are written as siblings.
func (s Store) DataPath() string {
	return filepath.Join(s.Dir, dataFileName)
}

// Load reads the persisted document. A missing file is not an error and
// yields an empty document; a present but malformed file is a ParseError.
func (s Store) Load() (*model.Document, error) {
	raw, err := os.ReadFile(s.DataPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewDocument(), nil
		}
		return nil, err
	}
	doc := model.NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, ParseError{Path: s.DataPath(), Err: err}
	}
	return doc, nil
}

// Save writes the full document, replacing the file atomically so a
// concurrent Load never observes a partially written document.
func (s Store) Save(doc *model.Document) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.Dir, dataFileName+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.DataPath()); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
