package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const backupTimeLayout = "20060102_150405"

// Backup copies the current document file to backup_<timestamp>.json in the
// data directory and returns the backup path. It fails with NotFoundError
// when no document has been saved yet.
func (s Store) Backup() (string, error) {
	return s.BackupAt(time.Now())
}

func (s Store) BackupAt(now time.Time) (string, error) {
	if _, err := os.Stat(s.DataPath()); err != nil {
		if os.IsNotExist(err) {
			return "", errNotFound(s.DataPath())
		}
		return "", err
	}
	name := fmt.Sprintf("backup_%s.json", now.Format(backupTimeLayout))
	dest := filepath.Join(s.Dir, name)
	if err := copyFile(s.DataPath(), dest); err != nil {
		return "", err
	}
	return dest, nil
}
