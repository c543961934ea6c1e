package store

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configFileName = "config.toml"

// Config is the optional ~/.terminal_notes/config.toml. A missing file
// means defaults; a malformed one is a real error (silent misconfiguration
// is worse than a startup failure).
type Config struct {
	// DataDir overrides where data.json and backups live.
	DataDir string `toml:"data_dir"`
	// ExportDir overrides the directory of the default export target.
	ExportDir string `toml:"export_dir"`
	// MarkdownPreview toggles glamour rendering of note content in the TUI.
	MarkdownPreview bool `toml:"markdown_preview"`
}

func DefaultConfig() Config {
	return Config{MarkdownPreview: true}
}

// LoadConfig reads the config file under dir (normally DefaultDir()).
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), ParseError{Path: path, Err: err}
	}
	return cfg, nil
}
