package cli

import (
	"os"
	"strings"

	"terminal-notes/internal/app"
	"terminal-notes/internal/store"
	"terminal-notes/internal/tui"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	Dir string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "tnotes",
		Short:        "Terminal notes + todos (TUI and scriptable CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  tnotes

  # Scriptable commands
  tnotes list
  tnotes export --format csv
  tnotes backup
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(opts)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", envOr("TNOTES_DIR", ""), "Path to the data dir (default ~/.terminal_notes, or data_dir from config.toml)")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newBackupCmd(opts))
	return cmd
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// resolve applies the data-dir precedence: --dir flag, then config.toml
// data_dir, then ~/.terminal_notes. The config file itself always lives in
// the default dir so a relocated data dir can still be found.
func resolve(opts *rootOptions) (store.Store, store.Config, error) {
	base := store.DefaultDir()
	cfg, err := store.LoadConfig(base)
	if err != nil {
		return store.Store{}, cfg, err
	}
	dir := base
	if cfg.DataDir != "" {
		dir = cfg.DataDir
	}
	if opts.Dir != "" {
		dir = opts.Dir
	}
	return store.Store{Dir: dir}, cfg, nil
}

func runTUI(opts *rootOptions) error {
	st, cfg, err := resolve(opts)
	if err != nil {
		return err
	}
	a, err := app.New(st, cfg)
	if err != nil {
		return err
	}
	return tui.Run(a, cfg.MarkdownPreview)
}
