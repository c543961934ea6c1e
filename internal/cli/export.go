package cli

import (
	"fmt"

	"terminal-notes/internal/store"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export all notes and todos to a file",
		Long: "Export the full document to json, csv or markdown.\n" +
			"Without a path the export goes to the fixed default target\n" +
			"(terminal_notes_export.<ext> in export_dir or the home directory),\n" +
			"overwriting the previous export.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := resolve(opts)
			if err != nil {
				return err
			}
			doc, err := st.Load()
			if err != nil {
				return err
			}
			path := store.DefaultExportPath(cfg.ExportDir, format)
			if len(args) == 1 {
				path = args[0]
			}
			if err := st.Export(format, path, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format (json|csv|markdown|md)")
	return cmd
}
