package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Create a timestamped copy of the document file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := resolve(opts)
			if err != nil {
				return err
			}
			path, err := st.Backup()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup created at: %s\n", path)
			return nil
		},
	}
}
