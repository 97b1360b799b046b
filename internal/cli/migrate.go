package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/acme-dashboard/internal/storage/sqlite"
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfg.Database.Path
			if err := sqlite.Migrate(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s\n", path)
			return nil
		},
	}
}
