package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/acme-dashboard/internal/auth"
	"github.com/mmynk/acme-dashboard/internal/seed"
	"github.com/mmynk/acme-dashboard/internal/storage/sqlite"
)

func newSeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load placeholder customers, invoices and the dashboard user",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sqlite.New(opts.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			sum, err := seed.Run(cmd.Context(), store, auth.NewPasswordAuthenticator(store))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d customers, %d invoices, %d users\n",
				sum.Customers, sum.Invoices, sum.Users)
			return nil
		},
	}
}
