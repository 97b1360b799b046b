// Package cli wires the dashboard commands: serve, migrate and seed.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/acme-dashboard/internal/config"
	"github.com/mmynk/acme-dashboard/pkg/logging"
)

// options are shared by every subcommand.
type options struct {
	configFile string
	cfg        *config.Configuration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Acme invoice dashboard",
		Long:          "Serves the Acme invoice dashboard: invoice and customer reads, invoice form actions and sign-in.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logging.Setup(cfg.Logging.Level)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a config file (default ./config.yaml)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
