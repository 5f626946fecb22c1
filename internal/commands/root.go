// Package commands implements the wg-abrechner CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonaJoost/wg-abrechner/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "wg-abrechner",
		Short:   "Shared-household expense ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "wg-abrechner.yaml", "path to the configuration file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newMemberCommand(&configPath))
	rootCmd.AddCommand(newUserCommand(&configPath))
	rootCmd.AddCommand(newTransactionCommand(&configPath))
	rootCmd.AddCommand(newBalancesCommand(&configPath))
	rootCmd.AddCommand(newHistoryCommand(&configPath))
	rootCmd.AddCommand(newLoginCommand(&configPath))

	return rootCmd
}
